package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fondajosmar/fonda-client/models"
)

func TestCartMergesAndTotals(t *testing.T) {
	taco := models.Product{ID: 1, Name: "Taco", Price: 35}
	agua := models.Product{ID: 2, Name: "Agua", Price: 20}

	var cart models.Cart
	cart = cart.Add(taco, 2)
	cart = cart.Add(agua, 0) // below one bumps to one
	cart = cart.Add(taco, 1)

	if assert.Len(t, cart, 2) {
		assert.Equal(t, 3, cart[0].Quantity)
		assert.Equal(t, 1, cart[1].Quantity)
	}
	assert.Equal(t, 125.0, cart.Total())

	cart = cart.Increment(2)
	cart = cart.Decrement(1)
	assert.Equal(t, 110.0, cart.Total())

	cart = cart.Decrement(2)
	cart = cart.Decrement(2) // line drops at zero
	if assert.Len(t, cart, 1) {
		assert.Equal(t, int64(1), cart[0].ProductID)
	}

	cart = cart.Remove(1)
	assert.Empty(t, cart)
	assert.Zero(t, cart.Total())
}

func TestReservationBilled(t *testing.T) {
	four := int64(4)
	sales := []models.Sale{
		{ID: 1},
		{ID: 2, ReservationID: &four},
	}
	assert.True(t, models.ReservationBilled(sales, 4))
	assert.False(t, models.ReservationBilled(sales, 5))
	assert.False(t, models.ReservationBilled(nil, 4))
}
