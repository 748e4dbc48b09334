package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fondajosmar/fonda-client/authz"
	"github.com/fondajosmar/fonda-client/models"
)

func TestFilterCustomers(t *testing.T) {
	list := []models.Customer{
		{ID: 1, Name: "Ana Ruiz", Phone: "555-1010", Email: "ana@x.com"},
		{ID: 2, Name: "Bruno Díaz", Phone: "555-2020", Email: "bruno@x.com"},
	}

	assert.Equal(t, list, authz.FilterCustomers(list, "  "))

	got := authz.FilterCustomers(list, "ANA")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = authz.FilterCustomers(list, "2020")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	assert.Empty(t, authz.FilterCustomers(list, "carlos"))
}

func TestFilterEmployees(t *testing.T) {
	list := []models.Employee{
		{ID: 1, Name: "Roberto", Position: models.PositionWaiter},
		{ID: 2, Name: "Lucía", Position: models.PositionCashier},
	}

	got := authz.FilterEmployees(list, "mesero")
	assert.Len(t, got, 1)
	assert.Equal(t, "Roberto", got[0].Name)

	got = authz.FilterEmployees(list, "luc")
	assert.Len(t, got, 1)
	assert.Equal(t, models.PositionCashier, got[0].Position)
}

func TestFilterReservations(t *testing.T) {
	list := []models.Reservation{
		{ID: 1, CustomerName: "Ana Ruiz", TableNumber: 4},
		{ID: 2, CustomerName: "Bruno Díaz", TableNumber: 12},
	}

	got := authz.FilterReservations(list, "ana")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// Table number matches as text.
	got = authz.FilterReservations(list, "12")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilterSales(t *testing.T) {
	list := []models.Sale{
		{ID: 31, CustomerName: "Ana Ruiz"},
		{ID: 40, CustomerName: "Bruno Díaz"},
	}

	got := authz.FilterSales(list, "31")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(31), got[0].ID)

	got = authz.FilterSales(list, "bruno")
	assert.Len(t, got, 1)
	assert.Equal(t, int64(40), got[0].ID)
}

func TestFilterProducts(t *testing.T) {
	list := []models.Product{
		{ID: 1, Name: "Taco al pastor", Description: "Con piña", Price: 35, TypeID: 2},
		{ID: 2, Name: "Agua de jamaica", Description: "Natural", Price: 20, TypeID: 5},
		{ID: 3, Name: "Taco de asada", Description: "", Price: 42, TypeID: 2},
	}

	got := authz.FilterProducts(list, authz.ProductFilter{Query: "taco"})
	assert.Len(t, got, 2)

	got = authz.FilterProducts(list, authz.ProductFilter{TypeID: 5})
	assert.Len(t, got, 1)
	assert.Equal(t, "Agua de jamaica", got[0].Name)

	got = authz.FilterProducts(list, authz.ProductFilter{PriceMin: 30, PriceMax: 40})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// Dimensions combine.
	got = authz.FilterProducts(list, authz.ProductFilter{Query: "taco", PriceMin: 40})
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	// Zero filter passes everything through.
	assert.Len(t, authz.FilterProducts(list, authz.ProductFilter{}), 3)
}
