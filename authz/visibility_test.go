package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fondajosmar/fonda-client/authz"
	"github.com/fondajosmar/fonda-client/models"
)

func TestVisibleCustomersMatchesOwnRowByEmail(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Luis", Email: "luis@x.com"},
		{ID: 2, Name: "Ana", Email: "ana@x.com"},
		{ID: 3, Name: "Pedro", Email: "pedro@x.com"},
	}
	visible := authz.VisibleCustomers(sessionWith("ana@x.com", "ROLE_CLIENTE"), customers)
	if assert.Len(t, visible, 1) {
		assert.Equal(t, int64(2), visible[0].ID)
	}
}

func TestVisibleCustomersMatchesByNameCaseInsensitive(t *testing.T) {
	customers := []models.Customer{{ID: 9, Name: "Ana"}}
	// Several rows would normally exist; the single-row fallback must
	// not be what matches here.
	customers = append(customers, models.Customer{ID: 10, Name: "Otro"})
	visible := authz.VisibleCustomers(sessionWith("ANA", "CLIENTE"), customers)
	if assert.Len(t, visible, 1) {
		assert.Equal(t, int64(9), visible[0].ID)
	}
}

func TestVisibleCustomersSingleRowFallback(t *testing.T) {
	customers := []models.Customer{{ID: 5, Name: "Solitario"}}
	visible := authz.VisibleCustomers(sessionWith("nadie@x.com", "CLIENTE"), customers)
	assert.Len(t, visible, 1)

	several := append(customers, models.Customer{ID: 6, Name: "Otro"})
	assert.Empty(t, authz.VisibleCustomers(sessionWith("nadie@x.com", "CLIENTE"), several))
}

func TestVisibleCustomersStaffSeesAll(t *testing.T) {
	customers := []models.Customer{{ID: 1}, {ID: 2}}
	assert.Len(t, authz.VisibleCustomers(sessionWith("caja1", "CAJERO"), customers), 2)
	assert.Len(t, authz.VisibleCustomers(nil, customers), 2)
}

func TestVisibleReservationsForCustomer(t *testing.T) {
	reservations := []models.Reservation{
		{ID: 1, CustomerName: "Ana"},
		{ID: 2, CustomerName: "Luis"},
	}
	visible := authz.VisibleReservations(sessionWith("ana", "ROLE_CLIENTE"), reservations)
	if assert.Len(t, visible, 1) {
		assert.Equal(t, int64(1), visible[0].ID)
	}

	// Generated usernames carry a role suffix; the portion before the
	// first dot still matches.
	visible = authz.VisibleReservations(sessionWith("ana.cliente", "CLIENTE"), reservations)
	assert.Len(t, visible, 1)
}

func TestVisibleSalesForWaiter(t *testing.T) {
	sales := []models.Sale{
		{ID: 1, WaiterName: "Roberto"},
		{ID: 2, WaiterName: "roberto.mesero"},
		{ID: 3, WaiterName: "Carla"},
	}
	visible := authz.VisibleSales(sessionWith("roberto.mesero", "ROLE_MESERO"), sales)
	assert.Len(t, visible, 2)
}

func TestVisibleSalesForCustomerAndStaff(t *testing.T) {
	sales := []models.Sale{
		{ID: 1, CustomerName: "Ana"},
		{ID: 2, CustomerName: "Luis"},
	}
	visible := authz.VisibleSales(sessionWith("ana", "CLIENTE"), sales)
	if assert.Len(t, visible, 1) {
		assert.Equal(t, int64(1), visible[0].ID)
	}
	assert.Len(t, authz.VisibleSales(sessionWith("admin1", "ADMIN"), sales), 2)
	assert.Len(t, authz.VisibleSales(nil, sales), 2)
}
