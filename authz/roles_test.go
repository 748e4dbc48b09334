package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fondajosmar/fonda-client/authz"
	"github.com/fondajosmar/fonda-client/models"
)

func sessionWith(username string, roles ...string) *models.Session {
	return &models.Session{Username: username, Roles: roles}
}

func TestHasRoleIsPrefixInsensitive(t *testing.T) {
	for _, roles := range [][]string{{"ADMIN"}, {"ROLE_ADMIN"}} {
		assert.True(t, authz.HasRole(roles, "ADMIN"), "roles=%v", roles)
		assert.True(t, authz.HasRole(roles, "ROLE_ADMIN"), "roles=%v", roles)
	}
	assert.False(t, authz.HasRole([]string{"ROLE_ADMIN"}, "CAJERO"))
	assert.False(t, authz.HasRole(nil, "ADMIN"))
}

func TestCapabilitiesForCashier(t *testing.T) {
	caps := authz.CapabilitiesFor(sessionWith("caja1", "ROLE_CAJERO"))
	assert.True(t, caps.ManageCustomers)
	assert.True(t, caps.ManageProducts)
	assert.True(t, caps.RegisterSales)
	assert.False(t, caps.ManageEmployees)
	assert.False(t, caps.ManageTables)
	assert.False(t, caps.ManageTypes)
	assert.False(t, caps.ServeOrders)
	assert.False(t, caps.OwnRecordsOnly)
}

func TestCapabilitiesForOtherRoles(t *testing.T) {
	admin := authz.CapabilitiesFor(sessionWith("admin1", "ADMIN"))
	assert.True(t, admin.ManageEmployees)
	assert.True(t, admin.RegisterSales)
	assert.True(t, admin.ServeOrders)

	supervisor := authz.CapabilitiesFor(sessionWith("sup1", "ROLE_SUPERVISOR"))
	assert.True(t, supervisor.ManageTables)
	assert.True(t, supervisor.ManageTypes)
	assert.False(t, supervisor.RegisterSales)

	waiter := authz.CapabilitiesFor(sessionWith("mesero1", "MESERO"))
	assert.True(t, waiter.ServeOrders)
	assert.False(t, waiter.ManageCustomers)

	customer := authz.CapabilitiesFor(sessionWith("ana@x.com", "ROLE_CLIENTE"))
	assert.True(t, customer.OwnRecordsOnly)
	assert.True(t, customer.ViewReservations)
	assert.False(t, customer.ManageCustomers)

	assert.Zero(t, authz.CapabilitiesFor(nil))
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "ADMIN, CAJERO", authz.RoleLabel([]string{"ROLE_ADMIN", "CAJERO"}))
	assert.Equal(t, "INVITADO", authz.RoleLabel(nil))
}
