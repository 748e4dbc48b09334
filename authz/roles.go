// Package authz derives UI capabilities from a session's roles and
// identity. Everything here is pure: no network calls, recompute
// whenever the session or the underlying list changes.
package authz

import (
	"strings"

	"github.com/fondajosmar/fonda-client/models"
)

// Role names as granted by the auth service, without the ROLE_ prefix.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleCashier    = "CAJERO"
	RoleWaiter     = "MESERO"
	RoleCustomer   = "CLIENTE"
)

const rolePrefix = "ROLE_"

// HasRole reports whether the role set contains role, treating the
// prefixed and bare spellings ("ROLE_ADMIN" / "ADMIN") as equivalent
// on both sides.
func HasRole(roles []string, role string) bool {
	want := strings.TrimPrefix(strings.ToUpper(role), rolePrefix)
	for _, r := range roles {
		if strings.TrimPrefix(strings.ToUpper(r), rolePrefix) == want {
			return true
		}
	}
	return false
}

// Capabilities is the derived permission set a view consults to decide
// what to render and which actions to offer.
type Capabilities struct {
	ViewCustomers    bool
	ViewProducts     bool
	ViewReservations bool

	ManageCustomers bool
	ManageProducts  bool
	ManageTables    bool
	ManageEmployees bool
	ManageTypes     bool
	RegisterSales   bool
	ServeOrders     bool

	// OwnRecordsOnly restricts listings to rows matching the session's
	// own identity (the customer role).
	OwnRecordsOnly bool
}

// CapabilitiesFor derives the capability set for a session. A nil
// session has no capabilities.
func CapabilitiesFor(s *models.Session) Capabilities {
	if s == nil {
		return Capabilities{}
	}
	admin := HasRole(s.Roles, RoleAdmin)
	supervisor := HasRole(s.Roles, RoleSupervisor)
	cashier := HasRole(s.Roles, RoleCashier)
	waiter := HasRole(s.Roles, RoleWaiter)
	customer := HasRole(s.Roles, RoleCustomer)

	return Capabilities{
		ViewCustomers:    admin || supervisor || cashier || customer || waiter,
		ViewProducts:     admin || supervisor || cashier || customer,
		ViewReservations: admin || supervisor || cashier || customer,

		ManageCustomers: admin || supervisor || cashier,
		ManageProducts:  admin || supervisor || cashier,
		ManageTables:    admin || supervisor,
		ManageEmployees: admin || supervisor,
		ManageTypes:     admin || supervisor,
		RegisterSales:   admin || cashier,
		ServeOrders:     waiter || admin,

		OwnRecordsOnly: customer,
	}
}

// RoleLabel renders the role set for display, prefixes stripped
// ("ROLE_ADMIN, CAJERO" -> "ADMIN, CAJERO"); an empty set shows as a
// guest.
func RoleLabel(roles []string) string {
	if len(roles) == 0 {
		return "INVITADO"
	}
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = strings.TrimPrefix(r, rolePrefix)
	}
	return strings.Join(out, ", ")
}
