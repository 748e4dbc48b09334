package authz

import (
	"strings"

	"github.com/fondajosmar/fonda-client/models"
)

// Identity matching is a heuristic: there is no foreign key from the
// session to its customer row, so rows are matched by comparing names
// and emails against the username. Generated usernames look like
// "name.role", hence the before-first-dot fallback.

// matchesUsername reports whether value equals the username, either in
// full or against the portion before the username's first dot. Both
// sides are compared case-insensitively.
func matchesUsername(username, value string) bool {
	u := strings.ToLower(strings.TrimSpace(username))
	v := strings.ToLower(strings.TrimSpace(value))
	if u == "" || v == "" {
		return false
	}
	if v == u {
		return true
	}
	simple, _, _ := strings.Cut(u, ".")
	return v == simple
}

func equalsFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) && strings.TrimSpace(a) != ""
}

// VisibleCustomers applies the customer role's single-row restriction:
// the row whose name or email equals the session's username. When no
// row matches and exactly one customer exists, that row is assumed to
// be the caller's. Staff sessions see everything.
func VisibleCustomers(s *models.Session, customers []models.Customer) []models.Customer {
	if s == nil || !CapabilitiesFor(s).OwnRecordsOnly {
		return customers
	}
	for _, c := range customers {
		if equalsFold(s.Username, c.Name) || equalsFold(s.Username, c.Email) {
			return []models.Customer{c}
		}
	}
	if len(customers) == 1 {
		return customers[:1]
	}
	return []models.Customer{}
}

// VisibleReservations restricts a customer session to reservations
// whose customer name matches the session's username.
func VisibleReservations(s *models.Session, reservations []models.Reservation) []models.Reservation {
	if s == nil || !CapabilitiesFor(s).OwnRecordsOnly {
		return reservations
	}
	out := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if matchesUsername(s.Username, r.CustomerName) {
			out = append(out, r)
		}
	}
	return out
}

// VisibleSales restricts the sale list by identity: a customer session
// sees only sales bearing its own customer name, a waiter session only
// sales attributed to them. Other staff sessions see everything.
func VisibleSales(s *models.Session, sales []models.Sale) []models.Sale {
	if s == nil {
		return sales
	}
	caps := CapabilitiesFor(s)
	switch {
	case caps.OwnRecordsOnly:
		return filterSales(sales, func(v models.Sale) bool {
			return matchesUsername(s.Username, v.CustomerName)
		})
	case HasRole(s.Roles, RoleWaiter) && !HasRole(s.Roles, RoleAdmin):
		return filterSales(sales, func(v models.Sale) bool {
			return matchesUsername(s.Username, v.WaiterName)
		})
	default:
		return sales
	}
}

func filterSales(sales []models.Sale, keep func(models.Sale) bool) []models.Sale {
	out := make([]models.Sale, 0, len(sales))
	for _, v := range sales {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
