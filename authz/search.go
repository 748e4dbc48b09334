package authz

import (
	"strconv"
	"strings"

	"github.com/fondajosmar/fonda-client/models"
)

// List screens offer a free-text filter over the already-fetched rows.
// The predicates live here so every screen filters the same way.

func contains(haystack, q string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(q)))
}

// FilterCustomers matches name, phone or email.
func FilterCustomers(list []models.Customer, q string) []models.Customer {
	if strings.TrimSpace(q) == "" {
		return list
	}
	out := make([]models.Customer, 0, len(list))
	for _, c := range list {
		if contains(c.Name+" "+c.Phone+" "+c.Email, q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterEmployees matches name or position.
func FilterEmployees(list []models.Employee, q string) []models.Employee {
	if strings.TrimSpace(q) == "" {
		return list
	}
	out := make([]models.Employee, 0, len(list))
	for _, e := range list {
		if contains(e.Name+" "+e.Position, q) {
			out = append(out, e)
		}
	}
	return out
}

// FilterReservations matches the customer name or the table number.
func FilterReservations(list []models.Reservation, q string) []models.Reservation {
	if strings.TrimSpace(q) == "" {
		return list
	}
	out := make([]models.Reservation, 0, len(list))
	for _, r := range list {
		if contains(r.CustomerName, q) || contains(strconv.Itoa(r.TableNumber), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSales matches the sale id or the customer name.
func FilterSales(list []models.Sale, q string) []models.Sale {
	if strings.TrimSpace(q) == "" {
		return list
	}
	out := make([]models.Sale, 0, len(list))
	for _, v := range list {
		if contains(strconv.FormatInt(v.ID, 10), q) || contains(v.CustomerName, q) {
			out = append(out, v)
		}
	}
	return out
}

// ProductFilter narrows the product list by text, type and price
// bounds; zero values leave a dimension unfiltered.
type ProductFilter struct {
	Query    string
	TypeID   int64
	PriceMin float64
	PriceMax float64
}

func FilterProducts(list []models.Product, f ProductFilter) []models.Product {
	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if strings.TrimSpace(f.Query) != "" && !contains(p.Name+" "+p.Description, f.Query) {
			continue
		}
		if f.TypeID != 0 && p.TypeID != f.TypeID {
			continue
		}
		if f.PriceMin != 0 && p.Price < f.PriceMin {
			continue
		}
		if f.PriceMax != 0 && p.Price > f.PriceMax {
			continue
		}
		out = append(out, p)
	}
	return out
}
