// Package services exposes one typed module per backend resource.
// Each function is a thin parameter-shaping wrapper around the HTTP
// client; none re-implements response parsing.
package services

import (
	"net/url"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/config"
)

// API bundles the per-resource service modules over one HTTP client.
type API struct {
	Auth         *AuthService
	Customers    *CustomerService
	Products     *ProductService
	Types        *ProductTypeService
	Tables       *TableService
	Reservations *ReservationService
	Employees    *EmployeeService
	Sales        *SaleService
	SaleDetails  *SaleDetailService
	Attentions   *AttentionService
}

func New(c *client.Client, cfg *config.Config) *API {
	auth := &AuthService{c: c, base: cfg.AuthBaseURL}
	return &API{
		Auth:         auth,
		Customers:    &CustomerService{c: c, base: cfg.CustomerBaseURL, auth: auth},
		Products:     &ProductService{c: c, base: cfg.FondaBaseURL + "/producto"},
		Types:        &ProductTypeService{c: c, base: cfg.FondaBaseURL + "/tipoproducto"},
		Tables:       &TableService{c: c, base: cfg.ReservationsBaseURL + "/mesa"},
		Reservations: &ReservationService{c: c, base: cfg.ReservationsBaseURL + "/reserva"},
		Employees:    &EmployeeService{c: c, base: cfg.ReservationsBaseURL + "/empleado", auth: auth},
		Sales:        &SaleService{c: c, base: cfg.FondaBaseURL + "/venta"},
		SaleDetails:  &SaleDetailService{c: c, base: cfg.FondaBaseURL + "/detalleventa"},
		Attentions:   &AttentionService{c: c, base: cfg.ReservationsBaseURL + "/atender"},
	}
}

// withDateFilter appends ?fecha=... when date is non-empty. Listing
// endpoints return complete result sets either way.
func withDateFilter(base, date string) string {
	if date == "" {
		return base
	}
	return base + "?fecha=" + url.QueryEscape(date)
}
