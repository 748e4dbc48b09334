package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// ErrReservationBilled blocks registering a second sale against a
// reservation that already has one. The check is client-side; the
// backend does not enforce it.
var ErrReservationBilled = errors.New("la reservación ya tiene una venta registrada")

// ErrEmptyCart blocks registering a sale without line items.
var ErrEmptyCart = errors.New("el carrito está vacío")

// SaleService talks to the sale resource.
type SaleService struct {
	c    *client.Client
	base string
}

// saleLine is the nested detail shape the backend binds: the product
// id travels both flat and nested.
type saleLine struct {
	ProductID int64      `json:"id_producto"`
	Product   productRef `json:"producto"`
	Quantity  int        `json:"cantidad"`
	UnitPrice float64    `json:"precio_unitario"`
}

type productRef struct {
	ID int64 `json:"id_producto"`
}

type salePayload struct {
	CustomerID    int64      `json:"id_cliente"`
	ReservationID *int64     `json:"id_reserva"`
	EmployeeID    int64      `json:"id_empleado"`
	Total         float64    `json:"total"`
	Details       []saleLine `json:"detalles"`
}

// List returns sales, optionally filtered to one date (YYYY-MM-DD).
func (s *SaleService) List(ctx context.Context, date string) ([]models.Sale, error) {
	resp, err := s.c.Request(ctx, withDateFilter(s.base, date), nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeSales(resp), nil
}

// Register submits a new sale. The total is recomputed from the line
// items, never trusted from the caller, and a reservation already
// referenced by any sale in existing is rejected locally without a
// network call.
func (s *SaleService) Register(ctx context.Context, sale models.Sale, existing []models.Sale) (models.Sale, error) {
	if len(sale.Details) == 0 {
		return models.Sale{}, ErrEmptyCart
	}
	if sale.ReservationID != nil && models.ReservationBilled(existing, *sale.ReservationID) {
		return models.Sale{}, ErrReservationBilled
	}

	payload := salePayload{
		CustomerID:    sale.CustomerID,
		ReservationID: sale.ReservationID,
		EmployeeID:    sale.EmployeeID,
		Total:         models.CartTotal(sale.Details),
		Details:       make([]saleLine, 0, len(sale.Details)),
	}
	for _, d := range sale.Details {
		payload.Details = append(payload.Details, saleLine{
			ProductID: d.ProductID,
			Product:   productRef{ID: d.ProductID},
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
		})
	}

	resp, err := s.c.JSON(ctx, "POST", s.base, payload)
	if err != nil {
		return models.Sale{}, err
	}
	created, _ := models.NormalizeSale(asRaw(resp))
	return created, nil
}

func (s *SaleService) Update(ctx context.Context, id int64, sale models.Sale) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d", s.base, id), sale)
	return err
}

func (s *SaleService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}

// Ticket fetches the PDF receipt for a sale. The bytes are opaque and
// never cached.
func (s *SaleService) Ticket(ctx context.Context, id int64) ([]byte, error) {
	return s.c.RequestBinary(ctx, fmt.Sprintf("%s/%d/ticket", s.base, id), &client.Options{Method: "GET"})
}
