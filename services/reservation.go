package services

import (
	"context"
	"fmt"

	"github.com/fondajosmar/fonda-client/client"
	"github.com/fondajosmar/fonda-client/models"
)

// ReservationService talks to the reservation resource. Confirmation
// and cancellation are dedicated endpoints on the backend, not a
// generic status update.
type ReservationService struct {
	c    *client.Client
	base string
}

// ReservationPayload is the outgoing reservation shape; the table
// travels nested, as the backend binds it.
type ReservationPayload struct {
	CustomerID int64    `json:"id_cliente"`
	Table      TableRef `json:"mesa"`
	Date       string   `json:"fecha"`
	Time       string   `json:"hora"`
}

type TableRef struct {
	ID int64 `json:"id_mesa"`
}

// List returns reservations, optionally filtered to one date
// (YYYY-MM-DD); an empty date fetches everything.
func (s *ReservationService) List(ctx context.Context, date string) ([]models.Reservation, error) {
	resp, err := s.c.Request(ctx, withDateFilter(s.base, date), nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeReservations(resp), nil
}

func (s *ReservationService) Create(ctx context.Context, p ReservationPayload) error {
	_, err := s.c.JSON(ctx, "POST", s.base, p)
	return err
}

func (s *ReservationService) Update(ctx context.Context, id int64, p ReservationPayload) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d", s.base, id), p)
	return err
}

func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "DELETE", fmt.Sprintf("%s/%d", s.base, id), nil)
	return err
}

// Confirm moves a pending reservation to confirmed.
func (s *ReservationService) Confirm(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d/confirmar", s.base, id), nil)
	return err
}

// Cancel moves a pending reservation to cancelled. The backend routes
// this as PUT; an older service version used DELETE on the same path.
func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	_, err := s.c.JSON(ctx, "PUT", fmt.Sprintf("%s/%d/cancelar", s.base, id), nil)
	return err
}
