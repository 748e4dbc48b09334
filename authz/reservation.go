package authz

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/fondajosmar/fonda-client/models"
)

// ErrPastDate rejects creating or moving a reservation to a date
// before today.
var ErrPastDate = errors.New("no puedes registrar o mover una reserva a una fecha pasada")

// ReservationActions is what the view may offer for one reservation
// row, given the session and the wall clock.
type ReservationActions struct {
	CanEdit    bool
	CanConfirm bool
	CanCharge  bool // convert a confirmed reservation into a sale
	CanCancel  bool
	CanDelete  bool
}

// ActionsFor computes the action set for a reservation.
//
// Staff, on the reservation's own day: edit unless cancelled, confirm
// and cancel while pending, charge once confirmed, delete once
// cancelled. On any other day only a pending reservation can still be
// cancelled, and cancelled or past rows can be deleted.
//
// A customer session gets exactly one action: confirm, offered while
// the reservation is pending and only once its date and time have
// elapsed (self check-in on arrival, not scheduling).
func ActionsFor(r models.Reservation, s *models.Session, now time.Time) ReservationActions {
	status := strings.ToUpper(r.Status)
	pending := status == models.ReservationPending
	confirmed := status == models.ReservationConfirmed
	cancelled := status == models.ReservationCancelled

	if s != nil && CapabilitiesFor(s).OwnRecordsOnly {
		return ReservationActions{
			CanConfirm: pending && Elapsed(r, now),
		}
	}

	today := now.Format("2006-01-02")
	isToday := r.Date == today
	isPast := r.Date != "" && r.Date < today

	var a ReservationActions
	if isToday {
		a.CanEdit = !cancelled
		a.CanConfirm = pending
		a.CanCharge = confirmed
		a.CanCancel = pending
	} else {
		a.CanCancel = pending
	}
	a.CanDelete = cancelled || isPast
	return a
}

// Elapsed reports whether the reservation's date and time have already
// passed relative to now. Times come as "HH:mm" or "HH:mm:ss".
func Elapsed(r models.Reservation, now time.Time) bool {
	if r.Date == "" || r.Time == "" {
		return false
	}
	at, ok := reservationInstant(r.Date, r.Time, now.Location())
	if !ok {
		return false
	}
	return !now.Before(at)
}

func reservationInstant(date, clock string, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, false
	}
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return time.Time{}, false
	}
	hh, err1 := strconv.Atoi(parts[0])
	mm, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, loc), true
}

// ValidateReservationDate rejects a target date strictly before today.
func ValidateReservationDate(date string, now time.Time) error {
	if date != "" && date < now.Format("2006-01-02") {
		return ErrPastDate
	}
	return nil
}
