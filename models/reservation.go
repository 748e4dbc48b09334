package models

// Reservation statuses as surfaced by the reservations service.
const (
	ReservationPending   = "PENDIENTE"
	ReservationConfirmed = "CONFIRMADA"
	ReservationCancelled = "CANCELADA"
)

// Reservation binds a customer to a table on a date at a time.
// Date is "YYYY-MM-DD", Time is "HH:mm" or "HH:mm:ss".
type Reservation struct {
	ID         int64  `json:"id_reserva"`
	Date       string `json:"fecha"`
	Time       string `json:"hora"`
	CustomerID int64  `json:"id_cliente"`
	TableID    int64  `json:"-"`
	Status     string `json:"estatus"`

	// Enriched for display from the customer and table lists.
	CustomerName  string `json:"-"`
	TableNumber   int    `json:"-"`
	TableLocation string `json:"-"`
}

// NormalizeReservation resolves reservation shapes. Field priority:
//
//	id:       id_reserva > idReserva > id
//	date:     fecha_reserva > fechaReserva > fecha > fecha_reservacion > fechareserva
//	table id: mesa.id_mesa > mesa.id > id_mesa
//	status:   estatus, defaulting to PENDIENTE
//
// The date keeps only its leading YYYY-MM-DD when a timestamp sneaks in.
func NormalizeReservation(raw Raw) (Reservation, bool) {
	id, ok := intField(raw, "id_reserva", "idReserva", "id")
	if !ok {
		return Reservation{}, false
	}

	r := Reservation{
		ID:     id,
		Date:   trimDate(stringField(raw, "fecha_reserva", "fechaReserva", "fecha", "fecha_reservacion", "fechareserva")),
		Time:   stringField(raw, "hora"),
		Status: stringField(raw, "estatus"),
	}
	if r.Status == "" {
		r.Status = ReservationPending
	}
	if cid, ok := intField(raw, "id_cliente", "idCliente"); ok {
		r.CustomerID = cid
	} else if cli := nested(raw, "cliente"); cli != nil {
		if cid, ok := intField(cli, "id_cliente", "id"); ok {
			r.CustomerID = cid
		}
	}
	if mesa := nested(raw, "mesa"); mesa != nil {
		if mid, ok := intField(mesa, "id_mesa", "id"); ok {
			r.TableID = mid
		}
	}
	if r.TableID == 0 {
		if mid, ok := intField(raw, "id_mesa"); ok {
			r.TableID = mid
		}
	}
	r.CustomerName = stringField(raw, "nombre_cliente")
	return r, true
}

func NormalizeReservations(v interface{}) []Reservation {
	rows := RawSlice(v)
	out := make([]Reservation, 0, len(rows))
	for _, r := range rows {
		if rv, ok := NormalizeReservation(r); ok {
			out = append(out, rv)
		}
	}
	return out
}

func trimDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
