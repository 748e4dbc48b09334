package models

// Attention links a sale to the employee serving it.
type Attention struct {
	ID         int64 `json:"id_atender"`
	SaleID     int64 `json:"id_venta"`
	EmployeeID int64 `json:"id_empleado"`
}

// NormalizeAttention resolves attention shapes; id priority:
// id_atender > idAtender > id.
func NormalizeAttention(raw Raw) (Attention, bool) {
	id, ok := intField(raw, "id_atender", "idAtender", "id")
	if !ok {
		return Attention{}, false
	}
	a := Attention{ID: id}
	if sid, ok := intField(raw, "id_venta", "idVenta"); ok {
		a.SaleID = sid
	}
	if eid, ok := intField(raw, "id_empleado", "idEmpleado"); ok {
		a.EmployeeID = eid
	}
	return a, true
}

func NormalizeAttentions(v interface{}) []Attention {
	rows := RawSlice(v)
	out := make([]Attention, 0, len(rows))
	for _, r := range rows {
		if a, ok := NormalizeAttention(r); ok {
			out = append(out, a)
		}
	}
	return out
}
