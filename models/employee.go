package models

// Employee positions as stored by the reservations service.
const (
	PositionWaiter     = "MESERO"
	PositionCashier    = "CAJERO"
	PositionCook       = "COCINERO"
	PositionSupervisor = "SUPERVISOR"
	PositionAdmin      = "ADMIN"
)

// Positions lists the selectable employee positions.
var Positions = []string{
	PositionWaiter,
	PositionCashier,
	PositionCook,
	PositionSupervisor,
	PositionAdmin,
}

// Employee is a staff record. Status 1 means active.
type Employee struct {
	ID       int64  `json:"id_empleado"`
	Name     string `json:"nombre"`
	Position string `json:"puesto"`
	Status   int    `json:"estatus"`
}

// Active reports whether the employee is flagged active.
func (e Employee) Active() bool { return e.Status == 1 }

// NormalizeEmployee resolves employee shapes. Field priority for the
// id: id_empleado > idEmpleado > id.
func NormalizeEmployee(raw Raw) (Employee, bool) {
	id, ok := intField(raw, "id_empleado", "idEmpleado", "id")
	if !ok {
		return Employee{}, false
	}
	e := Employee{
		ID:       id,
		Name:     stringField(raw, "nombre"),
		Position: stringField(raw, "puesto"),
		Status:   1,
	}
	if st, ok := intField(raw, "estatus"); ok {
		e.Status = int(st)
	}
	return e, true
}

func NormalizeEmployees(v interface{}) []Employee {
	rows := RawSlice(v)
	out := make([]Employee, 0, len(rows))
	for _, r := range rows {
		if e, ok := NormalizeEmployee(r); ok {
			out = append(out, e)
		}
	}
	return out
}
