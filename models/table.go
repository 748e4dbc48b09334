package models

// Table locations as offered by the tables screen.
const (
	LocationTerrace     = "Terraza"
	LocationGroundFloor = "Interior planta baja"
	LocationUpperFloor  = "Interior planta alta"
)

var Locations = []string{
	LocationTerrace,
	LocationGroundFloor,
	LocationUpperFloor,
}

// Table is a dining table owned by the reservations service.
type Table struct {
	ID       int64  `json:"id_mesa"`
	Number   int    `json:"numero"`
	Capacity int    `json:"capacidad"`
	Location string `json:"ubicacion"`
}

// NormalizeTable resolves table shapes. Field priority for the id:
// id_mesa > idMesa > id.
func NormalizeTable(raw Raw) (Table, bool) {
	id, ok := intField(raw, "id_mesa", "idMesa", "id")
	if !ok {
		return Table{}, false
	}
	t := Table{ID: id, Location: stringField(raw, "ubicacion")}
	if n, ok := intField(raw, "numero"); ok {
		t.Number = int(n)
	}
	if c, ok := intField(raw, "capacidad"); ok {
		t.Capacity = int(c)
	}
	return t, true
}

func NormalizeTables(v interface{}) []Table {
	rows := RawSlice(v)
	out := make([]Table, 0, len(rows))
	for _, r := range rows {
		if t, ok := NormalizeTable(r); ok {
			out = append(out, t)
		}
	}
	return out
}
