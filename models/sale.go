package models

// SaleDetail is one line of a sale: a product, its unit price at sale
// time, and a quantity.
type SaleDetail struct {
	ID        int64   `json:"id_detalle,omitempty"`
	ProductID int64   `json:"id_producto"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
}

// Subtotal is quantity times unit price.
func (d SaleDetail) Subtotal() float64 {
	return float64(d.Quantity) * d.UnitPrice
}

// Sale is a completed transaction. ReservationID is nil for walk-ins.
type Sale struct {
	ID            int64        `json:"id_venta"`
	CustomerID    int64        `json:"id_cliente"`
	ReservationID *int64       `json:"id_reserva,omitempty"`
	EmployeeID    int64        `json:"id_empleado"`
	Total         float64      `json:"total"`
	Date          string       `json:"fecha_venta"`
	Details       []SaleDetail `json:"detalles,omitempty"`

	// Enriched for display.
	CustomerName string `json:"-"`
	WaiterName   string `json:"-"`
}

// NormalizeSale resolves sale shapes. Field priority:
//
//	id:            idVenta > id_venta > id
//	reservation:   id_reserva > idReserva > reserva.id_reserva > reserva.id
//	customer id:   id_cliente > cliente.id_cliente > cliente.id
//	customer name: nombre_cliente > cliente.nombre_cliente > clienteNombre
//	waiter name:   empleado.nombre > mesero.nombre > nombreMesero
//	date:          fechaventa > fecha_venta > fechaVenta > fecha
func NormalizeSale(raw Raw) (Sale, bool) {
	id, ok := intField(raw, "idVenta", "id_venta", "id")
	if !ok {
		return Sale{}, false
	}

	s := Sale{
		ID:    id,
		Total: floatField(raw, "total"),
		Date:  stringField(raw, "fechaventa", "fecha_venta", "fechaVenta", "fecha"),
	}

	if rid, ok := intField(raw, "id_reserva", "idReserva"); ok {
		s.ReservationID = &rid
	} else if res := nested(raw, "reserva"); res != nil {
		if rid, ok := intField(res, "id_reserva", "id"); ok {
			s.ReservationID = &rid
		}
	}

	cli := nested(raw, "cliente")
	if cid, ok := intField(raw, "id_cliente"); ok {
		s.CustomerID = cid
	} else if cli != nil {
		if cid, ok := intField(cli, "id_cliente", "id"); ok {
			s.CustomerID = cid
		}
	}
	s.CustomerName = stringField(raw, "nombre_cliente", "clienteNombre")
	if s.CustomerName == "" && cli != nil {
		s.CustomerName = stringField(cli, "nombre_cliente", "nombrecliente", "nombre")
	}

	if eid, ok := intField(raw, "id_empleado"); ok {
		s.EmployeeID = eid
	}
	if emp := nested(raw, "empleado", "mesero"); emp != nil {
		if s.EmployeeID == 0 {
			if eid, ok := intField(emp, "id_empleado", "id"); ok {
				s.EmployeeID = eid
			}
		}
		s.WaiterName = stringField(emp, "nombre")
	}
	if s.WaiterName == "" {
		s.WaiterName = stringField(raw, "nombreMesero")
	}

	for _, d := range RawSlice(raw["detalles"]) {
		if det, ok := NormalizeSaleDetail(d); ok {
			s.Details = append(s.Details, det)
		}
	}
	return s, true
}

func NormalizeSales(v interface{}) []Sale {
	rows := RawSlice(v)
	out := make([]Sale, 0, len(rows))
	for _, r := range rows {
		if s, ok := NormalizeSale(r); ok {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeSaleDetail resolves line shapes; product id priority:
// id_producto > idProducto > producto.id_producto > producto.id.
func NormalizeSaleDetail(raw Raw) (SaleDetail, bool) {
	d := SaleDetail{UnitPrice: floatField(raw, "precio_unitario", "precioUnitario")}
	if id, ok := intField(raw, "id_detalle", "idDetalle"); ok {
		d.ID = id
	}
	if q, ok := intField(raw, "cantidad"); ok {
		d.Quantity = int(q)
	}
	if pid, ok := intField(raw, "id_producto", "idProducto"); ok {
		d.ProductID = pid
	} else if prod := nested(raw, "producto"); prod != nil {
		if pid, ok := intField(prod, "id_producto", "idProducto", "id"); ok {
			d.ProductID = pid
		}
	}
	if d.ProductID == 0 {
		return SaleDetail{}, false
	}
	return d, true
}

func NormalizeSaleDetails(v interface{}) []SaleDetail {
	rows := RawSlice(v)
	out := make([]SaleDetail, 0, len(rows))
	for _, r := range rows {
		if d, ok := NormalizeSaleDetail(r); ok {
			out = append(out, d)
		}
	}
	return out
}
