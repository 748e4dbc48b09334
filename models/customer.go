package models

// Customer is a patron record owned by the customer service.
type Customer struct {
	ID    int64  `json:"id_cliente"`
	Name  string `json:"nombre_cliente"`
	Phone string `json:"telefono_cliente"`
	Email string `json:"correo_cliente"`
}

// NormalizeCustomer resolves the customer shapes observed across
// service versions. Field priority:
//
//	id:    id > id_cliente > idCliente > idcliente
//	name:  nombreCliente > nombre_cliente > nombrecliente > nombre
//	phone: telefono > telefono_cliente > telefonocliente
//	email: correoCliente > correo_cliente > correocliente
func NormalizeCustomer(raw Raw) (Customer, bool) {
	id, ok := intField(raw, "id", "id_cliente", "idCliente", "idcliente")
	if !ok {
		return Customer{}, false
	}
	return Customer{
		ID:    id,
		Name:  stringField(raw, "nombreCliente", "nombre_cliente", "nombrecliente", "nombre"),
		Phone: stringField(raw, "telefono", "telefono_cliente", "telefonocliente"),
		Email: stringField(raw, "correoCliente", "correo_cliente", "correocliente"),
	}, true
}

// NormalizeCustomers drops entries without a resolvable id.
func NormalizeCustomers(v interface{}) []Customer {
	rows := RawSlice(v)
	out := make([]Customer, 0, len(rows))
	for _, r := range rows {
		if c, ok := NormalizeCustomer(r); ok {
			out = append(out, c)
		}
	}
	return out
}
