package models

// Product is a menu item owned by the fonda service. Photo is the
// filename of the uploaded image, served from the uploads endpoint.
type Product struct {
	ID          int64   `json:"id_producto"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	TypeID      int64   `json:"idTipo"`
	Photo       string  `json:"foto"`
}

// NormalizeProduct resolves product shapes. Field priority:
//
//	id:      idProducto > id_producto > id
//	type id: idTipo > tipo.id_tipo > tipo.idTipo > id_tipo
func NormalizeProduct(raw Raw) (Product, bool) {
	id, ok := intField(raw, "idProducto", "id_producto", "id")
	if !ok {
		return Product{}, false
	}
	p := Product{
		ID:          id,
		Name:        stringField(raw, "nombre"),
		Description: stringField(raw, "descripcion"),
		Price:       floatField(raw, "precio"),
		Photo:       stringField(raw, "foto"),
	}
	if tid, ok := intField(raw, "idTipo"); ok {
		p.TypeID = tid
	} else if tipo := nested(raw, "tipo"); tipo != nil {
		if tid, ok := intField(tipo, "id_tipo", "idTipo", "id"); ok {
			p.TypeID = tid
		}
	} else if tid, ok := intField(raw, "id_tipo"); ok {
		p.TypeID = tid
	}
	return p, true
}

func NormalizeProducts(v interface{}) []Product {
	rows := RawSlice(v)
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		if p, ok := NormalizeProduct(r); ok {
			out = append(out, p)
		}
	}
	return out
}

// ProductType is a menu category.
type ProductType struct {
	ID          int64  `json:"id_tipo"`
	Label       string `json:"tipo"`
	Description string `json:"descripcion"`
}

// NormalizeProductType resolves type shapes; id priority:
// id_tipo > idTipo > id.
func NormalizeProductType(raw Raw) (ProductType, bool) {
	id, ok := intField(raw, "id_tipo", "idTipo", "id")
	if !ok {
		return ProductType{}, false
	}
	return ProductType{
		ID:          id,
		Label:       stringField(raw, "tipo"),
		Description: stringField(raw, "descripcion"),
	}, true
}

func NormalizeProductTypes(v interface{}) []ProductType {
	rows := RawSlice(v)
	out := make([]ProductType, 0, len(rows))
	for _, r := range rows {
		if t, ok := NormalizeProductType(r); ok {
			out = append(out, t)
		}
	}
	return out
}
