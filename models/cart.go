package models

// Cart is the ordered set of line items being assembled into a sale.
type Cart []SaleDetail

// Add merges qty units of the product into the cart, keeping one line
// per product. Quantities below one are bumped to one.
func (c Cart) Add(p Product, qty int) Cart {
	if qty < 1 {
		qty = 1
	}
	for i := range c {
		if c[i].ProductID == p.ID {
			c[i].Quantity += qty
			return c
		}
	}
	return append(c, SaleDetail{
		ProductID: p.ID,
		Quantity:  qty,
		UnitPrice: p.Price,
	})
}

// Remove drops the product's line.
func (c Cart) Remove(productID int64) Cart {
	out := c[:0]
	for _, d := range c {
		if d.ProductID != productID {
			out = append(out, d)
		}
	}
	return out
}

// Increment adds one unit to the product's line.
func (c Cart) Increment(productID int64) Cart {
	for i := range c {
		if c[i].ProductID == productID {
			c[i].Quantity++
		}
	}
	return c
}

// Decrement removes one unit, dropping the line at zero.
func (c Cart) Decrement(productID int64) Cart {
	out := c[:0]
	for _, d := range c {
		if d.ProductID == productID {
			d.Quantity--
		}
		if d.Quantity > 0 {
			out = append(out, d)
		}
	}
	return out
}

// Total sums the line subtotals.
func (c Cart) Total() float64 { return CartTotal(c) }

// CartTotal recomputes a sale total from its line items. Submission
// always uses this, never a previously displayed figure.
func CartTotal(details []SaleDetail) float64 {
	var total float64
	for _, d := range details {
		total += d.Subtotal()
	}
	return total
}

// ReservationBilled reports whether any existing sale already
// references the reservation.
func ReservationBilled(sales []Sale, reservationID int64) bool {
	for _, s := range sales {
		if s.ReservationID != nil && *s.ReservationID == reservationID {
			return true
		}
	}
	return false
}
