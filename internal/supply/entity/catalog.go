package entity

// Item is a catalog article with its reference unit price. Immutable within a
// session.
type Item struct {
	ID        int64   `json:"id"`
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
}

// Supplier is a vendor associated with one or more orders.
type Supplier struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
