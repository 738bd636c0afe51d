package entity

import "time"

// Order is a supply order: a dated set of line items bought from one supplier.
type Order struct {
	ID         int64     `json:"id"`
	Reference  string    `json:"reference"`
	Date       time.Time `json:"date"`
	SupplierID int64     `json:"supplier_id"`
	Supplier   *Supplier `json:"supplier,omitempty"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`

	// TotalAmount is the snapshot computed from the request's line prices at
	// creation time. Dashboard statistics recompute totals from catalog
	// prices instead; the two may diverge once catalog prices change.
	TotalAmount float64 `json:"total_amount"`

	Lines []OrderLine `json:"lines"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderLine is one item/quantity/price entry within an order. The unit price
// is copied from the catalog at selection time but stored independently.
type OrderLine struct {
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order status
const (
	OrderStatusPending  = "pending"
	OrderStatusReceived = "received"
)
