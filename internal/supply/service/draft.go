package service

import (
	"fmt"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
)

// OrderDraft accumulates the line items of an order being prepared and keeps
// the running grand total. A rejected add leaves the draft untouched.
type OrderDraft struct {
	lines []entity.OrderLine
	total float64
}

func NewOrderDraft() *OrderDraft {
	return &OrderDraft{}
}

// AddLine validates and appends one line item: an item must be selected, the
// quantity must be positive and the unit price non-negative.
func (d *OrderDraft) AddLine(itemID int64, quantity int, unitPrice float64) error {
	if itemID == 0 {
		return fmt.Errorf("no item selected: %w", ErrValidation)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	if unitPrice < 0 {
		return fmt.Errorf("unit price must not be negative: %w", ErrValidation)
	}

	d.lines = append(d.lines, entity.OrderLine{
		ItemID:    itemID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	d.recompute()
	return nil
}

// RemoveLine drops the line at the given position (0-based).
func (d *OrderDraft) RemoveLine(pos int) error {
	if pos < 0 || pos >= len(d.lines) {
		return fmt.Errorf("no line at position %d: %w", pos, ErrValidation)
	}
	d.lines = append(d.lines[:pos], d.lines[pos+1:]...)
	d.recompute()
	return nil
}

// Lines returns a copy of the accumulated line items in entry order.
func (d *OrderDraft) Lines() []entity.OrderLine {
	out := make([]entity.OrderLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Total is the running grand total over all accumulated lines.
func (d *OrderDraft) Total() float64 {
	return d.total
}

// Empty reports whether no line has been accumulated yet.
func (d *OrderDraft) Empty() bool {
	return len(d.lines) == 0
}

func (d *OrderDraft) recompute() {
	d.total = 0
	for _, l := range d.lines {
		d.total += float64(l.Quantity) * l.UnitPrice
	}
}
