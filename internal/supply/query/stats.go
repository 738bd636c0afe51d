package query

import "github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"

// SupplierStat is the top supplier's contribution to the grand total.
type SupplierStat struct {
	Supplier   entity.Supplier `json:"supplier"`
	Total      float64         `json:"total"`
	Percentage float64         `json:"percentage"`
}

// Stats are the dashboard figures computed over the full, unfiltered order
// set.
type Stats struct {
	TotalAmount   float64       `json:"total_amount"`
	OrderCount    int           `json:"order_count"`
	PendingCount  int           `json:"pending_count"`
	ReceivedCount int           `json:"received_count"`
	TopSupplier   *SupplierStat `json:"top_supplier,omitempty"`
}

// EffectiveTotal recomputes an order's total at display time: quantity times
// the current catalog price where the item is known, falling back to the
// line's stored price when it is not (or when the catalog price is zero).
// This deliberately diverges from the stored TotalAmount snapshot.
func EffectiveTotal(o entity.Order, catalog map[int64]entity.Item) float64 {
	var total float64
	for _, l := range o.Lines {
		price := l.UnitPrice
		if it, ok := catalog[l.ItemID]; ok && it.UnitPrice > 0 {
			price = it.UnitPrice
		}
		total += float64(l.Quantity) * price
	}
	return total
}

// Aggregate computes the grand total and the top-contributing supplier.
// Supplier totals accumulate in first-encounter order and only a strictly
// greater total takes the lead, so the first supplier seen wins ties.
func Aggregate(orders []entity.Order, catalog map[int64]entity.Item) Stats {
	stats := Stats{OrderCount: len(orders)}

	totals := make(map[int64]float64)
	supplierSeen := make(map[int64]entity.Supplier)
	var seenOrder []int64

	for _, o := range orders {
		total := EffectiveTotal(o, catalog)
		stats.TotalAmount += total

		switch o.Status {
		case entity.OrderStatusPending:
			stats.PendingCount++
		case entity.OrderStatusReceived:
			stats.ReceivedCount++
		}

		if _, ok := totals[o.SupplierID]; !ok {
			seenOrder = append(seenOrder, o.SupplierID)
			if o.Supplier != nil {
				supplierSeen[o.SupplierID] = *o.Supplier
			} else {
				supplierSeen[o.SupplierID] = entity.Supplier{ID: o.SupplierID}
			}
		}
		totals[o.SupplierID] += total
	}

	var top *SupplierStat
	var maxTotal float64
	for _, id := range seenOrder {
		if totals[id] > maxTotal {
			maxTotal = totals[id]
			sup := supplierSeen[id]
			top = &SupplierStat{Supplier: sup, Total: totals[id]}
		}
	}
	if top != nil {
		if stats.TotalAmount > 0 {
			top.Percentage = top.Total / stats.TotalAmount * 100
		}
		stats.TopSupplier = top
	}

	return stats
}
