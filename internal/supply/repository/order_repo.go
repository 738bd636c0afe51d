package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
)

// OrderRepository owns the in-memory order collection and the supplier index
// derived from it. There is a single logical writer per process, the mutex
// only guards against concurrent HTTP requests.
type OrderRepository struct {
	mu            sync.RWMutex
	orders        []entity.Order
	suppliers     map[int64]entity.Supplier
	supplierOrder []int64 // supplier ids in first-seen order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		suppliers: make(map[int64]entity.Supplier),
	}
}

// FindAll returns a copy of the full order set in insertion order.
func (r *OrderRepository) FindAll(ctx context.Context) []entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

// FindByID looks up one order.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			c := cloneOrder(o)
			return &c, nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
}

// Create stores a new order. The store assigns the identifier (max existing
// id + 1, an empty store yields 1), stamps the creation date, forces
// status=pending and computes the stored total from the given line prices.
// A supplier without an id is registered with its own fresh supplier id;
// a referenced supplier id must already exist.
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case o.Supplier != nil && o.Supplier.ID == 0:
		sup := *o.Supplier
		sup.ID = r.nextSupplierIDLocked()
		r.registerSupplierLocked(sup)
		o.Supplier = &sup
	case o.SupplierID != 0:
		sup, ok := r.suppliers[o.SupplierID]
		if !ok {
			return nil, fmt.Errorf("supplier %d: %w", o.SupplierID, ErrNotFound)
		}
		o.Supplier = &sup
	default:
		return nil, fmt.Errorf("order without supplier: %w", ErrNotFound)
	}
	o.SupplierID = o.Supplier.ID

	now := time.Now()
	o.ID = r.nextOrderIDLocked()
	o.Date = now
	o.Status = entity.OrderStatusPending
	o.TotalAmount = 0
	for _, l := range o.Lines {
		o.TotalAmount += float64(l.Quantity) * l.UnitPrice
	}
	o.CreatedAt = now
	o.UpdatedAt = now

	r.orders = append(r.orders, cloneOrder(*o))
	c := cloneOrder(*o)
	return &c, nil
}

// UpdateStatus sets the status of an existing order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			c := cloneOrder(r.orders[i])
			return &c, nil
		}
	}
	return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
}

// Delete removes an order. The supplier index keeps the supplier; historical
// suppliers stay selectable for new orders.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order %d: %w", id, ErrNotFound)
}

// Suppliers returns every known supplier in first-seen order.
func (r *OrderRepository) Suppliers(ctx context.Context) []entity.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Supplier, 0, len(r.supplierOrder))
	for _, id := range r.supplierOrder {
		out = append(out, r.suppliers[id])
	}
	return out
}

// FindSupplier looks up one supplier by id.
func (r *OrderRepository) FindSupplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sup, ok := r.suppliers[id]
	if !ok {
		return nil, fmt.Errorf("supplier %d: %w", id, ErrNotFound)
	}
	return &sup, nil
}

// GenerateReference produces the next order reference APP-{year}-{3 digits},
// continuing the highest sequence already stored for the current year.
func (r *OrderRepository) GenerateReference(ctx context.Context) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	year := time.Now().Format("2006")
	prefix := fmt.Sprintf("APP-%s-", year)

	var maxSeq int
	for _, o := range r.orders {
		var seq int
		if _, err := fmt.Sscanf(o.Reference, prefix+"%03d", &seq); err == nil && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("APP-%s-%03d", year, maxSeq+1)
}

// Load replaces the store contents. Used by the demo fixtures and tests.
func (r *OrderRepository) Load(suppliers []entity.Supplier, orders []entity.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = nil
	r.suppliers = make(map[int64]entity.Supplier)
	r.supplierOrder = nil

	for _, sup := range suppliers {
		r.registerSupplierLocked(sup)
	}
	for _, o := range orders {
		if o.Supplier != nil {
			r.registerSupplierLocked(*o.Supplier)
			o.SupplierID = o.Supplier.ID
		} else if sup, ok := r.suppliers[o.SupplierID]; ok {
			s := sup
			o.Supplier = &s
		}
		r.orders = append(r.orders, cloneOrder(o))
	}
}

func (r *OrderRepository) nextOrderIDLocked() int64 {
	var max int64
	for _, o := range r.orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

func (r *OrderRepository) nextSupplierIDLocked() int64 {
	var max int64
	for id := range r.suppliers {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (r *OrderRepository) registerSupplierLocked(sup entity.Supplier) {
	if _, ok := r.suppliers[sup.ID]; !ok {
		r.supplierOrder = append(r.supplierOrder, sup.ID)
	}
	r.suppliers[sup.ID] = sup
}

func cloneOrder(o entity.Order) entity.Order {
	c := o
	c.Lines = make([]entity.OrderLine, len(o.Lines))
	copy(c.Lines, o.Lines)
	if o.Supplier != nil {
		sup := *o.Supplier
		c.Supplier = &sup
	}
	return c
}
