package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/query"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/repository"
)

const dateLayout = "2006-01-02"

// OrderService orchestrates the order store, the catalog and the listing
// engines.
type OrderService struct {
	orders  *repository.OrderRepository
	catalog *repository.CatalogRepository
}

func NewOrderService(orders *repository.OrderRepository, catalog *repository.CatalogRepository) *OrderService {
	return &OrderService{orders: orders, catalog: catalog}
}

// ListOrders runs the filter/sort/paginate engine over the full order set.
func (s *OrderService) ListOrders(ctx context.Context, q query.ListQuery) ([]entity.Order, query.Pagination) {
	return query.Apply(s.orders.FindAll(ctx), s.catalog.Lookup(ctx), q)
}

// FilterOrders returns all matching orders without pagination, for exports.
func (s *OrderService) FilterOrders(ctx context.Context, q query.ListQuery) []entity.Order {
	return query.Filter(s.orders.FindAll(ctx), s.catalog.Lookup(ctx), q)
}

// GetOrder returns one order.
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// NewSupplierRequest creates a supplier on the fly with an order.
type NewSupplierRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// OrderLineRequest is one line of a new order.
type OrderLineRequest struct {
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateOrderRequest is the submitted order form. Either SupplierID
// references a known supplier or Supplier describes a new one.
type CreateOrderRequest struct {
	Date       string              `json:"date"`
	Reference  string              `json:"reference"`
	SupplierID int64               `json:"supplier_id"`
	Supplier   *NewSupplierRequest `json:"supplier,omitempty"`
	Notes      string              `json:"notes"`
	Lines      []OrderLineRequest  `json:"lines"`
}

// CreateOrder validates the submitted form through an order draft and hands
// the result to the store, which assigns the identifier, the creation date,
// the pending status and the stored total.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	if req.Date == "" {
		return nil, fmt.Errorf("date is required: %w", ErrValidation)
	}
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, ErrValidation)
	}
	if req.Reference == "" {
		return nil, fmt.Errorf("reference is required: %w", ErrValidation)
	}

	draft := NewOrderDraft()
	for i, l := range req.Lines {
		if err := draft.AddLine(l.ItemID, l.Quantity, l.UnitPrice); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	if draft.Empty() {
		return nil, fmt.Errorf("at least one line item is required: %w", ErrValidation)
	}

	order := &entity.Order{
		Reference: req.Reference,
		Notes:     req.Notes,
		Lines:     draft.Lines(),
	}

	switch {
	case req.SupplierID != 0:
		sup, err := s.orders.FindSupplier(ctx, req.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("unknown supplier %d: %w", req.SupplierID, ErrValidation)
		}
		order.SupplierID = sup.ID
	case req.Supplier != nil && req.Supplier.Name != "":
		order.Supplier = &entity.Supplier{Name: req.Supplier.Name, Phone: req.Supplier.Phone}
	default:
		return nil, fmt.Errorf("supplier is required: %w", ErrValidation)
	}

	return s.orders.Create(ctx, order)
}

// UpdateStatus moves an order to the given status. The only transition is
// pending to received; a received order never goes back.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Order, error) {
	if status != entity.OrderStatusPending && status != entity.OrderStatusReceived {
		return nil, fmt.Errorf("unknown status %q: %w", status, ErrValidation)
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == entity.OrderStatusReceived && status == entity.OrderStatusPending {
		return nil, fmt.Errorf("a received order cannot go back to pending: %w", ErrValidation)
	}

	return s.orders.UpdateStatus(ctx, id, status)
}

// DeleteOrder removes an order.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

// ListSuppliers returns the known suppliers in first-seen order.
func (s *OrderService) ListSuppliers(ctx context.Context) []entity.Supplier {
	return s.orders.Suppliers(ctx)
}

// ListItems returns the fixed item catalog.
func (s *OrderService) ListItems(ctx context.Context) []entity.Item {
	return s.catalog.FindAll(ctx)
}

// NextReference returns the next free order reference for form prefill.
func (s *OrderService) NextReference(ctx context.Context) string {
	return s.orders.GenerateReference(ctx)
}

// GetStats aggregates the dashboard statistics over the full order set.
func (s *OrderService) GetStats(ctx context.Context) query.Stats {
	return query.Aggregate(s.orders.FindAll(ctx), s.catalog.Lookup(ctx))
}
