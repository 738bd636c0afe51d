package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/query"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/repository"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/service"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// OrderHandler serves the order endpoints.
type OrderHandler struct {
	svc             *service.OrderService
	defaultPageSize int
	maxPageSize     int
}

func NewOrderHandler(svc *service.OrderService, defaultPageSize, maxPageSize int) *OrderHandler {
	return &OrderHandler{svc: svc, defaultPageSize: defaultPageSize, maxPageSize: maxPageSize}
}

// ListOrders order listing with filters and pagination
// GET /api/v1/supply/orders?search=&supplier_id=&item_id=&status=&start_date=&end_date=&sort=&page=&page_size=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	q, err := h.buildListQuery(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	orders, pagination := h.svc.ListOrders(c.Request.Context(), q)
	Success(c, ListResponse{
		Items:      orders,
		Pagination: &pagination,
	})
}

// ExportOrders xlsx export of the filtered order list
// GET /api/v1/supply/orders/export
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	q, err := h.buildListQuery(c)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	f, err := h.svc.ExportOrders(c.Request.Context(), q)
	if err != nil {
		InternalError(c, "export orders: "+err.Error())
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("approvisionnements_%s.xlsx", time.Now().Format(dateLayout))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write export: "+err.Error())
	}
}

// NextReference next free order reference, for form prefill
// GET /api/v1/supply/orders/next-reference
func (h *OrderHandler) NextReference(c *gin.Context) {
	Success(c, gin.H{"reference": h.svc.NextReference(c.Request.Context())})
}

// GetOrder order detail
// GET /api/v1/supply/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		NotFound(c, "order not found")
		return
	}
	Success(c, order)
}

// CreateOrder submit a new order
// POST /api/v1/supply/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create order")
		return
	}
	Created(c, order)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus change an order's status
// PUT /api/v1/supply/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid payload: "+err.Error())
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "update status")
		return
	}
	Success(c, order)
}

// ReceiveOrder mark an order as received
// POST /api/v1/supply/orders/:id/receive
func (h *OrderHandler) ReceiveOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), id, entity.OrderStatusReceived)
	if err != nil {
		respondError(c, err, "receive order")
		return
	}
	Success(c, order)
}

// DeleteOrder remove an order
// DELETE /api/v1/supply/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete order")
		return
	}
	Success(c, nil)
}

func (h *OrderHandler) buildListQuery(c *gin.Context) (query.ListQuery, error) {
	page, pageSize := GetPagination(c, h.defaultPageSize, h.maxPageSize)
	q := query.ListQuery{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Sort:     c.Query("sort"),
		Page:     page,
		PageSize: pageSize,
	}

	if s := c.Query("supplier_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return q, fmt.Errorf("invalid supplier_id %q", s)
		}
		q.SupplierID = v
	}
	if s := c.Query("item_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return q, fmt.Errorf("invalid item_id %q", s)
		}
		q.ItemID = v
	}
	if q.Status != "" && q.Status != entity.OrderStatusPending && q.Status != entity.OrderStatusReceived {
		return q, fmt.Errorf("invalid status %q", q.Status)
	}
	if q.Sort != "" && q.Sort != query.SortAsc && q.Sort != query.SortDesc {
		return q, fmt.Errorf("invalid sort %q", q.Sort)
	}
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return q, fmt.Errorf("invalid start_date %q", s)
		}
		q.StartDate = t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return q, fmt.Errorf("invalid end_date %q", s)
		}
		q.EndDate = t
	}

	return q, nil
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		BadRequest(c, "invalid order id")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	default:
		InternalError(c, action+": "+err.Error())
	}
}
