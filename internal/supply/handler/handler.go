package handler

import (
	"net/http"
	"strconv"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/query"
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/service"
	"github.com/gin-gonic/gin"
)

// Handlers is the supply API handler set.
type Handlers struct {
	Order     *OrderHandler
	Catalog   *CatalogHandler
	Dashboard *DashboardHandler
}

func NewHandlers(svc *service.OrderService, defaultPageSize, maxPageSize int) *Handlers {
	return &Handlers{
		Order:     NewOrderHandler(svc, defaultPageSize, maxPageSize),
		Catalog:   NewCatalogHandler(svc),
		Dashboard: NewDashboardHandler(svc),
	}
}

// Register wires every route onto the engine.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1/supply")
	{
		api.GET("/orders", h.Order.ListOrders)
		api.GET("/orders/export", h.Order.ExportOrders)
		api.GET("/orders/next-reference", h.Order.NextReference)
		api.GET("/orders/:id", h.Order.GetOrder)
		api.POST("/orders", h.Order.CreateOrder)
		api.PUT("/orders/:id/status", h.Order.UpdateStatus)
		api.POST("/orders/:id/receive", h.Order.ReceiveOrder)
		api.DELETE("/orders/:id", h.Order.DeleteOrder)

		api.GET("/suppliers", h.Catalog.ListSuppliers)
		api.GET("/items", h.Catalog.ListItems)

		api.GET("/dashboard/stats", h.Dashboard.GetStats)
	}
}

// === Response envelope ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListResponse struct {
	Items      interface{}       `json:"items"`
	Pagination *query.Pagination `json:"pagination"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetPagination reads page/page_size query parameters with clamped defaults.
func GetPagination(c *gin.Context, defaultSize, maxSize int) (page, pageSize int) {
	page = query.DefaultPage
	pageSize = defaultSize

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= maxSize {
			pageSize = v
		}
	}

	return page, pageSize
}
