package handler

import (
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/service"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the reference data endpoints.
type CatalogHandler struct {
	svc *service.OrderService
}

func NewCatalogHandler(svc *service.OrderService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListItems fixed item catalog
// GET /api/v1/supply/items
func (h *CatalogHandler) ListItems(c *gin.Context) {
	Success(c, h.svc.ListItems(c.Request.Context()))
}

// ListSuppliers known suppliers in first-seen order
// GET /api/v1/supply/suppliers
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	Success(c, h.svc.ListSuppliers(c.Request.Context()))
}
