package handler

import (
	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate statistics.
type DashboardHandler struct {
	svc *service.OrderService
}

func NewDashboardHandler(svc *service.OrderService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetStats grand total and top supplier over the full order set
// GET /api/v1/supply/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	Success(c, h.svc.GetStats(c.Request.Context()))
}
