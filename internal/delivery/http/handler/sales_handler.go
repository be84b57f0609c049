package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HailNail/MindArc/internal/usecase"
)

// SalesHandler serves the admin dashboard revenue figures, sourced
// from the payment processor's records.
type SalesHandler struct {
	sales *usecase.SalesUseCase
}

func NewSalesHandler(sales *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{sales: sales}
}

func (h *SalesHandler) TotalSales(c *gin.Context) {
	total, err := h.sales.TotalSales(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalSales": total})
}

func (h *SalesHandler) SalesByDate(c *gin.Context) {
	daily, err := h.sales.SalesByDate(c.Request.Context())
	if err != nil {
		mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, daily)
}
