package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"threadly/internal/service"
)

type StockHandler struct {
	svc *service.StockService
}

func NewStockHandler(svc *service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// LowStock lists products at or under the configured threshold.
func (h *StockHandler) LowStock(c *gin.Context) {
	products, threshold, err := h.svc.LowStock()
	if err != nil {
		log.Printf("low-stock query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load low stock products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"threshold": threshold,
		"count":     len(products),
		"products":  products,
	})
}
