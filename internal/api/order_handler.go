package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmtotable-be/internal/httpctx"
	"farmtotable-be/internal/metrics"
	"farmtotable-be/internal/order"
	"farmtotable-be/internal/report"
)

// OrderAPI wires HTTP transport with the order engine and the reporting
// engine that feeds on its records.
type OrderAPI struct {
	service order.Service
	reg     *metrics.Registry
}

func NewOrderAPI(service order.Service, reg *metrics.Registry) OrderAPI {
	return OrderAPI{service: service, reg: reg}
}

type updateStatusPayload struct {
	Status *int `json:"status" binding:"required"`
}

// Post /api/orders
func (api *OrderAPI) PlaceOrder(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := httpctx.UserID(ctx)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	lines, err := api.service.PlaceOrder(ctx, userID, httpctx.UserEmail(ctx))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	api.reg.OrdersPlaced.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Orders placed successfully.",
		"orders":  lines,
	})
}

// Get /api/orders?email=...
func (api *OrderAPI) ListOrders(c *gin.Context) {
	lines, err := api.service.ListOrders(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// Put /api/orders/:transactionId
func (api *OrderAPI) UpdateStatus(c *gin.Context) {
	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	line, err := api.service.UpdateStatus(c.Request.Context(),
		c.Param("transactionId"), order.Status(*payload.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, line)
}

// Delete /api/orders/:transactionId
func (api *OrderAPI) RemoveOrder(c *gin.Context) {
	if err := api.service.RemoveOrder(c.Request.Context(), c.Param("transactionId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order removed successfully."})
}

// Get /api/sales-report
func (api *OrderAPI) SalesReport(c *gin.Context) {
	lines, err := api.service.ListOrders(c.Request.Context(), "")
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report.Build(lines))
}
