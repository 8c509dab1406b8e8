// Package server exposes the checkout pipeline over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spotfurnish/quotegen/pricing"
	"github.com/spotfurnish/quotegen/service"
)

// Handler serves the purchase endpoints.
type Handler struct {
	checkout *service.Checkout
	log      *zap.Logger
}

func NewHandler(checkout *service.Checkout, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{checkout: checkout, log: log}
}

// Router builds the Gin engine with all routes registered.
func Router(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/purchase", h.ProcessPurchase)
		api.GET("/orders/:userId", h.ListOrders)
	}
	return r
}

// ProcessPurchase validates and runs one checkout.
func (h *Handler) ProcessPurchase(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "userId is required"})
		return
	}
	if req.Customer.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "customer email is required"})
		return
	}

	res, err := h.checkout.Process(c.Request.Context(), req)
	if err != nil {
		status, msg := classify(err)
		if status == http.StatusInternalServerError {
			h.log.Error("checkout failed", zap.String("user", req.UserID), zap.Error(err))
			msg = "failed to generate quotation"
		}
		c.JSON(status, gin.H{"success": false, "message": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"message":       "Quotation generated and sent successfully",
		"invoiceNumber": res.InvoiceNumber,
		"orderId":       res.OrderID,
	})
}

// ListOrders returns a user's order history.
func (h *Handler) ListOrders(c *gin.Context) {
	userID := c.Param("userId")
	orders, err := h.checkout.ListOrders(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("list orders failed", zap.String("user", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// classify maps pipeline errors to HTTP statuses: validation failures are
// the caller's fault, everything else is internal. Validation messages are
// safe to return verbatim.
func classify(err error) (int, string) {
	var (
		empty   pricing.EmptyCartError
		invalid pricing.InvalidLineItemError
	)
	switch {
	case errors.As(err, &empty):
		return http.StatusBadRequest, empty.Error()
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Error()
	default:
		return http.StatusInternalServerError, ""
	}
}
