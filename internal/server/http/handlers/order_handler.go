package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/milktea/internal/server/http/dto"
)

// OrderHandler manages order tracking endpoints.
type OrderHandler struct {
	facade OrderFacade
	logger *slog.Logger
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{facade: facade, logger: logger}
}

// Wait handles GET /wait/:number.
func (h *OrderHandler) Wait(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := toOrderResponse(order)
	response.Next = "/receive/" + order.Number
	c.JSON(http.StatusOK, response)
}

// Receive handles GET /receive/:number; a placed order becomes ready.
func (h *OrderHandler) Receive(c *gin.Context) {
	order, err := h.facade.ReceiveOrder(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ConfirmReceived handles POST /receive/:number.
func (h *OrderHandler) ConfirmReceived(c *gin.Context) {
	order, err := h.facade.MarkReceived(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	redirect(c, "/enjoy/"+order.Number, "")
}

// Enjoy handles GET /enjoy/:number.
func (h *OrderHandler) Enjoy(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := toOrderResponse(order)
	response.Next = "/exit"
	c.JSON(http.StatusOK, response)
}

// Status handles GET /api/order-status/:number.
func (h *OrderHandler) Status(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderStatusResponse{
		Status:      string(order.Status),
		OrderNumber: order.Number,
		TotalAmount: order.TotalAmount.StringFixed(2),
	})
}

// UpdateStatus handles POST /api/update-status/:number.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.UpdateStatusResponse{Success: false})
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("number"), req.Status)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("update order status failed",
				slog.String("order", c.Param("number")),
				slog.String("error", err.Error()),
			)
		}
		c.JSON(status, dto.UpdateStatusResponse{Success: false})
		return
	}
	c.JSON(http.StatusOK, dto.UpdateStatusResponse{Success: true, Status: string(order.Status)})
}
