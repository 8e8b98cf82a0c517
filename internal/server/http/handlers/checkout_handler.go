package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/server/http/dto"
)

const (
	noticeChooseDrink   = "No item selected. Please choose your drink first."
	noticeStartOrder    = "No item selected. Please start your order."
	noticeStartOver     = "No item found. Please start over."
	noticeChoosePayment = "Please select a payment method first."
)

// CheckoutHandler manages selection, payment choice and order placement.
type CheckoutHandler struct {
	facade OrderingFacade
	logger *slog.Logger
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade OrderingFacade, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{facade: facade, logger: logger}
}

// Specifics handles GET /choose-specifics.
func (h *CheckoutHandler) Specifics(c *gin.Context) {
	menu, err := h.facade.Menu(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	sess := CurrentSession(c)
	response := toMenuResponse(menu)
	response.Notice = sess.PopNotice()
	if review, err := h.facade.CurrentSelection(sess); err == nil {
		selection := toSelectionResponse(review)
		response.Selection = &selection
	}
	c.JSON(http.StatusOK, response)
}

// SubmitSpecifics handles POST /choose-specifics.
func (h *CheckoutHandler) SubmitSpecifics(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid selection"})
		return
	}

	sess := CurrentSession(c)
	if _, err := h.facade.SelectItem(c.Request.Context(), sess, toSelectionInput(req)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	review, err := h.facade.CurrentSelection(sess)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{Selection: toSelectionResponse(review), Next: "/payment-method"})
}

// PaymentMethod handles GET /payment-method.
func (h *CheckoutHandler) PaymentMethod(c *gin.Context) {
	sess := CurrentSession(c)
	review, err := h.facade.CurrentSelection(sess)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMissingSelection) {
			redirect(c, "/choose-specifics", noticeChooseDrink)
			return
		}
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{
		Notice:    sess.PopNotice(),
		Selection: toSelectionResponse(review),
		Next:      "/counter",
	})
}

// ChoosePaymentMethod handles POST /payment-method.
func (h *CheckoutHandler) ChoosePaymentMethod(c *gin.Context) {
	var req dto.PaymentMethodRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment method"})
		return
	}

	if err := h.facade.ChoosePaymentMethod(CurrentSession(c), req.PaymentMethod); err != nil {
		if errors.Is(err, domainErrors.ErrMissingSelection) {
			redirect(c, "/choose-specifics", noticeChooseDrink)
			return
		}
		respondError(c, h.logger, err)
		return
	}
	redirect(c, "/counter", "")
}

// Counter handles GET /counter.
func (h *CheckoutHandler) Counter(c *gin.Context) {
	sess := CurrentSession(c)
	review, err := h.facade.Review(sess)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingSelection):
			redirect(c, "/menu", noticeStartOrder)
		case errors.Is(err, domainErrors.ErrMissingPaymentMethod):
			redirect(c, "/payment-method", noticeChoosePayment)
		default:
			respondError(c, h.logger, err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.CheckoutResponse{
		Notice:    sess.PopNotice(),
		Selection: toSelectionResponse(review),
		Next:      "/place-order",
	})
}

// PlaceOrder handles POST /place-order.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentSession(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingSelection):
			redirect(c, "/menu", noticeStartOver)
		case errors.Is(err, domainErrors.ErrMissingPaymentMethod):
			redirect(c, "/payment-method", noticeChoosePayment)
		default:
			respondError(c, h.logger, err)
		}
		return
	}

	next := "/wait/" + order.Number
	response := toOrderResponse(order)
	response.Next = next
	c.Header("Location", next)
	c.JSON(http.StatusCreated, response)
}

// Exit handles GET and POST /exit.
func (h *CheckoutHandler) Exit(c *gin.Context) {
	CurrentSession(c).Destroy()
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Thank you for visiting.", Next: "/"})
}
