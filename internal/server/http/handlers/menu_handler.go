package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/milktea/internal/server/http/dto"
)

const noticeLegacyPayment = "Payment method is now selected earlier in the process."

// MenuHandler serves the entry pages of the ordering flow.
type MenuHandler struct {
	facade MenuFacade
	logger *slog.Logger
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{facade: facade, logger: logger}
}

// Enter handles GET /.
func (h *MenuHandler) Enter(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{
		Notice:  CurrentSession(c).PopNotice(),
		Message: "Welcome to the milk tea shop.",
		Next:    "/menu",
	})
}

// Menu handles GET /menu.
func (h *MenuHandler) Menu(c *gin.Context) {
	menu, err := h.facade.Menu(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response := toMenuResponse(menu)
	response.Notice = CurrentSession(c).PopNotice()
	c.JSON(http.StatusOK, response)
}

// Decide handles GET /decide.
func (h *MenuHandler) Decide(c *gin.Context) {
	redirect(c, "/choose-specifics", "")
}

// LegacyPayment handles GET /payment, kept for old links.
func (h *MenuHandler) LegacyPayment(c *gin.Context) {
	redirect(c, "/menu", noticeLegacyPayment)
}
