package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/server/http/dto"
	"github.com/polkiloo/milktea/internal/server/http/middleware"
	"github.com/polkiloo/milktea/internal/session"
)

// CurrentSession extracts the customer session from context.
// Without the session middleware a throwaway session is attached so handlers stay usable.
func CurrentSession(c *gin.Context) *session.Session {
	if val, ok := c.Get(middleware.SessionContextKey); ok {
		if sess, ok := val.(*session.Session); ok {
			return sess
		}
	}
	sess := session.New(time.Now(), time.Minute)
	c.Set(middleware.SessionContextKey, sess)
	return sess
}

// redirect answers with 303 See Other and stores notice as a one-shot session message.
func redirect(c *gin.Context, location, notice string) {
	if notice != "" {
		CurrentSession(c).SetNotice(notice)
	}
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, dto.RedirectResponse{Notice: notice, Redirect: location})
}

func isValidation(err error) bool {
	return errors.Is(err, domainErrors.ErrInvalidQuantity) ||
		errors.Is(err, domainErrors.ErrInvalidMultiplier) ||
		errors.Is(err, domainErrors.ErrDrinkUnavailable) ||
		errors.Is(err, domainErrors.ErrInvalidPaymentMethod) ||
		errors.Is(err, domainErrors.ErrInvalidStatus)
}

func isConflict(err error) bool {
	return errors.Is(err, domainErrors.ErrInvalidTransition) ||
		errors.Is(err, domainErrors.ErrStatusConflict)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case isValidation(err):
		return http.StatusUnprocessableEntity
	case isConflict(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(status, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
