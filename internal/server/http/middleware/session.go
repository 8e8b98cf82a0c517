package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/milktea/internal/session"
)

const (
	// SessionContextKey is a gin context key for the customer session.
	SessionContextKey = "session"
	// SessionCookieName carries the signed session identifier.
	SessionCookieName = "milktea_session"
)

// SessionSigner binds session identifiers to cookie values.
type SessionSigner interface {
	Sign(sessionID string) (string, error)
	Verify(token string) (string, error)
	TTL() time.Duration
}

// Sessions loads the customer session before the handler and persists it afterwards.
func Sessions(store session.Store, signer SessionSigner, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sess := loadSession(c, store, signer)

		token, err := signer.Sign(sess.ID)
		if err != nil {
			logger.Error("sign session failed", slog.String("error", err.Error()))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, token, int(signer.TTL().Seconds()), "/", "", false, true)
		c.Set(SessionContextKey, sess)

		c.Next()

		if sess.Destroyed() {
			if err := store.Delete(ctx, sess.ID); err != nil {
				logger.Error("delete session failed", slog.String("error", err.Error()))
			}
			return
		}
		if err := store.Save(ctx, sess); err != nil {
			logger.Error("save session failed", slog.String("error", err.Error()))
		}
	}
}

func loadSession(c *gin.Context, store session.Store, signer SessionSigner) *session.Session {
	ctx := c.Request.Context()
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return store.Start(ctx)
	}
	id, err := signer.Verify(cookie)
	if err != nil {
		return store.Start(ctx)
	}
	sess, ok := store.Load(ctx, id)
	if !ok {
		return store.Start(ctx)
	}
	return sess
}
