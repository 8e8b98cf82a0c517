package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid session token")

// Options tunes signer behaviour.
type Options struct {
	TTL time.Duration
}

// HMACSigner binds session identifiers to cookie values using HMAC signatures.
type HMACSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewHMACSigner builds HMACSigner with provided secret and options.
func NewHMACSigner(secret string, opts Options) *HMACSigner {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &HMACSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign produces a signed token carrying session id and expiry.
func (s *HMACSigner) Sign(sessionID string) (string, error) {
	if sessionID == "" || strings.Contains(sessionID, ":") {
		return "", fmt.Errorf("sign session %q: %w", sessionID, ErrInvalidToken)
	}
	expires := s.now().Add(s.ttl).Unix()
	payload := fmt.Sprintf("%s:%d", sessionID, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.URLEncoding.EncodeToString([]byte(token)), nil
}

// Verify validates token and returns the session id it carries.
func (s *HMACSigner) Verify(token string) (string, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 || parts[0] == "" {
		return "", ErrInvalidToken
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[2])) {
		return "", ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}
	if time.Unix(expires, 0).Before(s.now()) {
		return "", ErrInvalidToken
	}

	return parts[0], nil
}

// TTL returns lifetime of issued tokens.
func (s *HMACSigner) TTL() time.Duration {
	return s.ttl
}

func (s *HMACSigner) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
