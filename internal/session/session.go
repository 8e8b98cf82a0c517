package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/milktea/internal/domain/model"
)

// Session is the per-customer state carried through selection, payment and placement.
type Session struct {
	ID        string
	Selection *model.Selection
	Notice    string
	ExpiresAt time.Time

	destroyed bool
}

// New creates an empty session expiring after ttl.
func New(now time.Time, ttl time.Duration) *Session {
	return &Session{ID: uuid.NewString(), ExpiresAt: now.Add(ttl)}
}

// Expired reports whether session lifetime has elapsed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Clear drops the in-progress selection.
func (s *Session) Clear() {
	s.Selection = nil
}

// Destroy marks session for removal at the end of the request.
func (s *Session) Destroy() {
	s.Selection = nil
	s.Notice = ""
	s.destroyed = true
}

// Destroyed reports whether Destroy was called.
func (s *Session) Destroyed() bool {
	return s.destroyed
}

// SetNotice stores a one-shot message for the customer.
func (s *Session) SetNotice(msg string) {
	s.Notice = msg
}

// PopNotice returns and clears pending notice.
func (s *Session) PopNotice() string {
	msg := s.Notice
	s.Notice = ""
	return msg
}

func (s *Session) clone() *Session {
	c := *s
	if s.Selection != nil {
		sel := *s.Selection
		sel.Line.Toppings = append([]model.Topping(nil), s.Selection.Line.Toppings...)
		if s.Selection.Line.Flavor != nil {
			flavor := *s.Selection.Line.Flavor
			sel.Line.Flavor = &flavor
		}
		c.Selection = &sel
	}
	return &c
}
