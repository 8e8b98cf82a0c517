package session

import (
	"go.uber.org/fx"

	"github.com/polkiloo/milktea/internal/config"
)

// Module provides the session store via fx.
var Module = fx.Provide(newStore)

func newStore(cfg *config.Config) Store {
	return NewMemoryStore(cfg.SessionTTL)
}
