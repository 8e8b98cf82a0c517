package ordernumber

import (
	"go.uber.org/fx"

	"github.com/polkiloo/milktea/internal/config"
)

// Module provides order number generator via fx.
var Module = fx.Provide(newGenerator)

func newGenerator(cfg *config.Config) Generator {
	return NewRandomGenerator(cfg.OrderNumberDigits)
}
