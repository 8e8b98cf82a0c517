package signing

import (
	"go.uber.org/fx"

	"github.com/polkiloo/milktea/internal/config"
)

// Module provides cookie signer via fx.
var Module = fx.Provide(newSigner)

type signerParams struct {
	fx.In

	Config *config.Config
}

func newSigner(p signerParams) *HMACSigner {
	return NewHMACSigner(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}
