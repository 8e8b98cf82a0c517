package di

import (
	"github.com/polkiloo/milktea/internal/app"
	"github.com/polkiloo/milktea/internal/config"
	"github.com/polkiloo/milktea/internal/logger"
	"github.com/polkiloo/milktea/internal/pkg/ordernumber"
	"github.com/polkiloo/milktea/internal/pkg/signing"
	"github.com/polkiloo/milktea/internal/server/http/handlers"
	"github.com/polkiloo/milktea/internal/server/http/router"
	"github.com/polkiloo/milktea/internal/session"
	"github.com/polkiloo/milktea/internal/storage/postgres"
	"github.com/polkiloo/milktea/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		signing.Module,
		session.Module,
		ordernumber.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
