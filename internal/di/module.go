package di

import (
	"go.uber.org/fx"

	"github.com/loopbakery/bakeshop/internal/app"
	"github.com/loopbakery/bakeshop/internal/config"
	"github.com/loopbakery/bakeshop/internal/logger"
	"github.com/loopbakery/bakeshop/internal/pkg/auth"
	"github.com/loopbakery/bakeshop/internal/server/http/handlers"
	"github.com/loopbakery/bakeshop/internal/server/http/router"
	"github.com/loopbakery/bakeshop/internal/storage/postgres"
	"github.com/loopbakery/bakeshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.BakeryFacade) handlers.ShopFacade { return f }),
		fx.Provide(func(s *postgres.Storage) router.Pinger { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
