package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/shopstack/inventory-api/internal/config"
	"github.com/shopstack/inventory-api/internal/repo/mongodb"
	"github.com/shopstack/inventory-api/internal/server"
	"github.com/shopstack/inventory-api/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,

			server.NewController,

			usecase.NewProductUsecase,
			usecase.NewTokenVerifier,

			mongodb.NewProductRepository,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
