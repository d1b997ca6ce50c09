package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Sebastian609/SOA-PARTNERS/config"
	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery"
	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery/http"
	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery/http/middleware"
	"github.com/Sebastian609/SOA-PARTNERS/internal/delivery/http/router/handler"
	"github.com/Sebastian609/SOA-PARTNERS/internal/infra/auth"
	logs "github.com/Sebastian609/SOA-PARTNERS/internal/infra/log"
	"github.com/Sebastian609/SOA-PARTNERS/internal/infra/persistence/postgres"
	"github.com/Sebastian609/SOA-PARTNERS/internal/infra/token"
	"github.com/Sebastian609/SOA-PARTNERS/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPartnerRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			token.NewGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPartnerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPartnerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
