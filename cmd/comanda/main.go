package main

import (
	"context"
	"log/slog"
	"os"

	"comanda/config"
	"comanda/internal/delivery"
	"comanda/internal/delivery/http"
	custommiddleware "comanda/internal/delivery/http/middleware"
	"comanda/internal/delivery/http/router/handler"
	"comanda/internal/delivery/middleware"
	"comanda/internal/domain/service"
	logs "comanda/internal/infra/log"
	"comanda/internal/infra/persistence/postgres"
	"comanda/internal/infra/qrcode"
	"comanda/internal/infra/state"
	"comanda/internal/usecase/impl"

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
			state.NewContainer,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewTableRepository,
			postgres.NewInventoryRepository,
			postgres.NewOrderLineRepository,
			postgres.NewSupplierRepository,
			postgres.NewRecipeRepository,
			postgres.NewIngredientRepository,
			postgres.NewSaleRepository,
			postgres.NewExpenseRepository,
			postgres.NewSalaryRepository,
			postgres.NewRepositoryFactory,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "http://localhost:8080")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuService,
			impl.NewIntegrityService,
			impl.NewProductService,
			impl.NewTableService,
			impl.NewSupplierService,
			impl.NewRecipeService,
			impl.NewFinanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			custommiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMenuHandler,
			handler.NewProductHandler,
			handler.NewTableHandler,
			handler.NewSupplierHandler,
			handler.NewRecipeHandler,
			handler.NewFinanceHandler,
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
