package server

import (
	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/token"
	"storefront/internal/middleware"
	repo "storefront/internal/repository"
	"storefront/internal/session"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Repository → Usecase → Handler の順に組み立てる
func Build(cfg config.Config, logger *zap.Logger, productRepo repo.ProductRepository, registry *session.Registry) *echo.Echo {
	//usecaseに渡す部品
	clock := usecase.SystemClock{}
	issuer := token.NewJWTIssuer(cfg.JWTSecret, cfg.SessionTTL)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	catalogUC := usecase.NewCatalogUsecase(productUC, logger)
	cartUC := usecase.NewCartUsecase(
		productUC,
		validator.NewDeliveryValidator(),
		usecase.NewFlashNotifier(),
		usecase.UUIDGenerator{},
		clock,
		logger,
	)
	uiUC := usecase.NewUIUsecase()
	sessionUC := usecase.NewSessionUsecase(registry, issuer, clock, logger)

	//Handler生成
	h := Handlers{
		Product:      handler.NewProductHandler(productUC),
		AdminProduct: handler.NewAdminProductHandler(productUC),
		Session:      handler.NewSessionHandler(sessionUC),
		Catalog:      handler.NewCatalogHandler(catalogUC),
		Cart:         handler.NewCartHandler(cartUC),
		UI:           handler.NewUIHandler(uiUC),
	}

	return New(
		logger,
		h,
		middleware.SessionJWT(issuer, sessionUC),
		middleware.AdminBasicAuth(cfg.AdminUser, cfg.AdminPasswordHash),
	)
}
