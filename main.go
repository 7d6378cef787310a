package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	alertsController "github.com/oscargustin/Ferremas/src/alerts/infrastructure/controller"
	alertsUseCase "github.com/oscargustin/Ferremas/src/alerts/application/usecase"
	alertsStream "github.com/oscargustin/Ferremas/src/alerts/infrastructure/stream"
	catalogClient "github.com/oscargustin/Ferremas/src/catalog/infrastructure/client"
	catalogController "github.com/oscargustin/Ferremas/src/catalog/infrastructure/controller"
	catalogUseCase "github.com/oscargustin/Ferremas/src/catalog/application/usecase"
	checkoutClient "github.com/oscargustin/Ferremas/src/checkout/infrastructure/client"
	checkoutController "github.com/oscargustin/Ferremas/src/checkout/infrastructure/controller"
	checkoutState "github.com/oscargustin/Ferremas/src/checkout/application/state"
	checkoutUseCase "github.com/oscargustin/Ferremas/src/checkout/application/usecase"
	"github.com/oscargustin/Ferremas/src/checkout/infrastructure/idgen"
	sharedConfig "github.com/oscargustin/Ferremas/src/shared/infrastructure/config"
	"github.com/oscargustin/Ferremas/src/shared/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Println("🚀 Ferremas Storefront - Iniciando...")

	cfg, err := sharedConfig.Load()
	if err != nil {
		log.Fatalf("Error cargando configuración: %v", err)
	}
	logger.Init(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Configurar el router con Gin
	router := gin.New()
	sharedConfig.SetupSharedMiddleware(router, sharedConfig.DefaultSharedConfig())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint for Storefront service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for Storefront service")
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Estado compartido de la página de venta
	saleSession := checkoutState.NewSaleSession()
	alertLog := alertsUseCase.NewAlertLog(cfg.AlertsLogSize)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	setupCatalogModule(v1, cfg, saleSession)
	refreshRateUC := setupCheckoutModule(v1, cfg, saleSession)
	subscriber := setupAlertsModule(v1, cfg, alertLog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Tipo de cambio inicial; si falla se continúa con tasa desconocida
	if rate, known := refreshRateUC.Execute(ctx); known {
		log.Printf("✅ Tipo de cambio inicial: %s CLP por USD", rate.String())
	} else {
		log.Println("⚠️  Tipo de cambio no disponible, totales USD mostrarán N/A")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Suscripción de vida larga; su caída nunca es fatal
		return subscriber.Run(gctx)
	})

	g.Go(func() error {
		log.Printf("✅ Servidor Storefront iniciado en http://localhost:%s", cfg.Port)
		log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Apagando servidor Storefront...")
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Error fatal: %v", err)
	}
}

// setupCatalogModule configura el módulo Catalog
func setupCatalogModule(router *gin.RouterGroup, cfg sharedConfig.Config, session *checkoutState.SaleSession) {
	log.Println("Configurando módulo Catalog...")

	searchClient := catalogClient.NewCatalogClient(cfg.BackendBaseURL, cfg.HTTPTimeout)
	productClient := catalogClient.NewProductClient(cfg.BackendBaseURL, cfg.HTTPTimeout)

	searchProductsUC := catalogUseCase.NewSearchProductsUseCase(searchClient, session)
	addProductUC := catalogUseCase.NewAddProductUseCase(productClient)

	catalogCtrl := catalogController.NewCatalogController(searchProductsUC, addProductUC)
	catalogCtrl.RegisterRoutes(router)
}

// setupCheckoutModule configura el módulo Checkout
func setupCheckoutModule(router *gin.RouterGroup, cfg sharedConfig.Config, session *checkoutState.SaleSession) *checkoutUseCase.RefreshRateUseCase {
	log.Println("Configurando módulo Checkout...")

	webpayClient := checkoutClient.NewWebpayClient(cfg.BackendBaseURL, cfg.HTTPTimeout)
	rateClient := checkoutClient.NewExchangeRateClient(cfg.BackendBaseURL, cfg.HTTPTimeout)

	selectOfferUC := checkoutUseCase.NewSelectOfferUseCase(session)
	quoteSaleUC := checkoutUseCase.NewQuoteSaleUseCase(session)
	refreshRateUC := checkoutUseCase.NewRefreshRateUseCase(session, rateClient)
	checkoutUC := checkoutUseCase.NewCheckoutUseCase(session, webpayClient, idgen.New())

	checkoutCtrl := checkoutController.NewCheckoutController(session, selectOfferUC, quoteSaleUC, refreshRateUC, checkoutUC)
	checkoutCtrl.RegisterRoutes(router)

	return refreshRateUC
}

// setupAlertsModule configura el módulo Alerts
func setupAlertsModule(router *gin.RouterGroup, cfg sharedConfig.Config, alertLog *alertsUseCase.AlertLog) *alertsStream.Subscriber {
	log.Println("Configurando módulo Alerts...")

	alertsCtrl := alertsController.NewAlertsController(alertLog)
	alertsCtrl.RegisterRoutes(router)

	return alertsStream.NewSubscriber(cfg.BackendBaseURL, alertLog, alertsStream.Options{
		Reconnect:      cfg.AlertsReconnect,
		BackoffInitial: cfg.AlertsBackoffInitial,
		BackoffMax:     cfg.AlertsBackoffMax,
	})
}
