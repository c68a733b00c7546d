// @title           Salesmanagement API
// @version         1.0
// @description     API de gestión de ventas: CRUD de productos y ventas, analítica agregada y autenticación JWT.
// @BasePath        /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/akashtandel42/Salesmanagement/docs"
	"github.com/akashtandel42/Salesmanagement/internal/application/auth"
	"github.com/akashtandel42/Salesmanagement/internal/application/usecase"
	"github.com/akashtandel42/Salesmanagement/internal/domain/repository"
	"github.com/akashtandel42/Salesmanagement/internal/infrastructure/memory"
	"github.com/akashtandel42/Salesmanagement/internal/infrastructure/postgres"
	httpRouter "github.com/akashtandel42/Salesmanagement/internal/interfaces/http"
	"github.com/akashtandel42/Salesmanagement/pkg/config"
	"github.com/akashtandel42/Salesmanagement/pkg/jwt"
	"github.com/akashtandel42/Salesmanagement/pkg/logger"
	"github.com/akashtandel42/Salesmanagement/pkg/tracing"
)

// stores repositorios del backend elegido.
type stores struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	users    repository.UserRepository
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	tp, shutdownTracing, err := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.App.Name,
		Env:         cfg.App.Env,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer st.close()

	tokenCfg := jwt.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		ExpMinutes: cfg.JWT.Expiration,
	}

	var analyticsOpts []usecase.AnalyticsOption
	if cfg.Analytics.EnrichTopProducts {
		analyticsOpts = append(analyticsOpts, usecase.WithProductLookup(st.products))
	}
	analyticsUC := usecase.NewTracedAnalytics(
		usecase.NewAnalyticsUseCase(st.sales, analyticsOpts...),
		tp.Tracer("salesmanagement/analytics"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Salesmanagement API",
	}))

	app.Get("/health", httpRouter.Health(cfg.App.Name, cfg.Storage.Driver))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(st.products),
		SaleUC:      usecase.NewSaleUseCase(st.sales),
		AnalyticsUC: analyticsUC,
		AuthUC:      auth.NewAuthUseCase(st.users, tokenCfg),
		TokenConfig: tokenCfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de trazas")
	}

	log.Info().Msg("aplicación detenida")
}

// openStores abre PostgreSQL (con migración opcional) o los stores en memoria según STORAGE_DRIVER.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		return &stores{
			sales:    memory.NewSaleRepository(),
			products: memory.NewProductRepository(),
			users:    memory.NewUserRepository(),
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("esquema verificado")
	}
	return &stores{
		sales:    postgres.NewSaleRepository(pool),
		products: postgres.NewProductRepository(pool),
		users:    postgres.NewUserRepository(pool),
		close:    pool.Close,
	}, nil
}
