package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql para las migraciones
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/botica-dev/botica-api/internal/application/auth"
	appinv "github.com/botica-dev/botica-api/internal/application/inventario"
	apppedido "github.com/botica-dev/botica-api/internal/application/pedido"
	"github.com/botica-dev/botica-api/internal/application/usecase"
	"github.com/botica-dev/botica-api/internal/infrastructure/postgres"
	httpRouter "github.com/botica-dev/botica-api/internal/interfaces/http"
	"github.com/botica-dev/botica-api/pkg/config"
	"github.com/botica-dev/botica-api/pkg/logger"
)

// runMigrations aplica las migraciones SQL de ./migrations al arrancar.
func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir DB para migraciones: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	distritoRepo := postgres.NewDistritoRepository(pool)
	personaRepo := postgres.NewPersonaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	medicamentoRepo := postgres.NewMedicamentoRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	invRepo := postgres.NewInventarioRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	detalleRepo := postgres.NewDetallePedidoRepository(pool)
	seguimientoRepo := postgres.NewSeguimientoRepository(pool)

	movimientoTx := postgres.NewMovimientoTxRunner(pool)
	pedidoTx := postgres.NewPedidoTxRunner(pool)

	// Lista negra de tokens en memoria, con barrido periódico de entradas expiradas.
	blacklist := auth.NewTokenBlacklist(time.Duration(cfg.Auth.BlacklistSweepMinutes) * time.Minute)
	blacklist.Start()
	defer blacklist.Stop()

	authUC := auth.NewAuthUseCase(usuarioRepo, personaRepo, blacklist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	distritoUC := usecase.NewDistritoUseCase(distritoRepo)
	personaUC := usecase.NewPersonaUseCase(personaRepo, distritoRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	medicamentoUC := usecase.NewMedicamentoUseCase(medicamentoRepo)
	loteUC := usecase.NewLoteUseCase(loteRepo, medicamentoRepo)
	inventarioUC := appinv.NewInventarioUseCase(invRepo, medicamentoRepo, loteRepo, distritoRepo, cfg.Inventario.HorizonteVencimientoDias)
	vencimientosUC := appinv.NewVencimientosUseCase(invRepo, cfg.Inventario.HorizonteVencimientoDias)
	registrarMovUC := appinv.NewRegistrarMovimientoUseCase(movimientoTx, invRepo)
	movimientosUC := appinv.NewMovimientosUseCase(movRepo, invRepo)
	pedidoUC := apppedido.NewPedidoUseCase(pedidoTx, pedidoRepo, detalleRepo, seguimientoRepo, medicamentoRepo, usuarioRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Botica API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DistritoUC:     distritoUC,
		PersonaUC:      personaUC,
		UsuarioUC:      usuarioUC,
		MedicamentoUC:  medicamentoUC,
		LoteUC:         loteUC,
		InventarioUC:   inventarioUC,
		VencimientosUC: vencimientosUC,
		RegistrarMov:   registrarMovUC,
		MovimientosUC:  movimientosUC,
		PedidoUC:       pedidoUC,
		JWTSecret:      cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
