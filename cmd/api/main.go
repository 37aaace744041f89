package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/softfruver/fruver-ledger/internal/application/auth"
	"github.com/softfruver/fruver-ledger/internal/application/ledger"
	"github.com/softfruver/fruver-ledger/internal/application/usecase"
	"github.com/softfruver/fruver-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/softfruver/fruver-ledger/internal/interfaces/http"
	"github.com/softfruver/fruver-ledger/pkg/config"
	"github.com/softfruver/fruver-ledger/pkg/logger"
)

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Catálogo de métodos de pago: arranca con el conjunto estático y se
	// refresca una vez desde el enum de la base. Si falla, sigue con el
	// estático y se anota en el log.
	catalogo := ledger.NewMetodoCatalogo()
	if err := catalogo.Cargar(pagoRepo); err != nil {
		log.Warn().Err(err).Msg("cargar métodos de pago desde la base; se usa el conjunto por defecto")
	}

	clientesUC := usecase.NewClientesUseCase(clienteRepo)
	proveedoresUC := usecase.NewProveedoresUseCase(proveedorRepo)
	productosUC := usecase.NewProductosUseCase(productoRepo)
	usuariosUC := usecase.NewUsuariosUseCase(usuarioRepo)
	ventasUC := ledger.NewVentasUseCase(txRunner, ventaRepo)
	comprasUC := ledger.NewComprasUseCase(txRunner, compraRepo)
	pagosUC := ledger.NewPagosUseCase(txRunner, pagoRepo, catalogo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientesUC:    clientesUC,
		ProveedoresUC: proveedoresUC,
		ProductosUC:   productosUC,
		UsuariosUC:    usuariosUC,
		VentasUC:      ventasUC,
		ComprasUC:     comprasUC,
		PagosUC:       pagosUC,
		Catalogo:      catalogo,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
