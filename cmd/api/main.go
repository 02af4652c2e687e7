package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ronaldllamas12/carioca-Market/internal/application/auth"
	"github.com/ronaldllamas12/carioca-Market/internal/application/ports"
	"github.com/ronaldllamas12/carioca-Market/internal/application/usecase"
	"github.com/ronaldllamas12/carioca-Market/internal/infrastructure/mongodb"
	"github.com/ronaldllamas12/carioca-Market/internal/infrastructure/storage"
	httpRouter "github.com/ronaldllamas12/carioca-Market/internal/interfaces/http"
	"github.com/ronaldllamas12/carioca-Market/pkg/config"
	"github.com/ronaldllamas12/carioca-Market/pkg/logger"
)

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
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("crear índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	comercioRepo := mongodb.NewComercioRepository(db)
	productoRepo := mongodb.NewProductoRepository(db)

	// Normalizar comercios viejos sin lista de productosVenta
	if n, err := comercioRepo.BackfillProductosVenta(ctx); err != nil {
		log.Warn().Err(err).Msg("backfill de productosVenta")
	} else if n > 0 {
		log.Info().Int64("comercios", n).Msg("productosVenta normalizado")
	}

	// Host de imágenes: Cloudinary si hay credenciales, disco local si no
	var imageStore ports.ImageStore
	if cfg.Cloudinary.Enabled() {
		imageStore, err = storage.NewCloudinaryStore(cfg.Cloudinary)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente cloudinary")
		}
		log.Info().Str("folder", cfg.Cloudinary.Folder).Msg("subidas hacia Cloudinary")
	} else {
		imageStore, err = storage.NewLocalStore(cfg.Upload)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento local de imágenes")
		}
		log.Info().Str("dir", cfg.Upload.Dir).Msg("subidas hacia disco local")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Admin.SuperadminEmail)
	comercioUC := usecase.NewComercioUseCase(comercioRepo, productoRepo)
	productoUC := usecase.NewProductoUseCase(comercioRepo, productoRepo)
	uploadUC := usecase.NewUploadUseCase(imageStore)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Market Iguazú API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Las imágenes locales se sirven estáticas solo en la variante sin Cloudinary
	if !cfg.Cloudinary.Enabled() {
		app.Static(cfg.Upload.PublicURL, cfg.Upload.Dir)
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ComercioUC: comercioUC,
		ProductoUC: productoUC,
		UploadUC:   uploadUC,
		JWTSecret:  cfg.JWT.Secret,
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
