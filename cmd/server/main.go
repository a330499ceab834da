package main

import (
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/artcom/cheminova-backend/internal/config"
	"github.com/artcom/cheminova-backend/internal/database"
	"github.com/artcom/cheminova-backend/internal/handlers"
	"github.com/artcom/cheminova-backend/internal/logging"
	"github.com/artcom/cheminova-backend/internal/middleware"
	"github.com/artcom/cheminova-backend/internal/services"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/artcom/cheminova-backend/docs/api" // Swagger docs
)

// @title Cheminova API
// @version 1.0.0
// @description Image access checks and page content for the Cheminova experience
// @termsOfService http://swagger.io/terms/

// @contact.name ART+COM AG
// @contact.url https://github.com/artcom/cheminova-backend

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	if envFilename != "" {
		if err := godotenv.Load(envFilename); err != nil {
			logging.Fatal().Err(err).Str("file", envFilename).Msg("Failed to load environment variables")
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logging.Fatal().Err(err).Msg("Failed to run migrations")
	}

	if cfg.AuthorizerEnabled() {
		if err := services.InitAuthorizer(cfg); err != nil {
			logging.Error().Err(err).Msg("Authorizer unavailable, every caller is anonymous")
		}
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: logging.RequestIDKey,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:" + logging.RequestIDKey + "} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())
	if len(cfg.CORSAllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(cfg.CORSAllowedOrigins, ","),
			AllowCredentials: true,
		}))
	}

	// Prometheus metrics
	prometheus := fiberprometheus.New("cheminova")
	prometheus.RegisterAt(app, cfg.BasePath+"metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	api.SwaggerInfo.BasePath = cfg.APIPath("")
	app.Get(cfg.BasePath+"swagger/*", swagger.HandlerDefault)

	handlers.Register(app, cfg, db, middleware.Session())

	// 404 handler
	app.Use(handlers.NotFound)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logging.Info().Msg("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	logging.Info().Str("port", cfg.Port).Str("base_path", cfg.BasePath).Msg("Starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logging.Fatal().Err(err).Msg("Failed to start server")
	}

	logging.Info().Msg("Server stopped")
}
