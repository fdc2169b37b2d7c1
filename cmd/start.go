package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bird-herd/core/loader"
	"bird-herd/core/metrics"
	"bird-herd/core/middleware"
	"bird-herd/core/middleware/rayid"
	"bird-herd/core/storage"
	"bird-herd/feature/birds"
	"bird-herd/feature/health"
	"bird-herd/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bird-herd/docs/swagger"
)

// @title Bird Herd API
// @version 1.0
// @description Randomized bird images for a bird identification quiz.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bird herd server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and catalog
		cfg, logg, db, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		sqlDB, err := db.DB()
		if err != nil {
			logg.Fatal("Failed to get sql.DB", zap.Error(err))
		}

		m, err := metrics.New()
		if err != nil {
			logg.Fatal("Failed to register metrics", zap.Error(err))
		}

		// 2. Storage is only needed by the integrity checks
		var store storage.Client
		if cfg.Storage.Enabled {
			if store, err = storage.NewClient(cfg.Storage); err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())
		app.Use(middleware.RequestLog(logg))
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.AllowOrigins(),
			AllowMethods: "GET,OPTIONS",
		}))
		app.Use(m.Middleware())

		app.Get("/metrics", m.Handler())
		app.Get("/swagger/*", swagger.HandlerDefault)

		catalog := birds.NewStore(db)
		timeout := cfg.Database.QueryTimeout()

		api := fiber.Router(app)
		if prefix := cfg.Server.Prefix(); prefix != "" {
			api = app.Group(prefix)
		}

		apiFeatures := loader.NewManager(logg)
		apiFeatures.Register(health.NewFeature(sqlDB, logg))
		apiFeatures.Register(birds.NewFeature(catalog, logg, m, timeout))
		if err := apiFeatures.LoadAll(api); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		adminFeatures := loader.NewManager(logg)
		adminFeatures.Register(integrity.NewFeature(store, cfg.Storage, catalog, db, m, logg))
		if err := adminFeatures.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("api_prefix", cfg.Server.Prefix()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logg.Warn("Shutdown did not complete cleanly", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logg.Warn("Failed to close catalog connection", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
