package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/hirematch/pkg/fiberx"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

var withWorkers bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&withWorkers, "with-workers", false, "also run the resume parse workers in this process")
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logx.Info("Starting HireMatch API Server...")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	app := newApp(container)

	if withWorkers {
		container.Worker.Start(ctx)
		defer container.Worker.Wait()
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Infof("Server listening on %s", cfg.Server.Addr())
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	select {
	case err := <-errCh:
		stop()
		return err
	case <-ctx.Done():
	}

	logx.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}
	logx.Info("Server exited")
	return nil
}

// newApp builds the fiber application with global middleware and every route
func newApp(container *Container) *fiber.App {
	cfg := container.Config.Server

	app := fiber.New(fiber.Config{
		AppName:               "HireMatch API",
		DisableStartupMessage: true,
		ErrorHandler:          fiberx.ErrorHandler,
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health & metrics
	app.Get("/health", func(c *fiber.Ctx) error {
		queued, qerr := container.ResumeService.QueueSize(c.Context())
		return c.JSON(fiber.Map{
			"status":      "ok",
			"db":          container.DB.PingContext(c.Context()) == nil,
			"redis":       container.Redis.Ping(c.Context()).Err() == nil,
			"queue_size":  queued,
			"queue_ready": qerr == nil,
		})
	})
	app.Get("/metrics", container.Metrics.Handler())

	// Routes. Application routes go before job routes: "/jobs/saved" must not
	// reach "/jobs/:id".
	container.ResumeHandlers.RegisterRoutes(app, container.AuthMiddleware)
	container.ApplicationHandlers.RegisterRoutes(app, container.AuthMiddleware)
	container.JobHandlers.RegisterRoutes(app, container.AuthMiddleware)
	container.RecommendationHandlers.RegisterRoutes(app, container.AuthMiddleware)
	container.CandidateHandlers.RegisterRoutes(app, container.AuthMiddleware)

	return app
}
