package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/VSP7988/maranatha-api/interfaces/api/middleware"
	"github.com/VSP7988/maranatha-api/interfaces/api/routes"
	"github.com/VSP7988/maranatha-api/pkg/di"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      container.Config.App.Name,
		// Batches of up to 200 images can arrive in one request.
		BodyLimit: 256 * 1024 * 1024,
	})

	// Middleware order matters: the request ID must exist before the
	// logger reads it.
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(os.Getenv("CORS_ALLOW_ORIGINS")))

	router := routes.Setup(app, container.Handlers, container.Config.JWT.Secret, container.Hub)
	container.RegisterContent(router)

	// Local storage serves its files straight from the API process.
	if container.Config.Storage.Type != "s3" {
		app.Static("/files", container.Config.Storage.BasePath)
	}

	port := container.Config.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.Config.App.Env,
		"app", container.Config.App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")
		container.Cleanup()
		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
