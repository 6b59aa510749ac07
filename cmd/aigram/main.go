// Command aigram boots the simulated social-media feed backend.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aigram-labs/aigram/config"
	"github.com/aigram-labs/aigram/ctxutil"
	"github.com/aigram-labs/aigram/data"
	"github.com/aigram-labs/aigram/handler"
	"github.com/aigram-labs/aigram/logging/logger"
	"github.com/aigram-labs/aigram/net/resp"
)

// App represents the main application.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	data    *data.Data
	handler *handler.Handler
	server  *http.Server
}

// NewApp assembles the application from its wired dependencies. The data
// layer may be nil when no store is configured; data-touching endpoints then
// report the store as unconfigured.
func NewApp(cfg *config.Config, log *logger.Logger, d *data.Data, h *handler.Handler) *App {
	return &App{
		config:  cfg,
		logger:  log,
		data:    d,
		handler: h,
	}
}

// Run starts the application server and blocks until shutdown.
func (a *App) Run() error {
	if a.config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.loggerMiddleware())

	a.handler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
	})

	addr := fmt.Sprintf("%s:%d", a.config.Host, a.config.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		a.logger.Info(context.Background(), "Starting server", "addr", addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(context.Background(), "Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info(context.Background(), "Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error(ctx, "Server forced to shutdown", "error", err)
		return err
	}

	a.logger.Info(context.Background(), "Server exited")
	return nil
}

// loggerMiddleware ensures every request carries a trace id and logs the
// outcome.
func (a *App) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		ctx, _ := ctxutil.EnsureTraceID(c.Request.Context())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		a.logger.Info(c.Request.Context(), "HTTP request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"ip", c.ClientIP(),
		)
	}
}

func main() {
	app, cleanup, err := initApp()
	if err != nil {
		fmt.Printf("Failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		fmt.Printf("Failed to run app: %v\n", err)
		os.Exit(1)
	}
}
