// Package app wires configuration, storage and the HTTP surface into a
// runnable portfolio server.
package app

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/datheory/portfolio-api/internal/auth"
	"github.com/datheory/portfolio-api/internal/config"
	"github.com/datheory/portfolio-api/internal/db"
	"github.com/datheory/portfolio-api/internal/http/api/admin"
	"github.com/datheory/portfolio-api/internal/http/api/public"
	"github.com/datheory/portfolio-api/internal/webui"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

// Migrate opens the database, runs migrations and seeds default records.
func Migrate(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	configureLogging(cfg.Log)
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	return db.Seed(conn, cfg.Admin.Email, cfg.Admin.Password)
}

// RunServer boots the portfolio API server with the embedded frontend.
func RunServer(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	configureLogging(cfg.Log)

	webBundle, errLoad := webui.Load()
	if errLoad != nil {
		return errLoad
	}

	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	if errSeed := db.Seed(conn, cfg.Admin.Email, cfg.Admin.Password); errSeed != nil {
		return errSeed
	}

	engine := NewRouter(conn, webBundle)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.Server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// NewRouter assembles the gin engine: JSON API under /api, embedded
// frontend everywhere else.
func NewRouter(conn *gorm.DB, webBundle webui.Bundle) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	svc := auth.NewService(conn)

	api := engine.Group("/api")
	public.RegisterRoutes(api, conn)
	admin.RegisterRoutes(api, conn, svc)

	engine.StaticFS("/assets", webBundle.AssetsFS)

	distFS := webBundle.DistFS
	fileServer := http.FileServer(http.FS(distFS))
	engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", webBundle.IndexHTML)
	})
	engine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		requestPath := c.Request.URL.Path
		if isAPIRoute(requestPath) {
			c.Status(http.StatusNotFound)
			return
		}
		cleanedPath := path.Clean("/" + requestPath)
		filePath := strings.TrimPrefix(cleanedPath, "/")
		if filePath != "" {
			fileInfo, errStat := fs.Stat(distFS, filePath)
			if errStat == nil && !fileInfo.IsDir() {
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
			if strings.Contains(path.Base(filePath), ".") {
				c.Status(http.StatusNotFound)
				return
			}
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", webBundle.IndexHTML)
	})

	return engine
}

// isAPIRoute reports whether a path targets API endpoints.
func isAPIRoute(requestPath string) bool {
	return requestPath == "/api" || strings.HasPrefix(requestPath, "/api/")
}

// requestLogger logs each request with method, path, status and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}).Info("request")
	}
}

// configureLogging applies the log level and optional rotating file output.
func configureLogging(cfg config.LogConfig) {
	level, errParse := log.ParseLevel(cfg.Level)
	if errParse != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if cfg.File != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}
}
