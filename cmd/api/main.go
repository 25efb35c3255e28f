package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/ponto-eletronico/internal/archive"
	"github.com/BruksfildServices01/ponto-eletronico/internal/cache"
	"github.com/BruksfildServices01/ponto-eletronico/internal/config"
	dbpkg "github.com/BruksfildServices01/ponto-eletronico/internal/db"
	"github.com/BruksfildServices01/ponto-eletronico/internal/middleware"
	"github.com/BruksfildServices01/ponto-eletronico/internal/routes"
	"github.com/BruksfildServices01/ponto-eletronico/internal/server"
	"github.com/BruksfildServices01/ponto-eletronico/internal/timezone"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	logger := initLogger(cfg)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	deps := routes.Deps{
		DB:             db,
		Health:         sqlDB,
		ReportLocation: timezone.Location(cfg.ReportTimezone),
		ReportFooter:   cfg.ReportFooter,
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Chain(logger, cfg.AllowedOrigins())...)

	srv := server.New(r, cfg.Addr(), cfg.ShutdownTimeout, logger)

	// registrado primeiro para fechar por último
	srv.OnShutdown("database", func(context.Context) error {
		return sqlDB.Close()
	})

	// ======================================================
	// CACHE (opcional)
	// ======================================================
	if cfg.CacheEnabled() {
		client, err := cache.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, stats cache disabled", "error", err)
		} else {
			deps.Cache = cache.NewStatsCache(client, cfg.StatsCacheTTL)
			srv.OnShutdown("redis", func(context.Context) error {
				return client.Close()
			})
			logger.Info("connected to redis", "ttl", cfg.StatsCacheTTL)
		}
	}

	// ======================================================
	// ARQUIVO DE RELATÓRIOS (opcional)
	// ======================================================
	if cfg.ArchiveEnabled() {
		s3cfg := archive.S3Config{
			Bucket:    cfg.ArchiveBucket,
			Region:    cfg.ArchiveRegion,
			Endpoint:  cfg.ArchiveEndpoint,
			AccessKey: cfg.AWSAccessKeyID,
			SecretKey: cfg.AWSSecretKey,
		}
		if !s3cfg.HasStaticCredentials() {
			logger.Warn("report archive without AWS keys, uploads will be unsigned", "bucket", cfg.ArchiveBucket)
		}

		dispatcher := archive.NewDispatcher(archive.NewS3Uploader(s3cfg))
		deps.Archiver = dispatcher
		srv.OnShutdown("report archive", dispatcher.Close)
		logger.Info("report archive enabled", "bucket", cfg.ArchiveBucket)
	}

	routes.RegisterRoutes(r, deps)

	if err := srv.Run(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
