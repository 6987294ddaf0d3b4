// Package main is the entrypoint for the portfolio server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/portfolio/portfolio/internal/config"
	"github.com/portfolio/portfolio/internal/metrics"
	"github.com/portfolio/portfolio/internal/redisstore"
	"github.com/portfolio/portfolio/internal/repository"
	"github.com/portfolio/portfolio/internal/router"
	"github.com/portfolio/portfolio/internal/server"
	"github.com/portfolio/portfolio/internal/store"
	"github.com/portfolio/portfolio/web"
)

// storeConnectTimeout bounds the startup connectivity check.
const storeConnectTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	st, err := openStore(context.Background(), cfg)
	if err != nil {
		logger.Error(
			"failed to open store",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", sanitizeError(err, cfg.DatabaseURL, cfg.RedisURL)),
			slog.String("url", redactURL(storeURL(cfg))),
		)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeConnectTimeout)
	checkStore(ctx, logger, cfg, st)
	cancel()

	assets, err := web.Assets(cfg.StaticDir)
	if err != nil {
		logger.Error("failed to load static assets", "dir", cfg.StaticDir, "error", err)
		_ = st.Close()
		os.Exit(1)
	}

	recorder := metrics.NewInMemory()

	r := router.New(router.Config{
		Store:          st,
		Assets:         assets,
		Metrics:        recorder,
		Logger:         logger,
		AllowedOrigins: cfg.GetCORSAllowedOrigins(),
		IsDevelopment:  cfg.IsDevelopment(),
		MaxBodySize:    cfg.MaxRequestBodySize,
	})

	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("store", func(ctx context.Context) error {
		return st.Close()
	})
	srv.OnShutdown("metrics", func(ctx context.Context) error {
		logSnapshot(logger, recorder.Snapshot())
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"static_dir", cfg.StaticDir,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// openStore builds the configured store driver. Drivers connect lazily,
// so an unreachable server is not an error here.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		repo, err := repository.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return repo, nil
	case config.DriverRedis:
		rs, err := redisstore.New(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return rs, nil
	case config.DriverMemory:
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// checkStore pings st once. A failure only degrades the store-backed routes,
// which report it per request until the store comes back.
func checkStore(ctx context.Context, logger *slog.Logger, cfg *config.Config, st store.Store) bool {
	if err := st.Ping(ctx); err != nil {
		logger.Warn(
			"store unreachable, serving without it",
			slog.String("driver", cfg.StoreDriver),
			slog.String("error", sanitizeError(err, cfg.DatabaseURL, cfg.RedisURL)),
			slog.String("url", redactURL(storeURL(cfg))),
		)
		return false
	}
	logger.Info("store ready", "driver", cfg.StoreDriver)
	return true
}

func storeURL(cfg *config.Config) string {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return cfg.DatabaseURL
	case config.DriverRedis:
		return cfg.RedisURL
	}
	return ""
}

func logSnapshot(logger *slog.Logger, snap metrics.Snapshot) {
	logger.Info("metrics_snapshot",
		"contacts_created", snap.ContactsCreated,
		"projects_created", snap.ProjectsCreated,
		"store_calls", snap.StoreCalls,
		"store_errors", snap.StoreErrors,
	)
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

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

// parseLogLevel converts string log level to slog.Level.
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

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s&]+`)

// redactURL strips the password from a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

// sanitizeError removes connection secrets from err's text.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
