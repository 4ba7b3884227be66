package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	ConnectRetries int
	RetryDelay     time.Duration
}

func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// NewPostgresDB opens a pool and pings it until the database answers or the
// retries run out.
func NewPostgresDB(ctx context.Context, cfg Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	retries := max(cfg.ConnectRetries, 1)
	for i := 1; i <= retries; i++ {
		log.Info("connecting to database", slog.Int("attempt", i), slog.Int("max_attempts", retries))

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			log.Info("database connected", slog.String("host", cfg.Host), slog.String("database", cfg.DBName))
			return db, nil
		}

		if i == retries {
			break
		}
		log.Warn("database not ready yet", slog.Any("error", err), slog.Duration("retry_in", cfg.RetryDelay))
		select {
		case <-time.After(cfg.RetryDelay):
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		}
	}

	db.Close()
	return nil, fmt.Errorf("connect postgres after %d attempts: %w", retries, err)
}
