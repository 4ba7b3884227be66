package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/srgjo27/venue_booking/internal/platform/database"
	"github.com/srgjo27/venue_booking/internal/platform/retry"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	LockMemory = "memory"
	LockRedis  = "redis"
)

type App struct {
	HTTP     HTTP
	Postgres Postgres
	Redis    Redis
	Lock     Lock
	Retry    Retry
	Sports   Sports
	Audit    Audit
	Log      Log

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"postgres"`
	MigrateOnStart bool   `envconfig:"MIGRATE_ON_START" default:"false"`
}

type HTTP struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"5s"`
	GinMode         string        `envconfig:"GIN_MODE" default:"release"`
}

type Postgres struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"venue_booking"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	ConnectRetries  int           `envconfig:"DB_CONNECT_RETRIES" default:"5"`
	RetryDelay      time.Duration `envconfig:"DB_RETRY_DELAY" default:"2s"`
}

type Redis struct {
	Host string `envconfig:"REDIS_HOST" default:"localhost"`
	Port string `envconfig:"REDIS_PORT" default:"6379"`
	DB   int    `envconfig:"REDIS_DB" default:"0"`
}

type Lock struct {
	Backend string        `envconfig:"LOCK_BACKEND" default:"memory"`
	Wait    time.Duration `envconfig:"LOCK_WAIT" default:"2s"`
	TTL     time.Duration `envconfig:"LOCK_TTL" default:"10s"`
	Poll    time.Duration `envconfig:"LOCK_POLL" default:"25ms"`
}

type Retry struct {
	Attempts int           `envconfig:"BUSY_RETRY_ATTEMPTS" default:"3"`
	Delay    time.Duration `envconfig:"BUSY_RETRY_DELAY" default:"100ms"`
	MaxDelay time.Duration `envconfig:"BUSY_RETRY_MAX_DELAY" default:"1s"`
}

type Sports struct {
	FeedURL     string        `envconfig:"SPORTS_FEED_URL"`
	FeedTimeout time.Duration `envconfig:"SPORTS_FEED_TIMEOUT" default:"10s"`
	SyncOnStart bool          `envconfig:"SPORTS_SYNC_ON_START" default:"true"`
}

type Audit struct {
	// Interval of zero disables the background consistency audit.
	Interval time.Duration `envconfig:"AUDIT_INTERVAL" default:"1m"`
}

type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads the given dotenv files, if present, then the process
// environment. Variables already set in the environment win.
func Load(envFiles ...string) (App, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return App{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, fmt.Errorf("process env: %w", err)
	}

	if err := c.validate(); err != nil {
		return App{}, err
	}
	return c, nil
}

func (c App) validate() error {
	switch c.StorageBackend {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	switch c.Lock.Backend {
	case LockMemory, LockRedis:
	default:
		return fmt.Errorf("unknown LOCK_BACKEND %q", c.Lock.Backend)
	}

	if c.Lock.Wait <= 0 {
		return errors.New("LOCK_WAIT must be positive")
	}
	if c.Lock.Backend == LockRedis && c.Lock.TTL <= c.Lock.Wait {
		return errors.New("LOCK_TTL must exceed LOCK_WAIT")
	}
	if c.Retry.Attempts < 1 {
		return errors.New("BUSY_RETRY_ATTEMPTS must be at least 1")
	}
	if c.Retry.Delay <= 0 {
		return errors.New("BUSY_RETRY_DELAY must be positive")
	}
	return nil
}

func (p Postgres) Database() database.Config {
	return database.Config{
		Host:            p.Host,
		Port:            p.Port,
		User:            p.User,
		Password:        p.Password,
		DBName:          p.Name,
		SSLMode:         p.SSLMode,
		MaxOpenConns:    p.MaxOpenConns,
		MaxIdleConns:    p.MaxIdleConns,
		ConnMaxLifetime: p.ConnMaxLifetime,
		ConnectRetries:  p.ConnectRetries,
		RetryDelay:      p.RetryDelay,
	}
}

func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

func (r Retry) Strategy() retry.Strategy {
	return retry.Strategy{
		Attempts: r.Attempts,
		Delay:    r.Delay,
		MaxDelay: r.MaxDelay,
	}
}
