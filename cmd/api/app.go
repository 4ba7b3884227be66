package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/venue_booking/internal/adapter/lock"
	"github.com/srgjo27/venue_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/venue_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/venue_booking/internal/adapter/sportsfeed"
	"github.com/srgjo27/venue_booking/internal/core/ports"
	"github.com/srgjo27/venue_booking/internal/core/services"
	"github.com/srgjo27/venue_booking/internal/platform/config"
	"github.com/srgjo27/venue_booking/internal/platform/database"
	"github.com/srgjo27/venue_booking/internal/platform/metrics"
)

type repositories struct {
	sports   ports.SportRepository
	venues   ports.VenueRepository
	slots    ports.SlotRepository
	bookings ports.BookingRepository
}

// app holds the wired services of one process.
type app struct {
	cfg     config.App
	log     *slog.Logger
	metrics *metrics.Metrics

	venues   *services.VenueService
	slots    *services.SlotService
	bookings *services.BookingService
	sports   *services.SportService

	closers []func() error
}

func newApp(ctx context.Context, cfg config.App, log *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log, metrics: metrics.New()}

	repos, err := a.openStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	locks, err := a.openLocks(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	locks = lock.NewInstrumented(locks, a.metrics)

	feed := sportsfeed.NewClient(cfg.Sports.FeedURL, cfg.Sports.FeedTimeout)

	a.venues = services.NewVenueService(repos.venues, repos.sports, locks, log)
	a.slots = services.NewSlotService(repos.slots, repos.venues, locks, log)
	a.bookings = services.NewBookingService(repos.slots, repos.bookings, locks, log)
	a.sports = services.NewSportService(repos.sports, feed, log)

	return a, nil
}

func (a *app) openStorage(ctx context.Context) (repositories, error) {
	if a.cfg.StorageBackend == config.StorageMemory {
		a.log.Warn("using in-memory storage; data is lost on exit")
		store := memory.NewStore()
		return repositories{
			sports:   store.Sports(),
			venues:   store.Venues(),
			slots:    store.Slots(),
			bookings: store.Bookings(),
		}, nil
	}

	db, err := a.openDB(ctx)
	if err != nil {
		return repositories{}, err
	}

	if a.cfg.MigrateOnStart {
		if err := database.MigrateUp(ctx, db); err != nil {
			return repositories{}, err
		}
	}

	return repositories{
		sports:   postgres.NewSportRepository(db),
		venues:   postgres.NewVenueRepository(db),
		slots:    postgres.NewSlotRepository(db),
		bookings: postgres.NewBookingRepository(db),
	}, nil
}

func (a *app) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := database.NewPostgresDB(ctx, a.cfg.Postgres.Database(), a.log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	return db, nil
}

func (a *app) openLocks(ctx context.Context) (ports.LockManager, error) {
	if a.cfg.Lock.Backend != config.LockRedis {
		return lock.NewKeyedMutex(a.cfg.Lock.Wait), nil
	}

	a.log.Info("connecting to redis", slog.String("addr", a.cfg.Redis.Addr()))

	client := redis.NewClient(&redis.Options{
		Addr: a.cfg.Redis.Addr(),
		DB:   a.cfg.Redis.DB,
	})
	a.closers = append(a.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return lock.NewRedisLocker(client, lock.RedisOptions{
		Wait: a.cfg.Lock.Wait,
		TTL:  a.cfg.Lock.TTL,
		Poll: a.cfg.Lock.Poll,
	}, a.log), nil
}

// syncSports imports the sport catalog. Failures are logged and never abort
// the caller.
func (a *app) syncSports(ctx context.Context) {
	if a.cfg.Sports.FeedURL == "" {
		a.log.Warn("SPORTS_FEED_URL not set; skipping sport sync")
		return
	}

	n, err := a.sports.ImportSports(ctx)
	if err != nil {
		a.log.Error("sport sync failed", slog.Any("error", err))
		return
	}
	a.log.Info("sport sync finished", slog.Int("imported", n))
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
