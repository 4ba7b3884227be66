package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Auditor interface {
	AuditConsistency(ctx context.Context) ([]uuid.UUID, error)
}

type DivergenceGauge interface {
	SetDivergentSlots(n int)
}

// AuditWorker periodically compares slot availability flags against
// confirmed bookings and publishes the count of mismatches.
type AuditWorker struct {
	auditor  Auditor
	gauge    DivergenceGauge
	interval time.Duration
	log      *slog.Logger
}

func NewAuditWorker(auditor Auditor, gauge DivergenceGauge, interval time.Duration, log *slog.Logger) *AuditWorker {
	return &AuditWorker{
		auditor:  auditor,
		gauge:    gauge,
		interval: interval,
		log:      log,
	}
}

// Run blocks until ctx is done.
func (w *AuditWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("consistency audit started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("consistency audit stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

func (w *AuditWorker) RunOnce(ctx context.Context) {
	ids, err := w.auditor.AuditConsistency(ctx)
	if err != nil {
		w.log.Error("consistency audit failed", slog.Any("error", err))
		return
	}

	w.gauge.SetDivergentSlots(len(ids))
	if len(ids) > 0 {
		w.log.Warn("divergent slots found", slog.Int("count", len(ids)))
	}
}
