package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"signflow-server/internal/infra/async"

	"github.com/robfig/cron/v3"
)

func NewJanitorWorker(
	ticker *time.Ticker,
	schedule string,
	retention time.Duration,
	documents DocumentRepository,
	storage FileStore,
) *JanitorWorker {
	return &JanitorWorker{
		ticker:     ticker,
		schedule:   schedule,
		retention:  retention,
		documents:  documents,
		storage:    storage,
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow),
	}
}

var _ async.Worker = &JanitorWorker{}

// JanitorWorker purges soft-deleted documents once their retention window has
// passed, removing both the stored blobs and the database rows. The cron
// schedule gates which ticks actually run a sweep.
type JanitorWorker struct {
	ticker     *time.Ticker
	schedule   string
	retention  time.Duration
	documents  DocumentRepository
	storage    FileStore
	cronParser cron.Parser
}

func (w *JanitorWorker) Run(ctx context.Context, done func()) {
	slog.Debug("janitor worker started", slog.String("schedule", w.schedule))
	defer done()

	for {
		select {
		case <-ctx.Done():
			slog.Info("janitor worker cancelled")
			return
		case <-w.ticker.C:
			due, err := w.isDue(time.Now())
			if err != nil {
				slog.Error("evaluating janitor schedule",
					slog.String("schedule", w.schedule),
					slog.Any("error", err))
				continue
			}
			if due {
				w.sweep(ctx)
			}
		}
	}
}

func (w *JanitorWorker) isDue(now time.Time) (bool, error) {
	spec, err := w.cronParser.Parse(w.schedule)
	if err != nil {
		return false, fmt.Errorf("parsing cron schedule: %w", err)
	}

	nextRun := spec.Next(now.Add(-time.Minute))
	return nextRun.Before(now) || nextRun.Equal(now), nil
}

func (w *JanitorWorker) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.retention)
	documents, err := w.documents.FindAllDeletedBefore(ctx, cutoff)
	if err != nil {
		slog.Error("finding expired documents", slog.Any("error", err))
		return
	}

	purged := 0
	for _, document := range documents {
		if document.SourceKey != "" {
			if err := w.storage.Delete(ctx, document.SourceKey); err != nil {
				slog.Error("deleting source blob",
					slog.String("document_id", document.ID.String()),
					slog.Any("error", err))
				continue
			}
		}
		if document.FinalizedKey != "" {
			if err := w.storage.Delete(ctx, document.FinalizedKey); err != nil {
				slog.Error("deleting finalized blob",
					slog.String("document_id", document.ID.String()),
					slog.Any("error", err))
				continue
			}
		}

		if err := w.documents.HardDelete(ctx, document.ID); err != nil {
			slog.Error("hard deleting document",
				slog.String("document_id", document.ID.String()),
				slog.Any("error", err))
			continue
		}
		purged++
	}

	if purged > 0 {
		slog.Info("janitor sweep completed", slog.Int("purged", purged))
	}
}

func (w *JanitorWorker) Shutdown() {
	w.ticker.Stop()
}
