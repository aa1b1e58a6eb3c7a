package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CatalogRefresherConfig holds configuration for the background refresher.
type CatalogRefresherConfig struct {
	// Interval is the time between refresh attempts.
	Interval time.Duration
}

// CatalogRefresher periodically reloads the catalog from the plant store so
// long-running servers pick up database edits without a restart. A failed
// refresh is logged and retried on the next tick; the published catalog is
// untouched until a reload succeeds.
type CatalogRefresher struct {
	provider   *CatalogProvider
	interval   time.Duration
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewCatalogRefresher creates a CatalogRefresher over the given provider.
func NewCatalogRefresher(
	provider *CatalogProvider,
	cfg CatalogRefresherConfig,
	log *slog.Logger,
) *CatalogRefresher {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &CatalogRefresher{
		provider:   provider,
		interval:   cfg.Interval,
		ctx:        ctx,
		cancelFunc: cancel,
		logger:     log.With(slog.String("component", "catalog_refresher")),
	}
}

// Start begins the periodic refresh loop. It is a no-op when the interval is
// not positive, so callers can pass a disabled config straight through.
func (r *CatalogRefresher) Start() {
	if r.interval <= 0 {
		r.logger.Debug("periodic catalog refresh disabled")
		return
	}

	r.wg.Add(1)
	go r.run()
	r.logger.Info("periodic catalog refresh started",
		slog.Duration("interval", r.interval))
}

// Stop cancels the refresh loop and waits for it to exit.
func (r *CatalogRefresher) Stop() {
	r.cancelFunc()
	r.wg.Wait()
}

func (r *CatalogRefresher) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			count, err := r.provider.Reload(r.ctx)
			if err != nil {
				r.logger.Error("periodic catalog refresh failed", "error", err)
				continue
			}
			r.logger.Debug("periodic catalog refresh completed",
				slog.Int("records", count))
		}
	}
}
