// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/models"
)

const defaultRefreshInterval = 5 * time.Minute

type refreshWorker struct {
	lister   Lister
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewRefreshWorker returns a worker calling ListSudos(RemoteOnly) every
// interval. A remote listing rebuilds the cached list, which picks up
// records created remotely whose claim update never completed. A non
// positive interval selects five minutes.
func NewRefreshWorker(lister Lister, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &refreshWorker{lister: lister, interval: interval, logger: log}
}

func (w *refreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.refresh(jobCtx)
			}
		}
	}()
}

func (w *refreshWorker) refresh(ctx context.Context) {
	sudos, err := w.lister.ListSudos(ctx, models.RemoteOnly)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Str("func", "*refreshWorker.refresh").Msg("error refreshing sudos")
		}
		return
	}
	w.logger.Debug().Str("func", "*refreshWorker.refresh").Int("sudos", len(sudos)).Msg("refreshed sudos")
}

func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
