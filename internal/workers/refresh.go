// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"fmt"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/robfig/cron/v3"
)

// RefreshWorker re-fetches the record table on a cron schedule, e.g.
// "@every 5m" or "*/10 * * * *". Ticks that fire while a previous one is
// still running are skipped.
type RefreshWorker struct {
	cron    *cron.Cron
	refresh func()
	logger  *logger.Logger
}

func NewRefreshWorker(schedule string, refresh func(), logger *logger.Logger) (*RefreshWorker, error) {
	w := &RefreshWorker{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger{logger}),
			cron.SkipIfStillRunning(cronLogger{logger}),
		)),
		refresh: refresh,
		logger:  logger,
	}

	if _, err := w.cron.AddFunc(schedule, w.tick); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, schedule, err)
	}

	return w, nil
}

func (w *RefreshWorker) Run() {
	w.logger.Info().Str("func", "*RefreshWorker.Run").Msg("refresh worker started")
	w.cron.Start()
}

// Stop waits for a running tick to finish.
func (w *RefreshWorker) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info().Str("func", "*RefreshWorker.Stop").Msg("refresh worker stopped")
}

func (w *RefreshWorker) tick() {
	w.logger.Debug().Str("func", "*RefreshWorker.tick").Msg("refreshing records")
	w.refresh()
}

// cronLogger adapts the zerolog logger to cron.Logger.
type cronLogger struct {
	l *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
