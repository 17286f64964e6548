// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"github.com/MKhiriev/donor-records/internal/config"
	"github.com/MKhiriev/donor-records/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled in cfg. refresh is what the table
// refresh worker calls on every tick. An empty refresh schedule disables
// that worker.
func NewWorkers(cfg config.ClientWorkers, refresh func(), logger *logger.Logger) (*Workers, error) {
	w := &Workers{}

	if cfg.RefreshSchedule != "" {
		rw, err := NewRefreshWorker(cfg.RefreshSchedule, refresh, logger)
		if err != nil {
			return nil, err
		}
		w.workers = append(w.workers, rw)
	}

	return w, nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
