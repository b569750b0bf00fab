// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/models"
)

type heartbeatWorker struct {
	job      service.HeartbeatJob
	cred     models.Credential
	interval time.Duration
	onResult func(models.HeartbeatResult, error)
}

// NewHeartbeatWorker binds job to one credential so it can run next to other
// workers. onResult receives every heartbeat outcome.
func NewHeartbeatWorker(job service.HeartbeatJob, cred models.Credential, interval time.Duration, onResult func(models.HeartbeatResult, error)) Worker {
	return &heartbeatWorker{
		job:      job,
		cred:     cred,
		interval: interval,
		onResult: onResult,
	}
}

func (w *heartbeatWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.cred, w.interval, w.onResult)
}

func (w *heartbeatWorker) Stop() {
	w.job.Stop()
}
