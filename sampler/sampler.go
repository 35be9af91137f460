//
// Copyright 2017 Rackspace
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package sampler runs one batch of per-process resource sampling
package sampler

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/racker/process-resource-sampler/config"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/utils"
	"github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Sampler drives one batch over every process visible when it starts.
type Sampler struct {
	cfg       *config.Config
	provider  hostinfo.ProcessProvider
	sink      RowWriter
	observers []Observer
}

func NewSampler(cfg *config.Config, provider hostinfo.ProcessProvider, sink RowWriter) *Sampler {
	return &Sampler{
		cfg:      cfg,
		provider: provider,
		sink:     sink,
	}
}

func (s *Sampler) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// concurrency is how many tasks can be in flight for a batch of n processes.
func (s *Sampler) concurrency(n int) int {
	if s.cfg.MaxWorkers > 0 && s.cfg.MaxWorkers < n {
		return s.cfg.MaxWorkers
	}
	return n
}

// Run enumerates the processes once, then samples all of them concurrently under a single
// BatchTimestamp. It returns only after every task has finished. The report is always
// returned; the error is the enumeration failure or the first task failure.
func (s *Sampler) Run(ctx context.Context) (*BatchReport, error) {
	begin := time.Now()
	report := newBatchReport(uuid.NewV4().String(), NewBatchTimestamp(utils.Now()))
	logger := log.WithField("batch", report.BatchID)

	pids, err := s.provider.Pids(ctx)
	if err != nil {
		return report, errors.Wrap(err, "batch aborted")
	}
	report.Enumerated = len(pids)

	workers := s.concurrency(len(pids))
	utils.CheckFDLimit(workers)
	logger.WithFields(log.Fields{
		"processes": len(pids),
		"workers":   workers,
		"date":      report.Timestamp.Date,
		"time":      report.Timestamp.Time,
	}).Info("Sampling processes")

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	if s.cfg.MaxWorkers > 0 {
		g.SetLimit(s.cfg.MaxWorkers)
	}

	messages := MessagesFor(s.cfg.Locale)
	for _, pid := range pids {
		task := &Task{
			Pid:       pid,
			Timestamp: report.Timestamp,
			Interval:  s.cfg.CPUInterval,
			Messages:  messages,
			Provider:  s.provider,
			Sink:      s.sink,
			Observers: s.observers,
		}
		g.Go(func() error {
			outcome, err := task.Run(ctx)

			mu.Lock()
			report.record(outcome, err == nil)
			mu.Unlock()

			return err
		})
	}

	err = g.Wait()
	report.Elapsed = time.Since(begin)

	entry := logger.WithField("summary", report.String())
	if err != nil {
		entry.WithError(err).Error("Batch completed with failures")
	} else {
		entry.Info("Batch completed")
	}
	return report, err
}
