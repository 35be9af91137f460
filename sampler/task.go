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

package sampler

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/racker/process-resource-sampler/hostinfo"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=task.go -destination=mock_task.go -package=sampler

// RowWriter appends one row to the log. Implementations must be safe for concurrent use.
type RowWriter interface {
	WriteRow(row []string) error
}

// Observer is told about every process result of a batch, from the task's goroutine.
type Observer interface {
	ObserveResult(ts BatchTimestamp, result hostinfo.Result)
}

// Task samples a single process and writes exactly one row for it, unless the query
// failed in a way that is neither a permission problem nor a vanished process.
type Task struct {
	Pid       int32
	Timestamp BatchTimestamp
	Interval  time.Duration
	Messages  Messages
	Provider  hostinfo.ProcessProvider
	Sink      RowWriter
	Observers []Observer
}

// Run returns the outcome of the query along with any error that kept the row from being written.
func (t *Task) Run(ctx context.Context) (hostinfo.Outcome, error) {
	result := t.Provider.Snapshot(ctx, t.Pid, t.Interval)
	for _, o := range t.Observers {
		o.ObserveResult(t.Timestamp, result)
	}

	var row LogRow
	switch result.Outcome {
	case hostinfo.OutcomeSuccess:
		if result.Snapshot == nil {
			return hostinfo.OutcomeFailed, errors.Errorf("pid %d: success without a snapshot", t.Pid)
		}
		row = SuccessRow(t.Timestamp, result.Snapshot)

	case hostinfo.OutcomeAccessDenied, hostinfo.OutcomeProcessGone:
		reason, _ := t.Messages.Reason(result.Outcome)
		row = DegradedRow(t.Timestamp, t.Pid, reason)

	default:
		err := result.Err
		if err == nil {
			err = errors.Errorf("pid %d: unclassified failure", t.Pid)
		}
		log.WithFields(log.Fields{
			"pid": t.Pid,
			"err": err,
		}).Error("Process sampling failed")
		return hostinfo.OutcomeFailed, err
	}

	if err := t.Sink.WriteRow(row.Fields()); err != nil {
		return result.Outcome, errors.Wrapf(err, "write row for pid %d", t.Pid)
	}
	return result.Outcome, nil
}
