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
	"time"

	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/utils"
)

// BatchReport summarizes one Sampler run.
type BatchReport struct {
	BatchID    string
	Timestamp  BatchTimestamp
	Enumerated int
	Written    int
	Outcomes   map[hostinfo.Outcome]int
	Elapsed    time.Duration
}

func newBatchReport(batchID string, ts BatchTimestamp) *BatchReport {
	return &BatchReport{
		BatchID:   batchID,
		Timestamp: ts,
		Outcomes:  make(map[hostinfo.Outcome]int),
	}
}

func (r *BatchReport) record(outcome hostinfo.Outcome, written bool) {
	r.Outcomes[outcome]++
	if written {
		r.Written++
	}
}

func (r *BatchReport) Count(outcome hostinfo.Outcome) int {
	return r.Outcomes[outcome]
}

// String renders the report as comma separated key=value pairs for logging.
func (r *BatchReport) String() string {
	sl := utils.NewSummaryLine().
		AddCount("enumerated", r.Enumerated).
		AddCount("written", r.Written)
	for _, o := range hostinfo.Outcomes {
		sl.AddCount(o.String(), r.Outcomes[o])
	}
	return sl.AddDuration("elapsed", r.Elapsed).String()
}
