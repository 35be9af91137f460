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

package hostinfo

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// Outcome is the kind of result a metrics query produced.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeAccessDenied
	OutcomeProcessGone
	// OutcomeFailed covers every error that is neither a permission problem nor a vanished process
	OutcomeFailed
)

var outcomeNames = map[Outcome]string{
	OutcomeSuccess:      "success",
	OutcomeAccessDenied: "access_denied",
	OutcomeProcessGone:  "process_gone",
	OutcomeFailed:       "failed",
}

// Outcomes lists every outcome in declaration order.
var Outcomes = []Outcome{OutcomeSuccess, OutcomeAccessDenied, OutcomeProcessGone, OutcomeFailed}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result is what a single process query produces. Snapshot is only set for OutcomeSuccess and
// Err is only set for the other outcomes.
type Result struct {
	Pid      int32
	Outcome  Outcome
	Snapshot *ProcessSnapshot `json:",omitempty"`
	Err      error            `json:"-"`
}

func successResult(snapshot *ProcessSnapshot) Result {
	return Result{Pid: snapshot.Pid, Outcome: OutcomeSuccess, Snapshot: snapshot}
}

func errorResult(pid int32, err error) Result {
	return Result{Pid: pid, Outcome: Classify(err), Err: err}
}

// Classify maps a provider error onto an Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case isProcessGone(err):
		return OutcomeProcessGone
	case isAccessDenied(err):
		return OutcomeAccessDenied
	default:
		return OutcomeFailed
	}
}

func isProcessGone(err error) bool {
	return errors.Is(err, process.ErrorProcessNotRunning) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, syscall.ESRCH)
}

func isAccessDenied(err error) bool {
	return errors.Is(err, os.ErrPermission)
}
