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

// Package hostinfo reads per-process resource usage from the local host
package hostinfo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
	log "github.com/sirupsen/logrus"
)

const bytesPerMB = 1024 * 1024

// ProcessSnapshot is the identity and resource usage of one process at a single instant.
type ProcessSnapshot struct {
	Pid        int32   `json:"pid"`
	Name       string  `json:"name"`
	Exe        string  `json:"exe"`
	CPUPercent float64 `json:"cpu_percent"`
	RSSBytes   uint64  `json:"rss_bytes"`
	VMSBytes   uint64  `json:"vms_bytes"`
}

// RSSMB is the resident set size in megabytes.
func (s *ProcessSnapshot) RSSMB() float64 {
	return BytesToMB(s.RSSBytes)
}

// VMSMB is the virtual memory size in megabytes.
func (s *ProcessSnapshot) VMSMB() float64 {
	return BytesToMB(s.VMSBytes)
}

func BytesToMB(b uint64) float64 {
	return float64(b) / bytesPerMB
}

//go:generate mockgen -source=processes.go -destination=mock_processes.go -package=hostinfo

// ProcessProvider lists the visible processes and queries one of them at a time.
type ProcessProvider interface {
	Pids(ctx context.Context) ([]int32, error)
	// Snapshot blocks for interval while CPU usage is measured. Failures are reported
	// through the Outcome of the returned Result, never as a panic.
	Snapshot(ctx context.Context, pid int32, interval time.Duration) Result
}

// processHandle is the subset of *process.Process a snapshot reads.
type processHandle interface {
	PercentWithContext(ctx context.Context, interval time.Duration) (float64, error)
	MemoryInfoWithContext(ctx context.Context) (*process.MemoryInfoStat, error)
	NameWithContext(ctx context.Context) (string, error)
	ExeWithContext(ctx context.Context) (string, error)
	StatusWithContext(ctx context.Context) ([]string, error)
}

// HostProcessProvider is the ProcessProvider backed by gopsutil.
type HostProcessProvider struct {
	open      func(ctx context.Context, pid int32) (processHandle, error)
	pidExists func(ctx context.Context, pid int32) (bool, error)
}

func NewProcessProvider() ProcessProvider {
	return &HostProcessProvider{
		open: func(ctx context.Context, pid int32) (processHandle, error) {
			return process.NewProcessWithContext(ctx, pid)
		},
		pidExists: process.PidExistsWithContext,
	}
}

func (*HostProcessProvider) Pids(ctx context.Context) ([]int32, error) {
	log.Debug("Enumerating processes")
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "enumerate processes")
	}
	return pids, nil
}

func (hp *HostProcessProvider) Snapshot(ctx context.Context, pid int32, interval time.Duration) Result {
	pr, err := hp.open(ctx, pid)
	if err != nil {
		return hp.fail(ctx, nil, pid, err, "open")
	}

	snapshot := &ProcessSnapshot{Pid: pid}

	if snapshot.CPUPercent, err = pr.PercentWithContext(ctx, interval); err != nil {
		return hp.fail(ctx, pr, pid, err, "cpu percent")
	}

	memory, err := pr.MemoryInfoWithContext(ctx)
	if err != nil {
		return hp.fail(ctx, pr, pid, err, "memory info")
	}
	snapshot.RSSBytes = memory.RSS
	snapshot.VMSBytes = memory.VMS

	if snapshot.Name, err = pr.NameWithContext(ctx); err != nil {
		return hp.fail(ctx, pr, pid, err, "name")
	}
	if snapshot.Exe, err = pr.ExeWithContext(ctx); err != nil {
		// kernel threads and some live processes have no readable exe link
		if Classify(err) != OutcomeProcessGone || !hp.alive(ctx, pr, pid) {
			return hp.fail(ctx, pr, pid, err, "exe")
		}
		log.WithFields(log.Fields{
			"pid": pid,
			"err": err,
		}).Debug("Executable path unavailable for live process")
		snapshot.Exe = ""
	}

	return successResult(snapshot)
}

// alive reports whether pid still exists and is not a zombie. pr may be nil.
func (hp *HostProcessProvider) alive(ctx context.Context, pr processHandle, pid int32) bool {
	exists, err := hp.pidExists(ctx, pid)
	if err != nil || !exists {
		return false
	}
	if pr == nil {
		return true
	}
	status, err := pr.StatusWithContext(ctx)
	if err != nil {
		return true
	}
	for _, st := range status {
		if st == process.Zombie {
			return false
		}
	}
	return true
}

func (hp *HostProcessProvider) fail(ctx context.Context, pr processHandle, pid int32, err error, what string) Result {
	res := errorResult(pid, errors.Wrapf(err, "pid %d %s", pid, what))

	switch res.Outcome {
	case OutcomeAccessDenied:
		// a permission error from a process that exited meanwhile is reported as gone
		if exists, existsErr := hp.pidExists(ctx, pid); existsErr == nil && !exists {
			res.Outcome = OutcomeProcessGone
		}
	case OutcomeProcessGone:
		// a missing /proc entry of a process that is still running is not an exit
		if hp.alive(ctx, pr, pid) {
			res.Outcome = OutcomeFailed
		}
	}

	log.WithFields(log.Fields{
		"pid":     pid,
		"outcome": res.Outcome,
		"err":     err,
	}).Debug("Process query failed")
	return res
}
