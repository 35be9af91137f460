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

//go:build !windows

package utils

import (
	"syscall"

	log "github.com/sirupsen/logrus"
)

const (
	// FdsPerTask is roughly how many /proc files a sampling task holds open at once
	FdsPerTask = 2
	// FdHeadroom covers the log file, stdio and the runtime
	FdHeadroom = 64
)

// RequiredFDs is the descriptor count a batch of concurrent tasks may need.
func RequiredFDs(concurrentTasks int) uint64 {
	return uint64(concurrentTasks*FdsPerTask + FdHeadroom)
}

// CheckFDLimit warns when the soft descriptor limit is below what concurrentTasks may use.
// It returns false when the limit looks too low.
func CheckFDLimit(concurrentTasks int) bool {
	rlimit := &syscall.Rlimit{}
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, rlimit)
	if err != nil {
		log.WithError(err).Debug("Unable to read descriptor limit")
		return true
	}

	required := RequiredFDs(concurrentTasks)
	if uint64(rlimit.Cur) < required {
		log.Warnf("File descriptor limit %d may be too low for %d concurrent sampling tasks. "+
			"Lower MAX_WORKERS or raise it with \"ulimit -n %d\".", rlimit.Cur, concurrentTasks, required)
		return false
	}
	return true
}
