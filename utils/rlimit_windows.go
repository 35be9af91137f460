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

package utils

const (
	FdsPerTask = 2
	FdHeadroom = 64
)

func RequiredFDs(concurrentTasks int) uint64 {
	return uint64(concurrentTasks*FdsPerTask + FdHeadroom)
}

// CheckFDLimit is a no-op on Windows, which has no per-process descriptor soft limit to speak of.
func CheckFDLimit(concurrentTasks int) bool {
	return true
}
