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

import (
	"fmt"
	"strings"
	"time"
)

// SummaryLine accumulates key=value pairs rendered on a single comma separated line.
type SummaryLine struct {
	pairs []string
}

func NewSummaryLine() *SummaryLine {
	return &SummaryLine{}
}

func (sl *SummaryLine) Reset() {
	sl.pairs = sl.pairs[:0]
}

func (sl *SummaryLine) AddCount(key string, n int) *SummaryLine {
	sl.pairs = append(sl.pairs, fmt.Sprintf("%s=%d", key, n))
	return sl
}

// AddDuration renders d rounded to the millisecond.
func (sl *SummaryLine) AddDuration(key string, d time.Duration) *SummaryLine {
	sl.pairs = append(sl.pairs, fmt.Sprintf("%s=%v", key, d.Round(time.Millisecond)))
	return sl
}

func (sl *SummaryLine) Len() int {
	return len(sl.pairs)
}

func (sl *SummaryLine) String() string {
	return strings.Join(sl.pairs, ",")
}
