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

package utils_test

import (
	"testing"
	"time"

	"github.com/racker/process-resource-sampler/utils"
	"github.com/stretchr/testify/assert"
)

func TestSummaryLine_Empty(t *testing.T) {
	sl := utils.NewSummaryLine()
	assert.Equal(t, "", sl.String())
	assert.Equal(t, 0, sl.Len())
}

func TestSummaryLine_AddAndReset(t *testing.T) {
	sl := utils.NewSummaryLine()
	sl.AddCount("enumerated", 4).
		AddCount("written", 3).
		AddDuration("elapsed", 1500*time.Millisecond+400*time.Microsecond)

	assert.Equal(t, "enumerated=4,written=3,elapsed=1.5s", sl.String())
	assert.Equal(t, 3, sl.Len())

	sl.Reset()
	assert.Equal(t, "", sl.String())
}
