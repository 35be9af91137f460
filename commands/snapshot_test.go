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

package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/racker/process-resource-sampler/commands"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshotView struct {
	Outcome  string                    `json:"outcome"`
	Pid      int32                     `json:"pid"`
	Snapshot *hostinfo.ProcessSnapshot `json:"snapshot"`
	Row      []string                  `json:"row"`
	Error    string                    `json:"error"`
}

func TestWriteSnapshot(t *testing.T) {
	ts := sampler.NewBatchTimestamp(batchTime)

	tests := []struct {
		name        string
		result      hostinfo.Result
		messages    sampler.Messages
		wantOutcome string
		wantRow     []string
		wantError   bool
	}{
		{
			name: "success",
			result: hostinfo.Result{
				Pid:     42,
				Outcome: hostinfo.OutcomeSuccess,
				Snapshot: &hostinfo.ProcessSnapshot{
					Pid:        42,
					Name:       "postgres",
					Exe:        "/usr/bin/postgres",
					CPUPercent: 12.346,
					RSSBytes:   3 * 1024 * 1024,
					VMSBytes:   5 * 1024 * 1024,
				},
			},
			messages:    sampler.EnglishMessages,
			wantOutcome: "success",
			wantRow:     []string{"2024/11/20", "09:05", "42", "postgres", "/usr/bin/postgres", "12.35", "3.00", "5.00"},
		},
		{
			name:        "access denied japanese",
			result:      hostinfo.Result{Pid: 4, Outcome: hostinfo.OutcomeAccessDenied, Err: os.ErrPermission},
			messages:    sampler.JapaneseMessages,
			wantOutcome: "access_denied",
			wantRow: []string{"2024/11/20", "09:05", "4", sampler.JapaneseMessages.AccessDenied,
				sampler.NotAvailable, sampler.NotAvailable, sampler.NotAvailable, sampler.NotAvailable},
			wantError: true,
		},
		{
			name:        "failed has no row",
			result:      hostinfo.Result{Pid: 7, Outcome: hostinfo.OutcomeFailed, Err: os.ErrInvalid},
			messages:    sampler.EnglishMessages,
			wantOutcome: "failed",
			wantError:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, commands.WriteSnapshot(&buf, ts, tt.result, tt.messages))

			var view snapshotView
			require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
			assert.Equal(t, tt.wantOutcome, view.Outcome)
			assert.Equal(t, tt.result.Pid, view.Pid)
			assert.Equal(t, tt.wantRow, view.Row)
			assert.Equal(t, tt.wantError, view.Error != "")
			assert.Equal(t, tt.result.Snapshot, view.Snapshot)
		})
	}
}
