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

package commands

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/racker/process-resource-sampler/config"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/sampler"
	"github.com/racker/process-resource-sampler/utils"
	"github.com/spf13/cobra"
)

var (
	snapshotCmdConfig = struct {
		pid      int32
		interval time.Duration
		locale   string
	}{}
	SnapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Sample a single process and print the result without touching the log",
		Run: func(cmd *cobra.Command, args []string) {
			provider := hostinfo.NewProcessProvider()
			result := provider.Snapshot(context.Background(), snapshotCmdConfig.pid, snapshotCmdConfig.interval)
			ts := sampler.NewBatchTimestamp(utils.Now())

			err := WriteSnapshot(os.Stdout, ts, result, sampler.MessagesFor(snapshotCmdConfig.locale))
			if err != nil {
				utils.Die(err, "Failed to format snapshot")
			}
		},
	}
)

func init() {
	SnapshotCmd.Flags().Int32Var(&snapshotCmdConfig.pid, "pid", int32(os.Getpid()), "The process to sample")
	SnapshotCmd.Flags().DurationVar(&snapshotCmdConfig.interval, "interval", config.DefaultCPUInterval, "CPU measurement window")
	SnapshotCmd.Flags().StringVar(&snapshotCmdConfig.locale, "locale", config.DefaultLocale, "Message locale, 'en' or 'ja'")
}

type snapshotOutput struct {
	Outcome  hostinfo.Outcome          `json:"outcome"`
	Pid      int32                     `json:"pid"`
	Snapshot *hostinfo.ProcessSnapshot `json:"snapshot,omitempty"`
	Row      []string                  `json:"row,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

// WriteSnapshot prints result as indented JSON along with the log row it would produce.
func WriteSnapshot(w io.Writer, ts sampler.BatchTimestamp, result hostinfo.Result, messages sampler.Messages) error {
	out := snapshotOutput{
		Outcome:  result.Outcome,
		Pid:      result.Pid,
		Snapshot: result.Snapshot,
	}
	if result.Err != nil {
		out.Error = result.Err.Error()
	}

	switch {
	case result.Outcome == hostinfo.OutcomeSuccess && result.Snapshot != nil:
		out.Row = sampler.SuccessRow(ts, result.Snapshot).Fields()
	default:
		if reason, ok := messages.Reason(result.Outcome); ok {
			out.Row = sampler.DegradedRow(ts, result.Pid, reason).Fields()
		}
	}

	prettyJson := json.NewEncoder(w)
	prettyJson.SetIndent("", "  ")
	return prettyJson.Encode(out)
}
