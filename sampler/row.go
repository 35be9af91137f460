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
	"fmt"
	"strconv"
	"time"

	"github.com/racker/process-resource-sampler/config"
	"github.com/racker/process-resource-sampler/hostinfo"
)

const (
	DateLayout = "2006/01/02"
	TimeLayout = "15:04"

	// NotAvailable fills the executable and metric columns of a degraded row
	NotAvailable = "None"

	RowWidth = 8
)

// BatchTimestamp is captured once per batch and shared by every row of it.
type BatchTimestamp struct {
	Date string
	Time string
}

func NewBatchTimestamp(t time.Time) BatchTimestamp {
	return BatchTimestamp{
		Date: t.Format(DateLayout),
		Time: t.Format(TimeLayout),
	}
}

// LogRow is one CSV record: date, time, pid, name or reason, exe, cpu%, rss MB, vms MB.
type LogRow [RowWidth]string

func (r LogRow) Fields() []string {
	return r[:]
}

// Messages holds the reasons written into the name column of degraded rows.
type Messages struct {
	AccessDenied string
	ProcessGone  string
}

var (
	EnglishMessages = Messages{
		AccessDenied: "access denied — could not output",
		ProcessGone:  "process already terminated — could not output",
	}
	JapaneseMessages = Messages{
		AccessDenied: "アクセス権が無いため、出力できませんでした",
		ProcessGone:  "プロセスが既に終了しているため、出力できませんでした",
	}
)

func MessagesFor(locale string) Messages {
	if locale == config.LocaleJapanese {
		return JapaneseMessages
	}
	return EnglishMessages
}

// Reason returns the degraded-row text for outcome, or false when the outcome does not degrade.
func (m Messages) Reason(outcome hostinfo.Outcome) (string, bool) {
	switch outcome {
	case hostinfo.OutcomeAccessDenied:
		return m.AccessDenied, true
	case hostinfo.OutcomeProcessGone:
		return m.ProcessGone, true
	}
	return "", false
}

func FormatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func SuccessRow(ts BatchTimestamp, s *hostinfo.ProcessSnapshot) LogRow {
	return LogRow{
		ts.Date,
		ts.Time,
		strconv.FormatInt(int64(s.Pid), 10),
		s.Name,
		s.Exe,
		FormatFloat(s.CPUPercent),
		FormatFloat(s.RSSMB()),
		FormatFloat(s.VMSMB()),
	}
}

func DegradedRow(ts BatchTimestamp, pid int32, reason string) LogRow {
	return LogRow{
		ts.Date,
		ts.Time,
		strconv.FormatInt(int64(pid), 10),
		reason,
		NotAvailable,
		NotAvailable,
		NotAvailable,
		NotAvailable,
	}
}
