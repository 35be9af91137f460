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
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/racker/process-resource-sampler/commands"
	"github.com/racker/process-resource-sampler/config"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/logsink"
	"github.com/racker/process-resource-sampler/sampler"
	"github.com/racker/process-resource-sampler/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var batchTime = time.Date(2024, time.November, 20, 9, 5, 42, 0, time.Local)

func installClock(t *testing.T) {
	prior := utils.InstallAlternateNowFunc(utils.FixedNow(batchTime))
	t.Cleanup(func() { utils.InstallAlternateNowFunc(prior) })
}

func writeSettings(t *testing.T, dir string, body string) string {
	path := filepath.Join(dir, config.SettingFilename)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func readLog(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = logsink.RowWidth
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func expectBatch(provider *hostinfo.MockProcessProvider) {
	provider.EXPECT().Pids(gomock.Any()).Return([]int32{10, 20, 30}, nil)
	provider.EXPECT().Snapshot(gomock.Any(), int32(10), gomock.Any()).Return(hostinfo.Result{
		Pid:     10,
		Outcome: hostinfo.OutcomeSuccess,
		Snapshot: &hostinfo.ProcessSnapshot{
			Pid:        10,
			Name:       "sshd",
			Exe:        "/usr/sbin/sshd",
			CPUPercent: 1.5,
			RSSBytes:   2 * 1024 * 1024,
			VMSBytes:   8 * 1024 * 1024,
		},
	})
	provider.EXPECT().Snapshot(gomock.Any(), int32(20), gomock.Any()).Return(hostinfo.Result{
		Pid:     20,
		Outcome: hostinfo.OutcomeAccessDenied,
		Err:     os.ErrPermission,
	})
	provider.EXPECT().Snapshot(gomock.Any(), int32(30), gomock.Any()).Return(hostinfo.Result{
		Pid:     30,
		Outcome: hostinfo.OutcomeProcessGone,
		Err:     os.ErrNotExist,
	})
}

func TestRunBatch_HeaderOnlyOnCreate(t *testing.T) {
	installClock(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := config.NewConfig()
	cfg.LogPath = filepath.Join(t.TempDir(), "process_resource.csv")
	cfg.CPUInterval = time.Millisecond

	provider := hostinfo.NewMockProcessProvider(mockCtrl)
	for run := 0; run < 2; run++ {
		expectBatch(provider)
		report, err := commands.RunBatch(context.Background(), cfg, provider)
		require.NoError(t, err)
		assert.Equal(t, 3, report.Enumerated)
		assert.Equal(t, 3, report.Written)
	}

	records := readLog(t, cfg.LogPath)
	require.Len(t, records, 7)
	assert.Equal(t, logsink.EnglishHeader, records[0])
	for _, row := range records[1:] {
		assert.Equal(t, "2024/11/20", row[0])
		assert.Equal(t, "09:05", row[1])
	}

	var denied, gone int
	for _, row := range records[1:] {
		switch row[3] {
		case sampler.EnglishMessages.AccessDenied:
			denied++
			assert.Equal(t, "20", row[2])
		case sampler.EnglishMessages.ProcessGone:
			gone++
			assert.Equal(t, "30", row[2])
		default:
			assert.Equal(t, []string{"2024/11/20", "09:05", "10", "sshd", "/usr/sbin/sshd", "1.50", "2.00", "8.00"}, row)
		}
	}
	assert.Equal(t, 2, denied)
	assert.Equal(t, 2, gone)
}

func TestRunBatch_JapaneseLocale(t *testing.T) {
	installClock(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := config.NewConfig()
	cfg.LogPath = filepath.Join(t.TempDir(), "process_resource.csv")
	cfg.Locale = config.LocaleJapanese

	provider := hostinfo.NewMockProcessProvider(mockCtrl)
	expectBatch(provider)
	_, err := commands.RunBatch(context.Background(), cfg, provider)
	require.NoError(t, err)

	records := readLog(t, cfg.LogPath)
	require.Len(t, records, 4)
	assert.Equal(t, logsink.JapaneseHeader, records[0])
}

func TestRunBatch_UnclassifiedFailure(t *testing.T) {
	installClock(t)
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := config.NewConfig()
	cfg.LogPath = filepath.Join(t.TempDir(), "process_resource.csv")

	provider := hostinfo.NewMockProcessProvider(mockCtrl)
	provider.EXPECT().Pids(gomock.Any()).Return([]int32{10}, nil)
	provider.EXPECT().Snapshot(gomock.Any(), int32(10), gomock.Any()).Return(hostinfo.Result{
		Pid:     10,
		Outcome: hostinfo.OutcomeFailed,
		Err:     errors.New("unexpected"),
	})

	report, err := commands.RunBatch(context.Background(), cfg, provider)
	assert.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Written)
	assert.Equal(t, 1, report.Count(hostinfo.OutcomeFailed))

	records := readLog(t, cfg.LogPath)
	assert.Len(t, records, 1, "only the header")
}

func TestRunBatch_LogCannotOpen(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := config.NewConfig()
	cfg.LogPath = filepath.Join(t.TempDir(), "missing", "process_resource.csv")

	// no expectations: nothing may be enumerated when the log is unusable
	provider := hostinfo.NewMockProcessProvider(mockCtrl)
	report, err := commands.RunBatch(context.Background(), cfg, provider)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "process_resource.csv")

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "valid",
			body: "[SECTION-LOG]\nLOG_PATH = \"" + logPath + "\"\n",
		},
		{
			name:    "no log path",
			body:    "[SECTION-LOG]\n",
			wantErr: config.ErrorNoLogPath,
		},
		{
			name:    "log dir missing",
			body:    "[SECTION-LOG]\nLOG_PATH = \"" + filepath.Join(dir, "nope", "log.csv") + "\"\n",
			wantErr: commands.ErrorLogDirMissing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, t.TempDir(), tt.body)
			cfg, err := commands.LoadConfig(path)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, logPath, cfg.LogPath)
			assert.Equal(t, config.DefaultCPUInterval, cfg.CPUInterval)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := commands.LoadConfig(filepath.Join(t.TempDir(), config.SettingFilename))
	assert.Equal(t, commands.ErrorSettingFileMissing, errors.Cause(err))
}
