package metrics

import (
	"testing"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/sampler"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapReportToServiceCheckStatus(t *testing.T) {
	tests := []struct {
		name     string
		report   *sampler.BatchReport
		expected statsd.ServiceCheckStatus
	}{
		{
			name:     "nothing enumerated",
			report:   &sampler.BatchReport{},
			expected: statsd.Unknown,
		},
		{
			name:     "all written",
			report:   &sampler.BatchReport{Enumerated: 3, Written: 3},
			expected: statsd.Ok,
		},
		{
			name:     "write shortfall",
			report:   &sampler.BatchReport{Enumerated: 3, Written: 2},
			expected: statsd.Warn,
		},
		{
			name: "unclassified failure",
			report: &sampler.BatchReport{
				Enumerated: 3,
				Written:    2,
				Outcomes:   map[hostinfo.Outcome]int{hostinfo.OutcomeFailed: 1},
			},
			expected: statsd.Critical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapReportToServiceCheckStatus(tt.report))
		})
	}
}

func TestStatsdDistributor_ObserveResult_LogsSendFailures(t *testing.T) {
	hook := logtest.NewGlobal()
	priorLevel := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	t.Cleanup(func() {
		log.SetLevel(priorLevel)
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	})

	// a nil client rejects every send with statsd.ErrNoClient
	d := &StatsdDistributor{hostname: "host1"}
	d.ObserveResult(sampler.BatchTimestamp{}, hostinfo.Result{Pid: 7, Outcome: hostinfo.OutcomeProcessGone})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.DebugLevel, entry.Level)
	assert.Equal(t, "process.process_gone", entry.Data["metric"])
	assert.Equal(t, statsd.ErrNoClient, entry.Data[log.ErrorKey])
}
