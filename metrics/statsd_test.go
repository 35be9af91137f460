package metrics_test

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/metrics"
	"github.com/racker/process-resource-sampler/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPackets(t *testing.T, conn net.PacketConn, wanted ...string) string {
	var received strings.Builder
	buf := make([]byte, 65536)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		conn.SetReadDeadline(deadline)
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			break
		}
		received.Write(buf[:n])
		received.WriteString("\n")

		all := true
		for _, w := range wanted {
			if !strings.Contains(received.String(), w) {
				all = false
			}
		}
		if all {
			break
		}
	}
	return received.String()
}

func TestStatsdDistributor(t *testing.T) {
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer conn.Close()

	d, err := metrics.NewStatsdDistributor(conn.LocalAddr().String(), "host1")
	require.NoError(t, err)
	defer d.Close()

	ts := sampler.BatchTimestamp{Date: "2024/11/20", Time: "09:05"}
	d.ObserveResult(ts, hostinfo.Result{
		Pid:     42,
		Outcome: hostinfo.OutcomeSuccess,
		Snapshot: &hostinfo.ProcessSnapshot{
			Pid:        42,
			Name:       "nginx",
			CPUPercent: 2.5,
			RSSBytes:   104857600,
			VMSBytes:   209715200,
		},
	})
	d.ObserveResult(ts, hostinfo.Result{Pid: 43, Outcome: hostinfo.OutcomeProcessGone})

	report := &sampler.BatchReport{
		BatchID:    "batch-1",
		Enumerated: 2,
		Written:    2,
		Outcomes: map[hostinfo.Outcome]int{
			hostinfo.OutcomeSuccess:     1,
			hostinfo.OutcomeProcessGone: 1,
		},
	}
	require.NoError(t, d.Finish(report))

	received := readPackets(t, conn,
		"process_sampler.process.rss_mb:100",
		"process_sampler.process.vms_mb:200",
		"process_sampler.process.process_gone:1",
		"process_sampler.batch|0",
	)
	assert.Contains(t, received, "process_sampler.process.cpu_percent:2.5")
	assert.Contains(t, received, "process_sampler.process.rss_mb:100")
	assert.Contains(t, received, "pid:42")
	assert.Contains(t, received, "name:nginx")
	assert.Contains(t, received, "process_sampler.process.process_gone:1")
	assert.Contains(t, received, "process_sampler.batch|0")
}
