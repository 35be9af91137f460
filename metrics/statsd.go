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

package metrics

import (
	"fmt"
	"strconv"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/sampler"
	log "github.com/sirupsen/logrus"
)

const (
	statsdNamespace = "process_sampler."
	batchService    = "process_sampler.batch"
)

// StatsdDistributor sends one set of gauges per successfully sampled process and a
// service check per batch.
type StatsdDistributor struct {
	endpoint string
	hostname string
	client   *statsd.Client
}

func NewStatsdDistributor(endpoint string, hostname string) (*StatsdDistributor, error) {
	client, err := statsd.New(endpoint,
		statsd.WithNamespace(statsdNamespace),
		statsd.WithoutTelemetry(),
	)
	if err != nil {
		return nil, err
	}

	log.WithField("endpoint", endpoint).Info("Using statsd metrics distribution")
	return &StatsdDistributor{
		endpoint: endpoint,
		hostname: hostname,
		client:   client,
	}, nil
}

func (d *StatsdDistributor) String() string {
	return fmt.Sprintf("statsdDistributor[endpoint=%s]", d.endpoint)
}

// ObserveResult is called from sampling tasks concurrently; the statsd client is goroutine safe.
func (d *StatsdDistributor) ObserveResult(ts sampler.BatchTimestamp, result hostinfo.Result) {
	if result.Outcome != hostinfo.OutcomeSuccess || result.Snapshot == nil {
		d.incr("process."+result.Outcome.String(), []string{"host:" + d.hostname})
		return
	}

	s := result.Snapshot
	tags := []string{
		"host:" + d.hostname,
		"pid:" + strconv.FormatInt(int64(s.Pid), 10),
		"name:" + s.Name,
	}
	d.gauge("process.cpu_percent", s.CPUPercent, tags)
	d.gauge("process.rss_mb", s.RSSMB(), tags)
	d.gauge("process.vms_mb", s.VMSMB(), tags)
}

func (d *StatsdDistributor) gauge(name string, value float64, tags []string) {
	if err := d.client.Gauge(name, value, tags, 1); err != nil {
		log.WithError(err).WithField("metric", name).Debug("Failed to send gauge to statsd")
	}
}

func (d *StatsdDistributor) incr(name string, tags []string) {
	if err := d.client.Incr(name, tags, 1); err != nil {
		log.WithError(err).WithField("metric", name).Debug("Failed to send counter to statsd")
	}
}

// Finish sends the batch service check and flushes buffered metrics.
func (d *StatsdDistributor) Finish(report *sampler.BatchReport) error {
	serviceCheck := statsd.NewServiceCheck(batchService, mapReportToServiceCheckStatus(report))
	serviceCheck.Message = report.String()
	serviceCheck.Hostname = d.hostname
	serviceCheck.Tags = []string{"host:" + d.hostname, "batch:" + report.BatchID}
	if err := d.client.ServiceCheck(serviceCheck); err != nil {
		return err
	}
	return d.client.Flush()
}

func (d *StatsdDistributor) Close() error {
	return d.client.Close()
}

func mapReportToServiceCheckStatus(report *sampler.BatchReport) statsd.ServiceCheckStatus {
	switch {
	case report.Enumerated == 0:
		return statsd.Unknown
	case report.Count(hostinfo.OutcomeFailed) > 0:
		return statsd.Critical
	case report.Written < report.Enumerated:
		return statsd.Warn
	}
	return statsd.Ok
}
