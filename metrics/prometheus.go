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

// Package metrics publishes batch results to Prometheus and statsd
package metrics

import (
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/sampler"
	"github.com/racker/process-resource-sampler/utils"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPrometheusPushGatewayPort = "9091"
	prometheusService                = "prometheus"
	prometheusProto                  = "tcp"

	metricNamespace    = "process_sampler"
	metricLabelOutcome = "outcome"
)

var ErrUnsupportedScheme = errors.New("Unsupported Prometheus gateway URI scheme")

// Publisher holds the gauges describing the most recent batch.
type Publisher struct {
	registry   *prometheus.Registry
	processes  *prometheus.GaugeVec
	enumerated prometheus.Gauge
	written    prometheus.Gauge
	duration   prometheus.Gauge
	lastRun    prometheus.Gauge
}

func NewPublisher() *Publisher {
	p := &Publisher{
		registry: prometheus.NewRegistry(),
		processes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "processes",
			Help:      "Processes sampled in the last batch, by outcome.",
		}, []string{metricLabelOutcome}),
		enumerated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "enumerated_processes",
			Help:      "Processes visible when the last batch started.",
		}),
		written: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "rows_written",
			Help:      "Rows appended to the log by the last batch.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of the last batch.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last batch completed.",
		}),
	}
	p.registry.MustRegister(p.processes, p.enumerated, p.written, p.duration, p.lastRun)
	return p
}

func (p *Publisher) Registry() *prometheus.Registry {
	return p.registry
}

// Record loads the gauges from report.
func (p *Publisher) Record(report *sampler.BatchReport) {
	for _, o := range hostinfo.Outcomes {
		p.processes.WithLabelValues(o.String()).Set(float64(report.Count(o)))
	}
	p.enumerated.Set(float64(report.Enumerated))
	p.written.Set(float64(report.Written))
	p.duration.Set(utils.ScaleFractionalDuration(report.Elapsed, time.Second))
	p.lastRun.Set(float64(utils.Now().Unix()))
}

// Push sends the registry to the push gateway named by gatewayUri, grouped by host.
func (p *Publisher) Push(gatewayUri string, job string, hostname string) error {
	gateway, err := ResolvePushGateway(gatewayUri)
	if err != nil {
		return err
	}

	log.WithField("gateway", gateway).Debug("Pushing metrics to Prometheus gateway")
	return push.New(gateway, job).
		Gatherer(p.registry).
		Grouping("instance", hostname).
		Push()
}

// ResolvePushGateway turns a srv://, tcp://, http:// or https:// URI into the gateway URL.
func ResolvePushGateway(gatewayUri string) (string, error) {
	parsed, err := url.Parse(gatewayUri)
	if err != nil {
		return "", errors.Wrapf(err, "parse Prometheus gateway URI %s", gatewayUri)
	}

	switch parsed.Scheme {
	case "srv":
		_, addrs, err := net.LookupSRV(prometheusService, prometheusProto, parsed.Hostname())
		if err != nil {
			return "", errors.Wrapf(err, "resolve Prometheus gateway service %s", parsed.Hostname())
		}
		if len(addrs) == 0 {
			return "", errors.Errorf("No addresses resolved for Prometheus gateway service %s", parsed.Hostname())
		}
		return "http://" + net.JoinHostPort(addrs[0].Target, strconv.Itoa(int(addrs[0].Port))), nil

	case "tcp":
		port := parsed.Port()
		if port == "" {
			port = defaultPrometheusPushGatewayPort
		}
		return "http://" + net.JoinHostPort(parsed.Hostname(), port), nil

	case "http", "https":
		return gatewayUri, nil
	}

	return "", errors.Wrapf(ErrUnsupportedScheme, "%q", parsed.Scheme)
}
