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
	"os"

	"github.com/pkg/errors"
	"github.com/racker/process-resource-sampler/config"
	"github.com/racker/process-resource-sampler/hostinfo"
	"github.com/racker/process-resource-sampler/logsink"
	"github.com/racker/process-resource-sampler/metrics"
	"github.com/racker/process-resource-sampler/sampler"
	"github.com/racker/process-resource-sampler/utils"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ErrorSettingFileMissing = errors.New("Setting file was not found")
	ErrorLogDirMissing      = errors.New("Log directory does not exist")
)

// resolveHostname names this host in metric tags and push groupings
var resolveHostname = hostinfo.Hostname

var (
	sampleConfigFilePath string
	SampleCmd            = &cobra.Command{
		Use:   "sample",
		Short: "Sample every running process once and append the results to the log",
		Run:   sampleCmdRun,
	}
)

func init() {
	SampleCmd.Flags().StringVar(&sampleConfigFilePath, "config", "",
		"Path to the setting file, defaults to "+config.SettingFilename+" next to the executable")
}

func sampleCmdRun(cmd *cobra.Command, args []string) {
	path := sampleConfigFilePath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		utils.Die(err, "The setting file could not be used. Exiting.", "Setting file: "+path)
		return
	}

	if _, err := RunBatch(context.Background(), cfg, hostinfo.NewProcessProvider()); err != nil {
		utils.Die(err, "Sampling batch failed")
	}
}

// LoadConfig reads and validates the setting file at path.
func LoadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(ErrorSettingFileMissing, path)
	}

	cfg := config.NewConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.LogDirExists() {
		return nil, errors.Wrap(ErrorLogDirMissing, cfg.LogPath)
	}
	return cfg, nil
}

// RunBatch opens the log, samples every process once, releases the log and then
// publishes the batch to whichever metrics backends are configured. The log file
// failing to open is returned before any sampling starts.
func RunBatch(ctx context.Context, cfg *config.Config, provider hostinfo.ProcessProvider) (*sampler.BatchReport, error) {
	sink, created, err := logsink.Open(cfg.LogPath, logsink.Options{
		Header:   logsink.Header(cfg.Locale),
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"file":    cfg.LogPath,
		"created": created,
	}).Info("Appending to log")

	s := sampler.NewSampler(cfg, provider, sink)

	var hostname string
	if cfg.StatsdEndpoint != "" || cfg.PrometheusUri != "" {
		hostname = resolveHostname(ctx)
	}

	var distributor *metrics.StatsdDistributor
	if cfg.StatsdEndpoint != "" {
		distributor, err = metrics.NewStatsdDistributor(cfg.StatsdEndpoint, hostname)
		if err != nil {
			log.WithError(err).WithField("endpoint", cfg.StatsdEndpoint).Warn("Failed to start statsd distribution")
		} else {
			defer distributor.Close()
			s.AddObserver(distributor)
		}
	}

	report, runErr := s.Run(ctx)
	if err := sink.Close(); err != nil && runErr == nil {
		runErr = errors.Wrap(err, "close log file")
	}

	if distributor != nil {
		if err := distributor.Finish(report); err != nil {
			log.WithError(err).Warn("Failed to send batch service check to statsd")
		}
	}

	if cfg.PrometheusUri != "" {
		publisher := metrics.NewPublisher()
		publisher.Record(report)
		if err := publisher.Push(cfg.PrometheusUri, cfg.JobName, hostname); err != nil {
			log.WithFields(log.Fields{
				"err": err,
				"uri": cfg.PrometheusUri,
			}).Warn("Failed to push metrics to Prometheus gateway")
		}
	}

	return report, runErr
}
