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

// Package config declares the settings a sampling run is constructed with
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ini "github.com/lars-t-hansen/ini"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorNoLogPath         = errors.New("No log path is defined")
	ErrorInvalidInterval   = errors.New("CPU interval must be positive")
	ErrorInvalidMaxWorkers = errors.New("Max workers must not be negative")
	// English degraded-row messages contain characters Shift_JIS cannot encode
	ErrorEncodingLocale    = errors.New("LOG_ENCODING shift_jis requires LOCALE ja")
)

type Config struct {
	// Log output
	LogPath     string
	LogEncoding string
	Locale      string

	// Sampling
	CPUInterval time.Duration
	// MaxWorkers bounds concurrent sampling tasks; zero runs one task per process at once
	MaxWorkers int

	// Metrics
	PrometheusUri  string
	StatsdEndpoint string
	JobName        string
}

type configEntry struct {
	Section  string
	Name     string
	ValuePtr interface{}
	Allowed  []string
}

func NewConfig() *Config {
	return &Config{
		LogEncoding: DefaultLogEncoding,
		Locale:      DefaultLocale,
		CPUInterval: DefaultCPUInterval,
		MaxWorkers:  DefaultMaxWorkers,
		JobName:     DefaultJobName,
	}
}

// DefaultConfigPath is the setting file that sits next to the running executable.
func DefaultConfigPath() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return filepath.Join(filepath.Dir(exe), SettingFilename)
}

// LoadFromFile populates this Config with the values defined in that file.
func (cfg *Config) LoadFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "setting file %s", path)
	}
	defer f.Close()

	if err := cfg.Load(f); err != nil {
		return errors.Wrapf(err, "setting file %s", path)
	}

	log.WithField("file", path).Info("Loaded configuration")
	return nil
}

// Load parses INI content, assigning every entry that is present.
func (cfg *Config) Load(r io.Reader) error {
	parser := ini.NewParser()
	entries := cfg.DefineConfigEntries()
	fields := make([]*ini.Field, len(entries))
	for _, name := range []string{SectionLog, SectionSampler, SectionMetrics} {
		section := parser.AddSection(name)
		for i, entry := range entries {
			if entry.Section == name {
				fields[i] = section.AddString(entry.Name)
			}
		}
	}

	store, err := parser.Parse(r)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if !fields[i].Present(store) {
			continue
		}
		if err := entry.Assign(fields[i].StringVal(store)); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *Config) DefineConfigEntries() []configEntry {
	return []configEntry{
		{
			Section:  SectionLog,
			Name:     KeyLogPath,
			ValuePtr: &cfg.LogPath,
		},
		{
			Section:  SectionLog,
			Name:     KeyLogEncoding,
			ValuePtr: &cfg.LogEncoding,
			Allowed:  ValidEncodings,
		},
		{
			Section:  SectionSampler,
			Name:     KeyCPUInterval,
			ValuePtr: &cfg.CPUInterval,
		},
		{
			Section:  SectionSampler,
			Name:     KeyMaxWorkers,
			ValuePtr: &cfg.MaxWorkers,
		},
		{
			Section:  SectionSampler,
			Name:     KeyLocale,
			ValuePtr: &cfg.Locale,
			Allowed:  ValidLocales,
		},
		{
			Section:  SectionMetrics,
			Name:     KeyPrometheusUri,
			ValuePtr: &cfg.PrometheusUri,
		},
		{
			Section:  SectionMetrics,
			Name:     KeyStatsdEndpoint,
			ValuePtr: &cfg.StatsdEndpoint,
		},
		{
			Section:  SectionMetrics,
			Name:     KeyJobName,
			ValuePtr: &cfg.JobName,
		},
	}
}

// Assign converts raw into the entry's value type. Surrounding double quotes are removed
// since Windows paths are usually quoted in setting files.
func (e *configEntry) Assign(raw string) error {
	value := strings.TrimSpace(strings.Replace(raw, `"`, "", -1))
	if err := e.IsAllowed(value); err != nil {
		return fmt.Errorf("Disallowed value in %s : %v", e.Name, err)
	}

	switch valuePtr := e.ValuePtr.(type) {
	case *string:
		*valuePtr = value
	case *int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "Invalid integer in %s", e.Name)
		}
		*valuePtr = n
	case *time.Duration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "Invalid duration in %s", e.Name)
		}
		*valuePtr = d
	default:
		return fmt.Errorf("Unsupported config entry type for %s", e.Name)
	}
	return nil
}

func (e *configEntry) IsAllowed(actualValue string) error {
	if len(e.Allowed) == 0 {
		return nil
	}

	for _, a := range e.Allowed {
		if strings.EqualFold(a, actualValue) {
			return nil
		}
	}

	return fmt.Errorf("The value '%s' is not allowed. Expected %v", actualValue, e.Allowed)
}

func (cfg *Config) Validate() error {
	if len(cfg.LogPath) == 0 {
		return ErrorNoLogPath
	}
	if cfg.CPUInterval <= 0 {
		return ErrorInvalidInterval
	}
	if cfg.MaxWorkers < 0 {
		return ErrorInvalidMaxWorkers
	}
	cfg.Locale = strings.ToLower(cfg.Locale)
	cfg.LogEncoding = strings.ToLower(cfg.LogEncoding)
	if cfg.LogEncoding == EncodingShiftJIS && cfg.Locale != LocaleJapanese {
		return ErrorEncodingLocale
	}
	return nil
}

// LogDirExists reports whether the directory that will hold the log file is present.
func (cfg *Config) LogDirExists() bool {
	info, err := os.Stat(filepath.Dir(cfg.LogPath))
	return err == nil && info.IsDir()
}
