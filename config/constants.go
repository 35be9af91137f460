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

// Constants
package config

import "time"

const (
	// SettingFilename is looked up next to the executable when no --config is given
	SettingFilename = "setting.ini"

	SectionLog     = "SECTION-LOG"
	SectionSampler = "SECTION-SAMPLER"
	SectionMetrics = "SECTION-METRICS"

	KeyLogPath        = "LOG_PATH"
	KeyCPUInterval    = "CPU_INTERVAL"
	KeyMaxWorkers     = "MAX_WORKERS"
	KeyLocale         = "LOCALE"
	KeyLogEncoding    = "LOG_ENCODING"
	KeyPrometheusUri  = "PROMETHEUS_URI"
	KeyStatsdEndpoint = "STATSD_ENDPOINT"
	KeyJobName        = "JOB_NAME"

	LocaleEnglish  = "en"
	LocaleJapanese = "ja"

	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"

	DefaultCPUInterval = 1 * time.Second
	DefaultMaxWorkers  = 0
	DefaultLocale      = LocaleEnglish
	DefaultLogEncoding = EncodingUTF8
	DefaultJobName     = "process_sampler"
)

var (
	ValidLocales   = []string{LocaleEnglish, LocaleJapanese}
	ValidEncodings = []string{EncodingUTF8, EncodingShiftJIS}
)
