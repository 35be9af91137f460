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

package hostinfo

import (
	"context"
	"os"

	"github.com/shirou/gopsutil/v3/host"
	log "github.com/sirupsen/logrus"
)

// Hostname identifies this host in metric tags and push groupings.
func Hostname(ctx context.Context) string {
	info, err := host.InfoWithContext(ctx)
	if err == nil && info.Hostname != "" {
		return info.Hostname
	}

	hostname, hostnameErr := os.Hostname()
	if hostnameErr != nil {
		log.WithError(hostnameErr).Warn("Unable to identify our own hostname")
		return "unknown"
	}
	return hostname
}
