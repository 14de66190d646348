// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cgd

import (
	"fmt"
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
)

// restyLogger prints resty diagnostics as structured entries, or drops them when no logger is set
type restyLogger struct {
	logger *glo.Logger
}

func (l restyLogger) print(severity string, format string, v ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf(severity, "cgd_http_client", "%s", strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.print(glo.SeverityError, format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.print(glo.SeverityWarning, format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.print(glo.SeverityDebug, format, v...)
}
