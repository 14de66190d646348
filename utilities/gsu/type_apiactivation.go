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

package gsu

import (
	"strings"
	"time"

	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
)

// Service Usage states, and the default wait budget of one API activation
const (
	StateUnspecified    = "STATE_UNSPECIFIED"
	StateDisabled       = "DISABLED"
	StateEnabling       = "ENABLING"
	StateEnabled        = "ENABLED"
	DefaultPollInterval = 30 * time.Second
	DefaultTimeout      = 300 * time.Second
)

// Clock lets the poll loop be driven by a fake time in tests
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// APIActivation enables APIs on the onboarded project, one after the other
type APIActivation struct {
	Core     *deploy.Core
	Clock    Clock
	Settings struct {
		PollInterval time.Duration
		Timeout      time.Duration
	}
}

// NewAPIActivation create an activation with the default wait budget
func NewAPIActivation(core *deploy.Core) *APIActivation {
	apiActivation := &APIActivation{
		Core:  core,
		Clock: realClock{},
	}
	apiActivation.Settings.PollInterval = DefaultPollInterval
	apiActivation.Settings.Timeout = DefaultTimeout
	return apiActivation
}

// ServiceResourceName returns projects/{projectID}/services/{api}.googleapis.com
func ServiceResourceName(projectName string, apiName string) string {
	if !strings.HasSuffix(apiName, ".googleapis.com") {
		apiName = apiName + ".googleapis.com"
	}
	return projectName + "/services/" + apiName
}

func isEnabled(state string) bool {
	return strings.EqualFold(state, StateEnabled)
}
