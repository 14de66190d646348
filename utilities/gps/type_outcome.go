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

package gps

import (
	"time"
)

// Outcome summary of an onboarding run published on the output topic
type Outcome struct {
	ProjectID            string    `json:"projectId"`
	DisplayName          string    `json:"displayName"`
	Status               string    `json:"status"`
	LastCompletedStep    string    `json:"lastCompletedStep"`
	ServiceAccountEmail  string    `json:"serviceAccountEmail,omitempty"`
	OrganizationalUnitID string    `json:"organizationalUnitId"`
	CloudGuardAccountID  string    `json:"cloudGuardAccountId,omitempty"`
	Error                string    `json:"error,omitempty"`
	TriggeringPubsubID   string    `json:"triggeringPubsubId,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
}
