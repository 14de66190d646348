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

package onboard

// Step onboarding state, a step is reached when its operation completed
type Step int

// Steps in execution order
const (
	EventReceived Step = iota
	BillingEnsured
	ApisEnabled
	ServiceAccountReady
	PolicyUpdated
	KeyIssued
	OrgUnitResolved
	Registered
)

var stepNames = [...]string{
	"EventReceived",
	"BillingEnsured",
	"ApisEnabled",
	"ServiceAccountReady",
	"PolicyUpdated",
	"KeyIssued",
	"OrgUnitResolved",
	"Registered",
}

func (step Step) String() string {
	if step < 0 || int(step) >= len(stepNames) {
		return "Unknown"
	}
	return stepNames[step]
}
