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

import (
	"strings"
	"time"

	"github.com/BrunoReboul/cloudguardonboard/utilities/cgd"
	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gps"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gsu"
	"github.com/BrunoReboul/cloudguardonboard/utilities/iam"
	"github.com/BrunoReboul/cloudguardonboard/utilities/solution"
	iamv1 "google.golang.org/api/iam/v1"
)

// Onboarding one run of the onboarding sequence for one project
type Onboarding struct {
	Core            *deploy.Core
	Settings        *solution.Settings
	CloudGuard      *cgd.Client
	APIActivation   *gsu.APIActivation
	ProjectCreation gps.ProjectCreation

	LastCompleted        Step
	BillingAccountName   string
	ServiceAccountEmail  string
	OrganizationalUnitID string
	GoogleCloudAccount   cgd.GoogleCloudAccount

	provisioning   *iam.ServiceAccountProvisioning
	serviceAccount *iamv1.ServiceAccount
	key            interface{}
}

// NewOnboarding clock may be nil to use the wall clock
func NewOnboarding(core *deploy.Core, settings *solution.Settings, cloudGuard *cgd.Client, projectCreation gps.ProjectCreation, clock gsu.Clock) *Onboarding {
	apiActivation := gsu.NewAPIActivation(core)
	apiActivation.Settings.PollInterval = time.Duration(settings.PollIntervalSeconds) * time.Second
	apiActivation.Settings.Timeout = time.Duration(settings.ActivationTimeoutSeconds) * time.Second
	if clock != nil {
		apiActivation.Clock = clock
	}
	return &Onboarding{
		Core:            core,
		Settings:        settings,
		CloudGuard:      cloudGuard,
		APIActivation:   apiActivation,
		ProjectCreation: projectCreation,
		LastCompleted:   EventReceived,
		provisioning:    iam.NewServiceAccountProvisioning(core, settings.ServiceAccount.Name, settings.ServiceAccount.DisplayName),
	}
}

// Outcome summary published on the output topic
func (onboarding *Onboarding) Outcome(runErr error) gps.Outcome {
	outcome := gps.Outcome{
		ProjectID:            onboarding.Core.ProjectID,
		DisplayName:          onboarding.ProjectCreation.DisplayName,
		Status:               "onboarded",
		LastCompletedStep:    onboarding.LastCompleted.String(),
		ServiceAccountEmail:  onboarding.ServiceAccountEmail,
		OrganizationalUnitID: onboarding.OrganizationalUnitID,
		CloudGuardAccountID:  onboarding.GoogleCloudAccount.ID,
	}
	if runErr != nil {
		outcome.Status = "failed"
		outcome.Error = strings.TrimSpace(runErr.Error())
	}
	return outcome
}
