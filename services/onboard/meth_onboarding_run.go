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
	"fmt"

	"github.com/BrunoReboul/cloudguardonboard/utilities/bil"
	"github.com/BrunoReboul/cloudguardonboard/utilities/cgd"
	"github.com/BrunoReboul/cloudguardonboard/utilities/cod"
	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"github.com/BrunoReboul/cloudguardonboard/utilities/grm"
)

// Run executes the remaining steps in order and stops on the first failure
func (onboarding *Onboarding) Run() error {
	steps := []struct {
		to Step
		do func() error
	}{
		{to: BillingEnsured, do: onboarding.ensureBilling},
		{to: ApisEnabled, do: onboarding.enableAPIs},
		{to: ServiceAccountReady, do: onboarding.ensureServiceAccount},
		{to: PolicyUpdated, do: onboarding.updatePolicy},
		{to: KeyIssued, do: onboarding.issueKey},
		{to: OrgUnitResolved, do: onboarding.resolveOrgUnit},
		{to: Registered, do: onboarding.register},
	}
	// the key never outlives the run
	defer func() { onboarding.key = nil }()
	for _, step := range steps {
		if step.to <= onboarding.LastCompleted {
			continue
		}
		if err := step.do(); err != nil {
			onboarding.Core.Logger.Println(glo.Entry{
				Severity:    glo.SeverityError,
				Message:     "step_failed",
				Description: err.Error(),
				Step:        step.to.String(),
			})
			return &erm.StepError{
				Failed:        step.to.String(),
				LastCompleted: onboarding.LastCompleted.String(),
				Err:           err,
			}
		}
		onboarding.LastCompleted = step.to
		onboarding.Core.Logger.Println(glo.Entry{
			Severity: glo.SeverityInfo,
			Message:  "step_completed",
			Step:     step.to.String(),
		})
	}
	return nil
}

func (onboarding *Onboarding) ensureBilling() error {
	projectBilling := bil.NewProjectBilling(onboarding.Core, onboarding.APIActivation, onboarding.Settings.BillingAccountID)
	projectBillingInfo, err := projectBilling.Ensure()
	if err != nil {
		return err
	}
	onboarding.BillingAccountName = projectBillingInfo.BillingAccountName
	return nil
}

func (onboarding *Onboarding) enableAPIs() error {
	return onboarding.APIActivation.Activate(onboarding.Settings.APIs)
}

func (onboarding *Onboarding) ensureServiceAccount() error {
	serviceAccount, err := onboarding.provisioning.Ensure()
	if err != nil {
		return err
	}
	onboarding.serviceAccount = serviceAccount
	onboarding.ServiceAccountEmail = serviceAccount.Email
	return nil
}

func (onboarding *Onboarding) updatePolicy() error {
	projectBindings := grm.NewProjectBindings(onboarding.Core)
	projectBindings.Settings.Roles = onboarding.Settings.Roles
	projectBindings.Settings.DedupeMembers = onboarding.Settings.DedupeMembers
	policy, err := projectBindings.Update(grm.ServiceAccountMember(onboarding.ServiceAccountEmail))
	if err != nil {
		return err
	}
	if onboarding.Core.Logger.Enabled(glo.SeverityDebug) {
		for _, binding := range policy.Bindings {
			onboarding.Core.Logger.Debugf("policy_binding", "%s %v", binding.Role, binding.Members)
		}
	}
	return nil
}

func (onboarding *Onboarding) issueKey() error {
	key, err := onboarding.provisioning.CreateKey(onboarding.serviceAccount)
	if err != nil {
		return err
	}
	keyInfo, err := cod.GetKeyInfo(key)
	if err != nil {
		return err
	}
	if keyInfo.ClientEmail != onboarding.ServiceAccountEmail {
		return fmt.Errorf("onboard key issued for %s want %s", keyInfo.ClientEmail, onboarding.ServiceAccountEmail)
	}
	onboarding.key = key
	onboarding.Core.Logger.Infof("key_issued", "key %s for %s", keyInfo.PrivateKeyID, keyInfo.ClientEmail)
	return nil
}

func (onboarding *Onboarding) resolveOrgUnit() error {
	organizationalUnits, err := onboarding.CloudGuard.GetFlatOrganizationalUnits(onboarding.Core.Ctx)
	if err != nil {
		return err
	}
	onboarding.Core.Logger.Debugf("flat_org_units", "%v", organizationalUnits)
	id, found := cgd.ResolveOrgUnitID(organizationalUnits, onboarding.Settings.OrgUnitTarget)
	if !found {
		onboarding.Core.Logger.Warningf("org_unit_not_found", "The organizational unit '%s' does not exist. Will onboard on the root organization", onboarding.Settings.OrgUnitTarget)
	}
	onboarding.OrganizationalUnitID = id
	return nil
}

func (onboarding *Onboarding) register() error {
	googleCloudAccount, err := onboarding.CloudGuard.RegisterGoogleCloudAccount(onboarding.Core.Ctx, onboarding.ProjectCreation.DisplayName, onboarding.key, onboarding.OrganizationalUnitID)
	if err != nil {
		return err
	}
	onboarding.GoogleCloudAccount = googleCloudAccount
	onboarding.Core.Logger.Debugf("cloudguard_account", "%+v", googleCloudAccount)
	return nil
}
