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

package bil

import (
	"fmt"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"google.golang.org/api/cloudbilling/v1"
)

// Ensure activates the billing API then links the billing account when the project has none.
// It returns the billing info observed after the operation.
func (projectBilling *ProjectBilling) Ensure() (projectBillingInfo *cloudbilling.ProjectBillingInfo, err error) {
	if projectBilling.Settings.BillingAccountID == "" {
		return nil, &erm.ConfigurationError{Setting: "BILLING_ACCOUNT_ID"}
	}
	if err = projectBilling.Activator.Activate([]string{BillingAPI}); err != nil {
		return nil, err
	}
	projectsService := projectBilling.Core.Services.CloudbillingService.Projects
	resourceName := projectBilling.Core.ProjectName
	projectBillingInfo, err = projectsService.GetBillingInfo(resourceName).Context(projectBilling.Core.Ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("bil projectsService.GetBillingInfo %s %w", resourceName, erm.Transport(err))
	}
	projectBilling.Core.Logger.Debugf("bil_billing_info", "project %s billing account '%s' enabled %v", resourceName, projectBillingInfo.BillingAccountName, projectBillingInfo.BillingEnabled)
	if projectBillingInfo.BillingAccountName != "" || projectBillingInfo.BillingEnabled {
		projectBilling.Core.Logger.Infof("bil_billing_already_set", "project %s already linked to '%s'", resourceName, projectBillingInfo.BillingAccountName)
		return projectBillingInfo, nil
	}
	var projectBillingInfoToEnable cloudbilling.ProjectBillingInfo
	projectBillingInfoToEnable.Name = projectBillingInfo.Name
	projectBillingInfoToEnable.BillingAccountName = BillingAccountName(projectBilling.Settings.BillingAccountID)
	projectBillingInfoToEnable.BillingEnabled = true
	projectBillingInfo, err = projectsService.UpdateBillingInfo(resourceName, &projectBillingInfoToEnable).Context(projectBilling.Core.Ctx).Do()
	if err != nil {
		projectBilling.Core.Logger.Printf(glo.SeverityError, "bil_update_failed", "Exception during the update of billing information for project: %s", resourceName)
		return nil, fmt.Errorf("bil projectsService.UpdateBillingInfo %s %w", resourceName, erm.Transport(err))
	}
	if !projectBillingInfo.BillingEnabled {
		return nil, fmt.Errorf("bil enabling billing account %s on %s failed", projectBillingInfoToEnable.BillingAccountName, resourceName)
	}
	projectBilling.Core.Logger.Infof("bil_billing_enabled", "project %s billing enabled on %s", resourceName, projectBillingInfo.BillingAccountName)
	return projectBillingInfo, nil
}
