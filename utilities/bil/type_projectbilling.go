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
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
)

// BillingAPI is activated before reading project billing info
const BillingAPI = "cloudbilling"

// Activator enables APIs on the onboarded project
type Activator interface {
	Activate(apiNames []string) error
}

// ProjectBilling links the configured billing account to the project when it has none
type ProjectBilling struct {
	Core      *deploy.Core
	Activator Activator
	Settings  struct {
		BillingAccountID string
	}
}

// NewProjectBilling returns a ProjectBilling for the core project
func NewProjectBilling(core *deploy.Core, activator Activator, billingAccountID string) *ProjectBilling {
	projectBilling := &ProjectBilling{
		Core:      core,
		Activator: activator,
	}
	projectBilling.Settings.BillingAccountID = billingAccountID
	return projectBilling
}

// BillingAccountName accepts either an id or a billingAccounts/{id} resource name
func BillingAccountName(billingAccountID string) string {
	if strings.HasPrefix(billingAccountID, "billingAccounts/") {
		return billingAccountID
	}
	return "billingAccounts/" + billingAccountID
}
