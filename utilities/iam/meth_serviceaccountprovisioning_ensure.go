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

package iam

import (
	"errors"
	"fmt"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"google.golang.org/api/iam/v1"
)

var errFound = errors.New("found")

// Ensure creates the service account, or finds it by display name when it already exists
func (serviceAccountProvisioning *ServiceAccountProvisioning) Ensure() (serviceAccount *iam.ServiceAccount, err error) {
	projectServiceAccountService := serviceAccountProvisioning.Core.Services.IAMService.Projects.ServiceAccounts
	var request iam.CreateServiceAccountRequest
	request.AccountId = serviceAccountProvisioning.Settings.AccountID
	request.ServiceAccount = &iam.ServiceAccount{
		DisplayName: serviceAccountProvisioning.Settings.DisplayName,
		Description: serviceAccountProvisioning.Settings.Description,
	}
	serviceAccount, err = projectServiceAccountService.Create(serviceAccountProvisioning.Core.ProjectName, &request).Context(serviceAccountProvisioning.Core.Ctx).Do()
	if err == nil {
		serviceAccountProvisioning.Core.Logger.Infof("iam_service_account_created", "service account created %s", serviceAccount.Email)
		return serviceAccount, nil
	}
	if !erm.IsAlreadyExists(err) {
		return nil, fmt.Errorf("iam projectServiceAccountService.Create %s %w", request.AccountId, erm.Transport(err))
	}
	serviceAccountProvisioning.Core.Logger.Infof("iam_service_account_exists", "service account %s already exists. Trying to fetch it", request.AccountId)
	return serviceAccountProvisioning.FindByDisplayName(serviceAccountProvisioning.Settings.DisplayName)
}

// FindByDisplayName walks all pages of the project service accounts and returns the first exact match
func (serviceAccountProvisioning *ServiceAccountProvisioning) FindByDisplayName(displayName string) (serviceAccount *iam.ServiceAccount, err error) {
	projectServiceAccountService := serviceAccountProvisioning.Core.Services.IAMService.Projects.ServiceAccounts
	err = projectServiceAccountService.List(serviceAccountProvisioning.Core.ProjectName).Pages(serviceAccountProvisioning.Core.Ctx,
		func(response *iam.ListServiceAccountsResponse) error {
			for _, account := range response.Accounts {
				if account.DisplayName == displayName {
					serviceAccount = account
					return errFound
				}
			}
			return nil
		})
	if err != nil && !errors.Is(err, errFound) {
		return nil, fmt.Errorf("iam projectServiceAccountService.List %s %w", serviceAccountProvisioning.Core.ProjectName, erm.Transport(err))
	}
	if serviceAccount == nil {
		serviceAccountProvisioning.Core.Logger.Printf(glo.SeverityError, "iam_service_account_not_found", "Couldn't find service account by display name: %s", displayName)
		return nil, fmt.Errorf("iam no service account with display name '%s' in %s", displayName, serviceAccountProvisioning.Core.ProjectName)
	}
	serviceAccountProvisioning.Core.Logger.Infof("iam_service_account_found", "found service account %s", serviceAccount.Email)
	return serviceAccount, nil
}
