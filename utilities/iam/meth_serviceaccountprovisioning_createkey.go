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
	"fmt"

	"github.com/BrunoReboul/cloudguardonboard/utilities/cod"
	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"google.golang.org/api/iam/v1"
)

// CreateKey mints a key for the service account and returns the decoded credentials file
func (serviceAccountProvisioning *ServiceAccountProvisioning) CreateKey(serviceAccount *iam.ServiceAccount) (key interface{}, err error) {
	if serviceAccount == nil || serviceAccount.Email == "" {
		return nil, fmt.Errorf("iam CreateKey service account email is missing")
	}
	name := fmt.Sprintf("%s/serviceAccounts/%s", serviceAccountProvisioning.Core.ProjectName, serviceAccount.Email)
	var request iam.CreateServiceAccountKeyRequest
	request.PrivateKeyType = KeyTypeCredentialsFile
	serviceAccountKey, err := serviceAccountProvisioning.Core.Services.IAMService.Projects.ServiceAccounts.Keys.Create(name, &request).Context(serviceAccountProvisioning.Core.Ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("iam Keys.Create %s %w", name, erm.Transport(err))
	}
	serviceAccountProvisioning.Core.Logger.Infof("iam_key_created", "new key %s type %s", serviceAccountKey.Name, serviceAccountKey.KeyType)
	key, err = cod.DecodeKey(serviceAccountKey.PrivateKeyData)
	if err != nil {
		return nil, fmt.Errorf("iam DecodeKey %s %w", serviceAccountKey.Name, err)
	}
	return key, nil
}
