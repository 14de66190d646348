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
	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
)

const (
	// DefaultAccountID service account id used when none is configured
	DefaultAccountID = "cloudguard-svc-account"
	// DefaultDisplayName service account display name used when none is configured
	DefaultDisplayName = "CloudGuard svc account"
	// KeyTypeCredentialsFile google credentials file format
	KeyTypeCredentialsFile = "TYPE_GOOGLE_CREDENTIALS_FILE"
)

// ServiceAccountProvisioning creates or reuses the service account and mints its keys
type ServiceAccountProvisioning struct {
	Core     *deploy.Core
	Settings struct {
		AccountID   string
		DisplayName string
		Description string
	}
}

// NewServiceAccountProvisioning empty names fall back to defaults
func NewServiceAccountProvisioning(core *deploy.Core, accountID string, displayName string) *ServiceAccountProvisioning {
	serviceAccountProvisioning := &ServiceAccountProvisioning{Core: core}
	if accountID == "" {
		accountID = DefaultAccountID
	}
	if displayName == "" {
		displayName = DefaultDisplayName
	}
	serviceAccountProvisioning.Settings.AccountID = accountID
	serviceAccountProvisioning.Settings.DisplayName = displayName
	serviceAccountProvisioning.Settings.Description = "Solution: CloudGuard onboarding, read only access for posture management"
	return serviceAccountProvisioning
}
