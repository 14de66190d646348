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

package grm

import (
	"strings"

	"cloud.google.com/go/iam"
	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
)

// SecurityReviewer role granted to the CloudGuard service account
const SecurityReviewer iam.RoleName = "roles/iam.securityReviewer"

// ProjectBindings grants a fixed set of roles to one member on the onboarded project
type ProjectBindings struct {
	Core     *deploy.Core
	Settings struct {
		Roles         []string
		DedupeMembers bool
	}
}

// DefaultRoles roles bound when none are configured
func DefaultRoles() []string {
	return []string{string(SecurityReviewer), string(iam.Viewer)}
}

// NewProjectBindings defaults to the security reviewer and viewer roles with member deduplication
func NewProjectBindings(core *deploy.Core) *ProjectBindings {
	projectBindings := &ProjectBindings{Core: core}
	projectBindings.Settings.Roles = DefaultRoles()
	projectBindings.Settings.DedupeMembers = true
	return projectBindings
}

// ServiceAccountMember formats an IAM member from a service account email
func ServiceAccountMember(email string) string {
	if strings.HasPrefix(email, "serviceAccount:") {
		return email
	}
	return "serviceAccount:" + email
}
