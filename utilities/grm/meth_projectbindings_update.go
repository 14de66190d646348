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
	"fmt"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"google.golang.org/api/cloudresourcemanager/v1"
)

// Update binds the member to the configured roles with a single read-modify-write cycle
func (projectBindings *ProjectBindings) Update(member string) (updatedPolicy *cloudresourcemanager.Policy, err error) {
	projectsService := projectBindings.Core.Services.CloudresourcemanagerService.Projects
	projectID := projectBindings.Core.ProjectID
	// READ
	var getRequest cloudresourcemanager.GetIamPolicyRequest
	getRequest.Options = &cloudresourcemanager.GetPolicyOptions{}
	policy, err := projectsService.GetIamPolicy(projectID, &getRequest).Context(projectBindings.Core.Ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("grm projectsService.GetIamPolicy %s %w", projectID, erm.Transport(err))
	}
	// MODIFY
	if !projectBindings.Settings.DedupeMembers || NeedsUpdate(policy, member, projectBindings.Settings.Roles) {
		policy = MergeBindings(policy, member, projectBindings.Settings.Roles, projectBindings.Settings.DedupeMembers)
	} else {
		projectBindings.Core.Logger.Infof("grm_policy_unchanged", "member %s already has roles %v on project %s", member, projectBindings.Settings.Roles, projectID)
	}
	// WRITE
	var setRequest cloudresourcemanager.SetIamPolicyRequest
	setRequest.Policy = policy
	updatedPolicy, err = projectsService.SetIamPolicy(projectID, &setRequest).Context(projectBindings.Core.Ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("grm projectsService.SetIamPolicy %s %w", projectID, erm.Transport(err))
	}
	projectBindings.Core.Logger.Infof("grm_policy_updated", "member %s bound to %v on project %s", member, projectBindings.Settings.Roles, projectID)
	return updatedPolicy, nil
}
