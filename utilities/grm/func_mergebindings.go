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
	"github.com/BrunoReboul/cloudguardonboard/utilities/str"
	"google.golang.org/api/cloudresourcemanager/v1"
)

// MergeBindings returns a copy of policy where member is bound to each role.
// An existing binding for a role gets the member appended, a missing one is created at the end.
// Bindings for other roles, etag, version and audit configs are passed through.
// When dedupe is true a member already present in a binding is not appended twice.
func MergeBindings(policy *cloudresourcemanager.Policy, member string, roles []string, dedupe bool) *cloudresourcemanager.Policy {
	var merged cloudresourcemanager.Policy
	if policy != nil {
		merged = *policy
	}
	merged.Bindings = make([]*cloudresourcemanager.Binding, 0, len(merged.Bindings)+len(roles))
	if policy != nil {
		for _, binding := range policy.Bindings {
			if binding == nil {
				continue
			}
			bindingCopy := *binding
			bindingCopy.Members = append([]string(nil), binding.Members...)
			merged.Bindings = append(merged.Bindings, &bindingCopy)
		}
	}
	for _, role := range roles {
		binding := findBinding(merged.Bindings, role)
		if binding == nil {
			merged.Bindings = append(merged.Bindings, &cloudresourcemanager.Binding{
				Role:    role,
				Members: []string{member},
			})
			continue
		}
		if dedupe && hasMember(binding, member) {
			continue
		}
		binding.Members = append(binding.Members, member)
	}
	return &merged
}

// NeedsUpdate reports whether merging member into policy would change it
func NeedsUpdate(policy *cloudresourcemanager.Policy, member string, roles []string) bool {
	if policy == nil {
		return len(roles) > 0
	}
	for _, role := range roles {
		binding := findBinding(policy.Bindings, role)
		if binding == nil || !hasMember(binding, member) {
			return true
		}
	}
	return false
}

// findBinding returns the first unconditional binding of role
func findBinding(bindings []*cloudresourcemanager.Binding, role string) *cloudresourcemanager.Binding {
	for _, binding := range bindings {
		if binding != nil && binding.Role == role && binding.Condition == nil {
			return binding
		}
	}
	return nil
}

func hasMember(binding *cloudresourcemanager.Binding, member string) bool {
	return str.Find(binding.Members, member)
}
