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

package cgd

import (
	"context"
	"strings"
)

// FlatOrganizationalUnitsRoute lists all organizational units without hierarchy
const FlatOrganizationalUnitsRoute = "organizationalunit/GetFlatOrganizationalUnits"

// OrganizationalUnit CloudGuard organizational unit as returned by the flat listing
type OrganizationalUnit struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Path     string `json:"path,omitempty"`
}

// GetFlatOrganizationalUnits lists the organizational units of the CloudGuard account
func (client *Client) GetFlatOrganizationalUnits(ctx context.Context) (organizationalUnits []OrganizationalUnit, err error) {
	if err = client.Get(ctx, FlatOrganizationalUnitsRoute, nil, &organizationalUnits); err != nil {
		return nil, err
	}
	return organizationalUnits, nil
}

// ResolveOrgUnitID returns the id of the first unit whose trimmed name matches the trimmed target, ignoring case.
// An empty target, an empty list or no match resolves to the root organizational unit: empty id, found false.
func ResolveOrgUnitID(organizationalUnits []OrganizationalUnit, target string) (id string, found bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	for _, organizationalUnit := range organizationalUnits {
		if strings.EqualFold(strings.TrimSpace(organizationalUnit.Name), target) {
			return organizationalUnit.ID, true
		}
	}
	return "", false
}
