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

package deploy

import (
	"context"
	"testing"
)

func TestUnitGetOnboardingAPIList(t *testing.T) {
	apis := GetOnboardingAPIList()
	if len(apis) != 13 {
		t.Errorf("Want 13 onboarding APIs got %d", len(apis))
	}
	if apis[0] != "cloudbilling" {
		t.Errorf("Want cloudbilling first as billing is set before other APIs, got %s", apis[0])
	}
	seen := make(map[string]bool)
	for _, api := range apis {
		if seen[api] {
			t.Errorf("API %s listed twice", api)
		}
		seen[api] = true
	}
}

func TestUnitNewCore(t *testing.T) {
	var testCases = []struct {
		name          string
		projectName   string
		wantProjectID string
		wantErr       bool
	}{
		{name: "projectResourceName", projectName: "projects/my-project-123", wantProjectID: "my-project-123"},
		{name: "missingPrefix", projectName: "my-project-123", wantErr: true},
		{name: "wrongCollection", projectName: "folders/123", wantErr: true},
		{name: "emptyID", projectName: "projects/", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			core, err := NewCore(context.Background(), nil, nil, tc.projectName)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Want an error for '%s'", tc.projectName)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCore %v", err)
			}
			if core.ProjectID != tc.wantProjectID {
				t.Errorf("Want project ID %s got %s", tc.wantProjectID, core.ProjectID)
			}
			if core.ProjectName != tc.projectName {
				t.Errorf("Want project name %s got %s", tc.projectName, core.ProjectName)
			}
		})
	}
}
