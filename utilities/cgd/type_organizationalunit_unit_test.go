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
	"errors"
	"testing"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gcptest"
	"gopkg.in/yaml.v2"
)

const resolveCasesYAML = `
- name: emptyList
  target: Prod
  wantID: ""
- name: emptyTarget
  units: [{id: "1", name: Prod}]
  target: ""
  wantID: ""
- name: noMatch
  units: [{id: "1", name: Prod}, {id: "2", name: Dev}]
  target: Staging
  wantID: ""
- name: trailingSpaceInUnitName
  units: [{id: "1", name: "Prod "}]
  target: Prod
  wantID: "1"
  wantFound: true
- name: spacesInTarget
  units: [{id: "1", name: Prod}]
  target: "  Prod "
  wantID: "1"
  wantFound: true
- name: caseInsensitive
  units: [{id: "1", name: Dev}, {id: "2", name: PROD}]
  target: prod
  wantID: "2"
  wantFound: true
- name: firstMatchWins
  units: [{id: "1", name: Prod}, {id: "2", name: Prod}]
  target: Prod
  wantID: "1"
  wantFound: true
- name: noPartialMatch
  units: [{id: "1", name: Production}]
  target: Prod
  wantID: ""
`

type resolveCase struct {
	Name  string `yaml:"name"`
	Units []struct {
		ID   string `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"units"`
	Target    string `yaml:"target"`
	WantID    string `yaml:"wantID"`
	WantFound bool   `yaml:"wantFound"`
}

func TestUnitResolveOrgUnitID(t *testing.T) {
	var testCases []resolveCase
	if err := yaml.Unmarshal([]byte(resolveCasesYAML), &testCases); err != nil {
		t.Fatalf("yaml.Unmarshal %v", err)
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			var organizationalUnits []OrganizationalUnit
			for _, unit := range tc.Units {
				organizationalUnits = append(organizationalUnits, OrganizationalUnit{ID: unit.ID, Name: unit.Name})
			}
			id, found := ResolveOrgUnitID(organizationalUnits, tc.Target)
			if id != tc.WantID {
				t.Errorf("Want id '%s' got '%s'", tc.WantID, id)
			}
			if found != tc.WantFound {
				t.Errorf("Want found %v got %v", tc.WantFound, found)
			}
		})
	}
}

func TestUnitGetFlatOrganizationalUnits(t *testing.T) {
	server := gcptest.NewServer("my-project")
	defer server.Close()
	server.SetOrganizationalUnits(
		gcptest.OrganizationalUnit{ID: "ou-1", Name: "Prod "},
		gcptest.OrganizationalUnit{ID: "ou-2", Name: "Dev"},
	)
	keyID, secret := server.CloudGuardCredentials()
	client, err := NewClient(keyID, secret, server.URL(), "v2")
	if err != nil {
		t.Fatalf("NewClient %v", err)
	}
	organizationalUnits, err := client.GetFlatOrganizationalUnits(context.Background())
	if err != nil {
		t.Fatalf("GetFlatOrganizationalUnits %v", err)
	}
	if len(organizationalUnits) != 2 {
		t.Fatalf("Want 2 units got %d", len(organizationalUnits))
	}
	if id, _ := ResolveOrgUnitID(organizationalUnits, "Prod"); id != "ou-1" {
		t.Errorf("Want ou-1 got %s", id)
	}

	badClient, err := NewClient(keyID, "wrong", server.URL(), "v2")
	if err != nil {
		t.Fatalf("NewClient %v", err)
	}
	_, err = badClient.GetFlatOrganizationalUnits(context.Background())
	if got := erm.HTTPStatus(err); got != 401 {
		t.Errorf("Want status 401 got %d: %v", got, err)
	}
}

func TestUnitRegisterGoogleCloudAccount(t *testing.T) {
	server := gcptest.NewServer("my-project")
	defer server.Close()
	keyID, secret := server.CloudGuardCredentials()
	client, err := NewClient(keyID, secret, server.URL(), "v2")
	if err != nil {
		t.Fatalf("NewClient %v", err)
	}
	key := map[string]interface{}{
		"type":         "service_account",
		"project_id":   "my-project",
		"client_email": "cloudguard-svc-account@my-project.iam.gserviceaccount.com",
	}
	googleCloudAccount, err := client.RegisterGoogleCloudAccount(context.Background(), "My Project", key, "ou-1")
	if err != nil {
		t.Fatalf("RegisterGoogleCloudAccount %v", err)
	}
	if googleCloudAccount.ID != "cg-account-1" || googleCloudAccount.ProjectID != "my-project" {
		t.Errorf("Unexpected account %+v", googleCloudAccount)
	}
	registrations := server.Registrations()
	if len(registrations) != 1 {
		t.Fatalf("Want 1 registration got %d", len(registrations))
	}
	if registrations[0]["name"] != "My Project" || registrations[0]["organizationalUnitId"] != "ou-1" {
		t.Errorf("Unexpected registration payload %v", registrations[0])
	}
	if _, ok := registrations[0]["serviceAccountCredentials"].(map[string]interface{}); !ok {
		t.Errorf("Want credentials sent as a JSON object got %T", registrations[0]["serviceAccountCredentials"])
	}

	server.Fail("register", 400)
	_, err = client.RegisterGoogleCloudAccount(context.Background(), "My Project", key, "")
	var apiError *erm.APIError
	if !errors.As(err, &apiError) || apiError.Status != 400 {
		t.Errorf("Want API error 400 got %v", err)
	}
}
