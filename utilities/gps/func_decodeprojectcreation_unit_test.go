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

package gps

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
)

const createProjectEntry = `{
  "protoPayload": {
    "@type": "type.googleapis.com/google.cloud.audit.AuditLog",
    "methodName": "CreateProject",
    "resourceName": "projects/my-project",
    "serviceName": "cloudresourcemanager.googleapis.com",
    "request": {
      "@type": "type.googleapis.com/google.cloudresourcemanager.v1.CreateProjectRequest",
      "project": {
        "name": "My Project",
        "projectId": "my-project",
        "parent": {"type": "folder", "id": "123456789"}
      }
    }
  },
  "severity": "NOTICE"
}`

func TestUnitDecodeProjectCreation(t *testing.T) {
	var testCases = []struct {
		name             string
		data             []byte
		wantResourceName string
		wantDisplayName  string
		wantPayloadError bool
	}{
		{
			name:             "json",
			data:             []byte(createProjectEntry),
			wantResourceName: "projects/my-project",
			wantDisplayName:  "My Project",
		},
		{
			name:             "base64",
			data:             []byte(base64.StdEncoding.EncodeToString([]byte(createProjectEntry))),
			wantResourceName: "projects/my-project",
			wantDisplayName:  "My Project",
		},
		{
			name:             "missingDisplayName",
			data:             []byte(`{"protoPayload":{"resourceName":"projects/p2"}}`),
			wantResourceName: "projects/p2",
			wantDisplayName:  "p2",
		},
		{
			name:             "missingResourceName",
			data:             []byte(`{"protoPayload":{"request":{"project":{"name":"x"}}}}`),
			wantPayloadError: true,
		},
		{
			name:             "notAProject",
			data:             []byte(`{"protoPayload":{"resourceName":"folders/123"}}`),
			wantPayloadError: true,
		},
		{
			name:             "empty",
			data:             []byte("  "),
			wantPayloadError: true,
		},
		{
			name:             "garbage",
			data:             []byte("cron schedule!"),
			wantPayloadError: true,
		},
		{
			name:             "truncatedJSON",
			data:             []byte(`{"protoPayload":`),
			wantPayloadError: true,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			projectCreation, err := DecodeProjectCreation(tc.data)
			if tc.wantPayloadError {
				var payloadError *erm.PayloadError
				if !errors.As(err, &payloadError) {
					t.Errorf("Want a payload error got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeProjectCreation %v", err)
			}
			if projectCreation.ResourceName != tc.wantResourceName {
				t.Errorf("Want resource name %s got %s", tc.wantResourceName, projectCreation.ResourceName)
			}
			if projectCreation.DisplayName != tc.wantDisplayName {
				t.Errorf("Want display name %s got %s", tc.wantDisplayName, projectCreation.DisplayName)
			}
		})
	}
}
