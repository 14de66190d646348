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
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
)

// DecodeProjectCreation parses a CreateProject audit log entry.
// data is the JSON entry, or its base64 encoding when a message is replayed by hand.
// An empty display name falls back to the project ID.
func DecodeProjectCreation(data []byte) (projectCreation ProjectCreation, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return projectCreation, &erm.PayloadError{Reason: "empty message data"}
	}
	if data[0] != '{' {
		decoded, decodeErr := base64.StdEncoding.DecodeString(string(data))
		if decodeErr != nil {
			return projectCreation, &erm.PayloadError{Reason: "message data is neither JSON nor base64", Err: decodeErr}
		}
		data = bytes.TrimSpace(decoded)
	}
	var entry auditLogEntry
	if err = json.Unmarshal(data, &entry); err != nil {
		return projectCreation, &erm.PayloadError{Reason: "json.Unmarshal audit log entry", Err: err}
	}
	resourceName := strings.TrimSpace(entry.ProtoPayload.ResourceName)
	if resourceName == "" {
		return projectCreation, &erm.PayloadError{Reason: "missing protoPayload.resourceName"}
	}
	if !strings.HasPrefix(resourceName, "projects/") {
		return projectCreation, &erm.PayloadError{Reason: "protoPayload.resourceName is not a project: " + resourceName}
	}
	projectCreation.ResourceName = resourceName
	projectCreation.DisplayName = entry.ProtoPayload.Request.Project.Name
	if projectCreation.DisplayName == "" {
		projectCreation.DisplayName = strings.TrimPrefix(resourceName, "projects/")
	}
	return projectCreation, nil
}
