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

// ProjectCreation the fields used from a CreateProject audit log entry
type ProjectCreation struct {
	// ResourceName projects/{projectID}
	ResourceName string
	// DisplayName project name as typed by the creator, used as the CloudGuard account name
	DisplayName string
}

type auditLogEntry struct {
	ProtoPayload struct {
		MethodName   string `json:"methodName"`
		ResourceName string `json:"resourceName"`
		Request      struct {
			Project struct {
				Name      string `json:"name"`
				ProjectID string `json:"projectId"`
			} `json:"project"`
		} `json:"request"`
	} `json:"protoPayload"`
}
