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
)

// GoogleCloudAccountRoute onboards a GCP project
const GoogleCloudAccountRoute = "GoogleCloudAccount"

// GoogleCloudAccountRequest registration payload
type GoogleCloudAccountRequest struct {
	Name                      string      `json:"name"`
	ServiceAccountCredentials interface{} `json:"serviceAccountCredentials"`
	OrganizationalUnitID      string      `json:"organizationalUnitId"`
}

// GoogleCloudAccount registration result, only the fields used downstream
type GoogleCloudAccount struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	ProjectID            string `json:"projectId"`
	OrganizationalUnitID string `json:"organizationalUnitId"`
}

// RegisterGoogleCloudAccount onboards the project in CloudGuard with the service account credentials
func (client *Client) RegisterGoogleCloudAccount(ctx context.Context, name string, key interface{}, organizationalUnitID string) (googleCloudAccount GoogleCloudAccount, err error) {
	request := GoogleCloudAccountRequest{
		Name:                      name,
		ServiceAccountCredentials: key,
		OrganizationalUnitID:      organizationalUnitID,
	}
	err = client.Post(ctx, GoogleCloudAccountRoute, &request, &googleCloudAccount)
	return googleCloudAccount, err
}
