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

package aut

import (
	"context"
	"fmt"
	"io/ioutil"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// CloudPlatformScope is enough for billing, service usage, IAM and resource manager APIs
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// GetClientOption returns the credentials the Google API clients are built with.
// keyJSONFilePath points to a service account key file, when empty the application default credentials are used.
func GetClientOption(ctx context.Context, keyJSONFilePath string, scopes ...string) (option.ClientOption, error) {
	if len(scopes) == 0 {
		scopes = []string{CloudPlatformScope}
	}
	var credentials *google.Credentials
	if keyJSONFilePath != "" {
		keyJSONdata, err := ioutil.ReadFile(keyJSONFilePath)
		if err != nil {
			return nil, fmt.Errorf("aut ioutil.ReadFile(keyJSONFilePath) %v", err)
		}
		credentials, err = google.CredentialsFromJSON(ctx, keyJSONdata, scopes...)
		if err != nil {
			return nil, fmt.Errorf("aut google.CredentialsFromJSON %v", err)
		}
	} else {
		var err error
		credentials, err = google.FindDefaultCredentials(ctx, scopes...)
		if err != nil {
			return nil, fmt.Errorf("aut google.FindDefaultCredentials %v", err)
		}
	}
	return option.WithCredentials(credentials), nil
}
