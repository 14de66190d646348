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

package cod

import (
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2/google"
)

// KeyInfo identifies a decoded service account key without exposing its secret part
type KeyInfo struct {
	ClientEmail  string
	PrivateKeyID string
}

// GetKeyInfo checks a decoded key is a usable service account credentials file
func GetKeyInfo(key interface{}) (keyInfo KeyInfo, err error) {
	keyJSON, err := json.Marshal(key)
	if err != nil {
		return keyInfo, fmt.Errorf("cod json.Marshal key %v", err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(keyJSON)
	if err != nil {
		return keyInfo, fmt.Errorf("cod google.JWTConfigFromJSON %v", err)
	}
	keyInfo.ClientEmail = jwtConfig.Email
	keyInfo.PrivateKeyID = jwtConfig.PrivateKeyID
	return keyInfo, nil
}
