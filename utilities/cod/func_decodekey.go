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
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeKey decodes the privateKeyData of a service account key, a base64 encoded JSON document.
// The returned value holds the JSON document as decoded by encoding/json.
func DecodeKey(privateKeyData string) (key interface{}, err error) {
	keyJSON, err := base64.StdEncoding.DecodeString(strings.TrimSpace(privateKeyData))
	if err != nil {
		return nil, fmt.Errorf("cod base64 decode private key data %v", err)
	}
	err = json.Unmarshal(keyJSON, &key)
	if err != nil {
		return nil, fmt.Errorf("cod json.Unmarshal private key data %v", err)
	}
	return key, nil
}
