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
	"reflect"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitDecodeKey(t *testing.T) {
	var testCases = []struct {
		name    string
		keyJSON string
	}{
		{
			name:    "serviceAccountKey",
			keyJSON: `{"type":"service_account","project_id":"p","private_key_id":"k1","client_email":"cg@p.iam.gserviceaccount.com"}`,
		},
		{
			name:    "nestedObjectsAndNumbers",
			keyJSON: `{"a":{"b":[1,2.5,"c"],"d":null},"e":true}`,
		},
		{
			name:    "array",
			keyJSON: `[1,"two",{"three":3}]`,
		},
		{
			name:    "utf8",
			keyJSON: `{"name":"clé d'accès ☁"}`,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var want interface{}
			// JSON is a subset of YAML: decode the expectation through another parser
			err := yaml.Unmarshal([]byte(tc.keyJSON), &want)
			if err != nil {
				t.Fatalf("yaml.Unmarshal %v", err)
			}
			got, err := DecodeKey(base64.StdEncoding.EncodeToString([]byte(tc.keyJSON)))
			if err != nil {
				t.Fatalf("DecodeKey %v", err)
			}
			if !equivalent(want, got) {
				t.Errorf("Want %v got %v", want, got)
			}
		})
	}
}

func TestUnitDecodeKeyErrors(t *testing.T) {
	var testCases = []struct {
		name           string
		privateKeyData string
	}{
		{name: "notBase64", privateKeyData: "%%%"},
		{name: "notJSON", privateKeyData: base64.StdEncoding.EncodeToString([]byte("not json"))},
		{name: "empty", privateKeyData: ""},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := DecodeKey(tc.privateKeyData); err == nil {
				t.Errorf("Want an error decoding '%s'", tc.privateKeyData)
			}
		})
	}
}

// equivalent compares the yaml.v2 and encoding/json representations of the same document
func equivalent(yamlValue interface{}, jsonValue interface{}) bool {
	switch y := yamlValue.(type) {
	case map[interface{}]interface{}:
		j, ok := jsonValue.(map[string]interface{})
		if !ok || len(j) != len(y) {
			return false
		}
		for k, v := range y {
			key, ok := k.(string)
			if !ok || !equivalent(v, j[key]) {
				return false
			}
		}
		return true
	case []interface{}:
		j, ok := jsonValue.([]interface{})
		if !ok || len(j) != len(y) {
			return false
		}
		for i := range y {
			if !equivalent(y[i], j[i]) {
				return false
			}
		}
		return true
	case int:
		j, ok := jsonValue.(float64)
		return ok && float64(y) == j
	default:
		return reflect.DeepEqual(yamlValue, jsonValue)
	}
}
