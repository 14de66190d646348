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

package ffo

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// ReadUnmarshalYAML loads a YAML file into settings.
// A missing file is not an error: found is false and settings is left untouched.
func ReadUnmarshalYAML(path string, settings interface{}) (found bool, err error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("ffo ioutil.ReadFile %s %v", path, err)
	}
	err = yaml.UnmarshalStrict(bytes, settings)
	if err != nil {
		return true, fmt.Errorf("ffo yaml.UnmarshalStrict %s %v", path, err)
	}
	return true, nil
}
