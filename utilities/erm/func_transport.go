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

package erm

import (
	"errors"
	"net/url"

	"google.golang.org/api/googleapi"
)

// Transport returns err as a *TransportError when the request never got a response
func Transport(err error) error {
	if err == nil {
		return nil
	}
	var transportError *TransportError
	if errors.As(err, &transportError) {
		return err
	}
	var googleAPIError *googleapi.Error
	if errors.As(err, &googleAPIError) {
		return err
	}
	var urlError *url.Error
	if errors.As(err, &urlError) {
		return &TransportError{URL: urlError.URL, Err: err}
	}
	return err
}
