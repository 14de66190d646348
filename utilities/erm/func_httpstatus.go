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
	"net/http"

	"google.golang.org/api/googleapi"
)

// HTTPStatus returns the HTTP status carried by a Google API or CloudGuard error, 0 when none
func HTTPStatus(err error) int {
	var googleAPIError *googleapi.Error
	if errors.As(err, &googleAPIError) {
		return googleAPIError.Code
	}
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError.Status
	}
	return 0
}

// IsAlreadyExists tells if the error is a 409 conflict
func IsAlreadyExists(err error) bool {
	return HTTPStatus(err) == http.StatusConflict
}
