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
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestUnitHTTPStatus(t *testing.T) {
	var testCases = []struct {
		name              string
		err               error
		wantStatus        int
		wantAlreadyExists bool
	}{
		{
			name:              "googleAPIConflict",
			err:               &googleapi.Error{Code: 409, Message: "alreadyExists"},
			wantStatus:        409,
			wantAlreadyExists: true,
		},
		{
			name:       "wrappedGoogleAPINotFound",
			err:        fmt.Errorf("iam create %w", &googleapi.Error{Code: 404}),
			wantStatus: 404,
		},
		{
			name:              "cloudGuardConflict",
			err:               &APIError{Status: 409, Message: "Conflict"},
			wantStatus:        409,
			wantAlreadyExists: true,
		},
		{
			name:       "plainError",
			err:        errors.New("409 but no status"),
			wantStatus: 0,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.wantStatus {
				t.Errorf("Want status %d got %d", tc.wantStatus, got)
			}
			if got := IsAlreadyExists(tc.err); got != tc.wantAlreadyExists {
				t.Errorf("Want already exists %v got %v", tc.wantAlreadyExists, got)
			}
		})
	}
}

func TestUnitStepErrorUnwrap(t *testing.T) {
	activationError := &ActivationError{API: "redis", LastState: "ENABLING"}
	err := &StepError{Failed: "ApisEnabled", LastCompleted: "BillingEnsured", Err: activationError}
	var target *ActivationError
	if !errors.As(err, &target) {
		t.Fatalf("Want errors.As to find the activation error in %v", err)
	}
	if target.API != "redis" {
		t.Errorf("Want API redis got %s", target.API)
	}
}
