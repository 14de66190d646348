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

import "fmt"

// ConfigurationError a required setting is missing or invalid
type ConfigurationError struct {
	Setting string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error %s: %v", e.Setting, e.Err)
	}
	return fmt.Sprintf("configuration error %s is required", e.Setting)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TransportError the connection to a remote platform failed before any response
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError a remote platform answered with a non 2xx status, or with a body that cannot be parsed
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error code %d message %s content %s", e.Status, e.Message, string(e.Body))
}

// ActivationError an API did not reach the ENABLED state within the wait budget
type ActivationError struct {
	API       string
	LastState string
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("API %s couldn't be enabled, last observed state %s", e.API, e.LastState)
}

// PayloadError the triggering event cannot be decoded
type PayloadError struct {
	Reason string
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payload error %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("payload error %s", e.Reason)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// StepError an onboarding step failed, LastCompleted names the last state reached
type StepError struct {
	Failed        string
	LastCompleted string
	Err           error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("onboarding failed moving to %s, last completed state %s: %v", e.Failed, e.LastCompleted, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
