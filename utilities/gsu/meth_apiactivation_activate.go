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

package gsu

import (
	"fmt"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"google.golang.org/api/serviceusage/v1"
)

// Activate enables each API and waits for it to be ENABLED before moving to the next one.
// The first API not ENABLED within the wait budget stops the sequence with an *erm.ActivationError.
func (apiActivation *APIActivation) Activate(apiNames []string) (err error) {
	for _, apiName := range apiNames {
		name := ServiceResourceName(apiActivation.Core.ProjectName, apiName)
		state, err := apiActivation.getState(name)
		if err != nil {
			return err
		}
		if isEnabled(state) {
			apiActivation.Core.Logger.Warningf("gsu_api_already_enabled", "API %s already enabled. Skip to next", apiName)
			continue
		}
		var request serviceusage.EnableServiceRequest
		operation, err := apiActivation.Core.Services.ServiceusageService.Services.Enable(name, &request).Context(apiActivation.Core.Ctx).Do()
		if err != nil {
			return fmt.Errorf("gsu Services.Enable %s %w", name, erm.Transport(err))
		}
		apiActivation.Core.Logger.Infof("gsu_api_activation_started", "API %s activation started operation %s", apiName, operation.Name)

		// the operation is not awaited, the service state is polled instead
		deadline := apiActivation.Clock.Now().Add(apiActivation.Settings.Timeout)
		for apiActivation.Clock.Now().Before(deadline) {
			state, err = apiActivation.getState(name)
			if err != nil {
				return err
			}
			if isEnabled(state) {
				break
			}
			apiActivation.Core.Logger.Debugf("gsu_api_not_yet_enabled", "API %s state is %s. Retrying...", apiName, state)
			apiActivation.Clock.Sleep(apiActivation.Settings.PollInterval)
		}
		if !isEnabled(state) {
			apiActivation.Core.Logger.Printf(glo.SeverityError, "gsu_api_activation_failed", "Couldn't enable API %s", apiName)
			return &erm.ActivationError{API: apiName, LastState: state}
		}
		apiActivation.Core.Logger.Infof("gsu_api_enabled", "API %s is active", apiName)
	}
	return nil
}

func (apiActivation *APIActivation) getState(name string) (state string, err error) {
	googleAPIServiceusageV1Service, err := apiActivation.Core.Services.ServiceusageService.Services.Get(name).Context(apiActivation.Core.Ctx).Do()
	if err != nil {
		return "", fmt.Errorf("gsu Services.Get %s %w", name, erm.Transport(err))
	}
	configName := name
	if googleAPIServiceusageV1Service.Config != nil {
		configName = googleAPIServiceusageV1Service.Config.Name
	}
	apiActivation.Core.Logger.Infof("gsu_api_state", "%s %s", configName, googleAPIServiceusageV1Service.State)
	return googleAPIServiceusageV1Service.State, nil
}
