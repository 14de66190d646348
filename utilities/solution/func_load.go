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

package solution

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/ffo"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gps"
	"github.com/BrunoReboul/cloudguardonboard/utilities/validater"
)

// LookupEnv has the signature of os.LookupEnv
type LookupEnv func(key string) (string, bool)

// Load reads the optional settings file, overlays non empty environment variables then validates.
func Load(path string, lookupEnv LookupEnv) (settings *Settings, err error) {
	settings = NewSettings()
	if path != "" {
		if _, err = ffo.ReadUnmarshalYAML(path, settings); err != nil {
			return nil, &erm.ConfigurationError{Setting: path, Err: err}
		}
	}
	if err = settings.overlayEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err = settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (settings *Settings) overlayEnv(lookupEnv LookupEnv) error {
	if lookupEnv == nil {
		return nil
	}
	strs := map[string]*string{
		"CHKP_CLOUDGUARD_ID":             &settings.CloudGuard.APIKeyID,
		"CHKP_CLOUDGUARD_SECRET":         &settings.CloudGuard.APISecret,
		"CHKP_CLOUDGUARD_ADDRESS":        &settings.CloudGuard.Address,
		"CHKP_CLOUDGUARD_VERSION":        &settings.CloudGuard.Version,
		"BILLING_ACCOUNT_ID":             &settings.BillingAccountID,
		"SVC_ACC_NAME":                   &settings.ServiceAccount.Name,
		"SVC_ACC_DISPLAY_NAME":           &settings.ServiceAccount.DisplayName,
		"ORG_UNIT_TARGET":                &settings.OrgUnitTarget,
		"LOG_LEVEL":                      &settings.LogLevel,
		"OUTPUT_TOPIC":                   &settings.OutputTopic,
		"GOOGLE_APPLICATION_CREDENTIALS": &settings.KeyJSONFilePath,
		"K_SERVICE":                      &settings.InstanceName,
	}
	for key, target := range strs {
		if value, ok := lookupEnv(key); ok && value != "" {
			*target = value
		}
	}
	if value, ok := lookupEnv("RETRY_TIMEOUT_SECONDS"); ok && value != "" {
		i, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return &erm.ConfigurationError{Setting: "RETRY_TIMEOUT_SECONDS", Err: err}
		}
		settings.RetryTimeOutSeconds = i
	}
	return nil
}

// Validate required settings first, each reported by its environment variable name
func (settings *Settings) Validate() error {
	required := []struct {
		setting string
		value   string
	}{
		{setting: "CHKP_CLOUDGUARD_ID", value: settings.CloudGuard.APIKeyID},
		{setting: "CHKP_CLOUDGUARD_SECRET", value: settings.CloudGuard.APISecret},
		{setting: "BILLING_ACCOUNT_ID", value: settings.BillingAccountID},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &erm.ConfigurationError{Setting: r.setting}
		}
	}
	if settings.OutputTopic != "" {
		if _, _, err := gps.SplitTopicName(settings.OutputTopic); err != nil {
			return &erm.ConfigurationError{Setting: "OUTPUT_TOPIC", Err: err}
		}
	}
	if err := validater.ValidateStruct(settings, "settings"); err != nil {
		return &erm.ConfigurationError{Setting: SettingsFileName, Err: err}
	}
	return nil
}

// String never prints secrets
func (settings Settings) String() string {
	return fmt.Sprintf("cloudGuard %s/%s billingAccountID %s serviceAccount %s '%s' orgUnitTarget '%s' logLevel %s retryTimeOutSeconds %d outputTopic '%s' apis %v roles %v dedupeMembers %v",
		settings.CloudGuard.Address, settings.CloudGuard.Version, settings.BillingAccountID,
		settings.ServiceAccount.Name, settings.ServiceAccount.DisplayName, settings.OrgUnitTarget,
		settings.LogLevel, settings.RetryTimeOutSeconds, settings.OutputTopic, settings.APIs, settings.Roles, settings.DedupeMembers)
}
