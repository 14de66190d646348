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
	"github.com/BrunoReboul/cloudguardonboard/utilities/cgd"
	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"github.com/BrunoReboul/cloudguardonboard/utilities/grm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gsu"
	"github.com/BrunoReboul/cloudguardonboard/utilities/iam"
)

const (
	// PathToFunctionCode where the function source code is deployed
	PathToFunctionCode = "./serverless_function_source_code/"
	// SettingsFileName optional settings file shipped with the function code
	SettingsFileName = "settings.yaml"
	// MicroserviceName name used in log entries
	MicroserviceName = "cloudguardonboard"
	// DefaultRetryTimeOutSeconds events older than this are acknowledged without processing
	DefaultRetryTimeOutSeconds = 600
)

// Settings onboarding settings
type Settings struct {
	CloudGuard struct {
		APIKeyID  string `yaml:"apiKeyID"`
		APISecret string `yaml:"apiSecret"`
		Address   string `yaml:"address" valid:"isHTTPURL"`
		Version   string `yaml:"version" valid:"isNotZeroValue"`
	} `yaml:"cloudGuard"`
	BillingAccountID string `yaml:"billingAccountID"`
	ServiceAccount   struct {
		Name        string `yaml:"name" valid:"isNotZeroValue"`
		DisplayName string `yaml:"displayName" valid:"isNotZeroValue"`
	} `yaml:"serviceAccount"`
	OrgUnitTarget            string   `yaml:"orgUnitTarget"`
	LogLevel                 string   `yaml:"logLevel" valid:"isLogLevel"`
	Environment              string   `yaml:"environment"`
	InstanceName             string   `yaml:"instanceName"`
	RetryTimeOutSeconds      int64    `yaml:"retryTimeOutSeconds" valid:"isPositive"`
	OutputTopic              string   `yaml:"outputTopic"`
	KeyJSONFilePath          string   `yaml:"keyJSONFilePath"`
	APIs                     []string `yaml:"apis" valid:"isNotZeroValue"`
	Roles                    []string `yaml:"roles" valid:"isNotZeroValue"`
	DedupeMembers            bool     `yaml:"dedupeMembers"`
	PollIntervalSeconds      int64    `yaml:"pollIntervalSeconds" valid:"isPositive"`
	ActivationTimeoutSeconds int64    `yaml:"activationTimeoutSeconds" valid:"isPositive"`
}

// NewSettings returns the defaults
func NewSettings() *Settings {
	settings := &Settings{}
	settings.CloudGuard.Address = cgd.DefaultAddress
	settings.CloudGuard.Version = cgd.DefaultVersion
	settings.ServiceAccount.Name = iam.DefaultAccountID
	settings.ServiceAccount.DisplayName = iam.DefaultDisplayName
	settings.LogLevel = glo.SeverityInfo
	settings.InstanceName = MicroserviceName
	settings.RetryTimeOutSeconds = DefaultRetryTimeOutSeconds
	settings.APIs = deploy.GetOnboardingAPIList()
	settings.Roles = grm.DefaultRoles()
	settings.DedupeMembers = true
	settings.PollIntervalSeconds = int64(gsu.DefaultPollInterval.Seconds())
	settings.ActivationTimeoutSeconds = int64(gsu.DefaultTimeout.Seconds())
	return settings
}
