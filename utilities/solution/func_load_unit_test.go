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
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
)

func envFrom(m map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		value, ok := m[key]
		return value, ok
	}
}

var requiredEnv = map[string]string{
	"CHKP_CLOUDGUARD_ID":     "cg-key-id",
	"CHKP_CLOUDGUARD_SECRET": "cg-secret",
	"BILLING_ACCOUNT_ID":     "0X0X0X-0X0X0X-0X0X0X",
}

func withEnv(extra map[string]string) map[string]string {
	m := make(map[string]string)
	for k, v := range requiredEnv {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func TestUnitLoadDefaults(t *testing.T) {
	settings, err := Load("", envFrom(requiredEnv))
	if err != nil {
		t.Fatalf("Load %v", err)
	}
	if settings.CloudGuard.Address != "https://api.dome9.com" || settings.CloudGuard.Version != "v2" {
		t.Errorf("Unexpected CloudGuard address %s version %s", settings.CloudGuard.Address, settings.CloudGuard.Version)
	}
	if settings.ServiceAccount.Name != "cloudguard-svc-account" || settings.ServiceAccount.DisplayName != "CloudGuard svc account" {
		t.Errorf("Unexpected service account %s '%s'", settings.ServiceAccount.Name, settings.ServiceAccount.DisplayName)
	}
	if settings.OrgUnitTarget != "" {
		t.Errorf("Want root organizational unit got '%s'", settings.OrgUnitTarget)
	}
	if settings.LogLevel != "INFO" || settings.RetryTimeOutSeconds != 600 {
		t.Errorf("Unexpected log level %s retry timeout %d", settings.LogLevel, settings.RetryTimeOutSeconds)
	}
	if len(settings.APIs) != 13 || settings.APIs[0] != "cloudbilling" {
		t.Errorf("Unexpected APIs %v", settings.APIs)
	}
	if !reflect.DeepEqual(settings.Roles, []string{"roles/iam.securityReviewer", "roles/viewer"}) {
		t.Errorf("Unexpected roles %v", settings.Roles)
	}
	if !settings.DedupeMembers || settings.PollIntervalSeconds != 30 || settings.ActivationTimeoutSeconds != 300 {
		t.Errorf("Unexpected dedupe %v poll %d timeout %d", settings.DedupeMembers, settings.PollIntervalSeconds, settings.ActivationTimeoutSeconds)
	}
}

func TestUnitLoadFileAndEnv(t *testing.T) {
	dir, err := ioutil.TempDir("", "solution")
	if err != nil {
		t.Fatalf("ioutil.TempDir %v", err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, SettingsFileName)
	content := `
cloudGuard:
  address: https://api.eu1.dome9.com
serviceAccount:
  displayName: From file
orgUnitTarget: Prod
apis: [compute, pubsub]
dedupeMembers: false
pollIntervalSeconds: 5
`
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("ioutil.WriteFile %v", err)
	}
	settings, err := Load(path, envFrom(withEnv(map[string]string{
		"ORG_UNIT_TARGET":       "Dev",
		"SVC_ACC_DISPLAY_NAME":  "",
		"RETRY_TIMEOUT_SECONDS": "120",
		"LOG_LEVEL":             "DEBUG",
	})))
	if err != nil {
		t.Fatalf("Load %v", err)
	}
	if settings.CloudGuard.Address != "https://api.eu1.dome9.com" {
		t.Errorf("Want address from file got %s", settings.CloudGuard.Address)
	}
	if settings.OrgUnitTarget != "Dev" {
		t.Errorf("Want environment to win got %s", settings.OrgUnitTarget)
	}
	if settings.ServiceAccount.DisplayName != "From file" {
		t.Errorf("Want empty environment value ignored got %s", settings.ServiceAccount.DisplayName)
	}
	if settings.RetryTimeOutSeconds != 120 || settings.LogLevel != "DEBUG" {
		t.Errorf("Unexpected retry timeout %d log level %s", settings.RetryTimeOutSeconds, settings.LogLevel)
	}
	if !reflect.DeepEqual(settings.APIs, []string{"compute", "pubsub"}) || settings.DedupeMembers || settings.PollIntervalSeconds != 5 {
		t.Errorf("Unexpected apis %v dedupe %v poll %d", settings.APIs, settings.DedupeMembers, settings.PollIntervalSeconds)
	}
	if settings.ActivationTimeoutSeconds != 300 {
		t.Errorf("Want default activation timeout kept got %d", settings.ActivationTimeoutSeconds)
	}
}

func TestUnitLoadErrors(t *testing.T) {
	var testCases = []struct {
		name        string
		env         map[string]string
		wantSetting string
	}{
		{
			name:        "missingID",
			env:         map[string]string{"CHKP_CLOUDGUARD_SECRET": "s", "BILLING_ACCOUNT_ID": "b"},
			wantSetting: "CHKP_CLOUDGUARD_ID",
		},
		{
			name:        "missingSecret",
			env:         map[string]string{"CHKP_CLOUDGUARD_ID": "i", "BILLING_ACCOUNT_ID": "b"},
			wantSetting: "CHKP_CLOUDGUARD_SECRET",
		},
		{
			name:        "missingBilling",
			env:         map[string]string{"CHKP_CLOUDGUARD_ID": "i", "CHKP_CLOUDGUARD_SECRET": "s"},
			wantSetting: "BILLING_ACCOUNT_ID",
		},
		{
			name:        "retryNotANumber",
			env:         withEnv(map[string]string{"RETRY_TIMEOUT_SECONDS": "ten"}),
			wantSetting: "RETRY_TIMEOUT_SECONDS",
		},
		{
			name:        "badAddress",
			env:         withEnv(map[string]string{"CHKP_CLOUDGUARD_ADDRESS": "api.dome9.com"}),
			wantSetting: SettingsFileName,
		},
		{
			name:        "bareOutputTopic",
			env:         withEnv(map[string]string{"OUTPUT_TOPIC": "cloudguard-onboarding"}),
			wantSetting: "OUTPUT_TOPIC",
		},
		{
			name:        "badLogLevel",
			env:         withEnv(map[string]string{"LOG_LEVEL": "CHATTY"}),
			wantSetting: SettingsFileName,
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load("", envFrom(tc.env))
			var configurationError *erm.ConfigurationError
			if !errors.As(err, &configurationError) {
				t.Fatalf("Want a configuration error got %v", err)
			}
			if configurationError.Setting != tc.wantSetting {
				t.Errorf("Want setting %s got %s", tc.wantSetting, configurationError.Setting)
			}
		})
	}
}

func TestUnitSettingsStringHidesSecret(t *testing.T) {
	settings, err := Load("", envFrom(requiredEnv))
	if err != nil {
		t.Fatalf("Load %v", err)
	}
	if s := settings.String(); strings.Contains(s, "cg-secret") {
		t.Errorf("Secret leaked %s", s)
	}
}
