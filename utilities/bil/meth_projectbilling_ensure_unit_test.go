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

package bil

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"reflect"
	"testing"

	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gcptest"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
)

type recordingActivator struct {
	calls [][]string
	err   error
}

func (a *recordingActivator) Activate(apiNames []string) error {
	a.calls = append(a.calls, apiNames)
	return a.err
}

func newTestCore(t *testing.T, server *gcptest.Server) *deploy.Core {
	t.Helper()
	ctx := context.Background()
	services, err := server.NewServices(ctx)
	if err != nil {
		t.Fatalf("NewServices %v", err)
	}
	core, err := deploy.NewCore(ctx, glo.NewLogger(ioutil.Discard, "DEBUG", "onboard", "test", "test"), services, "projects/my-project")
	if err != nil {
		t.Fatalf("NewCore %v", err)
	}
	return core
}

func TestUnitProjectBillingEnsure(t *testing.T) {
	var testCases = []struct {
		name             string
		billingAccountID string
		currentAccount   string
		currentEnabled   bool
		wantUpdates      int
		wantAccountName  string
	}{
		{
			name:             "linksWhenNone",
			billingAccountID: "0X0X0X-0X0X0X-0X0X0X",
			wantUpdates:      1,
			wantAccountName:  "billingAccounts/0X0X0X-0X0X0X-0X0X0X",
		},
		{
			name:             "acceptsResourceName",
			billingAccountID: "billingAccounts/0X0X0X-0X0X0X-0X0X0X",
			wantUpdates:      1,
			wantAccountName:  "billingAccounts/0X0X0X-0X0X0X-0X0X0X",
		},
		{
			name:             "keepsExistingAccount",
			billingAccountID: "0X0X0X-0X0X0X-0X0X0X",
			currentAccount:   "billingAccounts/111111-222222-333333",
			currentEnabled:   true,
			wantUpdates:      0,
			wantAccountName:  "billingAccounts/111111-222222-333333",
		},
		{
			name:             "keepsLinkedButDisabled",
			billingAccountID: "0X0X0X-0X0X0X-0X0X0X",
			currentAccount:   "billingAccounts/111111-222222-333333",
			wantUpdates:      0,
			wantAccountName:  "billingAccounts/111111-222222-333333",
		},
	}
	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			server := gcptest.NewServer("my-project")
			defer server.Close()
			server.SetBillingInfo(tc.currentAccount, tc.currentEnabled)
			activator := &recordingActivator{}
			projectBilling := NewProjectBilling(newTestCore(t, server), activator, tc.billingAccountID)

			projectBillingInfo, err := projectBilling.Ensure()
			if err != nil {
				t.Fatalf("Ensure %v", err)
			}
			if !reflect.DeepEqual(activator.calls, [][]string{{"cloudbilling"}}) {
				t.Errorf("Want cloudbilling activated first got %v", activator.calls)
			}
			if got := len(server.BillingUpdates()); got != tc.wantUpdates {
				t.Errorf("Want %d billing updates got %d", tc.wantUpdates, got)
			}
			if projectBillingInfo.BillingAccountName != tc.wantAccountName {
				t.Errorf("Want account %s got %s", tc.wantAccountName, projectBillingInfo.BillingAccountName)
			}
		})
	}
}

func TestUnitProjectBillingEnsureErrors(t *testing.T) {
	t.Run("missingBillingAccount", func(t *testing.T) {
		server := gcptest.NewServer("my-project")
		defer server.Close()
		projectBilling := NewProjectBilling(newTestCore(t, server), &recordingActivator{}, "")
		_, err := projectBilling.Ensure()
		var configurationError *erm.ConfigurationError
		if !errors.As(err, &configurationError) {
			t.Errorf("Want a configuration error got %v", err)
		}
	})
	t.Run("activationFails", func(t *testing.T) {
		server := gcptest.NewServer("my-project")
		defer server.Close()
		activator := &recordingActivator{err: &erm.ActivationError{API: "cloudbilling", LastState: "DISABLED"}}
		projectBilling := NewProjectBilling(newTestCore(t, server), activator, "0X0X0X-0X0X0X-0X0X0X")
		_, err := projectBilling.Ensure()
		var activationError *erm.ActivationError
		if !errors.As(err, &activationError) {
			t.Errorf("Want an activation error got %v", err)
		}
	})
	t.Run("updateFails", func(t *testing.T) {
		server := gcptest.NewServer("my-project")
		defer server.Close()
		server.Fail("billingUpdate", http.StatusForbidden)
		projectBilling := NewProjectBilling(newTestCore(t, server), &recordingActivator{}, "0X0X0X-0X0X0X-0X0X0X")
		_, err := projectBilling.Ensure()
		if got := erm.HTTPStatus(err); got != http.StatusForbidden {
			t.Errorf("Want status 403 got %d: %v", got, err)
		}
	})
}
