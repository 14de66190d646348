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

package cgd

import (
	"fmt"
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultAddress CloudGuard API address
	DefaultAddress = "https://api.dome9.com"
	// DefaultVersion CloudGuard API version
	DefaultVersion = "v2"
)

// Client authenticated CloudGuard REST client
type Client struct {
	BaseURL string
	rest    *resty.Client
}

// NewClient builds a client with basic auth on {address}/{version}/
func NewClient(apiKeyID string, apiSecret string, address string, version string) (*Client, error) {
	if apiKeyID == "" {
		return nil, &erm.ConfigurationError{Setting: "CHKP_CLOUDGUARD_ID"}
	}
	if apiSecret == "" {
		return nil, &erm.ConfigurationError{Setting: "CHKP_CLOUDGUARD_SECRET"}
	}
	if address == "" {
		address = DefaultAddress
	}
	if version == "" {
		version = DefaultVersion
	}
	baseURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(address, "/"), strings.Trim(version, "/"))
	rest := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(apiKeyID, apiSecret).
		SetLogger(restyLogger{}).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{
		BaseURL: baseURL + "/",
		rest:    rest,
	}, nil
}

// SetLogger forwards the HTTP client diagnostics to logger
func (client *Client) SetLogger(logger *glo.Logger) *Client {
	client.rest.SetLogger(restyLogger{logger: logger})
	return client
}
