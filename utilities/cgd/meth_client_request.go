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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
)

// Get sends params as query parameters
func (client *Client) Get(ctx context.Context, route string, params map[string]string, result interface{}) error {
	return client.Request(ctx, http.MethodGet, route, params, result)
}

// Post sends payload as a JSON body
func (client *Client) Post(ctx context.Context, route string, payload interface{}, result interface{}) error {
	return client.Request(ctx, http.MethodPost, route, payload, result)
}

// Patch sends payload as a JSON body
func (client *Client) Patch(ctx context.Context, route string, payload interface{}, result interface{}) error {
	return client.Request(ctx, http.MethodPatch, route, payload, result)
}

// Put sends payload as a JSON body
func (client *Client) Put(ctx context.Context, route string, payload interface{}, result interface{}) error {
	return client.Request(ctx, http.MethodPut, route, payload, result)
}

// Delete sends params as query parameters
func (client *Client) Delete(ctx context.Context, route string, params map[string]string, result interface{}) error {
	return client.Request(ctx, http.MethodDelete, route, params, result)
}

// Request route is relative to the client base URL.
// A 2xx JSON body is decoded into result when result is not nil.
func (client *Client) Request(ctx context.Context, method string, route string, payload interface{}, result interface{}) error {
	route = strings.TrimPrefix(route, "/")
	url := client.BaseURL + route
	request := client.rest.R().SetContext(ctx)
	switch method {
	case http.MethodGet, http.MethodDelete:
		if payload != nil {
			params, ok := payload.(map[string]string)
			if !ok {
				return fmt.Errorf("cgd %s %s query parameters must be map[string]string got %T", method, route, payload)
			}
			request.SetQueryParams(params)
		}
	case http.MethodPost, http.MethodPatch, http.MethodPut:
		if payload != nil {
			request.SetBody(payload)
		}
	default:
		return fmt.Errorf("cgd unsupported HTTP method %s", method)
	}
	response, err := request.Execute(method, "/"+route)
	if err != nil {
		return &erm.TransportError{URL: url, Err: err}
	}
	body := response.Body()
	if !response.IsSuccess() {
		return &erm.APIError{
			Status:  response.StatusCode(),
			Message: http.StatusText(response.StatusCode()),
			Body:    body,
		}
	}
	if len(body) == 0 || result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &erm.APIError{
			Status:  response.StatusCode(),
			Message: err.Error(),
			Body:    body,
		}
	}
	return nil
}
