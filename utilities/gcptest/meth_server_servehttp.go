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

package gcptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/serviceusage/v1"
)

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := r.URL.Path
	var route string
	switch {
	case strings.HasPrefix(path, "/v2/organizationalunit/GetFlatOrganizationalUnits") && r.Method == http.MethodGet:
		route = "orgUnits"
	case strings.HasPrefix(path, "/v2/GoogleCloudAccount") && r.Method == http.MethodPost:
		route = "register"
	case strings.HasSuffix(path, ":getIamPolicy"):
		route = "getIamPolicy"
	case strings.HasSuffix(path, ":setIamPolicy"):
		route = "setIamPolicy"
	case strings.HasSuffix(path, ":enable"):
		route = "serviceEnable"
	case strings.Contains(path, "/services/") && r.Method == http.MethodGet:
		route = "serviceGet"
	case strings.HasSuffix(path, "/billingInfo") && r.Method == http.MethodGet:
		route = "billingGet"
	case strings.HasSuffix(path, "/billingInfo") && r.Method == http.MethodPut:
		route = "billingUpdate"
	case strings.HasSuffix(path, "/keys") && r.Method == http.MethodPost:
		route = "keyCreate"
	case strings.HasSuffix(path, "/serviceAccounts") && r.Method == http.MethodPost:
		route = "accountCreate"
	case strings.HasSuffix(path, "/serviceAccounts") && r.Method == http.MethodGet:
		route = "accountList"
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("no fake for %s %s", r.Method, path))
		return
	}
	if route == "orgUnits" || route == "register" {
		keyID, secret, ok := r.BasicAuth()
		if !ok || keyID != s.cloudGuardKeyID || secret != s.cloudGuardSecret {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
	}
	if status, ok := s.failures[route]; ok {
		writeError(w, status, "FAILED", fmt.Sprintf("fake failure on %s", route))
		return
	}
	switch route {
	case "serviceGet":
		s.serveServiceGet(w, path)
	case "serviceEnable":
		s.serveServiceEnable(w, path)
	case "billingGet":
		writeJSON(w, http.StatusOK, &s.billingInfo)
	case "billingUpdate":
		s.serveBillingUpdate(w, r)
	case "accountCreate":
		s.serveAccountCreate(w, r)
	case "accountList":
		s.serveAccountList(w, r)
	case "keyCreate":
		s.serveKeyCreate(w, path)
	case "getIamPolicy":
		writeJSON(w, http.StatusOK, &s.policy)
	case "setIamPolicy":
		s.serveSetIamPolicy(w, r)
	case "orgUnits":
		units := s.organizationalUnits
		if units == nil {
			units = []OrganizationalUnit{}
		}
		writeJSON(w, http.StatusOK, units)
	case "register":
		s.serveRegister(w, r)
	}
}

func (s *Server) serveServiceGet(w http.ResponseWriter, path string) {
	api := shortAPIName(path)
	s.serviceGets[api]++
	state, ok := s.serviceStates[api]
	if !ok {
		writeError(w, http.StatusForbidden, "PERMISSION_DENIED", fmt.Sprintf("Permission denied to get service [%s.googleapis.com]", api))
		return
	}
	if state == "ENABLING" && !s.neverEnable[api] {
		if s.pendingPolls[api] <= 0 {
			state = "ENABLED"
			s.serviceStates[api] = state
		} else {
			s.pendingPolls[api]--
		}
	}
	writeJSON(w, http.StatusOK, &serviceusage.GoogleApiServiceusageV1Service{
		Name:   fmt.Sprintf("projects/%s/services/%s.googleapis.com", s.projectID, api),
		Parent: fmt.Sprintf("projects/%s", s.projectID),
		Config: &serviceusage.GoogleApiServiceusageV1ServiceConfig{Name: api + ".googleapis.com"},
		State:  state,
	})
}

func (s *Server) serveServiceEnable(w http.ResponseWriter, path string) {
	api := shortAPIName(strings.TrimSuffix(path, ":enable"))
	if _, ok := s.serviceStates[api]; !ok {
		writeError(w, http.StatusForbidden, "PERMISSION_DENIED", fmt.Sprintf("Permission denied to enable service [%s.googleapis.com]", api))
		return
	}
	s.enableCalls = append(s.enableCalls, api)
	if !s.neverEnable[api] {
		if s.enablingPolls > 0 {
			s.serviceStates[api] = "ENABLING"
			s.pendingPolls[api] = s.enablingPolls
		} else {
			s.serviceStates[api] = "ENABLED"
		}
	}
	writeJSON(w, http.StatusOK, &serviceusage.Operation{
		Name: fmt.Sprintf("operations/acf.%s.%d", api, len(s.enableCalls)),
	})
}

func (s *Server) serveBillingUpdate(w http.ResponseWriter, r *http.Request) {
	var projectBillingInfo cloudbilling.ProjectBillingInfo
	if err := json.NewDecoder(r.Body).Decode(&projectBillingInfo); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	s.billingUpdates = append(s.billingUpdates, projectBillingInfo)
	s.billingInfo.BillingAccountName = projectBillingInfo.BillingAccountName
	s.billingInfo.BillingEnabled = projectBillingInfo.BillingAccountName != ""
	writeJSON(w, http.StatusOK, &s.billingInfo)
}

func (s *Server) serveAccountCreate(w http.ResponseWriter, r *http.Request) {
	var request iam.CreateServiceAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	s.accountCreates++
	email := fmt.Sprintf("%s@%s.iam.gserviceaccount.com", request.AccountId, s.projectID)
	if s.findServiceAccount(email) != nil {
		writeError(w, http.StatusConflict, "ALREADY_EXISTS",
			fmt.Sprintf("Service account %s already exists within project projects/%s.", request.AccountId, s.projectID))
		return
	}
	var displayName string
	if request.ServiceAccount != nil {
		displayName = request.ServiceAccount.DisplayName
	}
	writeJSON(w, http.StatusOK, s.addServiceAccount(request.AccountId, displayName))
}

func (s *Server) serveAccountList(w http.ResponseWriter, r *http.Request) {
	start := 0
	if pageToken := r.URL.Query().Get("pageToken"); pageToken != "" {
		start, _ = strconv.Atoi(pageToken)
	}
	end := len(s.serviceAccounts)
	if s.accountsPageSize > 0 && start+s.accountsPageSize < end {
		end = start + s.accountsPageSize
	}
	var response iam.ListServiceAccountsResponse
	if start < len(s.serviceAccounts) {
		response.Accounts = s.serviceAccounts[start:end]
	}
	if end < len(s.serviceAccounts) {
		response.NextPageToken = strconv.Itoa(end)
	}
	writeJSON(w, http.StatusOK, &response)
}

func (s *Server) serveKeyCreate(w http.ResponseWriter, path string) {
	name := strings.TrimSuffix(strings.TrimPrefix(path, "/v1/"), "/keys")
	parts := strings.Split(name, "/")
	email := parts[len(parts)-1]
	if s.findServiceAccount(email) == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("Service account %s does not exist.", email))
		return
	}
	s.keyCreates = append(s.keyCreates, name)
	keyID := fmt.Sprintf("key%d", len(s.keyCreates))
	writeJSON(w, http.StatusOK, &iam.ServiceAccountKey{
		Name:           fmt.Sprintf("%s/keys/%s", name, keyID),
		PrivateKeyType: "TYPE_GOOGLE_CREDENTIALS_FILE",
		PrivateKeyData: privateKeyData(s.keyType, s.projectID, email, keyID),
		KeyAlgorithm:   "KEY_ALG_RSA_2048",
	})
}

func (s *Server) serveSetIamPolicy(w http.ResponseWriter, r *http.Request) {
	var request cloudresourcemanager.SetIamPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Policy == nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "missing policy")
		return
	}
	if request.Policy.Etag != "" && request.Policy.Etag != s.policy.Etag {
		writeError(w, http.StatusConflict, "ABORTED", "There were concurrent policy changes. Please retry the whole read-modify-write with exponential backoff.")
		return
	}
	s.setPolicyCalls++
	s.policyVersion++
	s.policy = copyPolicy(*request.Policy)
	s.policy.Etag = fmt.Sprintf("BwXetag%d", s.policyVersion)
	writeJSON(w, http.StatusOK, &s.policy)
}

func (s *Server) serveRegister(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	s.registrations = append(s.registrations, body)
	var projectID string
	if credentials, ok := body["serviceAccountCredentials"].(map[string]interface{}); ok {
		projectID, _ = credentials["project_id"].(string)
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":                   fmt.Sprintf("cg-account-%d", len(s.registrations)),
		"name":                 body["name"],
		"projectId":            projectID,
		"organizationalUnitId": body["organizationalUnitId"],
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    status,
			"message": message,
			"status":  code,
		},
	})
}
