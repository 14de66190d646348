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

package deploy

import (
	"context"
	"fmt"
	"strings"

	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/serviceusage/v1"
)

// Services the Google API clients, built once per cloud function instance
type Services struct {
	CloudbillingService         *cloudbilling.APIService
	CloudresourcemanagerService *cloudresourcemanager.Service
	IAMService                  *iam.Service
	ServiceusageService         *serviceusage.Service
}

// Core what every onboarding step needs: the run context, the logger, the target project and the clients
type Core struct {
	Ctx         context.Context
	Logger      *glo.Logger
	ProjectName string // projects/{projectID}
	ProjectID   string
	Services    *Services
}

// NewCore builds the core of one onboarding run from the project resource name found in the triggering event
func NewCore(ctx context.Context, logger *glo.Logger, services *Services, projectName string) (*Core, error) {
	parts := strings.SplitN(projectName, "/", 2)
	if len(parts) != 2 || parts[0] != "projects" || parts[1] == "" {
		return nil, fmt.Errorf("deploy unexpected project resource name '%s' want projects/{projectID}", projectName)
	}
	return &Core{
		Ctx:         ctx,
		Logger:      logger,
		ProjectName: projectName,
		ProjectID:   parts[1],
		Services:    services,
	}, nil
}
