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

	"google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/serviceusage/v1"
)

// NewServices builds the Google API clients with the same client options, usually the credentials option from aut
func NewServices(ctx context.Context, opts ...option.ClientOption) (services *Services, err error) {
	services = &Services{}
	services.CloudbillingService, err = cloudbilling.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("deploy cloudbilling.NewService %v", err)
	}
	services.CloudresourcemanagerService, err = cloudresourcemanager.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("deploy cloudresourcemanager.NewService %v", err)
	}
	services.IAMService, err = iam.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("deploy iam.NewService %v", err)
	}
	services.ServiceusageService, err = serviceusage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("deploy serviceusage.NewService %v", err)
	}
	return services, nil
}
