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


/*
Package cloudguardonboard onboards new Google Cloud projects into Check Point CloudGuard

## What

A Pub/Sub triggered cloud function receives the audit log entry of a project creation and makes the project visible in CloudGuard.

1. Link the project to the billing account
2. Enable the APIs CloudGuard reads from
3. Create the CloudGuard service account
4. Grant it the security reviewer and viewer roles on the project
5. Mint a service account key
6. Resolve the target CloudGuard organizational unit
7. Register the project as a CloudGuard Google Cloud account

Every step is safe to replay, a redelivered event converges to the same end state.

## Why

- A project created outside of CloudGuard is a blind spot until someone onboards it by hand
- Onboarding at creation time closes the gap before the first resource is deployed
*/
package cloudguardonboard
