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
Package onboard onboards newly created Google Cloud projects into Check Point CloudGuard

Triggered by a Pub/Sub message carrying the CreateProject audit log entry, it runs a fixed sequence of steps on the new project:

1. link the billing account when the project has none
2. enable the APIs CloudGuard reads from
3. create, or reuse, the CloudGuard service account
4. bind the read only roles to the service account on the project IAM policy
5. mint a service account key
6. resolve the target CloudGuard organizational unit, root when not found
7. register the project in CloudGuard with the key

Steps are not rolled back. Each one is idempotent, or nearly so, which makes a redelivered event safe to replay.
A failure names the last completed step.
*/
package onboard
