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
Package services structure

Each service cloud function package shares the same layout

## Two functions and one type

### `Initialize` function

- Runs once per cloud function instance on cold start
- Loads settings from `settings.yaml` and the environment, then validates them
- Caches the expensive objects, the Google API clients, the CloudGuard REST client and the Pub/Sub output topic
- Exposes them in one global variable named `global`

### `Global` type

- A `struct` carrying what `Initialize` cached, used by `EntryPoint`

### `EntryPoint` function

- Runs on every event triggering the cloud function
- Acknowledges without processing the events that are too old or cannot be decoded, logging `noretry`
- Returns an error, logging `redo_on_transient`, when the work must be redelivered

## Services

- `onboard` onboards a newly created Google Cloud project into CloudGuard
*/
package services
