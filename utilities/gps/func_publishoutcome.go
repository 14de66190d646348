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

package gps

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// PublishOutcome publishes the outcome as JSON and waits for the server ack
func PublishOutcome(ctx context.Context, topic *pubsub.Topic, outcome Outcome) (id string, err error) {
	data, err := json.Marshal(&outcome)
	if err != nil {
		return "", fmt.Errorf("gps json.Marshal outcome %v", err)
	}
	pubSubMessage := &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"projectId": outcome.ProjectID,
			"status":    outcome.Status,
		},
	}
	id, err = topic.Publish(ctx, pubSubMessage).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("gps topic.Publish %s %v", topic.ID(), err)
	}
	return id, nil
}
