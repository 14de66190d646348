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
	"fmt"
	"strings"
)

// SplitTopicName parses projects/{projectID}/topics/{topicID}
func SplitTopicName(topicName string) (projectID string, topicID string, err error) {
	parts := strings.Split(strings.TrimSpace(topicName), "/")
	if len(parts) != 4 || parts[0] != "projects" || parts[2] != "topics" || parts[1] == "" || parts[3] == "" {
		return "", "", fmt.Errorf("gps topic name '%s' want projects/{projectID}/topics/{topicID}", topicName)
	}
	return parts[1], parts[3], nil
}
