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

package glo

import "strings"

// Cloud Logging severities, ordered
const (
	SeverityDebug    = "DEBUG"
	SeverityInfo     = "INFO"
	SeverityNotice   = "NOTICE"
	SeverityWarning  = "WARNING"
	SeverityError    = "ERROR"
	SeverityCritical = "CRITICAL"
)

var severityRanks = map[string]int{
	SeverityDebug:    100,
	SeverityInfo:     200,
	SeverityNotice:   300,
	SeverityWarning:  400,
	SeverityError:    500,
	SeverityCritical: 600,
}

// IsSeverity reports whether severity is a known severity name or alias
func IsSeverity(severity string) bool {
	_, ok := severityRanks[normalize(severity)]
	return ok
}

func normalize(severity string) string {
	severity = strings.ToUpper(strings.TrimSpace(severity))
	switch severity {
	case "WARN":
		return SeverityWarning
	case "FATAL":
		return SeverityCritical
	}
	return severity
}

// SeverityRank returns the Cloud Logging numeric value of a severity name, INFO when unknown
func SeverityRank(severity string) int {
	if rank, ok := severityRanks[normalize(severity)]; ok {
		return rank
	}
	return severityRanks[SeverityInfo]
}
