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

import (
	"fmt"
	"io"
	"log"
)

// Logger prints Entry structures, one JSON line each, dropping entries below its threshold.
// It is built once at cold start and only copied afterwards: a Logger is never mutated.
type Logger struct {
	threshold int
	out       *log.Logger
	base      Entry
}

// NewLogger returns a Logger writing to w entries with a severity at least equal to level
func NewLogger(w io.Writer, level string, microserviceName string, instanceName string, environment string) *Logger {
	return &Logger{
		threshold: SeverityRank(level),
		out:       log.New(w, "", 0),
		base: Entry{
			MicroserviceName: microserviceName,
			InstanceName:     instanceName,
			Environment:      environment,
		},
	}
}

// WithInitID returns a copy of the logger stamping each entry with the cold start id
func (l *Logger) WithInitID(initID string) *Logger {
	c := *l
	c.base.InitID = initID
	return &c
}

// WithRun returns a copy of the logger stamping each entry with the invocation identifiers
func (l *Logger) WithRun(runID string, pubsubID string, projectID string) *Logger {
	c := *l
	c.base.RunID = runID
	c.base.TriggeringPubsubID = pubsubID
	c.base.ProjectID = projectID
	return &c
}

// WithProjectID returns a copy adding the project ID to every entry
func (l *Logger) WithProjectID(projectID string) *Logger {
	c := *l
	c.base.ProjectID = projectID
	return &c
}

// Enabled tells if an entry of this severity would be printed
func (l *Logger) Enabled(severity string) bool {
	return SeverityRank(severity) >= l.threshold
}

// Println prints the entry after filling the fields carried by the logger
func (l *Logger) Println(entry Entry) {
	if entry.Severity == "" {
		entry.Severity = SeverityInfo
	}
	if !l.Enabled(entry.Severity) {
		return
	}
	if entry.MicroserviceName == "" {
		entry.MicroserviceName = l.base.MicroserviceName
	}
	if entry.InstanceName == "" {
		entry.InstanceName = l.base.InstanceName
	}
	if entry.Environment == "" {
		entry.Environment = l.base.Environment
	}
	if entry.InitID == "" {
		entry.InitID = l.base.InitID
	}
	if entry.RunID == "" {
		entry.RunID = l.base.RunID
	}
	if entry.TriggeringPubsubID == "" {
		entry.TriggeringPubsubID = l.base.TriggeringPubsubID
	}
	if entry.ProjectID == "" {
		entry.ProjectID = l.base.ProjectID
	}
	l.out.Println(entry)
}

// Printf prints an entry whose description is formatted
func (l *Logger) Printf(severity string, message string, format string, a ...interface{}) {
	if !l.Enabled(severity) {
		return
	}
	l.Println(Entry{
		Severity:    severity,
		Message:     message,
		Description: fmt.Sprintf(format, a...),
	})
}

// Debugf prints a DEBUG entry
func (l *Logger) Debugf(message string, format string, a ...interface{}) {
	l.Printf(SeverityDebug, message, format, a...)
}

// Infof prints an INFO entry
func (l *Logger) Infof(message string, format string, a ...interface{}) {
	l.Printf(SeverityInfo, message, format, a...)
}

// Warningf prints a WARNING entry
func (l *Logger) Warningf(message string, format string, a ...interface{}) {
	l.Printf(SeverityWarning, message, format, a...)
}

// Criticalf prints a CRITICAL entry
func (l *Logger) Criticalf(message string, format string, a ...interface{}) {
	l.Printf(SeverityCritical, message, format, a...)
}
