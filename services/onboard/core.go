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

package onboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"cloud.google.com/go/functions/metadata"
	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/cloudguardonboard/utilities/aut"
	"github.com/BrunoReboul/cloudguardonboard/utilities/cgd"
	"github.com/BrunoReboul/cloudguardonboard/utilities/deploy"
	"github.com/BrunoReboul/cloudguardonboard/utilities/erm"
	"github.com/BrunoReboul/cloudguardonboard/utilities/glo"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gps"
	"github.com/BrunoReboul/cloudguardonboard/utilities/gsu"
	"github.com/BrunoReboul/cloudguardonboard/utilities/solution"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	ctx          context.Context
	initFailed   bool
	settings     *solution.Settings
	logger       *glo.Logger
	services     *deploy.Services
	cloudGuard   *cgd.Client
	pubSubClient *pubsub.Client
	outputTopic  *pubsub.Topic
	clock        gsu.Clock
	now          func() time.Time
}

// Options what differs between the deployed function and tests
type Options struct {
	Writer    io.Writer
	GoogleAPI []option.ClientOption
	PubSub    []option.ClientOption
	Clock     gsu.Clock
	Now       func() time.Time
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	settings, err := solution.Load(solution.PathToFunctionCode+solution.SettingsFileName, os.LookupEnv)
	if err != nil {
		global.initFailed = true
		log.Println(glo.Entry{
			MicroserviceName: solution.MicroserviceName,
			Severity:         glo.SeverityCritical,
			Message:          "init_failed",
			Description:      fmt.Sprintf("solution.Load %v", err),
			InitID:           uuid.New().String(),
		})
		return err
	}
	clientOption, err := aut.GetClientOption(ctx, settings.KeyJSONFilePath)
	if err != nil {
		global.initFailed = true
		log.Println(glo.Entry{
			MicroserviceName: solution.MicroserviceName,
			Severity:         glo.SeverityCritical,
			Message:          "init_failed",
			Description:      fmt.Sprintf("aut.GetClientOption %v", err),
			InitID:           uuid.New().String(),
		})
		return err
	}
	return InitializeWith(ctx, global, settings, Options{
		Writer:    os.Stdout,
		GoogleAPI: []option.ClientOption{clientOption},
		PubSub:    []option.ClientOption{clientOption},
	})
}

// InitializeWith builds the cached clients from already loaded settings
func InitializeWith(ctx context.Context, global *Global, settings *solution.Settings, options Options) (err error) {
	global.ctx = ctx
	global.settings = settings
	global.clock = options.Clock
	global.now = options.Now
	if global.now == nil {
		global.now = time.Now
	}
	if options.Writer == nil {
		options.Writer = os.Stdout
	}
	global.logger = glo.NewLogger(options.Writer, settings.LogLevel, solution.MicroserviceName, settings.InstanceName, settings.Environment).
		WithInitID(uuid.New().String())
	global.logger.Println(glo.Entry{
		Severity:    glo.SeverityNotice,
		Message:     "coldstart",
		Description: settings.String(),
	})

	global.services, err = deploy.NewServices(ctx, options.GoogleAPI...)
	if err != nil {
		return global.fail(err)
	}
	global.cloudGuard, err = cgd.NewClient(settings.CloudGuard.APIKeyID, settings.CloudGuard.APISecret, settings.CloudGuard.Address, settings.CloudGuard.Version)
	if err != nil {
		return global.fail(err)
	}
	global.cloudGuard.SetLogger(global.logger)
	if settings.OutputTopic != "" {
		projectID, topicID, err := gps.SplitTopicName(settings.OutputTopic)
		if err != nil {
			return global.fail(&erm.ConfigurationError{Setting: "OUTPUT_TOPIC", Err: err})
		}
		global.pubSubClient, err = pubsub.NewClient(ctx, projectID, options.PubSub...)
		if err != nil {
			return global.fail(fmt.Errorf("pubsub.NewClient %v", err))
		}
		global.outputTopic = global.pubSubClient.Topic(topicID)
	}
	return nil
}

func (global *Global) fail(err error) error {
	global.initFailed = true
	global.logger.Criticalf("init_failed", "%v", err)
	return err
}

// EntryPoint is the function to be executed for each cloud function occurence
func EntryPoint(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	if global.initFailed || global.logger == nil {
		log.Println(glo.Entry{
			MicroserviceName: solution.MicroserviceName,
			Severity:         glo.SeverityCritical,
			Message:          "redo_on_transient",
			Description:      "init function failed",
		})
		return errors.New("init function failed")
	}
	metadata, err := metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		global.logger.Criticalf("redo_on_transient", "pubsub_id no available metadata.FromContext: %v", err)
		return err
	}
	logger := global.logger.WithRun(uuid.New().String(), metadata.EventID, "")
	now := global.now()
	d := now.Sub(metadata.Timestamp)
	logger.Println(glo.Entry{
		Severity:                   glo.SeverityNotice,
		Message:                    "start",
		TriggeringPubsubAgeSeconds: d.Seconds(),
		TriggeringPubsubTimestamp:  &metadata.Timestamp,
		Now:                        &now,
	})
	if d.Seconds() > float64(global.settings.RetryTimeOutSeconds) {
		logger.Println(glo.Entry{
			Severity:                   glo.SeverityCritical,
			Message:                    "noretry",
			Description:                "Pubsub message too old",
			TriggeringPubsubAgeSeconds: d.Seconds(),
			TriggeringPubsubTimestamp:  &metadata.Timestamp,
			Now:                        &now,
		})
		return nil
	}

	projectCreation, err := gps.DecodeProjectCreation(PubSubMessage.Data)
	if err != nil {
		reason := err.Error()
		var payloadError *erm.PayloadError
		if errors.As(err, &payloadError) {
			reason = payloadError.Reason
		}
		logger.Println(glo.Entry{
			Severity:     glo.SeverityCritical,
			Message:      "noretry",
			Description:  fmt.Sprintf("gps.DecodeProjectCreation %v", err),
			PayloadError: reason,
		})
		return nil
	}
	core, err := deploy.NewCore(ctxEvent, logger, global.services, projectCreation.ResourceName)
	if err != nil {
		logger.Criticalf("noretry", "deploy.NewCore %v", err)
		return nil
	}
	core.Logger = logger.WithProjectID(core.ProjectID)
	core.Logger.Infof("onboarding_started", "New project created: %s. Starting onboarding process into CloudGuard", projectCreation.ResourceName)

	onboarding := NewOnboarding(core, global.settings, global.cloudGuard, projectCreation, global.clock)
	runErr := onboarding.Run()

	if global.outputTopic != nil {
		outcome := onboarding.Outcome(runErr)
		outcome.TriggeringPubsubID = metadata.EventID
		outcome.Timestamp = global.now()
		if id, err := gps.PublishOutcome(ctxEvent, global.outputTopic, outcome); err != nil {
			core.Logger.Warningf("outcome_not_published", "%v", err)
		} else {
			core.Logger.Debugf("outcome_published", "message id %s on %s", id, global.outputTopic.ID())
		}
	}

	if runErr != nil {
		core.Logger.Println(glo.Entry{
			Severity:    glo.SeverityCritical,
			Message:     "redo_on_transient",
			Description: runErr.Error(),
			Step:        onboarding.LastCompleted.String(),
		})
		return runErr
	}
	end := global.now()
	latency := end.Sub(metadata.Timestamp)
	core.Logger.Println(glo.Entry{
		Severity:                   glo.SeverityNotice,
		Message:                    fmt.Sprintf("finish onboarding %s", core.ProjectID),
		Description:                fmt.Sprintf("CloudGuard account %s organizational unit '%s' service account %s", onboarding.GoogleCloudAccount.ID, onboarding.OrganizationalUnitID, onboarding.ServiceAccountEmail),
		Step:                       onboarding.LastCompleted.String(),
		Now:                        &end,
		TriggeringPubsubTimestamp:  &metadata.Timestamp,
		TriggeringPubsubAgeSeconds: d.Seconds(),
		LatencySeconds:             latency.Seconds(),
	})
	return nil
}
