// internal/workers/recommendation/validate-profile/handler.go
package validateprofile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/common/metrics"
	"sportrec-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "validate-profile"
)

var (
	ErrProfileParse      = errors.New("PROFILE_PARSE_FAILED")
	ErrProfileValidation = errors.New("PROFILE_VALIDATION_FAILED")
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	schema       *gojsonschema.Schema
	strictSchema *gojsonschema.Schema
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(profileSchema))
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}
	strictSchema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(strictProfileSchema))
	if err != nil {
		return nil, fmt.Errorf("compile strict profile schema: %w", err)
	}

	return &Handler{
		config:       config,
		logger:       log.WithFields(map[string]interface{}{"taskType": TaskType}),
		schema:       schema,
		strictSchema: strictSchema,
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PROFILE_PARSE_FAILED", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "PROFILE_PARSE_FAILED"
		if errors.Is(err, ErrProfileValidation) {
			errorCode = "PROFILE_VALIDATION_FAILED"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if len(input.Profile) == 0 {
		return nil, fmt.Errorf("%w: profile is required", ErrProfileParse)
	}

	strict := h.config.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}

	schema := h.schema
	if strict {
		schema = h.strictSchema
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(input.Profile))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileParse, err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}

		if strict {
			return nil, fmt.Errorf("%w: %s", ErrProfileValidation, violations[0])
		}

		h.logger.Warn("profile has schema violations", map[string]interface{}{
			"violations": len(violations),
		})

		output := &Output{Valid: false, Errors: violations}
		var profile models.UserProfile
		if err := json.Unmarshal(input.Profile, &profile); err == nil {
			output.Profile = &profile
		}
		return output, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(input.Profile, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileParse, err)
	}

	return &Output{Valid: true, Profile: &profile}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
