// internal/workers/recommendation/recommend-facilities/handler.go
package recommendfacilities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sportrec-workers/internal/common/database"
	commonerrors "sportrec-workers/internal/common/errors"
	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/common/metrics"
	"sportrec-workers/internal/models"
	"sportrec-workers/internal/recommendation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "recommend-facilities"
)

var (
	ErrMissingProfile     = errors.New("PROFILE_PARSE_FAILED")
	ErrCatalogUnavailable = errors.New("CATALOG_UNAVAILABLE")
)

type Handler struct {
	config    *Config
	db        *database.PostgresClient
	redis     *database.RedisClient
	logger    logger.Logger
	errRouter *commonerrors.ErrorHandler
}

func NewHandler(config *Config, db *database.PostgresClient, redisClient *database.RedisClient, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		db:        db,
		redis:     redisClient,
		logger:    scoped,
		errRouter: commonerrors.NewErrorHandler(scoped),
	}
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
		h.failJob(client, job, commonerrors.NewProfileParseFailedError(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, h.toStandardError(err))
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Profile == nil {
		return nil, fmt.Errorf("%w: profile is required", ErrMissingProfile)
	}

	entries, source, err := h.resolveCatalog(ctx, input.Catalog)
	if err != nil {
		return nil, err
	}

	facilities, skipped := recommendation.NormalizeCatalog(entries)
	if len(skipped) > 0 {
		metrics.CatalogEntriesSkipped.WithLabelValues(TaskType).Add(float64(len(skipped)))
		for _, s := range skipped {
			h.logger.Warn("catalog entry skipped", map[string]interface{}{
				"name":   s.Name,
				"reason": s.Reason,
			})
		}
	}

	cohort := recommendation.Score(input.Profile)
	matched := recommendation.Match(cohort, facilities)

	h.logger.Info("recommendation computed", map[string]interface{}{
		"cohort":        cohort,
		"matched":       len(matched),
		"catalogSource": source,
	})

	return &Output{
		RequestID:             uuid.NewString(),
		Cohort:                cohort,
		RecommendedFacilities: matched,
		Matched:               len(matched),
		SkippedEntries:        toSkippedEntries(skipped),
		CatalogSource:         source,
	}, nil
}

func toSkippedEntries(skipped []*recommendation.CatalogEntryError) []models.SkippedEntry {
	if len(skipped) == 0 {
		return nil
	}
	out := make([]models.SkippedEntry, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, models.SkippedEntry{Name: s.Name, Reason: s.Reason})
	}
	return out
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

// failJob routes the failure through the shared error handler, which
// fails retryable catalog errors with remaining retries and throws a
// BPMN error for everything else.
func (h *Handler) failJob(client worker.JobClient, job entities.Job, stdErr *commonerrors.StandardError) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.errRouter.HandleJobError(context.Background(), client, job, stdErr)
}

func (h *Handler) toStandardError(err error) *commonerrors.StandardError {
	switch {
	case errors.Is(err, ErrMissingProfile):
		return commonerrors.NewProfileParseFailedError(err)
	case errors.Is(err, ErrCatalogUnavailable):
		return commonerrors.NewCatalogUnavailableError(err)
	default:
		return commonerrors.NewRecommendationFailedError(err)
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
