// internal/workers/recommendation/match-facilities/handler.go
package matchfacilities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sportrec-workers/internal/common/config"
	"sportrec-workers/internal/common/logger"
	"sportrec-workers/internal/common/metrics"
	"sportrec-workers/internal/models"
	"sportrec-workers/internal/recommendation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "match-facilities"
)

var (
	ErrCatalogEntryInvalid = errors.New("CATALOG_ENTRY_INVALID")
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, "PROFILE_PARSE_FAILED", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "RECOMMENDATION_FAILED"
		if errors.Is(err, ErrCatalogEntryInvalid) {
			errorCode = "CATALOG_ENTRY_INVALID"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	// An absent catalog falls back to the configured defaults; an explicit
	// empty array means "match against nothing" and yields an empty result.
	entries := input.Catalog
	if entries == nil {
		entries = config.DefaultCatalog()
	}

	facilities, skipped := recommendation.NormalizeCatalog(entries)
	if len(skipped) > 0 {
		if h.config.StrictCatalog {
			first := skipped[0]
			return nil, fmt.Errorf("%w: entry %q: %s", ErrCatalogEntryInvalid, first.Name, first.Reason)
		}
		metrics.CatalogEntriesSkipped.WithLabelValues(TaskType).Add(float64(len(skipped)))
		for _, s := range skipped {
			h.logger.Warn("catalog entry skipped", map[string]interface{}{
				"name":   s.Name,
				"reason": s.Reason,
			})
		}
	}

	matched := recommendation.Match(input.Cohort, facilities)

	h.logger.Info("facilities matched", map[string]interface{}{
		"cohort":  input.Cohort,
		"matched": len(matched),
		"skipped": len(skipped),
	})

	return &Output{
		RecommendedFacilities: matched,
		Matched:               len(matched),
		SkippedEntries:        toSkippedEntries(skipped),
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
