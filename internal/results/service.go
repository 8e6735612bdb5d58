package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ats-screener-backend/internal/extract"
	"ats-screener-backend/internal/llm"
	"ats-screener-backend/internal/shared/metrics"
	"ats-screener-backend/internal/shared/telemetry"
)

// Extractor turns uploaded document bytes into per-page text blocks.
type Extractor interface {
	Pages(ctx context.Context, data []byte) ([]extract.PageText, error)
}

// Service orchestrates one analysis action: validate, extract, assemble,
// generate, persist. View and delete talk to the repo directly.
type Service struct {
	Repo      Repo
	Extractor Extractor
	LLM       llm.Client
}

// AnalyzeRequest carries one user-triggered analysis action.
type AnalyzeRequest struct {
	FileName       string
	Document       []byte
	JobDescription string
	Mode           llm.Mode
}

// Analyze runs the full pipeline synchronously. A record is created
// exactly once per successful action, after the external call returns;
// nothing is persisted on failure.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Record, error) {
	if req.Mode.Label() == "" {
		return Record{}, ErrUnknownMode
	}
	if len(req.Document) == 0 {
		return Record{}, ErrDocumentRequired
	}

	jobDescription := strings.TrimSpace(req.JobDescription)
	if req.Mode.RequiresJobDescription() && jobDescription == "" {
		return Record{}, ErrJobDescriptionRequired
	}
	if !req.Mode.RequiresJobDescription() {
		// The summary action ignores any pasted job description and
		// stores an empty one.
		jobDescription = ""
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	pages, err := s.Extractor.Pages(ctx, req.Document)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Record{}, fmt.Errorf("extract document: %w", err)
	}

	parts := llm.Assemble(jobDescription, pages, req.Mode)
	text, err := s.LLM.Generate(ctx, parts)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Record{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	record := Record{
		ID:             uuid.NewString(),
		JobDescription: jobDescription,
		ResumeFilename: req.FileName,
		AnalysisType:   req.Mode.Label(),
		Result:         text,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		metrics.IncAnalysisFailed()
		return Record{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	telemetry.Info("analysis.completed", map[string]any{
		"record_id":     record.ID,
		"analysis_type": record.AnalysisType,
		"file_name":     record.ResumeFilename,
		"pages":         len(pages),
		"duration_ms":   float64(time.Since(started).Microseconds()) / 1000.0,
	})
	return record, nil
}

// List returns all stored records.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return records, nil
}

// DeleteAll removes every stored record.
func (s *Service) DeleteAll(ctx context.Context) error {
	if err := s.Repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	metrics.IncResultsDeleted()
	telemetry.Info("results.deleted", nil)
	return nil
}
