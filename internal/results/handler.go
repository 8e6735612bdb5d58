package results

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ats-screener-backend/internal/extract"
	"ats-screener-backend/internal/llm"
	"ats-screener-backend/internal/shared/server/respond"
	"ats-screener-backend/internal/shared/util"
)

const (
	maxUploadSize = 10 << 20 // 10MB

	// Job descriptions are truncated for list display only; the stored
	// value is never cut.
	displayJobDescriptionLimit = 300
)

// Handler wires HTTP handlers to the results service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyze)
	rg.GET("/analyses", h.list)
	rg.DELETE("/analyses", h.deleteAll)
}

func (h *Handler) analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	mode, ok := llm.ParseMode(strings.TrimSpace(c.PostForm("mode")))
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "mode must be one of: summary, match, improve", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume PDF is required", nil)
		return
	}
	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	record, err := h.Svc.Analyze(c.Request.Context(), AnalyzeRequest{
		FileName:       fileName,
		Document:       document,
		JobDescription: c.PostForm("job_description"),
		Mode:           mode,
	})
	if err != nil {
		var extractErr *extract.Error
		var llmErr *llm.Error
		switch {
		case errors.Is(err, ErrDocumentRequired),
			errors.Is(err, ErrJobDescriptionRequired),
			errors.Is(err, ErrUnknownMode):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.As(err, &extractErr):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "could not read the uploaded PDF", gin.H{"cause": extractErr.Error()})
		case errors.As(err, &llmErr):
			respond.Error(c, http.StatusBadGateway, "analysis_failed", llmErr.Error(), nil)
		case errors.Is(err, ErrAnalysisFailed):
			respond.Error(c, http.StatusBadGateway, "analysis_failed", "analysis request failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save analysis result", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(record, false))
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to load results", nil)
		return
	}

	items := make([]recordResponse, 0, len(records))
	for _, record := range records {
		items = append(items, toResponse(record, true))
	}
	respond.OK(c, gin.H{"results": items, "count": len(items)})
}

func (h *Handler) deleteAll(c *gin.Context) {
	if err := h.Svc.DeleteAll(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to delete results", nil)
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

type recordResponse struct {
	ID             string    `json:"id"`
	AnalysisType   string    `json:"analysisType"`
	ResumeFilename string    `json:"resumeFilename"`
	JobDescription string    `json:"jobDescription"`
	Result         string    `json:"result"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toResponse(record Record, truncate bool) recordResponse {
	jobDescription := record.JobDescription
	if truncate {
		jobDescription = truncateForDisplay(jobDescription, displayJobDescriptionLimit)
	}
	return recordResponse{
		ID:             record.ID,
		AnalysisType:   record.AnalysisType,
		ResumeFilename: record.ResumeFilename,
		JobDescription: jobDescription,
		Result:         record.Result,
		CreatedAt:      record.CreatedAt,
	}
}

func truncateForDisplay(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
