package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
)

const maxRecentLimit = 100

// SummaryHandler wires the HTTP transport to the summarizer service.
type SummaryHandler struct {
	svc    summarizer.Service
	logger *slog.Logger
}

// NewSummaryHandler constructs the summary HTTP handler.
func NewSummaryHandler(svc summarizer.Service, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Summarize handles the sync summarization endpoint.
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req summarizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.svc.Summarize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Analyze returns every candidate sentence with its score and selection flag.
func (h *SummaryHandler) Analyze(c *gin.Context) {
	var req summarizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// Get returns a stored summary record.
func (h *SummaryHandler) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Recent lists the latest summaries, newest first.
func (h *SummaryHandler) Recent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer", err))
			return
		}
		limit = min(parsed, maxRecentLimit)
	}

	records, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if records == nil {
		records = []summarizer.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"summaries": records})
}

// Source streams back the archived article text.
func (h *SummaryHandler) Source(c *gin.Context) {
	text, err := h.svc.Source(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

// Health reports liveness.
func (h *SummaryHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
