package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AmeyaVir/bom-render/internal/artifacts"
	"github.com/gin-gonic/gin"
)

// SaveResultsRequest carries a workflow's computed output. Results go to
// durable artifact storage as a JSON blob and are also appended to the
// workflow_results table; Summary is optional.
type SaveResultsRequest struct {
	Results map[string]interface{} `json:"results" binding:"required"`
	Summary map[string]interface{} `json:"summary"`
}

func (h *Handler) SaveResults(c *gin.Context) {
	workflowID := c.Param("workflowID")

	var req SaveResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.artifacts.SaveResults(c.Request.Context(), workflowID, req.Results)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to save results artifact", "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save results"})
		return
	}

	resultsData, err := json.Marshal(req.Results)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	summaryData := ""
	if req.Summary != nil {
		data, err := json.Marshal(req.Summary)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		summaryData = string(data)
	}

	record, err := h.results.Add(c.Request.Context(), workflowID, string(resultsData), summaryData)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to record results", "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record results"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"stored_path": location, "result_id": record.ID})
}

// GetResults streams back the workflow's result document from artifact
// storage.
func (h *Handler) GetResults(c *gin.Context) {
	workflowID := c.Param("workflowID")

	results, err := h.artifacts.GetResults(c.Request.Context(), workflowID)
	if err != nil {
		if errors.Is(err, artifacts.ErrResultsNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "results not found"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to read results", "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read results"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// ListResultHistory returns the append-only result records for a workflow,
// newest first.
func (h *Handler) ListResultHistory(c *gin.Context) {
	workflowID := c.Param("workflowID")

	records, err := h.results.ListByWorkflow(c.Request.Context(), workflowID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list result history", "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list result history"})
		return
	}
	c.JSON(http.StatusOK, records)
}
