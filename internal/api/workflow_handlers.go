package api

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"github.com/AmeyaVir/bom-render/internal/classification/store"
	"github.com/AmeyaVir/bom-render/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultLimit = 50

// Health reports database reachability.
func (h *Handler) Health(c *gin.Context) {
	if err := database.HealthCheck(h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateWorkflow registers a new classification run. The request is a
// multipart form with optional wi_document and item_master files, which are
// persisted to artifact storage before the workflow row is created. When no
// workflow_id field is supplied one is generated.
func (h *Handler) CreateWorkflow(c *gin.Context) {
	workflowID := c.PostForm("workflow_id")
	if workflowID == "" {
		workflowID = uuid.NewString()
	}
	comparisonMode := c.PostForm("comparison_mode")

	wiPath, err := h.storeFormFile(c, "wi_document", workflowID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to store wi document", "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store wi_document"})
		return
	}
	itemPath, err := h.storeFormFile(c, "item_master", workflowID)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to store item master", "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store item_master"})
		return
	}

	workflow, err := h.workflows.Create(c.Request.Context(), workflowID, comparisonMode, wiPath, itemPath)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("workflow %s already exists", workflowID)})
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to create workflow", "workflow_id", workflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create workflow"})
		return
	}

	c.JSON(http.StatusCreated, workflow)
}

// storeFormFile saves one optional multipart file to artifact storage and
// returns its stored location, or "" when the field is absent.
func (h *Handler) storeFormFile(c *gin.Context, field, workflowID string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	return h.storeUpload(c, fileHeader, workflowID)
}

func (h *Handler) storeUpload(c *gin.Context, fileHeader *multipart.FileHeader, workflowID string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return h.artifacts.SaveUpload(c.Request.Context(), workflowID, fileHeader.Filename, file)
}

// ListWorkflows returns the most recent workflows, newest first.
func (h *Handler) ListWorkflows(c *gin.Context) {
	workflows, err := h.workflows.ListRecent(c.Request.Context(), parseLimit(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list workflows", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workflows"})
		return
	}
	c.JSON(http.StatusOK, workflows)
}

// GetWorkflow returns one workflow by identifier.
func (h *Handler) GetWorkflow(c *gin.Context) {
	id := c.Param("workflowID")
	workflow, err := h.workflows.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to get workflow", "workflow_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get workflow"})
		return
	}
	c.JSON(http.StatusOK, workflow)
}

// UpdateStatusRequest is a partial status mutation: only supplied fields are
// written, but updated_at always advances.
type UpdateStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Progress *int   `json:"progress"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
}

// UpdateWorkflowStatus applies a partial status update. A target that
// matches no rows is reported as 404 rather than silently succeeding.
func (h *Handler) UpdateWorkflowStatus(c *gin.Context) {
	id := c.Param("workflowID")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := h.workflows.UpdateStatus(c.Request.Context(), id, store.StatusUpdate{
		Status:   model.WorkflowStatus(req.Status),
		Progress: req.Progress,
		Stage:    req.Stage,
		Message:  req.Message,
	})
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to update workflow status", "workflow_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workflow status"})
		return
	}
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

// parseLimit reads the limit query parameter, falling back to the default
// when absent or invalid.
func parseLimit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return defaultLimit
}
