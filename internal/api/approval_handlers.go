package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AmeyaVir/bom-render/internal/classification/model"
	"github.com/AmeyaVir/bom-render/internal/classification/store"
	"github.com/gin-gonic/gin"
)

// AddApprovalRequest queues one candidate classification for human review.
type AddApprovalRequest struct {
	WorkflowID string `json:"workflow_id" binding:"required"`
	ItemData   string `json:"item_data" binding:"required"`
}

func (h *Handler) AddPendingApproval(c *gin.Context) {
	var req AddApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.approvals.Add(c.Request.Context(), req.WorkflowID, req.ItemData)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to add pending approval", "workflow_id", req.WorkflowID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add pending approval"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListPendingApprovals returns the review queue, optionally restricted to
// one workflow via the workflow_id query parameter.
func (h *Handler) ListPendingApprovals(c *gin.Context) {
	items, err := h.approvals.ListPending(c.Request.Context(), c.Query("workflow_id"))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to list pending approvals", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list pending approvals"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ItemApprovalRequest resolves the review of a non-empty set of queued
// items in one statement.
type ItemApprovalRequest struct {
	ItemIDs  []int64 `json:"item_ids" binding:"required,min=1"`
	Status   string  `json:"status"`
	Reviewer string  `json:"reviewed_by"`
	Notes    string  `json:"notes"`
}

func (h *Handler) ReviewApprovals(c *gin.Context) {
	var req ItemApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := model.ApprovalStatus(req.Status)
	if status == "" {
		status = model.ApprovalStatusApproved
	}

	updated, err := h.approvals.BulkUpdateStatus(c.Request.Context(), req.ItemIDs, status, req.Reviewer, req.Notes)
	if err != nil {
		if errors.Is(err, store.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to review approvals", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to review approvals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
