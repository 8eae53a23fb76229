package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AmeyaVir/bom-render/internal/classification/store"
	"github.com/gin-gonic/gin"
)

// AddEntryRequest carries a new classified material for the knowledge base.
// ItemData-style payloads stay opaque; metadata is stored as-is.
type AddEntryRequest struct {
	MaterialName        string `json:"material_name" binding:"required"`
	PartNumber          string `json:"part_number"`
	Description         string `json:"description"`
	ClassificationLabel *int   `json:"classification_label"`
	ConfidenceLevel     string `json:"confidence_level"`
	SupplierInfo        string `json:"supplier_info"`
	WorkflowID          string `json:"workflow_id"`
	ApprovedBy          string `json:"approved_by"`
	Metadata            string `json:"metadata"`
}

func (h *Handler) AddKnowledgeBaseEntry(c *gin.Context) {
	var req AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.knowledge.Add(c.Request.Context(), req.MaterialName, store.AddEntryParams{
		PartNumber:          req.PartNumber,
		Description:         req.Description,
		ClassificationLabel: req.ClassificationLabel,
		ConfidenceLevel:     req.ConfidenceLevel,
		SupplierInfo:        req.SupplierInfo,
		WorkflowID:          req.WorkflowID,
		ApprovedBy:          req.ApprovedBy,
		Metadata:            req.Metadata,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidArgument) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(c.Request.Context(), "failed to add knowledge base entry", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add knowledge base entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// SearchKnowledgeBase returns entries matching the query substring, or the
// most recent entries when the query is empty.
func (h *Handler) SearchKnowledgeBase(c *gin.Context) {
	entries, err := h.knowledge.Search(c.Request.Context(), c.Query("query"), parseLimit(c))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to search knowledge base", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search knowledge base"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) KnowledgeBaseStats(c *gin.Context) {
	stats, err := h.knowledge.Stats(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to compute knowledge base stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
