package api

import (
	"github.com/AmeyaVir/bom-render/internal/artifacts"
	"github.com/AmeyaVir/bom-render/internal/classification/store"
	"github.com/AmeyaVir/bom-render/internal/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler bundles the record stores and the artifact service behind the
// HTTP surface.
type Handler struct {
	db        *gorm.DB
	workflows *store.WorkflowStore
	knowledge *store.KnowledgeBaseStore
	approvals *store.ApprovalStore
	results   *store.ResultStore
	artifacts *artifacts.Service
}

func NewHandler(db *gorm.DB, artifactService *artifacts.Service) *Handler {
	return &Handler{
		db:        db,
		workflows: store.NewWorkflowStore(db),
		knowledge: store.NewKnowledgeBaseStore(db),
		approvals: store.NewApprovalStore(db),
		results:   store.NewResultStore(db),
		artifacts: artifactService,
	}
}

// NewRouter sets up the HTTP routes for the persistence API.
func NewRouter(h *Handler, corsCfg *config.CORSConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if corsCfg != nil {
		r.Use(CORS(corsCfg))
	}

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.POST("/workflows", h.CreateWorkflow)
		api.GET("/workflows", h.ListWorkflows)
		api.GET("/workflows/:workflowID", h.GetWorkflow)
		api.PUT("/workflows/:workflowID/status", h.UpdateWorkflowStatus)
		api.POST("/workflows/:workflowID/results", h.SaveResults)
		api.GET("/workflows/:workflowID/results", h.GetResults)
		api.GET("/workflows/:workflowID/results/history", h.ListResultHistory)

		api.POST("/knowledge-base", h.AddKnowledgeBaseEntry)
		api.GET("/knowledge-base", h.SearchKnowledgeBase)
		api.GET("/knowledge-base/stats", h.KnowledgeBaseStats)

		api.POST("/approvals", h.AddPendingApproval)
		api.GET("/approvals", h.ListPendingApprovals)
		api.POST("/approvals/review", h.ReviewApprovals)
	}

	return r
}
