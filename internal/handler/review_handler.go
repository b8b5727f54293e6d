package handler

import (
	"github.com/ashwinyue/docqa/internal/middleware"
	"github.com/ashwinyue/docqa/internal/service"
	"github.com/ashwinyue/docqa/internal/service/review"
	"github.com/gin-gonic/gin"
)

// ReviewHandler 审核处理器
type ReviewHandler struct {
	svc *service.Services
}

// NewReviewHandler 创建审核处理器
func NewReviewHandler(svc *service.Services) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// ListPending 列出待审核条目
// GET /review/pending
func (h *ReviewHandler) ListPending(c *gin.Context) {
	items, err := h.svc.Review.ListPending(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, items)
}

// GetStats 按状态统计
// GET /review/stats
func (h *ReviewHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.Review.GetStats(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, stats)
}

// Annotate 提交标注
// POST /review/annotate
func (h *ReviewHandler) Annotate(c *gin.Context) {
	var req review.AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	annotatorID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Authentication required")
		return
	}

	ann, err := h.svc.Review.Annotate(c.Request.Context(), &req, annotatorID)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, ann)
}
