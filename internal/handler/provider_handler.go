package handler

import (
	"net/http"

	"github.com/ashwinyue/docqa/internal/service"
	"github.com/gin-gonic/gin"
)

// ProviderHandler 数据提供方处理器
type ProviderHandler struct {
	svc *service.Services
}

// NewProviderHandler 创建数据提供方处理器
func NewProviderHandler(svc *service.Services) *ProviderHandler {
	return &ProviderHandler{svc: svc}
}

// ListReady 列出已通过条目
// GET /provider/ready （provider 角色）
func (h *ProviderHandler) ListReady(c *gin.Context) {
	items, err := h.svc.Review.ListReady(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, items)
}

// ExportJSON 导出已通过条目为 JSON 附件
// GET /provider/export/json （provider 角色）
func (h *ProviderHandler) ExportJSON(c *gin.Context) {
	data, err := h.svc.Review.ExportJSON(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=ready_qas.json")
	c.Data(http.StatusOK, "application/json", data)
}

// ExportCSV 导出已通过条目为 CSV 附件
// GET /provider/export/csv （provider 角色）
func (h *ProviderHandler) ExportCSV(c *gin.Context) {
	data, err := h.svc.Review.ExportCSV(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=ready_qas.csv")
	c.Data(http.StatusOK, "text/csv", data)
}
