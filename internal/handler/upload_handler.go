package handler

import (
	"strings"

	"github.com/ashwinyue/docqa/internal/middleware"
	"github.com/ashwinyue/docqa/internal/service"
	"github.com/gin-gonic/gin"
)

// UploadHandler 上传处理器
type UploadHandler struct {
	svc *service.Services
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(svc *service.Services) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadFile 上传 jsonl 分块文件并触发 QA 生成
// POST /upload/file （provider 角色）
func (h *UploadHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("f")
	if err != nil {
		BadRequest(c, "file field 'f' is required")
		return
	}

	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".jsonl") && !strings.HasSuffix(name, ".json") {
		BadRequest(c, "Only .jsonl or .json supported for now")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		Error(c, err)
		return
	}
	defer f.Close()

	uploaderID, _ := middleware.GetUserID(c)

	result, err := h.svc.Upload.Ingest(c.Request.Context(), f, uploaderID)
	if err != nil {
		Error(c, err)
		return
	}

	Success(c, result)
}
