package handler

import (
	"github.com/ashwinyue/docqa/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Auth     *AuthHandler
	Upload   *UploadHandler
	Review   *ReviewHandler
	Provider *ProviderHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(svc),
		Upload:   NewUploadHandler(svc),
		Review:   NewReviewHandler(svc),
		Provider: NewProviderHandler(svc),
	}
}
