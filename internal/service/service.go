package service

import (
	"github.com/ashwinyue/docqa/internal/config"
	"github.com/ashwinyue/docqa/internal/repository"
	"github.com/ashwinyue/docqa/internal/service/auth"
	"github.com/ashwinyue/docqa/internal/service/generator"
	"github.com/ashwinyue/docqa/internal/service/review"
	"github.com/ashwinyue/docqa/internal/service/upload"
)

// Services 服务集合
type Services struct {
	Auth      *auth.Service
	Review    *review.Service
	Upload    *upload.Service
	Generator *generator.Service

	// 配置
	Config *config.Config
}

// NewServices 创建所有服务
func NewServices(repo *repository.Repositories, cfg *config.Config) *Services {
	gen := generator.NewService(cfg)

	return &Services{
		Auth:      auth.NewService(repo),
		Review:    review.NewService(repo),
		Upload:    upload.NewService(repo, gen),
		Generator: gen,
		Config:    cfg,
	}
}
