package router

import (
	"path/filepath"

	"github.com/ashwinyue/docqa/internal/handler"
	"github.com/ashwinyue/docqa/internal/middleware"
	"github.com/ashwinyue/docqa/internal/model"
	"github.com/ashwinyue/docqa/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRouter 设置路由
// webDir 为前端页面目录，空串则不挂载页面
func SetupRouter(h *handler.Handlers, svc *service.Services, webDir string) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth 认证
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.GET("/me", middleware.RequireAuth(svc), h.Auth.Me)
	}

	// Upload 上传（仅 provider）
	uploadGroup := r.Group("/upload")
	uploadGroup.Use(middleware.RequireAuth(svc), middleware.RequireRole(model.RoleProvider))
	{
		uploadGroup.POST("/file", h.Upload.UploadFile)
	}

	// Review 审核（任意已认证角色）
	reviewGroup := r.Group("/review")
	reviewGroup.Use(middleware.RequireAuth(svc))
	{
		reviewGroup.GET("/pending", h.Review.ListPending)
		reviewGroup.GET("/stats", h.Review.GetStats)
		reviewGroup.POST("/annotate", h.Review.Annotate)
	}

	// Provider 导出（仅 provider）
	providerGroup := r.Group("/provider")
	providerGroup.Use(middleware.RequireAuth(svc), middleware.RequireRole(model.RoleProvider))
	{
		providerGroup.GET("/ready", h.Provider.ListReady)
		providerGroup.GET("/export/json", h.Provider.ExportJSON)
		providerGroup.GET("/export/csv", h.Provider.ExportCSV)
	}

	// 前端页面
	if webDir != "" {
		r.LoadHTMLGlob(filepath.Join(webDir, "templates", "*.html"))
		r.Static("/static", filepath.Join(webDir, "static"))
		r.GET("/", func(c *gin.Context) {
			c.HTML(200, "login.html", nil)
		})
		r.GET("/dashboard", func(c *gin.Context) {
			c.HTML(200, "dashboard.html", nil)
		})
	}

	return r
}
