package handler

import (
	"github.com/ashwinyue/docqa/internal/middleware"
	"github.com/ashwinyue/docqa/internal/service"
	"github.com/ashwinyue/docqa/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	svc *service.Services
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(svc *service.Services) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register 用户注册
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	resp, err := h.svc.Auth.Register(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}

	Created(c, resp)
}

// Login 用户登录
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	resp, err := h.svc.Auth.Login(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}

	if !resp.Success {
		Unauthorized(c, resp.Message)
		return
	}

	Success(c, resp)
}

// Me 当前用户信息
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		Unauthorized(c, "Authentication required")
		return
	}

	Success(c, user.ToUserInfo())
}
