// Package auth 提供注册、登录与 JWT 令牌校验
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashwinyue/docqa/internal/errs"
	"github.com/ashwinyue/docqa/internal/model"
	"github.com/ashwinyue/docqa/internal/repository"
)

var (
	jwtSecretOnce sync.Once
	jwtSecret     string
)

// getJwtSecret 获取 JWT 密钥
func getJwtSecret() string {
	jwtSecretOnce.Do(func() {
		if envSecret := strings.TrimSpace(os.Getenv("JWT_SECRET")); envSecret != "" {
			jwtSecret = envSecret
			return
		}

		randomBytes := make([]byte, 32)
		if _, err := rand.Read(randomBytes); err != nil {
			panic(fmt.Sprintf("failed to generate JWT secret: %v", err))
		}
		jwtSecret = base64.StdEncoding.EncodeToString(randomBytes)
	})

	return jwtSecret
}

// Service 认证服务
type Service struct {
	repo *repository.Repositories
}

// NewService 创建认证服务
func NewService(repo *repository.Repositories) *Service {
	return &Service{repo: repo}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=provider annotator"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message,omitempty"`
	User         *model.UserInfo `json:"user,omitempty"`
	Token        string          `json:"token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	User    *model.UserInfo `json:"user,omitempty"`
}

// Register 注册用户
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	// 检查邮箱是否已存在
	existingUser, _ := s.repo.Auth.GetUserByEmail(req.Email)
	if existingUser != nil {
		return nil, errs.Invalidf("user with email %s already exists", req.Email)
	}

	role := req.Role
	if role == "" {
		role = model.RoleAnnotator
	}

	// 哈希密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 创建用户
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         role,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.Auth.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterResponse{
		Success: true,
		Message: "Registration successful",
		User:    user.ToUserInfo(),
	}, nil
}

// Login 用户登录
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	user, err := s.repo.Auth.GetUserByEmail(req.Email)
	if err != nil {
		return &LoginResponse{
			Success: false,
			Message: "Invalid email or password",
		}, nil
	}

	// 验证密码
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return &LoginResponse{
			Success: false,
			Message: "Invalid email or password",
		}, nil
	}

	// 生成令牌
	accessToken, refreshToken, err := s.generateTokens(ctx, user)
	if err != nil {
		return &LoginResponse{
			Success: false,
			Message: "Login failed",
		}, err
	}

	return &LoginResponse{
		Success:      true,
		Message:      "Login successful",
		User:         user.ToUserInfo(),
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateToken 验证令牌并返回用户
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*model.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(getJwtSecret()), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", errs.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims: %w", errs.ErrUnauthorized)
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user ID in token: %w", errs.ErrUnauthorized)
	}

	// 检查令牌是否被撤销
	tokenRecord, err := s.repo.Auth.GetTokenByValue(tokenString)
	if err != nil || tokenRecord == nil || tokenRecord.IsRevoked {
		return nil, fmt.Errorf("token is revoked: %w", errs.ErrUnauthorized)
	}

	return s.repo.Auth.GetUserByID(userID)
}

// RevokeToken 撤销令牌
func (s *Service) RevokeToken(ctx context.Context, tokenString string) error {
	tokenRecord, err := s.repo.Auth.GetTokenByValue(tokenString)
	if err != nil {
		return err
	}

	return s.repo.Auth.RevokeToken(tokenRecord.ID)
}

// CheckRole 显式能力检查：当前用户角色必须等于要求的角色
// 授权失败与资源不存在是不同的错误种类
func CheckRole(user *model.User, required string) error {
	if user == nil {
		return errors.New("user is required")
	}
	if user.Role != required {
		return errs.Forbiddenf("role %s required, got %s", required, user.Role)
	}
	return nil
}

// generateTokens 生成访问令牌和刷新令牌
func (s *Service) generateTokens(ctx context.Context, user *model.User) (string, string, error) {
	// 生成访问令牌（24小时有效）
	accessClaims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
		"type":    "access",
	}

	accessTokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessToken, err := accessTokenObj.SignedString([]byte(getJwtSecret()))
	if err != nil {
		return "", "", err
	}

	// 生成刷新令牌（7天有效）
	refreshClaims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
		"type":    "refresh",
	}

	refreshTokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshToken, err := refreshTokenObj.SignedString([]byte(getJwtSecret()))
	if err != nil {
		return "", "", err
	}

	// 存储令牌到数据库
	accessTokenRecord := &model.AuthToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     accessToken,
		TokenType: "access_token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	refreshTokenRecord := &model.AuthToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     refreshToken,
		TokenType: "refresh_token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	_ = s.repo.Auth.CreateToken(accessTokenRecord)
	_ = s.repo.Auth.CreateToken(refreshTokenRecord)

	return accessToken, refreshToken, nil
}
