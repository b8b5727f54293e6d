package handler

import (
	"errors"
	"net/http"

	"github.com/ashwinyue/docqa/internal/errs"
	"github.com/gin-gonic/gin"
)

// SuccessResponse 成功响应
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Success 成功响应 (200)
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Code: 400, Msg: msg})
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Code: 401, Msg: msg})
}

// Forbidden 403 错误响应
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, ErrorResponse{Code: 403, Msg: msg})
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Code: 404, Msg: msg})
}

// BadGateway 502 错误响应（上游生成服务失败）
func BadGateway(c *gin.Context, msg string) {
	c.JSON(http.StatusBadGateway, ErrorResponse{Code: 502, Msg: msg})
}

// InternalServerError 500 错误响应
func InternalServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Code: 500, Msg: msg})
}

// Error 按错误种类返回相应的错误响应
func Error(c *gin.Context, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		Unauthorized(c, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		Forbidden(c, err.Error())
	case errors.Is(err, errs.ErrInvalid):
		BadRequest(c, err.Error())
	case errors.Is(err, errs.ErrUpstream):
		BadGateway(c, err.Error())
	default:
		InternalServerError(c, err.Error())
	}
}
