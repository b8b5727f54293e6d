// Package errs 定义业务错误类型
// 用于在 handler 层按错误种类映射 HTTP 状态码
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 资源不存在
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized 未认证或令牌无效
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden 角色不满足要求
	ErrForbidden = errors.New("forbidden")
	// ErrInvalid 请求参数或输入非法
	ErrInvalid = errors.New("invalid input")
	// ErrUpstream 上游依赖（远程生成服务）失败
	ErrUpstream = errors.New("upstream error")
)

// NotFoundf 构造带上下文的 ErrNotFound
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Forbiddenf 构造带上下文的 ErrForbidden
func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

// Invalidf 构造带上下文的 ErrInvalid
func Invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalid)...)
}

// Upstreamf 构造带上下文的 ErrUpstream
func Upstreamf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrUpstream)...)
}
