package server

import (
	"net/http"
	"strings"
)

// OriginChecker 来源验证器
// 允许列表为空时放行所有来源（开发模式）
type OriginChecker struct {
	allowed map[string]bool
}

// NewOriginChecker 创建来源验证器
func NewOriginChecker(origins []string) *OriginChecker {
	oc := &OriginChecker{allowed: make(map[string]bool, len(origins))}
	for _, o := range origins {
		oc.allowed[strings.TrimSuffix(strings.ToLower(o), "/")] = true
	}
	return oc
}

// Check 验证请求来源
func (oc *OriginChecker) Check(r *http.Request) bool {
	if len(oc.allowed) == 0 {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		// 非浏览器客户端不带 Origin 头，放行
		return true
	}
	return oc.allowed[strings.TrimSuffix(strings.ToLower(origin), "/")]
}
