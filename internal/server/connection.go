package server

import (
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// handleWebSocket 处理 WebSocket 连接，路径 /ws/{game}/{player}
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)

	// 连接数限制检查
	var release func()
	select {
	case s.semaphore <- struct{}{}:
		release = func() { <-s.semaphore }
	default:
		log.Printf("🚫 达到最大连接数限制 (%d), IP: %s", s.maxConnections, clientIP)
		http.Error(w, "Server Full", http.StatusServiceUnavailable)
		return
	}

	// 来源验证
	if !s.originChecker.Check(r) {
		release()
		log.Printf("🚫 来源验证失败: %s (IP: %s)", r.Header.Get("Origin"), clientIP)
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	gameID, playerID, ok := parseGamePath(r.URL.Path)
	if !ok {
		release()
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if playerID == "" {
		playerID = uuid.New().String()
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		release()
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(s, conn, gameID, playerID, release)
	client.IP = clientIP
	s.registerClient(client)

	log.Printf("✅ 玩家 %s 已连接到游戏 %s (IP: %s)", playerID, gameID, clientIP)

	// 启动客户端读写协程
	go client.ReadPump()
	go client.WritePump()
}

// parseGamePath 解析 /ws/{game}/{player} 路径
func parseGamePath(path string) (gameID, playerID string, ok bool) {
	rest := strings.TrimPrefix(path, "/ws/")
	if rest == path {
		return "", "", false
	}
	parts := strings.SplitN(strings.Trim(rest, "/"), "/", 2)
	if parts[0] == "" {
		return "", "", false
	}
	gameID = parts[0]
	if len(parts) == 2 {
		playerID = parts[1]
	}
	return gameID, playerID, true
}

// getClientIP 获取真实客户端 IP
func getClientIP(r *http.Request) string {
	// 反向代理场景优先取 X-Forwarded-For 的第一跳
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.Index(xff, ","); i > 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
