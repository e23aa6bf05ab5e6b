package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/quartets-live/quartets-server/internal/config"
	"github.com/quartets-live/quartets-server/internal/game/session"
	"github.com/quartets-live/quartets-server/internal/server/handler"
	"github.com/quartets-live/quartets-server/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 来源在 handleWebSocket 里用 OriginChecker 校验
	},
}

// Server WebSocket 服务器
type Server struct {
	config      *config.Config
	redis       *redis.Client
	store       *storage.RedisStore
	leaderboard *storage.LeaderboardManager
	registry    *session.Registry
	handler     *handler.Handler

	// 连接目录：gameID → playerID → 连接
	clients   map[string]map[string]*Client
	clientsMu sync.RWMutex

	// 安全组件
	originChecker *OriginChecker

	// 连接控制
	maxConnections int
	semaphore      chan struct{} // 信号量控制并发连接数
}

// NewServer 创建服务器实例
func NewServer(cfg *config.Config) (*Server, error) {
	// 初始化 Redis 客户端
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 测试 Redis 连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis 连接失败: %w", err)
	}

	s := &Server{
		config:         cfg,
		redis:          rdb,
		store:          storage.NewRedisStore(rdb),
		leaderboard:    storage.NewLeaderboardManager(rdb),
		registry:       session.NewRegistry(),
		clients:        make(map[string]map[string]*Client),
		originChecker:  NewOriginChecker(cfg.Security.AllowedOrigins),
		maxConnections: cfg.Server.MaxConnections,
		semaphore:      make(chan struct{}, cfg.Server.MaxConnections),
	}

	// 初始化消息处理器
	s.handler = handler.NewHandler(handler.Deps{
		Server:      s,
		Registry:    s.registry,
		Store:       s.store,
		Leaderboard: s.leaderboard,
		MinPlayers:  cfg.Game.MinPlayers,
	})

	return s, nil
}

// Start 启动服务器
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	// 启动监控 goroutine
	go s.monitorStats()

	log.Printf("🚀 服务器启动在 ws://%s/ws/{game}/{player} (CPU核心数: %d)", addr, runtime.NumCPU())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second, // 防止 Slowloris 攻击
	}
	return server.ListenAndServe()
}

// Shutdown 关闭服务器
func (s *Server) Shutdown() {
	s.clientsMu.Lock()
	for _, players := range s.clients {
		for _, client := range players {
			client.Close()
		}
	}
	s.clientsMu.Unlock()

	if err := s.redis.Close(); err != nil {
		log.Printf("关闭 Redis 连接失败: %v", err)
	}
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// monitorStats 周期性输出在线情况
func (s *Server) monitorStats() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		log.Printf("📊 在线连接: %d, 会话数: %d", s.GetOnlineCount(), s.registry.Count())
	}
}
