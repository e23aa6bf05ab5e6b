package session

import "sync"

// Registry 维护 gameID → Session 的映射
// 首次引用时惰性创建，进程生命周期内不回收。
// 创建在注册表锁内完成，并发的首次访问不会产生重复会话
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry 创建会话注册表
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate 获取或创建指定游戏的会话，幂等
func (r *Registry) GetOrCreate(gameID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, exists := r.sessions[gameID]; exists {
		return s
	}
	s := NewSession(gameID)
	r.sessions[gameID] = s
	return s
}

// Get 获取已存在的会话，不存在返回 nil
func (r *Registry) Get(gameID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[gameID]
}

// Count 返回当前会话数量
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
