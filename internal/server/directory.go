package server

import "log"

// registerClient 把连接注册到目录
// 同一 (game, player) 已有连接时旧连接被顶替并关闭（后到者胜）
func (s *Server) registerClient(c *Client) {
	s.clientsMu.Lock()
	players, ok := s.clients[c.GameID]
	if !ok {
		players = make(map[string]*Client)
		s.clients[c.GameID] = players
	}
	old := players[c.PlayerID]
	players[c.PlayerID] = c
	s.clientsMu.Unlock()

	if old != nil {
		log.Printf("⚠️ 玩家 %s 在游戏 %s 的旧连接被新连接顶替", c.PlayerID, c.GameID)
		old.Close()
	}
}

// unregisterClient 从目录移除连接
// 只有目录里仍是这条连接时才移除；被顶替的旧连接不会误删新连接。
// 玩家不存在时是 no-op。返回是否真的移除了
func (s *Server) unregisterClient(c *Client) bool {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	players, ok := s.clients[c.GameID]
	if !ok {
		return false
	}
	if players[c.PlayerID] != c {
		return false
	}
	delete(players, c.PlayerID)
	return true
}

// clientsOf 返回游戏内所有连接的快照
func (s *Server) clientsOf(gameID string) []*Client {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	players := s.clients[gameID]
	snapshot := make([]*Client, 0, len(players))
	for _, c := range players {
		snapshot = append(snapshot, c)
	}
	return snapshot
}

// GetOnlineCount 获取在线连接数（按需调用）
func (s *Server) GetOnlineCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	count := 0
	for _, players := range s.clients {
		count += len(players)
	}
	return count
}
