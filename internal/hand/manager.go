package hand

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSessionNotFound 会话不存在或已被回收
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionLimit 会话数量已达上限
	ErrSessionLimit = errors.New("session limit reached")
)

// ManagerConfig 会话管理器配置
type ManagerConfig struct {
	Logger      *zap.Logger
	IdleTimeout time.Duration // 空闲会话回收阈值
	MaxSessions int
}

// Manager 会话管理器。每个录入端持有一个会话，
// 以UUID为键，空闲超时后台回收。
type Manager struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	logger      *zap.Logger
	idleTimeout time.Duration
	maxSessions int
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewManager 创建会话管理器
func NewManager(cfg *ManagerConfig) *Manager {
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = 2 * time.Hour
	}
	max := cfg.MaxSessions
	if max <= 0 {
		max = 64
	}
	return &Manager{
		sessions:    make(map[string]*Session),
		logger:      cfg.Logger,
		idleTimeout: idle,
		maxSessions: max,
		stopCh:      make(chan struct{}),
	}
}

// Create 创建并登记新会话
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sessions) >= m.maxSessions {
		return nil, ErrSessionLimit
	}

	id := uuid.New().String()
	session := NewSession(id, m.logger)
	m.sessions[id] = session

	m.logger.Info("创建会话",
		zap.String("session_id", id),
		zap.Int("total", len(m.sessions)))
	return session, nil
}

// Get 查找会话
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Remove 移除会话
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.logger.Info("移除会话", zap.String("session_id", id))
	}
}

// Count 返回活跃会话数
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartSweeper 启动空闲会话回收循环
func (m *Manager) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stopCh:
				return
			}
		}
	}()
}

// Stop 停止回收循环
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopCh)
	})
}

// sweep 回收超过空闲阈值的会话
func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.idleTimeout)

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, session := range m.sessions {
		if session.LastActivity().Before(cutoff) {
			delete(m.sessions, id)
			m.logger.Info("回收空闲会话", zap.String("session_id", id))
		}
	}
}
