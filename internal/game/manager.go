package game

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"boxshogi/internal/boxshogi"
)

var ErrGameNotFound = errors.New("game not found")

// Manager 按 ID 管理多局对弈。每局的 Session 本身不加锁，
// 对它的访问都经过 Manager 的锁。
type Manager struct {
	mu     sync.RWMutex
	games  map[string]*GameState
	logger *zap.Logger
	opts   []boxshogi.Option
}

// NewManager opts 会传给每个新建的 Session
func NewManager(logger *zap.Logger, opts ...boxshogi.Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		games:  make(map[string]*GameState),
		logger: logger,
		opts:   opts,
	}
}

func (m *Manager) sessionOptions(id string) []boxshogi.Option {
	opts := append([]boxshogi.Option{}, m.opts...)
	return append(opts, boxshogi.WithLogger(m.logger.With(zap.String("game", id))))
}

func (m *Manager) NewGame() *GameState {
	id := uuid.NewString()
	return m.add(id, boxshogi.NewSession(m.sessionOptions(id)...))
}

// NewGameFromSetup 自定义局面开局
func (m *Manager) NewGameFromSetup(setup boxshogi.Setup) (*GameState, error) {
	id := uuid.NewString()
	s, err := boxshogi.NewSessionFromSetup(setup, m.sessionOptions(id)...)
	if err != nil {
		return nil, err
	}
	return m.add(id, s), nil
}

func (m *Manager) add(id string, s *boxshogi.Session) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        id,
		Session:   s,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = g
	m.logger.Debug("game created", zap.String("game", id))
	return g
}

func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return Snapshot{}, ErrGameNotFound
	}
	return g.snapshot(), nil
}

// Apply 在指定对局上执行一步
func (m *Manager) Apply(id string, a boxshogi.Action) (boxshogi.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return boxshogi.Outcome{}, ErrGameNotFound
	}
	out := g.Session.Apply(a)
	if out.Status != boxshogi.Rejected {
		g.UpdatedAt = time.Now()
	}
	return out, nil
}

// Submit 解析文本后执行
func (m *Manager) Submit(id, text string) (boxshogi.Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return boxshogi.Outcome{}, ErrGameNotFound
	}
	out := g.Session.Submit(text)
	if out.Status != boxshogi.Rejected {
		g.UpdatedAt = time.Now()
	}
	return out, nil
}

// Validate 只校验不执行
func (m *Manager) Validate(id string, a boxshogi.Action) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	return g.Session.Validate(a)
}

// Forfeit 行棋方认负
func (m *Manager) Forfeit(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	g.Session.Forfeit()
	g.UpdatedAt = time.Now()
	return nil
}

// Events 返回对局事件副本
func (m *Manager) Events(id string) ([]boxshogi.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.Session.Events(), nil
}

// List 按创建时间排序的对局 ID
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	games := make([]*GameState, 0, len(m.games))
	for _, g := range m.games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	m.logger.Debug("game removed", zap.String("game", id))
	return nil
}
