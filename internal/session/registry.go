package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/state"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 1ブラウザ分の状態。Dispatcherがcatalog/cart/uiを持つ。
type Session struct {
	ID         string
	CreatedAt  time.Time
	Dispatcher *state.Dispatcher

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// セッションをメモリ上で管理する
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
	logger   *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		now:      time.Now,
		logger:   logger,
	}
}

// テスト用に時計を差し替える
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

func (r *Registry) Create() *Session {
	s := r.newSession(uuid.NewString())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) newSession(id string) *Session {
	now := r.now()
	s := &Session{
		ID:         id,
		CreatedAt:  now,
		Dispatcher: state.NewDispatcher(state.NewRootState(), r.logger.With(zap.String("session_id", id))),
		lastSeen:   now,
	}
	//イベントが適用されたらアクセスがあったとみなす
	s.Dispatcher.Subscribe(func(_, _ state.RootState, _ state.Event) {
		s.touch(r.now())
	})
	return s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// 見つからなければ同じIDで空の状態を作り直す
func (r *Registry) GetOrCreate(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		return s
	}

	s := r.newSession(id)
	r.sessions[id] = s
	return s
}

func (r *Registry) Touch(s *Session) {
	s.touch(r.now())
}

// idle以上アクセスの無いセッションを削除し、削除数を返す
func (r *Registry) Prune(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// ctxが終わるまでinterval毎にPruneする
func (r *Registry) RunJanitor(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Prune(idle); n > 0 {
				r.logger.Info("sessions pruned", zap.Int("pruned", n), zap.Int("remaining", r.Len()))
			}
		}
	}
}
