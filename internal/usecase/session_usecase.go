package usecase

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/session"
	"storefront/internal/state"

	"go.uber.org/zap"
)

// セッショントークンの発行
type SessionTokenIssuer interface {
	Issue(sessionID string, now time.Time) (string, time.Time, error)
}

type SessionUsecase struct {
	registry *session.Registry
	issuer   SessionTokenIssuer
	clock    Clock
	logger   *zap.Logger
}

// DI
func NewSessionUsecase(registry *session.Registry, issuer SessionTokenIssuer, clock Clock, logger *zap.Logger) *SessionUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionUsecase{
		registry: registry,
		issuer:   issuer,
		clock:    clock,
		logger:   logger,
	}
}

type StartSessionOutput struct {
	SessionID string          `json:"session_id"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	State     state.RootState `json:"state"`
}

// 空の状態で新しいセッションを開始する
func (u *SessionUsecase) Start(ctx context.Context) (StartSessionOutput, error) {
	s := u.registry.Create()

	tok, exp, err := u.issuer.Issue(s.ID, u.clock.Now())
	if err != nil {
		u.logger.Error("issue session token failed", zap.Error(err))
		return StartSessionOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	u.logger.Info("session started", zap.String("session_id", s.ID))
	return StartSessionOutput{
		SessionID: s.ID,
		Token:     tok,
		ExpiresAt: exp,
		State:     s.Dispatcher.State(),
	}, nil
}

// トークンが有効なら、pruneされていても空の状態で再開する
func (u *SessionUsecase) Resume(sessionID string) StateDispatcher {
	s := u.registry.GetOrCreate(sessionID)
	u.registry.Touch(s)
	return s.Dispatcher
}
