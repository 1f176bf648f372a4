package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/mindfulchat/internal/domain"
)

// StateStore is the persistence dependency of the session service.
type StateStore interface {
	Load(ctx context.Context) (*domain.AppState, error)
	Save(ctx context.Context, state *domain.AppState) error
}

// SessionService owns the durable record: it loads the application state,
// mutates sessions in memory, and writes the whole state back after every
// mutating operation.
type SessionService struct {
	store StateStore
}

func NewSessionService(store StateStore) *SessionService {
	return &SessionService{store: store}
}

// LoadOrCreate returns the persisted state, or a fresh one when nothing
// usable is stored. A fresh state is persisted immediately so the generated
// user id survives the first run.
func (s *SessionService) LoadOrCreate(ctx context.Context) *domain.AppState {
	state, err := s.store.Load(ctx)
	if err != nil {
		slog.Error("load state", "error", err)
		state = nil
	}
	if state == nil {
		state = domain.NewAppState(NewUserID())
		s.Persist(ctx, state)
		slog.Info("created fresh state", "user_id", state.UserID)
	}
	return state
}

// Create registers a fresh empty session as current and bumps the profile
// session counter.
func (s *SessionService) Create(state *domain.AppState) *domain.ChatSession {
	now := time.Now().UnixMilli()
	sess := &domain.ChatSession{
		ID:        "chat_" + uuid.NewString(),
		Messages:  []domain.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	state.Sessions[sess.ID] = sess
	state.CurrentSessionID = sess.ID
	state.Profile.SessionCount++
	return sess
}

// Select switches the current session to id.
func (s *SessionService) Select(state *domain.AppState, id string) error {
	if _, ok := state.Sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	state.CurrentSessionID = id
	return nil
}

// Append adds a message to the session and bumps UpdatedAt. The bump is
// strictly increasing even when two appends land in the same millisecond.
func (s *SessionService) Append(sess *domain.ChatSession, role, content string) domain.Message {
	now := time.Now().UnixMilli()
	if now <= sess.UpdatedAt {
		now = sess.UpdatedAt + 1
	}
	msg := domain.Message{Role: role, Content: content, Timestamp: now}
	sess.Messages = append(sess.Messages, msg)
	sess.UpdatedAt = now
	return msg
}

// Persist writes the whole state. Failures are logged and swallowed: the
// in-memory state stays authoritative and the worst case is an unpersisted
// turn, never a crash surfaced to the user.
func (s *SessionService) Persist(ctx context.Context, state *domain.AppState) {
	if err := s.store.Save(ctx, state); err != nil {
		slog.Error("persist state", "error", err)
	}
}
