package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/set-night/mindfulchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps the serialized state in memory, mimicking the single-slot
// blob semantics of the real repository.
type memStore struct {
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (*domain.AppState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.data == nil {
		return nil, nil
	}
	var state domain.AppState
	if err := json.Unmarshal(m.data, &state); err != nil {
		return nil, nil
	}
	return state.Normalize(), nil
}

func (m *memStore) Save(_ context.Context, state *domain.AppState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.data = data
	m.saves++
	return nil
}

func TestLoadOrCreateFreshState(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(store)

	state := svc.LoadOrCreate(context.Background())

	require.NotNil(t, state)
	assert.True(t, strings.HasPrefix(state.UserID, "user_"))
	assert.Empty(t, state.Sessions)
	assert.Equal(t, 1, store.saves, "fresh state is persisted immediately")
}

func TestLoadOrCreateRecoversFromLoadError(t *testing.T) {
	store := &memStore{loadErr: errors.New("disk on fire")}
	svc := NewSessionService(store)

	state := svc.LoadOrCreate(context.Background())

	require.NotNil(t, state)
	assert.True(t, strings.HasPrefix(state.UserID, "user_"))
}

func TestLoadOrCreateKeepsExistingState(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(store)

	first := svc.LoadOrCreate(context.Background())
	sess := svc.Create(first)
	svc.Append(sess, domain.RoleUser, "hello")
	svc.Persist(context.Background(), first)

	second := svc.LoadOrCreate(context.Background())

	assert.Equal(t, first.UserID, second.UserID)
	require.Contains(t, second.Sessions, sess.ID)
	assert.Equal(t, "hello", second.Sessions[sess.ID].Messages[0].Content)
}

func TestCreateRegistersCurrentAndCountsSession(t *testing.T) {
	svc := NewSessionService(&memStore{})
	state := domain.NewAppState("user_x")

	sess := svc.Create(state)

	assert.True(t, strings.HasPrefix(sess.ID, "chat_"))
	assert.Equal(t, sess.ID, state.CurrentSessionID)
	assert.Same(t, sess, state.Sessions[sess.ID])
	assert.Equal(t, 1, state.Profile.SessionCount)
	assert.Equal(t, sess.CreatedAt, sess.UpdatedAt)

	svc.Create(state)
	assert.Equal(t, 2, state.Profile.SessionCount)
}

func TestSelectSession(t *testing.T) {
	svc := NewSessionService(&memStore{})
	state := domain.NewAppState("user_x")
	a := svc.Create(state)
	b := svc.Create(state)
	require.Equal(t, b.ID, state.CurrentSessionID)

	require.NoError(t, svc.Select(state, a.ID))
	assert.Equal(t, a.ID, state.CurrentSessionID)

	err := svc.Select(state, "chat_missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, a.ID, state.CurrentSessionID, "failed select leaves current untouched")
}

func TestAppendBumpsUpdatedAtStrictly(t *testing.T) {
	svc := NewSessionService(&memStore{})
	state := domain.NewAppState("user_x")
	sess := svc.Create(state)

	first := svc.Append(sess, domain.RoleUser, "one")
	second := svc.Append(sess, domain.RoleAssistant, "two")

	require.Len(t, sess.Messages, 2)
	assert.Greater(t, second.Timestamp, first.Timestamp)
	assert.Equal(t, second.Timestamp, sess.UpdatedAt)

	// Even with a stalled clock the bump stays strictly increasing.
	sess.UpdatedAt = second.Timestamp + 1_000_000
	third := svc.Append(sess, domain.RoleUser, "three")
	assert.Equal(t, sess.UpdatedAt, third.Timestamp)
	assert.Greater(t, third.Timestamp, second.Timestamp)
}

func TestPersistSwallowsSaveError(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	svc := NewSessionService(store)
	state := domain.NewAppState("user_x")

	// Must not panic or surface the error.
	svc.Persist(context.Background(), state)
	assert.Zero(t, store.saves)
}
