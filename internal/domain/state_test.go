package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("nil maps and slices get defaults", func(t *testing.T) {
		s := (&AppState{UserID: "user_x"}).Normalize()

		assert.NotNil(t, s.Sessions)
		assert.NotNil(t, s.Profile.MentionedTopics)
	})

	t.Run("dangling current session id is cleared", func(t *testing.T) {
		s := &AppState{
			UserID:           "user_x",
			CurrentSessionID: "chat_gone",
			Sessions:         map[string]*ChatSession{},
		}
		s.Normalize()

		assert.Empty(t, s.CurrentSessionID)
	})

	t.Run("valid current session id survives", func(t *testing.T) {
		s := &AppState{
			CurrentSessionID: "chat_1",
			Sessions: map[string]*ChatSession{
				"chat_1": {ID: "chat_1"},
			},
		}
		s.Normalize()

		assert.Equal(t, "chat_1", s.CurrentSessionID)
	})

	t.Run("nil session entries are dropped, missing ids restored", func(t *testing.T) {
		s := &AppState{
			Sessions: map[string]*ChatSession{
				"chat_nil": nil,
				"chat_1":   {},
			},
		}
		s.Normalize()

		require.Len(t, s.Sessions, 1)
		assert.Equal(t, "chat_1", s.Sessions["chat_1"].ID)
		assert.NotNil(t, s.Sessions["chat_1"].Messages)
	})

	t.Run("negative session count reset", func(t *testing.T) {
		s := &AppState{Profile: UserProfile{SessionCount: -3}}
		s.Normalize()

		assert.Zero(t, s.Profile.SessionCount)
	})
}

func TestCurrentSession(t *testing.T) {
	s := NewAppState("user_x")
	assert.Nil(t, s.CurrentSession())

	sess := &ChatSession{ID: "chat_1"}
	s.Sessions["chat_1"] = sess
	s.CurrentSessionID = "chat_1"
	assert.Same(t, sess, s.CurrentSession())
}

func TestSessionsByRecency(t *testing.T) {
	s := NewAppState("user_x")
	s.Sessions["chat_a"] = &ChatSession{ID: "chat_a", UpdatedAt: 100}
	s.Sessions["chat_b"] = &ChatSession{ID: "chat_b", UpdatedAt: 300}
	s.Sessions["chat_c"] = &ChatSession{ID: "chat_c", UpdatedAt: 200}

	list := s.SessionsByRecency()

	require.Len(t, list, 3)
	assert.Equal(t, "chat_b", list[0].ID)
	assert.Equal(t, "chat_c", list[1].ID)
	assert.Equal(t, "chat_a", list[2].ID)
}
