package domain

import "sort"

// AppState is the single persisted root object. It is created once on first
// run, reconciled with defaults on every load, and written back as a whole
// after each mutating operation.
type AppState struct {
	UserID           string                  `json:"userId"`
	CurrentSessionID string                  `json:"currentChatId,omitempty"`
	Sessions         map[string]*ChatSession `json:"chats"`
	Profile          UserProfile             `json:"userContext"`
	Usage            UsageStats              `json:"usage"`
}

// NewAppState builds a fresh state for a first run.
func NewAppState(userID string) *AppState {
	return &AppState{
		UserID:   userID,
		Sessions: make(map[string]*ChatSession),
		Profile:  UserProfile{MentionedTopics: []string{}},
	}
}

// Normalize reconciles a loaded state with defaults: a loaded value wins when
// present and well-formed, the default otherwise. In particular it restores
// the invariant that CurrentSessionID, if set, keys an existing session.
// Returns the receiver.
func (s *AppState) Normalize() *AppState {
	if s.Sessions == nil {
		s.Sessions = make(map[string]*ChatSession)
	}
	for id, sess := range s.Sessions {
		if sess == nil {
			delete(s.Sessions, id)
			continue
		}
		if sess.ID == "" {
			sess.ID = id
		}
		if sess.Messages == nil {
			sess.Messages = []Message{}
		}
	}
	if s.CurrentSessionID != "" {
		if _, ok := s.Sessions[s.CurrentSessionID]; !ok {
			s.CurrentSessionID = ""
		}
	}
	if s.Profile.MentionedTopics == nil {
		s.Profile.MentionedTopics = []string{}
	}
	if s.Profile.SessionCount < 0 {
		s.Profile.SessionCount = 0
	}
	return s
}

// CurrentSession returns the active session, or nil when none is selected.
func (s *AppState) CurrentSession() *ChatSession {
	if s.CurrentSessionID == "" {
		return nil
	}
	return s.Sessions[s.CurrentSessionID]
}

// SessionsByRecency lists sessions ordered by UpdatedAt descending,
// ties broken by ID for a stable listing.
func (s *AppState) SessionsByRecency() []*ChatSession {
	out := make([]*ChatSession, 0, len(s.Sessions))
	for _, sess := range s.Sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt > out[j].UpdatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}
