package domain

const (
	titleMaxLen      = 30
	placeholderTitle = "New conversation"
)

// ChatSession is one conversation thread. UpdatedAt is bumped on every
// appended message and is strictly increasing.
type ChatSession struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt int64     `json:"createdAt"`
	UpdatedAt int64     `json:"updatedAt"`
}

// Title derives the display title from the first user message, truncated to
// 30 characters. Sessions without a user message get a fixed placeholder.
// The title is never stored.
func (s *ChatSession) Title() string {
	for _, m := range s.Messages {
		if m.Role != RoleUser {
			continue
		}
		runes := []rune(m.Content)
		if len(runes) <= titleMaxLen {
			return m.Content
		}
		return string(runes[:titleMaxLen]) + "..."
	}
	return placeholderTitle
}
