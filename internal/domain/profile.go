package domain

// UserProfile is the lightweight memory carried across sessions. Fields are
// only ever appended to or overwritten, never cleared.
type UserProfile struct {
	Name            string   `json:"name,omitempty"`
	MentionedTopics []string `json:"mentioned_topics"`
	SessionCount    int      `json:"sessions_count"`
}

// HasTopic reports whether topic was already recorded.
func (p *UserProfile) HasTopic(topic string) bool {
	for _, t := range p.MentionedTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// AddTopic records topic if absent, preserving insertion order.
// Returns true when the topic was actually added.
func (p *UserProfile) AddTopic(topic string) bool {
	if p.HasTopic(topic) {
		return false
	}
	p.MentionedTopics = append(p.MentionedTopics, topic)
	return true
}
