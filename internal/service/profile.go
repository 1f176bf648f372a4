package service

import (
	"regexp"
	"strings"

	"github.com/set-night/mindfulchat/internal/domain"
)

var namePattern = regexp.MustCompile(`(?i)(?:my name is|i'm called|call me|i am)\s+(\w+)`)

// topicVocabulary is the fixed list scanned for in every user message.
var topicVocabulary = []string{
	"work", "family", "relationship", "anxiety", "depression", "sleep",
	"stress", "school", "friends", "health", "money", "loneliness",
}

// ProfileExtractor updates the user profile from message text using naive
// pattern matching. The heuristics are deliberately simple and are not
// hardened against mis-extraction ("call me back later" captures "back").
type ProfileExtractor struct{}

func NewProfileExtractor() *ProfileExtractor {
	return &ProfileExtractor{}
}

// Update applies name and topic extraction to profile in place. Name capture
// is last-mention-wins; topics keep set semantics with insertion order.
// Returns true when anything changed.
func (e *ProfileExtractor) Update(profile *domain.UserProfile, text string) bool {
	changed := false

	if m := namePattern.FindStringSubmatch(text); m != nil && profile.Name != m[1] {
		profile.Name = m[1]
		changed = true
	}

	lower := strings.ToLower(text)
	for _, topic := range topicVocabulary {
		if strings.Contains(lower, topic) && profile.AddTopic(topic) {
			changed = true
		}
	}

	return changed
}
