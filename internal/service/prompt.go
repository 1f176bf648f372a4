package service

import (
	"fmt"
	"strings"

	"github.com/set-night/mindfulchat/internal/config"
	"github.com/set-night/mindfulchat/internal/domain"
)

// basePrompt is the support-companion persona and behavioral guidelines.
const basePrompt = `You are a compassionate, professional mental health support companion named MindfulChat. Your role is to provide emotional support like a caring therapist would.

IMPORTANT GUIDELINES:
1. RESPONSE STYLE:
   - Keep responses brief and conversational (2-4 sentences usually)
   - Sound like a warm, understanding human - not robotic
   - Use natural language like "I hear you", "That sounds really tough", "It makes sense that you'd feel that way"
   - Ask gentle, open-ended questions to understand better
   - Validate feelings without judgment

2. THERAPEUTIC APPROACH:
   - Practice active listening - reflect back what they share
   - Show genuine empathy and understanding
   - Never minimize their feelings or rush to solutions
   - Gently encourage self-reflection
   - Celebrate small wins and progress

3. MEMORY & CONTINUITY:
   - Remember details they've shared before
   - Reference past conversations naturally ("You mentioned before...")
   - Build on ongoing themes in their life
   - Notice patterns and growth

4. BOUNDARIES:
   - You're a supportive companion, not a replacement for professional therapy
   - For serious mental health concerns, gently encourage professional help
   - Never diagnose conditions or prescribe treatments
   - Focus on listening and emotional support

5. CRISIS RESPONSE:
   - If someone expresses thoughts of self-harm, respond with immediate warmth and care
   - Acknowledge their pain without panic
   - Let them know they're not alone
   - The app will show emergency resources automatically

Remember: You're having a real conversation with someone who needs to feel heard. Be present, be warm, be human.`

// PromptBuilder assembles the payload sent to the completion endpoint.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build composes the exact message list for one completion request: a single
// leading system message (persona plus personalization clauses, in the fixed
// order name, topics, returning-user), followed by the active session's
// non-system messages windowed to the most recent ContextWindow, oldest
// first. Pure function of state.
func (b *PromptBuilder) Build(state *domain.AppState) []domain.Message {
	var sb strings.Builder
	sb.WriteString(basePrompt)

	p := state.Profile
	if p.Name != "" {
		fmt.Fprintf(&sb, "\n\nThe user's name is %s. Use their name occasionally to be personal.", p.Name)
	}
	if len(p.MentionedTopics) > 0 {
		fmt.Fprintf(&sb, "\n\nTopics the user has mentioned before: %s. You can reference these when relevant.", strings.Join(p.MentionedTopics, ", "))
	}
	if p.SessionCount > 1 {
		fmt.Fprintf(&sb, "\n\nThis is session #%d with this user. They're a returning visitor, which shows they find value in talking with you.", p.SessionCount)
	}

	messages := []domain.Message{{Role: domain.RoleSystem, Content: sb.String()}}

	session := state.CurrentSession()
	if session == nil {
		return messages
	}

	history := make([]domain.Message, 0, len(session.Messages))
	for _, m := range session.Messages {
		if m.Role == domain.RoleSystem {
			continue
		}
		history = append(history, m)
	}
	if len(history) > config.ContextWindow {
		history = history[len(history)-config.ContextWindow:]
	}
	return append(messages, history...)
}
