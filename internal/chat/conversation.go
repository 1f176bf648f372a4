// Package chat orchestrates one conversational turn at a time over the
// application state and emits events for whatever rendering layer is
// attached.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/set-night/mindfulchat/internal/domain"
	"github.com/set-night/mindfulchat/internal/service"
	"github.com/shopspring/decimal"
)

// FallbackReply is stored as a normal assistant message when the completion
// endpoint fails. It is not flagged distinctly from real replies.
const FallbackReply = "I'm having trouble connecting right now. Please try again in a moment. Remember, if you need immediate support, the helpline numbers are always available."

// Completer is the completion dependency. A single attempt per call; there
// is no retry policy here or below.
type Completer interface {
	Complete(ctx context.Context, messages []domain.Message) (string, domain.TokenUsage, error)
}

// Events is the surface a rendering layer subscribes to. The orchestrator
// calls these inline, so implementations must be cheap and must not call
// back into the conversation.
type Events interface {
	SessionsChanged(sessions []*domain.ChatSession)
	MessagesChanged(active *domain.ChatSession)
	CrisisDetected()
	TypingChanged(active bool)
}

// NopEvents ignores everything.
type NopEvents struct{}

func (NopEvents) SessionsChanged([]*domain.ChatSession) {}
func (NopEvents) MessagesChanged(*domain.ChatSession)   {}
func (NopEvents) CrisisDetected()                       {}
func (NopEvents) TypingChanged(bool)                    {}

// Conversation runs the per-turn sequence: append user message, crisis scan,
// profile extraction, persist, context build, completion call, assistant
// append (or fallback), persist. One turn in flight at a time; it is not
// safe for concurrent use.
type Conversation struct {
	state     *domain.AppState
	sessions  *service.SessionService
	crisis    *service.CrisisDetector
	extractor *service.ProfileExtractor
	prompts   *service.PromptBuilder
	completer Completer
	events    Events

	promptPrice     decimal.Decimal
	completionPrice decimal.Decimal

	sending bool
}

// Deps contains everything required to construct a Conversation.
type Deps struct {
	State     *domain.AppState
	Sessions  *service.SessionService
	Crisis    *service.CrisisDetector
	Extractor *service.ProfileExtractor
	Prompts   *service.PromptBuilder
	Completer Completer
	Events    Events
}

func New(deps Deps) *Conversation {
	events := deps.Events
	if events == nil {
		events = NopEvents{}
	}
	promptPrice, completionPrice := service.DefaultPricing()
	return &Conversation{
		state:           deps.State,
		sessions:        deps.Sessions,
		crisis:          deps.Crisis,
		extractor:       deps.Extractor,
		prompts:         deps.Prompts,
		completer:       deps.Completer,
		events:          events,
		promptPrice:     promptPrice,
		completionPrice: completionPrice,
	}
}

// State exposes the owned application state for rendering.
func (c *Conversation) State() *domain.AppState {
	return c.state
}

// Sending reports whether a turn is in flight.
func (c *Conversation) Sending() bool {
	return c.sending
}

// NewSession creates and selects a fresh session.
func (c *Conversation) NewSession(ctx context.Context) *domain.ChatSession {
	sess := c.sessions.Create(c.state)
	c.sessions.Persist(ctx, c.state)
	c.events.SessionsChanged(c.state.SessionsByRecency())
	c.events.MessagesChanged(sess)
	return sess
}

// SelectSession switches to an existing session. Returns
// domain.ErrSessionNotFound when id is unknown.
func (c *Conversation) SelectSession(ctx context.Context, id string) error {
	if err := c.sessions.Select(c.state, id); err != nil {
		return err
	}
	c.sessions.Persist(ctx, c.state)
	c.events.SessionsChanged(c.state.SessionsByRecency())
	c.events.MessagesChanged(c.state.CurrentSession())
	return nil
}

// Submit runs one full user turn. Empty input is a no-op. Returns
// domain.ErrActiveRequest while a previous turn is still in flight.
// Completion failures never escape: they become the fixed fallback
// assistant message.
func (c *Conversation) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if c.sending {
		return domain.ErrActiveRequest
	}
	c.sending = true
	c.events.TypingChanged(true)
	defer func() {
		c.sending = false
		c.events.TypingChanged(false)
	}()

	sess := c.state.CurrentSession()
	if sess == nil {
		sess = c.sessions.Create(c.state)
		c.events.SessionsChanged(c.state.SessionsByRecency())
	}

	// Side channel only: the resource panel is surfaced, but the request
	// below is not altered and sending is not blocked.
	if c.crisis.Scan(text) {
		c.events.CrisisDetected()
	}

	c.sessions.Append(sess, domain.RoleUser, text)
	c.extractor.Update(&c.state.Profile, text)
	c.sessions.Persist(ctx, c.state)
	c.events.MessagesChanged(sess)

	reply, usage, err := c.completer.Complete(ctx, c.prompts.Build(c.state))
	if err != nil {
		slog.Error("completion failed", "error", err, "session", sess.ID)
		c.sessions.Append(sess, domain.RoleAssistant, FallbackReply)
	} else {
		c.sessions.Append(sess, domain.RoleAssistant, reply)
		c.state.Usage.Add(usage, service.CalculateCost(usage, c.promptPrice, c.completionPrice))
	}

	c.sessions.Persist(ctx, c.state)
	c.events.MessagesChanged(sess)
	c.events.SessionsChanged(c.state.SessionsByRecency())
	return nil
}
