// Package term is the terminal rendering collaborator. It subscribes to the
// orchestrator's events and is otherwise stateless with respect to the core.
package term

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/set-night/mindfulchat/internal/domain"
)

var (
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	crisisStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2)
)

const crisisResources = `You're not alone. If you're in crisis or thinking about harming yourself, please reach out right now:

  988 Suicide & Crisis Lifeline (US)   call or text 988
  Crisis Text Line                     text HOME to 741741
  Emergency services                   911 or your local emergency number
  International directory              https://findahelpline.com

These lines are free, confidential, and available around the clock.`

const helpText = `Commands:
  /new         start a new conversation
  /sessions    list past conversations
  /switch <n>  switch to conversation number n (or a full id)
  /models      list models offered by the endpoint
  /usage       show accumulated token usage and estimated cost
  /resources   show crisis support resources
  /quit        exit

Anything else is sent to MindfulChat.`

// Renderer writes conversation output to a terminal. It implements
// chat.Events.
type Renderer struct {
	out       io.Writer
	sessionID string
	rendered  int
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// MessagesChanged prints whatever the active session gained since the last
// call, re-printing the transcript when the active session changed.
func (r *Renderer) MessagesChanged(sess *domain.ChatSession) {
	if sess == nil {
		return
	}
	if sess.ID != r.sessionID {
		r.sessionID = sess.ID
		r.rendered = 0
		fmt.Fprintf(r.out, "\n%s\n", activeStyle.Render("— "+sess.Title()+" —"))
	}
	if r.rendered > len(sess.Messages) {
		r.rendered = 0
	}
	for _, m := range sess.Messages[r.rendered:] {
		switch m.Role {
		case domain.RoleUser:
			fmt.Fprintf(r.out, "%s %s\n", userStyle.Render("you:"), m.Content)
		case domain.RoleAssistant:
			fmt.Fprintf(r.out, "%s %s\n", assistantStyle.Render("mindfulchat:"), m.Content)
		}
	}
	r.rendered = len(sess.Messages)
}

// SessionsChanged is a no-op: the terminal has no persistent sidebar, the
// list is rendered on demand via /sessions.
func (r *Renderer) SessionsChanged([]*domain.ChatSession) {}

// CrisisDetected prints the static safety-resource panel.
func (r *Renderer) CrisisDetected() {
	fmt.Fprintf(r.out, "\n%s\n\n", crisisStyle.Render(crisisResources))
}

// TypingChanged signals the in-flight turn.
func (r *Renderer) TypingChanged(active bool) {
	if active {
		fmt.Fprintln(r.out, dimStyle.Render("mindfulchat is typing..."))
	}
}

// Welcome prints the greeting shown at startup.
func (r *Renderer) Welcome(state *domain.AppState) {
	fmt.Fprintf(r.out, "%s\n", activeStyle.Render("MindfulChat"))
	fmt.Fprintln(r.out, "A supportive space to talk about whatever's on your mind.")
	if state.Profile.SessionCount > 0 {
		greeting := "Welcome back"
		if state.Profile.Name != "" {
			greeting += ", " + state.Profile.Name
		}
		fmt.Fprintf(r.out, "%s.\n", greeting)
	}
	fmt.Fprintf(r.out, "%s\n\n", dimStyle.Render("Type /help for commands."))
}

// Sessions prints the session list ordered by recency.
func (r *Renderer) Sessions(sessions []*domain.ChatSession, currentID string) {
	if len(sessions) == 0 {
		fmt.Fprintln(r.out, dimStyle.Render("No conversations yet."))
		return
	}
	for i, s := range sessions {
		line := fmt.Sprintf("%2d. %s", i+1, s.Title())
		if s.ID == currentID {
			line = activeStyle.Render(line + "  (active)")
		}
		fmt.Fprintln(r.out, line)
	}
}

// Models prints the model ids offered by the endpoint.
func (r *Renderer) Models(ids []string) {
	for _, id := range ids {
		fmt.Fprintln(r.out, "  "+id)
	}
}

// Usage prints the accumulated token usage and estimated spend.
func (r *Renderer) Usage(u domain.UsageStats) {
	fmt.Fprintf(r.out, "prompt tokens:     %d\n", u.PromptTokens)
	fmt.Fprintf(r.out, "completion tokens: %d\n", u.CompletionTokens)
	fmt.Fprintf(r.out, "estimated cost:    $%s\n", u.EstimatedCost.StringFixed(6))
}

// Help prints the command reference.
func (r *Renderer) Help() {
	fmt.Fprintln(r.out, helpText)
}

// Info prints a one-line notice.
func (r *Renderer) Info(msg string) {
	fmt.Fprintln(r.out, dimStyle.Render(msg))
}
