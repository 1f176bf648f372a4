package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/set-night/mindfulchat/internal/chat"
	"github.com/set-night/mindfulchat/internal/domain"
)

// ModelLister lists the models the completion endpoint offers.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// REPL is the interactive entry point: it reads user input, routes slash
// commands, and submits everything else to the conversation.
type REPL struct {
	conv   *chat.Conversation
	models ModelLister
	render *Renderer
}

func NewREPL(conv *chat.Conversation, models ModelLister, render *Renderer) *REPL {
	return &REPL{conv: conv, models: models, render: render}
}

// Run loops until the context is cancelled, the input stream ends, or the
// user quits.
func (r *REPL) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	r.render.Welcome(r.conv.State())
	if sess := r.conv.State().CurrentSession(); sess != nil {
		r.render.MessagesChanged(sess)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		input, err := line.Prompt("you> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, "/") {
			if quit := r.command(ctx, input); quit {
				return nil
			}
			continue
		}

		r.submit(ctx, input)
	}
}

func (r *REPL) submit(ctx context.Context, text string) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("panic recovered in turn",
				"panic", rec,
				"stack", string(debug.Stack()),
			)
		}
	}()

	if err := r.conv.Submit(ctx, text); err != nil {
		if errors.Is(err, domain.ErrActiveRequest) {
			r.render.Info("Still working on the previous message.")
			return
		}
		slog.Error("submit turn", "error", err)
	}
}

func (r *REPL) command(ctx context.Context, input string) (quit bool) {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/help":
		r.render.Help()
	case "/new":
		r.conv.NewSession(ctx)
		r.render.Info("Started a new conversation.")
	case "/sessions":
		state := r.conv.State()
		r.render.Sessions(state.SessionsByRecency(), state.CurrentSessionID)
	case "/switch":
		if len(fields) < 2 {
			r.render.Info("Usage: /switch <number|id>")
			break
		}
		r.switchSession(ctx, fields[1])
	case "/models":
		ids, err := r.models.ListModels(ctx)
		if err != nil {
			slog.Error("list models", "error", err)
			r.render.Info("Could not fetch the model list right now.")
			break
		}
		r.render.Models(ids)
	case "/usage":
		r.render.Usage(r.conv.State().Usage)
	case "/resources":
		r.render.CrisisDetected()
	default:
		r.render.Info("Unknown command. Try /help.")
	}
	return false
}

func (r *REPL) switchSession(ctx context.Context, arg string) {
	id := arg
	if n, err := strconv.Atoi(arg); err == nil {
		list := r.conv.State().SessionsByRecency()
		if n < 1 || n > len(list) {
			r.render.Info("No such session number.")
			return
		}
		id = list[n-1].ID
	}
	if err := r.conv.SelectSession(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			r.render.Info("Session not found.")
			return
		}
		slog.Error("switch session", "error", err)
	}
}
