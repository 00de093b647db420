// Package session runs the interactive lookup loop.
//
// The loop is an explicit state machine:
//
//	AwaitInput → Fetching → Display → AwaitContinue → (AwaitInput | Terminated)
//
// A failed lookup skips Display and goes straight to AwaitContinue. End of
// input at either prompt terminates the session. Everything is sequential:
// one prompt or one lookup in flight at a time.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dmagro/hemi-popstats/internal/display"
	"github.com/dmagro/hemi-popstats/internal/format"
	"github.com/dmagro/hemi-popstats/internal/locale"
	"github.com/dmagro/hemi-popstats/internal/popstats"
)

type State int

const (
	AwaitInput State = iota
	Fetching
	Display
	AwaitContinue
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitInput:
		return "await-input"
	case Fetching:
		return "fetching"
	case Display:
		return "display"
	case AwaitContinue:
		return "await-continue"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Looker performs one lookup. *popstats.Client satisfies it.
type Looker interface {
	Lookup(ctx context.Context, input string, mode popstats.Mode) (*popstats.Result, error)
}

// Session owns everything one interactive run needs; nothing is global.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	looker Looker
	msgs   locale.Messages
	mode   popstats.Mode
	logger zerolog.Logger

	state  State
	input  string
	result *popstats.Result
}

func New(in io.Reader, out io.Writer, looker Looker, msgs locale.Messages, mode popstats.Mode, logger zerolog.Logger) *Session {
	return &Session{
		in:     bufio.NewScanner(in),
		out:    out,
		looker: looker,
		msgs:   msgs,
		mode:   mode,
		logger: logger,
		state:  AwaitInput,
	}
}

// State returns the state the next Step will handle.
func (s *Session) State() State { return s.state }

// Run prints the welcome banner and steps until the session terminates.
// The only error returned is a failure reading input; lookup errors are
// reported and the user is asked whether to continue.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "%s\n\n", s.msgs.Welcome)
	for s.state != Terminated {
		s.Step(ctx)
	}
	return s.in.Err()
}

// Step handles the current state and moves to the next one.
func (s *Session) Step(ctx context.Context) State {
	switch s.state {
	case AwaitInput:
		s.state = s.awaitInput()
	case Fetching:
		s.state = s.fetch(ctx)
	case Display:
		s.state = s.display()
	case AwaitContinue:
		s.state = s.awaitContinue()
	}
	return s.state
}

func (s *Session) awaitInput() State {
	line, ok := s.prompt(s.msgs.PromptInput)
	if !ok {
		return s.goodbye()
	}
	if strings.TrimSpace(line) == "" {
		fmt.Fprintln(s.out, s.msgs.EmptyInput)
		return AwaitInput
	}
	s.input = strings.TrimSpace(line)
	return Fetching
}

func (s *Session) fetch(ctx context.Context) State {
	fmt.Fprintf(s.out, "\n"+s.msgs.Fetching+"\n", s.input)

	res, err := s.looker.Lookup(ctx, s.input, s.mode)
	if err != nil {
		s.reportError(err)
		s.result = nil
		return AwaitContinue
	}
	s.result = res
	return Display
}

func (s *Session) display() State {
	if err := display.NewStatsFormatter(s.result, s.msgs).Format(s.out); err != nil {
		s.logger.Error().Err(err).Msg("failed to display results")
	}
	return AwaitContinue
}

func (s *Session) awaitContinue() State {
	line, ok := s.prompt("\n" + s.msgs.AskAnother)
	if !ok || !s.msgs.IsAffirmative(line) {
		return s.goodbye()
	}
	return AwaitInput
}

func (s *Session) goodbye() State {
	fmt.Fprintln(s.out, s.msgs.Goodbye)
	return Terminated
}

// prompt writes text and reads one line. ok is false at end of input.
func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return s.in.Text(), true
}

// reportError logs a failed lookup with whatever diagnostics the error carries.
func (s *Session) reportError(err error) {
	ev := s.logger.Error().Err(err).Str("input", s.input)

	var netErr *popstats.NetworkError
	if errors.As(err, &netErr) {
		ev = ev.Str("url", netErr.URL)
		if netErr.StatusCode != 0 {
			ev = ev.Int("status", netErr.StatusCode).Str("status_text", netErr.StatusText)
		}
	}
	ev.Msg("lookup failed")

	fmt.Fprintf(s.out, "\n%s %s\n", format.Red(s.msgs.FetchError), err)
}
