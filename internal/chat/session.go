// Package chat runs the interactive session loop: read a line, send the
// running transcript to the model, type out the reply, repeat until the
// sentinel input.
package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"grokcli/internal/term"
)

// Sentinel ends the session without sending a request.
const Sentinel = "exit"

// seed is the instruction line the transcript starts with. It is sent with
// every request and never shown to the user.
const seed = "The following is a conversation between a user and Grok. Continue it as Grok."

// Completer is the one operation the loop needs from the API client.
type Completer interface {
	CompleteChat(ctx context.Context, prompt string) (string, error)
}

var (
	userLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	botLabel  = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Session owns the transcript for one interactive run. Fields other than
// the client exist for tests; NewSession wires the real terminal.
type Session struct {
	Client Completer
	In     io.Reader
	Out    io.Writer

	// Spin runs fn while showing an in-flight indicator. Render prints a
	// finished reply.
	Spin   func(fn func())
	Render func(w io.Writer, s string)

	transcript []string
}

// NewSession returns a Session on stdin/stdout with the spinner and typing
// effect attached.
func NewSession(client Completer) *Session {
	return &Session{
		Client: client,
		In:     os.Stdin,
		Out:    os.Stdout,
		Spin: func(fn func()) {
			sp := term.NewSpinner()
			sp.Start()
			defer sp.Stop()
			fn()
		},
		Render: term.Type,
	}
}

// Run loops until the sentinel input or EOF. A failed request is reported
// and the turn is skipped; the loop keeps going.
func (s *Session) Run(ctx context.Context) error {
	s.transcript = []string{seed}
	scanner := bufio.NewScanner(s.In)

	for {
		fmt.Fprintf(s.Out, "%s ", userLabel("You:"))
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			return scanner.Err()
		}
		input := scanner.Text()
		s.transcript = append(s.transcript, input)

		if strings.TrimSpace(input) == Sentinel {
			return nil
		}

		// The latest input is already in the transcript, so it appears twice
		// in the outgoing prompt. Observed behavior of the original client,
		// kept as-is; see DESIGN.md.
		outgoing := strings.Join(s.transcript, "\n") + "\n" + input

		var reply string
		var err error
		s.Spin(func() {
			reply, err = s.Client.CompleteChat(ctx, outgoing)
		})
		if err != nil {
			// Drop the unanswered input so the transcript keeps alternating
			// and a failed turn is not replayed.
			s.transcript = s.transcript[:len(s.transcript)-1]
			fmt.Fprintf(s.Out, "%s %v\n", userLabel("error:"), err)
			continue
		}

		s.transcript = append(s.transcript, reply)
		fmt.Fprintf(s.Out, "%s ", botLabel("Grok:"))
		s.Render(s.Out, reply)
	}
}
