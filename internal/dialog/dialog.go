// Package dialog provides the modal message and confirmation prompts used
// by the CLI.
//
// Dialog is the capability; Console implements it over a terminal,
// Notice over a non-interactive stream, and Scripted for tests.
package dialog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Dialog shows messages to the user and asks yes/no questions. Both calls
// block until the user has answered and neither can fail.
type Dialog interface {
	Show(message string)
	Confirm(message string) bool
}

// accepted answers for Confirm, compared case-insensitively.
var yes = map[string]bool{"y": true, "yes": true, "s": true, "si": true, "sí": true}

// Console prompts on out and reads answers from in.
type Console struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Show prints message and waits for Enter.
func (c *Console) Show(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "%s\n[Enter] ", message)
	_, _ = c.in.ReadString('\n')
}

// Confirm prints message and reports whether the answer was affirmative.
// EOF or a read error counts as no.
func (c *Console) Confirm(message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "%s [y/N] ", message)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return yes[strings.ToLower(strings.TrimSpace(line))]
}

// Notice writes messages to a stream without waiting and answers every
// confirmation with Answer. Use it when no terminal is attached.
type Notice struct {
	Out    io.Writer
	Answer bool
}

func (n Notice) Show(message string) { fmt.Fprintln(n.Out, message) }

func (n Notice) Confirm(message string) bool {
	verdict := "no"
	if n.Answer {
		verdict = "yes"
	}
	fmt.Fprintf(n.Out, "%s [y/N] %s (non-interactive)\n", message, verdict)
	return n.Answer
}

// Scripted records messages and replays queued answers. When the queue
// is empty Confirm returns false.
type Scripted struct {
	mu        sync.Mutex
	Answers   []bool
	Shown     []string
	Confirmed []string
}

func (s *Scripted) Show(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Shown = append(s.Shown, message)
}

func (s *Scripted) Confirm(message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmed = append(s.Confirmed, message)
	if len(s.Answers) == 0 {
		return false
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a
}

var (
	_ Dialog = (*Console)(nil)
	_ Dialog = Notice{}
	_ Dialog = (*Scripted)(nil)
)
