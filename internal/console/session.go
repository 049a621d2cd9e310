// internal/console/session.go
//
// Interactive terminal session for one game.
// Responsibilities:
//   - Render the numbered history of scored guesses each turn.
//   - Prompt with the required guess length and list eliminated letters.
//   - Read one line per guess from the input stream, reprompting with a
//     distinct reason when the engine rejects it.
//   - Print the terminal win/loss message (attempt count on a win, secret
//     word on a loss).
//
// Notes:
//   - Rejections never consume an attempt; the same turn is replayed.
//   - A closed input stream is unrecoverable and surfaces as an error.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"gordle/internal/game"
)

// ErrInputClosed reports that the input stream ended before the game did.
var ErrInputClosed = errors.New("input stream closed")

// Session owns the terminal I/O for a single game.
type Session struct {
	game  *game.Game
	in    *bufio.Scanner
	out   io.Writer
	color bool
}

// NewSession builds a session on stdin/stdout. Color is enabled only when
// stdout is a terminal; the colorable writer keeps ANSI output working on
// Windows consoles.
func NewSession(g *game.Game) *Session {
	return &Session{
		game:  g,
		in:    bufio.NewScanner(os.Stdin),
		out:   colorable.NewColorableStdout(),
		color: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// NewSessionWith builds a session on explicit streams. Used by tests.
func NewSessionWith(g *game.Game, in io.Reader, out io.Writer, color bool) *Session {
	return &Session{game: g, in: bufio.NewScanner(in), out: out, color: color}
}

// Run plays the game to completion: one prompt per turn until the engine
// reports won or lost. Returns an error only when input fails mid-game.
func (s *Session) Run() error {
	for s.game.State() == game.StatePlaying {
		s.printHistory()
		s.printf("%s\n", s.paint(fmt.Sprintf("Enter your word guess (%d letters) and press ENTER", s.game.Length()), ColorPrompt))
		s.printEliminated()

		line, ok := s.readLine()
		if !ok {
			if err := s.in.Err(); err != nil {
				return fmt.Errorf("read guess: %w", err)
			}
			return ErrInputClosed
		}

		if _, err := s.game.Apply(line); err != nil {
			s.printf("%s\n", s.paint(err.Error(), ColorReject))
		}
	}

	s.printHistory()
	switch s.game.State() {
	case game.StateWon:
		s.printf("Correct! You guessed the word in %d tries.\n", s.game.Tries())
	case game.StateLost:
		s.printf("%s\n", s.paint(fmt.Sprintf("You ran out of tries! The word was %s", s.game.Secret()), ColorAbsent))
	}
	return nil
}

// printHistory writes the numbered scored guesses so far.
func (s *Session) printHistory() {
	for i, sg := range s.game.History() {
		s.printf("%d: %s\n", i+1, s.renderScored(sg))
	}
}

// printEliminated lists letters confirmed absent, if any.
func (s *Session) printEliminated() {
	letters := s.game.Eliminated()
	if len(letters) == 0 {
		return
	}
	s.printf("Letters not in the word:")
	for _, r := range letters {
		s.printf(" %c", r)
	}
	s.printf("\n")
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
