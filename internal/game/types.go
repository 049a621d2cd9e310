// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/misplaced/absent).
//   - LetterScore / ScoredGuess: an accepted guess with its verdicts.
//   - State: coarse game state (playing/won/lost).

package game

// Verdict is the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":   right letter in the right position.
//   - "misplaced": letter exists in the secret but in a different position,
//     subject to the secret's letter multiplicity.
//   - "absent":    letter not used by any verdict for this guess.
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictMisplaced Verdict = "misplaced"
	VerdictAbsent    Verdict = "absent"
)

// LetterScore pairs one guess letter with its verdict.
type LetterScore struct {
	Letter  rune
	Verdict Verdict
}

// ScoredGuess is the ordered per-position scoring of one accepted guess.
// Immutable once produced.
type ScoredGuess []LetterScore

// Word reassembles the guessed word.
func (s ScoredGuess) Word() string {
	r := make([]rune, len(s))
	for i, ls := range s {
		r[i] = ls.Letter
	}
	return string(r)
}

// AllCorrect reports whether every position scored correct.
func (s ScoredGuess) AllCorrect() bool {
	for _, ls := range s {
		if ls.Verdict != VerdictCorrect {
			return false
		}
	}
	return true
}

// State is the coarse lifecycle state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)
