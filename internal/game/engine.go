// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Create games with a uniformly random (or fixed) secret word.
//   - Validate guesses (length, dictionary membership) without consuming
//     an attempt on rejection.
//   - Score accepted guesses with the two-pass correct/misplaced algorithm.
//   - Track state transitions: playing → won/lost, attempt history, and the
//     eliminated-letters set.
//
// Notes:
//   - Candidate words come from the words package; the engine stores its
//     dictionary reference for guess validation.
//   - Scoring is deterministic: the same (secret, guess) pair always yields
//     the same verdict sequence.

package game

import (
	"errors"
	"fmt"
	"sort"

	"gordle/internal/words"
)

// DefaultMaxTries is the classic six-attempt limit.
const DefaultMaxTries = 6

var (
	// ErrEmptyDictionary is returned when a game is constructed with no
	// candidate words.
	ErrEmptyDictionary = errors.New("dictionary has no candidate words")

	// ErrFinished is returned by Apply once the game reached won or lost.
	ErrFinished = errors.New("game is finished")
)

// WrongLengthError rejects a guess whose sanitized length does not match
// the word length. The attempt is not consumed.
type WrongLengthError struct {
	Length int // required word length
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("your guess must be %d letters", e.Length)
}

// UnknownWordError rejects a sanitized guess that is not a candidate word.
// The attempt is not consumed.
type UnknownWordError struct {
	Word string // the sanitized, rejected word
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("%s isn't in the dictionary", e.Word)
}

// Game holds the state of a single session. All mutation happens through
// Apply on the owning goroutine; the engine is not concurrency-safe and
// does not need to be.
type Game struct {
	secret     string
	maxTries   int
	dict       *words.Dictionary
	history    []ScoredGuess
	eliminated map[rune]struct{}
	state      State
}

// New constructs a game with a uniformly random secret from dict.
func New(dict *words.Dictionary) (*Game, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return newGame(dict, dict.Random()), nil
}

// NewWithSecret constructs a game with a fixed secret, which must be a
// candidate word in dict. Used by daily mode and tests.
func NewWithSecret(dict *words.Dictionary, secret string) (*Game, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	secret = words.Sanitize(secret)
	if !dict.Contains(secret) {
		return nil, fmt.Errorf("secret %q is not a candidate word", secret)
	}
	return newGame(dict, secret), nil
}

func newGame(dict *words.Dictionary, secret string) *Game {
	return &Game{
		secret:     secret,
		maxTries:   DefaultMaxTries,
		dict:       dict,
		eliminated: make(map[rune]struct{}),
		state:      StatePlaying,
	}
}

// Apply validates and scores one guess.
//
// Validation (rejections leave the game untouched):
//   - sanitized guess length must equal the word length → WrongLengthError
//   - sanitized guess must be a candidate word → UnknownWordError
//
// On acceptance the scored guess is appended to history and the state
// advances: won on an exact match, lost when the accepted-guess count
// reaches the maximum, otherwise still playing.
func (g *Game) Apply(input string) (ScoredGuess, error) {
	if g.state != StatePlaying {
		return nil, ErrFinished
	}
	guess := words.Sanitize(input)
	if len(guess) != len(g.secret) {
		return nil, &WrongLengthError{Length: g.Length()}
	}
	if !g.dict.Contains(guess) {
		return nil, &UnknownWordError{Word: guess}
	}

	scored := g.score(guess)
	g.history = append(g.history, scored)

	if scored.AllCorrect() {
		g.state = StateWon
	} else if len(g.history) >= g.maxTries {
		g.state = StateLost
	}
	return scored, nil
}

// score runs the two-pass scoring algorithm against the secret.
//
// Pass 1 marks exact matches and decrements that letter's multiplicity.
// Pass 2 scans, for each non-correct guess position, the secret positions
// left to right, skipping positions consumed by an exact match; every
// eligible position holding the guess letter with remaining multiplicity
// marks the guess position misplaced and decrements the count. The scan
// deliberately does not stop after the first eligible position: with
// duplicated secret letters one guess occurrence can consume more than one
// count, matching the reference rules for duplicate letters.
//
// A letter joins the eliminated set only when every one of its occurrences
// in the guess is absent; a correct or misplaced occurrence anywhere in the
// guess exempts it.
func (g *Game) score(guess string) ScoredGuess {
	secret := []rune(g.secret)
	runes := []rune(guess)
	n := len(runes)

	res := make(ScoredGuess, n)
	for i, r := range runes {
		res[i] = LetterScore{Letter: r, Verdict: VerdictAbsent}
	}

	counts := make(map[rune]int, len(secret))
	for _, r := range secret {
		counts[r]++
	}

	// Pass 1: exact matches.
	for i := 0; i < n; i++ {
		if runes[i] == secret[i] {
			res[i].Verdict = VerdictCorrect
			counts[runes[i]]--
		}
	}

	// Pass 2: misplaced matches, resolved in guess-position order.
	for i := 0; i < n; i++ {
		if res[i].Verdict == VerdictCorrect {
			continue
		}
		for j := 0; j < n; j++ {
			if res[j].Verdict == VerdictCorrect {
				continue
			}
			if secret[j] == runes[i] && counts[runes[i]] > 0 {
				res[i].Verdict = VerdictMisplaced
				counts[runes[i]]--
			}
		}
	}

	// Eliminated letters: absent at every occurrence.
	winners := make(map[rune]struct{}, n)
	for _, ls := range res {
		if ls.Verdict != VerdictAbsent {
			winners[ls.Letter] = struct{}{}
		}
	}
	for _, ls := range res {
		if ls.Verdict != VerdictAbsent {
			continue
		}
		if _, ok := winners[ls.Letter]; !ok {
			g.eliminated[ls.Letter] = struct{}{}
		}
	}
	return res
}

// State reports the current lifecycle state.
func (g *Game) State() State { return g.state }

// Secret returns the secret word. The console reveals it on a loss.
func (g *Game) Secret() string { return g.secret }

// Length reports the word length in letters.
func (g *Game) Length() int { return len([]rune(g.secret)) }

// Tries reports the number of accepted guesses so far.
func (g *Game) Tries() int { return len(g.history) }

// MaxTries reports the attempt limit.
func (g *Game) MaxTries() int { return g.maxTries }

// History returns the ordered scored guesses. The slice is a copy; the
// underlying scores are never mutated after Apply returns them.
func (g *Game) History() []ScoredGuess {
	out := make([]ScoredGuess, len(g.history))
	copy(out, g.history)
	return out
}

// Eliminated returns the letters confirmed absent from the secret, sorted
// for stable display. The set only ever grows.
func (g *Game) Eliminated() []rune {
	out := make([]rune, 0, len(g.eliminated))
	for r := range g.eliminated {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
