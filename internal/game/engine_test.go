package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gordle/internal/words"
)

// dict3 holds every 3-letter word the scoring tests need, behind the usual
// two header lines.
func dict3(t *testing.T) *words.Dictionary {
	t.Helper()
	raw := "header one\nheader two\nABC\nDEF\nACB\nACD\nAAB\nXYZ\n"
	return words.Parse(raw, words.Config{Length: 3, HeaderLines: 2})
}

func verdicts(sg ScoredGuess) []Verdict {
	out := make([]Verdict, len(sg))
	for i, ls := range sg {
		out[i] = ls.Verdict
	}
	return out
}

func TestApplyAllCorrect(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	sg, err := g.Apply("abc")
	require.NoError(t, err)

	assert.Equal(t, []Verdict{VerdictCorrect, VerdictCorrect, VerdictCorrect}, verdicts(sg))
	assert.Equal(t, StateWon, g.State())
	assert.Equal(t, 1, g.Tries())
	assert.Empty(t, g.Eliminated())
}

func TestApplyAllAbsent(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	sg, err := g.Apply("DEF")
	require.NoError(t, err)

	assert.Equal(t, []Verdict{VerdictAbsent, VerdictAbsent, VerdictAbsent}, verdicts(sg))
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, []rune{'D', 'E', 'F'}, g.Eliminated())
}

func TestApplyMisplaced(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	sg, err := g.Apply("ACB")
	require.NoError(t, err)

	assert.Equal(t, []Verdict{VerdictCorrect, VerdictMisplaced, VerdictMisplaced}, verdicts(sg))
	assert.Empty(t, g.Eliminated(), "letters with winning verdicts must not be eliminated")
}

func TestApplyMixed(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	sg, err := g.Apply("ACD")
	require.NoError(t, err)

	assert.Equal(t, []Verdict{VerdictCorrect, VerdictMisplaced, VerdictAbsent}, verdicts(sg))
	assert.Equal(t, []rune{'D'}, g.Eliminated())
}

func TestDuplicateGuessLetterFairness(t *testing.T) {
	// Secret holds one A; the guess holds two. Exactly one guess occurrence
	// may win, and the losing occurrence must not eliminate the letter.
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	sg, err := g.Apply("AAB")
	require.NoError(t, err)

	assert.Equal(t, []Verdict{VerdictCorrect, VerdictAbsent, VerdictMisplaced}, verdicts(sg))
	assert.Empty(t, g.Eliminated())
}

func TestDuplicateSecretLetterScan(t *testing.T) {
	// With duplicated secret letters, one misplaced guess occurrence can
	// consume more than one count: against secret AABB the first B of
	// BBAA scans both secret B slots and consumes both counts, so the
	// second B comes out absent (likewise the As).
	dict := words.Parse("h\nh\nAABB\nBBAA\n", words.Config{Length: 4, HeaderLines: 2})
	g, err := NewWithSecret(dict, "AABB")
	require.NoError(t, err)

	sg, err := g.Apply("BBAA")
	require.NoError(t, err)

	assert.Equal(t, []Verdict{VerdictMisplaced, VerdictAbsent, VerdictMisplaced, VerdictAbsent}, verdicts(sg))
	assert.Empty(t, g.Eliminated(), "every letter wins somewhere and must stay un-eliminated")
}

func TestScoringDeterministic(t *testing.T) {
	a, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)
	b, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	sa, err := a.Apply("ACD")
	require.NoError(t, err)
	sb, err := b.Apply("ACD")
	require.NoError(t, err)

	assert.Equal(t, sa, sb)
}

func TestRejectWrongLength(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	_, err = g.Apply("AB")
	var wl *WrongLengthError
	require.ErrorAs(t, err, &wl)
	assert.Equal(t, 3, wl.Length)
	assert.Contains(t, err.Error(), "3 letters")

	// Rejection consumes nothing.
	assert.Equal(t, 0, g.Tries())
	assert.Equal(t, StatePlaying, g.State())
}

func TestRejectUnknownWord(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	_, err = g.Apply(" fgh ")
	var uw *UnknownWordError
	require.ErrorAs(t, err, &uw)
	assert.Equal(t, "FGH", uw.Word, "rejection names the sanitized word")
	assert.Equal(t, 0, g.Tries())
}

func TestSanitizedGuessAccepted(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	_, err = g.Apply("  x-y z1\n")
	require.NoError(t, err, "input normalizing to a candidate must be accepted")
	assert.Equal(t, 1, g.Tries())
}

func TestLostAtMaxTries(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	for i := 0; i < DefaultMaxTries; i++ {
		assert.Equal(t, StatePlaying, g.State())
		_, err := g.Apply("DEF")
		require.NoError(t, err)
	}
	assert.Equal(t, StateLost, g.State())
	assert.Equal(t, DefaultMaxTries, g.Tries())

	_, err = g.Apply("DEF")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestWonBeforeMaxTries(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	_, err = g.Apply("DEF")
	require.NoError(t, err)
	_, err = g.Apply("ABC")
	require.NoError(t, err)

	assert.Equal(t, StateWon, g.State())
	assert.Equal(t, 2, g.Tries())

	_, err = g.Apply("ABC")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestEliminatedGrowsSorted(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	_, err = g.Apply("XYZ")
	require.NoError(t, err)
	_, err = g.Apply("DEF")
	require.NoError(t, err)

	assert.Equal(t, []rune{'D', 'E', 'F', 'X', 'Y', 'Z'}, g.Eliminated())
}

func TestHistoryOrdered(t *testing.T) {
	g, err := NewWithSecret(dict3(t), "ABC")
	require.NoError(t, err)

	_, err = g.Apply("DEF")
	require.NoError(t, err)
	_, err = g.Apply("ACB")
	require.NoError(t, err)

	h := g.History()
	require.Len(t, h, 2)
	assert.Equal(t, "DEF", h[0].Word())
	assert.Equal(t, "ACB", h[1].Word())
}

func TestNewPicksCandidateSecret(t *testing.T) {
	d := dict3(t)
	for i := 0; i < 20; i++ {
		g, err := New(d)
		require.NoError(t, err)
		assert.True(t, d.Contains(g.Secret()))
		assert.Equal(t, StatePlaying, g.State())
	}
}

func TestNewEmptyDictionary(t *testing.T) {
	_, err := New(words.Parse("", words.DefaultConfig()))
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestNewWithSecretRejectsNonCandidate(t *testing.T) {
	_, err := NewWithSecret(dict3(t), "QQQ")
	assert.Error(t, err)
}
