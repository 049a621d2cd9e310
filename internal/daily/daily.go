// internal/daily/daily.go
//
// Deterministic word-of-the-day selection. Everyone playing on the same
// UTC date with the same salt gets the same secret, with no state kept
// anywhere.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic dictionary index for a date using
// HMAC-SHA256(salt, DateKey) mod dictLen.
func WordIndex(date time.Time, salt string, dictLen int) int {
	if dictLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// First 8 bytes as uint64 for the modulus.
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(dictLen))
}
