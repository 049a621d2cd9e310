package assets

import _ "embed"

// words.txt ships with the binary so the game runs with no setup.
// The first two lines are a header and are skipped by the loader.
//
//go:embed words.txt
var words string

// Words returns the raw bundled word list.
func Words() string { return words }
