// internal/cw/symbol.go
// Package cw implements the Morse code codec: pulse streams to symbols,
// symbols to pulse streams, and symbol paths to characters via a lookup tree.
package cw

// Morse code timing ratios (ITU standard), in dit units.
const (
	// DitUnits is the length of a dit
	DitUnits = 1
	// DahUnits is the length of a dah (ITU: 3 dits)
	DahUnits = 3
	// CharSpaceUnits is the gap between characters (ITU: 3 dits)
	CharSpaceUnits = 3
	// WordSpaceUnits is the gap between words (ITU: 7 dits)
	WordSpaceUnits = 7
)

// Run-length classification thresholds used by Decode.
// A pulse run shorter than DahMinRun is a dit; a gap run shorter than
// CharGapMinRun is absorbed; a gap run of WordGapMinRun or more is a word space.
const (
	DahMinRun     = 3
	CharGapMinRun = 2
	WordGapMinRun = 5
)

// Symbol is one element of a Morse transmission.
type Symbol uint8

const (
	// Dit is a short pulse
	Dit Symbol = iota
	// Dah is a long pulse
	Dah
	// CharacterBoundary separates two characters within a word
	CharacterBoundary
	// WordBoundary separates two words
	WordBoundary
)

// Pulse reports whether the symbol is keyed (true) or a gap (false).
func (s Symbol) Pulse() bool {
	return s == Dit || s == Dah
}

// Units returns the symbol's duration in dit units.
func (s Symbol) Units() int {
	switch s {
	case Dit:
		return DitUnits
	case Dah:
		return DahUnits
	case CharacterBoundary:
		return CharSpaceUnits
	case WordBoundary:
		return WordSpaceUnits
	}
	return 0
}

func (s Symbol) String() string {
	switch s {
	case Dit:
		return "Dit"
	case Dah:
		return "Dah"
	case CharacterBoundary:
		return "CharacterBoundary"
	case WordBoundary:
		return "WordBoundary"
	}
	return "Symbol(?)"
}
