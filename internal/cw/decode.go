// internal/cw/decode.go
package cw

import "iter"

// Decode classifies the runs of a keyed pulse stream into Morse symbols.
//
// The returned sequence is lazy: bits are pulled from the input only as far
// as needed to close the current run, and a symbol is yielded as soon as its
// run ends. End of input closes the final run, so a trailing pulse needs no
// gap after it. Gap runs of one bit are treated as keying noise and produce
// nothing.
func Decode(bits iter.Seq[bool]) iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		var (
			current bool
			length  int
		)
		for bit := range bits {
			if length > 0 && bit == current {
				length++
				continue
			}
			if length > 0 {
				if sym, ok := classifyRun(current, length); ok && !yield(sym) {
					return
				}
			}
			current = bit
			length = 1
		}
		if length > 0 {
			if sym, ok := classifyRun(current, length); ok {
				yield(sym)
			}
		}
	}
}

// classifyRun maps a closed run to its symbol. ok is false for runs that
// emit nothing.
func classifyRun(pulse bool, length int) (Symbol, bool) {
	switch {
	case pulse && length >= DahMinRun:
		return Dah, true
	case pulse && length >= 1:
		return Dit, true
	case !pulse && length >= WordGapMinRun:
		return WordBoundary, true
	case !pulse && length >= CharGapMinRun:
		return CharacterBoundary, true
	}
	return 0, false
}
