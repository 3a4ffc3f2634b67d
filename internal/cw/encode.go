// internal/cw/encode.go
package cw

import "iter"

// Encode expands symbols into a keyed pulse stream, one value per dit unit.
// Two pulse symbols with no boundary between them are separated by a single
// unkeyed unit so their runs stay distinct.
func Encode(symbols iter.Seq[Symbol]) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		prevPulse := false
		for sym := range symbols {
			pulse := sym.Pulse()
			if prevPulse && pulse && !yield(false) {
				return
			}
			for range sym.Units() {
				if !yield(pulse) {
					return
				}
			}
			prevPulse = pulse
		}
	}
}
