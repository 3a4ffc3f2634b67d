// internal/cw/literal.go
package cw

import (
	"iter"
	"strings"
)

// ParseDotsAndDashes converts dot/dash notation into symbols.
// Fields are separated by single spaces; each non-empty field is one
// character and is followed by a CharacterBoundary, and each empty field
// (from a doubled space) is a WordBoundary. Characters other than '.' and
// '-' inside a field are ignored.
func ParseDotsAndDashes(s string) []Symbol {
	var out []Symbol
	for _, field := range strings.Split(s, " ") {
		if field == "" {
			out = append(out, WordBoundary)
			continue
		}
		for _, c := range field {
			switch c {
			case '.':
				out = append(out, Dit)
			case '-':
				out = append(out, Dah)
			}
		}
		out = append(out, CharacterBoundary)
	}
	return out
}

// FormatDotsAndDashes renders symbols in dot/dash notation.
func FormatDotsAndDashes(symbols iter.Seq[Symbol]) string {
	var sb strings.Builder
	for sym := range symbols {
		writeSymbol(&sb, sym)
	}
	return sb.String()
}

func writeSymbol(sb *strings.Builder, sym Symbol) {
	switch sym {
	case Dit:
		sb.WriteByte('.')
	case Dah:
		sb.WriteByte('-')
	case CharacterBoundary:
		sb.WriteByte(' ')
	case WordBoundary:
		sb.WriteString("  ")
	}
}
