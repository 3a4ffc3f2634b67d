// internal/cw/text.go
package cw

import (
	"iter"
	"strings"
)

// EncodeText renders text in dot/dash notation. Each character's code is
// followed by a space and each space in the text becomes two spaces.
// Characters missing from the tree are written as unknown and returned.
// Lookups are case-sensitive; callers fold case first if they want to.
func (t *Tree) EncodeText(text string, unknown rune) (string, []rune) {
	var (
		sb      strings.Builder
		missing []rune
	)
	for _, c := range text {
		if c == ' ' {
			sb.WriteString("  ")
			continue
		}
		path, ok := t.Encode(c)
		if !ok {
			sb.WriteRune(unknown)
			missing = append(missing, c)
			continue
		}
		for _, sym := range path {
			writeSymbol(&sb, sym)
		}
		sb.WriteByte(' ')
	}
	return sb.String(), missing
}

// EncodeSymbols converts text to a symbol sequence suitable for Encode.
// Characters are separated by CharacterBoundary and words by WordBoundary.
// Characters missing from the tree are skipped and returned.
func (t *Tree) EncodeSymbols(text string) ([]Symbol, []rune) {
	var (
		out     []Symbol
		missing []rune
	)
	for _, word := range strings.Fields(text) {
		if len(out) > 0 {
			out = append(out, WordBoundary)
		}
		first := true
		for _, c := range word {
			path, ok := t.Encode(c)
			if !ok {
				missing = append(missing, c)
				continue
			}
			if !first {
				out = append(out, CharacterBoundary)
			}
			out = append(out, path...)
			first = false
		}
	}
	return out, missing
}

// DecodeSymbols translates a symbol stream into text. Pulses are collected
// until a boundary or the end of input and looked up as one character;
// paths that do not resolve are written as unknown. Word boundaries between
// characters become a single space.
func (t *Tree) DecodeSymbols(symbols iter.Seq[Symbol], unknown rune) string {
	var (
		sb    strings.Builder
		group []Symbol
		space bool
	)
	flush := func() {
		if len(group) == 0 {
			return
		}
		if space && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		space = false
		if r, ok := t.Decode(group); ok {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(unknown)
		}
		group = group[:0]
	}
	for sym := range symbols {
		switch sym {
		case Dit, Dah:
			group = append(group, sym)
		case CharacterBoundary:
			flush()
		case WordBoundary:
			flush()
			space = true
		}
	}
	flush()
	return sb.String()
}
