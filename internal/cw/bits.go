// internal/cw/bits.go
package cw

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
)

// ErrInvalidBit indicates a character other than '0', '1' or whitespace in a bit string
var ErrInvalidBit = errors.New("invalid bit")

// ParseBits converts a string of '1' (keyed) and '0' (unkeyed) into a pulse
// stream. Whitespace is ignored.
func ParseBits(s string) (iter.Seq[bool], error) {
	bits := make([]bool, 0, len(s))
	for i, c := range s {
		switch {
		case c == '1':
			bits = append(bits, true)
		case c == '0':
			bits = append(bits, false)
		case unicode.IsSpace(c):
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidBit, c, i)
		}
	}
	return func(yield func(bool) bool) {
		for _, b := range bits {
			if !yield(b) {
				return
			}
		}
	}, nil
}

// FormatBits renders a pulse stream as '1' and '0'.
func FormatBits(bits iter.Seq[bool]) string {
	var sb strings.Builder
	for b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// BitReader streams a bit string from an io.Reader without loading it whole.
// Like bufio.Scanner, iteration stops at the first error, which is then
// available from Err.
type BitReader struct {
	r      *bufio.Reader
	offset int
	err    error
}

// NewBitReader returns a BitReader reading from r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: bufio.NewReader(r)}
}

// All yields the bits read from the underlying reader. It may be ranged over
// only once.
func (br *BitReader) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for br.err == nil {
			c, size, err := br.r.ReadRune()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					br.err = fmt.Errorf("read bits: %w", err)
				}
				return
			}
			offset := br.offset
			br.offset += size
			switch {
			case c == '1':
				if !yield(true) {
					return
				}
			case c == '0':
				if !yield(false) {
					return
				}
			case unicode.IsSpace(c):
			default:
				br.err = fmt.Errorf("%w %q at offset %d", ErrInvalidBit, c, offset)
			}
		}
	}
}

// Err returns the first error encountered by All, if any.
func (br *BitReader) Err() error {
	return br.err
}
