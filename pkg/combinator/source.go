// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     combinator
// Description: Sentinel-terminated input buffer and the cursor into it
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package combinator

import (
	"strings"

	mdwerror "github.com/msto63/combilex/foundation/core/error"
)

// Sentinel terminates every Source. It must not occur in the input text.
const Sentinel byte = 0x00

// Source is an immutable, sentinel-terminated input buffer
type Source struct {
	buf []byte // text followed by Sentinel
}

// NewSource copies text into a new Source and appends the sentinel.
// Text that already contains the sentinel is rejected.
func NewSource(text string) (*Source, error) {
	if i := strings.IndexByte(text, Sentinel); i >= 0 {
		return nil, mdwerror.New("input contains the sentinel byte").
			WithCode(mdwerror.CodeSentinelInInput).
			WithOperation("combinator.NewSource").
			WithDetail("offset", i)
	}

	buf := make([]byte, len(text)+1)
	copy(buf, text)
	buf[len(text)] = Sentinel
	return &Source{buf: buf}, nil
}

// MustSource is like NewSource but panics on invalid text
func MustSource(text string) *Source {
	src, err := NewSource(text)
	if err != nil {
		panic(err)
	}
	return src
}

// Len returns the length of the text, excluding the sentinel
func (s *Source) Len() int {
	return len(s.buf) - 1
}

// Text returns the text, excluding the sentinel
func (s *Source) Text() string {
	return string(s.buf[:len(s.buf)-1])
}

// Start returns a cursor at the first byte of the source
func (s *Source) Start() Cursor {
	return Cursor{src: s}
}

// Cursor is a position in a Source. It is a small value; copying it is how
// parsers keep private working positions.
type Cursor struct {
	src *Source
	pos int
}

// Source returns the source the cursor points into
func (c Cursor) Source() *Source {
	return c.src
}

// Pos returns the byte offset of the cursor
func (c Cursor) Pos() int {
	return c.pos
}

// InBounds reports whether the cursor points at a byte of the buffer,
// the sentinel included
func (c Cursor) InBounds() bool {
	return c.src != nil && c.pos >= 0 && c.pos < len(c.src.buf)
}

// At returns the byte under the cursor. Past the end of the buffer it
// returns the sentinel.
func (c Cursor) At() byte {
	if !c.InBounds() {
		return Sentinel
	}
	return c.src.buf[c.pos]
}

// AtEnd reports whether the whole text lies behind the cursor
func (c Cursor) AtEnd() bool {
	return c.src == nil || c.pos >= c.src.Len()
}

// Advance returns a cursor n bytes further
func (c Cursor) Advance(n int) Cursor {
	return Cursor{src: c.src, pos: c.pos + n}
}

// Less reports whether c lies before other, i.e. other has consumed more
func (c Cursor) Less(other Cursor) bool {
	return c.pos < other.pos
}

// Equal reports whether both cursors point at the same position of the same source
func (c Cursor) Equal(other Cursor) bool {
	return c.src == other.src && c.pos == other.pos
}

// Slice returns the text between c and end. The sentinel is never part of
// the returned text.
func (c Cursor) Slice(end Cursor) string {
	if c.src == nil {
		return ""
	}

	from, to := c.pos, end.pos
	n := c.src.Len()
	if to > n {
		to = n
	}
	if from > to {
		return ""
	}
	return string(c.src.buf[from:to])
}
