// Package quote looks up time-keyed quotes in a packed asset stack.
package quote

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"litclock/internal/clock"
	"litclock/internal/geometry"
)

// ErrInvalidStack is returned for an asset stack whose text blob does not
// match its declared size or is not NUL terminated.
var ErrInvalidStack = errors.New("quote: invalid asset stack")

// Asset locates one quote in the text blob.
type Asset struct {
	// Key is hour*60 + minute.
	Key uint32
	// Index is the byte offset of the first character in AssetStack.Text.
	Index uint32
	// FontID and Style are reserved for per-quote styling.
	FontID uint8
	Style  uint8
}

// AssetStack is a compiled quote corpus: NUL-terminated strings packed in
// Text and indexed by Assets.
type AssetStack struct {
	Text     []byte
	Assets   []Asset
	Quantity uint16
	// MaxIndex is the size of Text in bytes.
	MaxIndex uint32
}

// Validate checks the invariants every lookup relies on.
func (s AssetStack) Validate() error {
	switch {
	case len(s.Text) == 0:
		return fmt.Errorf("%w: empty text", ErrInvalidStack)
	case uint64(len(s.Text)) != uint64(s.MaxIndex):
		return fmt.Errorf("%w: text is %d bytes, want %d", ErrInvalidStack, len(s.Text), s.MaxIndex)
	case !IsEndOfText(s.Text[len(s.Text)-1]):
		return fmt.Errorf("%w: text is not NUL terminated", ErrInvalidStack)
	case len(s.Assets) != int(s.Quantity):
		return fmt.Errorf("%w: %d assets, want %d", ErrInvalidStack, len(s.Assets), s.Quantity)
	}
	return nil
}

// Server serves quotes from one validated asset stack.
type Server struct {
	stack AssetStack
}

// New validates stack and returns a server for it.
func New(stack AssetStack) (*Server, error) {
	if err := stack.Validate(); err != nil {
		return nil, err
	}
	return &Server{stack: stack}, nil
}

// MustNew is like New but panics on an invalid stack. It is meant for
// compiled-in corpora, where a bad stack is a build defect.
func MustNew(stack AssetStack) *Server {
	s, err := New(stack)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of assets.
func (s *Server) Len() int { return len(s.stack.Assets) }

// KeyFrom returns the asset key for dt: hour*60 + minute.
func KeyFrom(dt clock.DateTime) uint32 {
	return uint32(int(dt.Hour)*60 + int(dt.Min))
}

// QuoteFor returns the quote for the minute of dt.
func (s *Server) QuoteFor(dt clock.DateTime) (string, bool) {
	if dt.Hour < 0 || dt.Min < 0 {
		return "", false
	}
	return s.Lookup(KeyFrom(dt))
}

// HasKey reports whether any asset carries key.
func (s *Server) HasKey(key uint32) bool {
	_, ok := s.assetByKey(key)
	return ok
}

// Lookup returns the text of the first asset with key. Text offsets outside
// the blob and texts longer than geometry.MaxTextLen are treated as missing.
func (s *Server) Lookup(key uint32) (string, bool) {
	a, ok := s.assetByKey(key)
	if !ok {
		return "", false
	}
	return s.text(a)
}

func (s *Server) assetByKey(key uint32) (Asset, bool) {
	for _, a := range s.stack.Assets {
		if a.Key == key {
			return a, true
		}
	}
	return Asset{}, false
}

func (s *Server) text(a Asset) (string, bool) {
	if uint64(a.Index) >= uint64(len(s.stack.Text)) {
		return "", false
	}
	rest := s.stack.Text[a.Index:]
	n := bytes.IndexByte(rest, geometry.EOT)
	if n < 0 || n > geometry.MaxTextLen {
		return "", false
	}
	return string(rest[:n]), true
}

// IsDelimiter reports whether c ends a word: space or NUL.
func IsDelimiter(c byte) bool { return c == geometry.Space || c == geometry.EOT }

// IsLineBreak reports whether c forces a new line: CR or LF.
func IsLineBreak(c byte) bool { return c == geometry.CR || c == geometry.LF }

// IsEndOfText reports whether c is the NUL terminator.
func IsEndOfText(c byte) bool { return c == geometry.EOT }

// RemoveLeading strips leading CR, LF, space and NUL. A string made only of
// those characters is returned unchanged.
func RemoveLeading(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune(geometry.Whitespace, r)
	})
	if i < 0 {
		return s
	}
	return s[i:]
}
