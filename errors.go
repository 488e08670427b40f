// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is reported when the input ends at a grammar position
// that requires further bytes.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// ErrTrailingGarbage is reported by the verifier when non-whitespace input
// remains after a complete document.
var ErrTrailingGarbage = errors.New("trailing garbage at end of document")

// An EscapeError reports a backslash escape whose selector byte is not one
// of the eight fixed escapes or "u".
type EscapeError struct {
	Byte byte // the offending selector byte
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("unknown escape character %q", e.Byte)
}

// A UnicodeEscapeError reports a "\uXXXX" escape whose four digit bytes are
// not all hexadecimal digits.
type UnicodeEscapeError struct {
	Digits [4]byte // the four bytes following "\u", as read
}

func (e *UnicodeEscapeError) Error() string {
	return fmt.Sprintf("invalid Unicode escape value %q", e.Digits[:])
}

// A NumberError reports a byte that cannot occur at the current position of
// the number grammar.
type NumberError struct {
	Byte byte // the offending byte
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number character %q", e.Byte)
}

// A BarewordError reports input that begins like a bareword constant but
// does not match true, false, or null.
type BarewordError struct {
	Text string // the bytes read before the mismatch was detected
}

func (e *BarewordError) Error() string {
	return fmt.Sprintf("invalid bareword beginning %q", e.Text)
}

// A UTF8Error reports a string whose raw bytes do not form a valid UTF-8
// sequence.
type UTF8Error struct {
	Seen []Char // the units of the malformed sequence, as far as read
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence %v", e.Seen)
}

// A SurrogateError reports a UTF-8 sequence in a string that decodes to a
// value outside the Unicode scalar range, such as a surrogate code point.
type SurrogateError struct {
	Value uint32 // the decoded value
}

func (e *SurrogateError) Error() string {
	return fmt.Sprintf("UTF-8 sequence produced surrogate 0x%04X", e.Value)
}

// A SurrogatePairError reports Unicode escapes that do not form a valid
// UTF-16 sequence: a lone low surrogate, or a high surrogate not followed by
// a low surrogate escape.
type SurrogatePairError struct {
	Seen []Char // the offending escape units
}

func (e *SurrogatePairError) Error() string {
	return fmt.Sprintf("invalid UTF-16 surrogate sequence %v", e.Seen)
}

// A TokenError reports a token that is not legal at the current position of
// the document grammar.
type TokenError struct {
	Token Token  // the token observed
	Want  Expect // the token categories that were legal
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("got %v, expected %v", e.Token, e.Want)
}

// A DuplicateKeyError reports an object key whose canonical text repeats a
// key already present in the same object.
type DuplicateKeyError struct {
	Key string // the canonical decoded key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate object key %q", e.Key)
}

// An UnclosedError reports that the input ended with containers still open.
type UnclosedError struct {
	Depth int    // the number of unclosed containers
	Inner string // a description of the innermost open container
}

func (e *UnclosedError) Error() string {
	return fmt.Sprintf("document ends inside %s with %d unclosed container(s)", e.Inner, e.Depth)
}

// An InvariantError is the value of the panic raised when the verifier's
// container stack disagrees with its expectation state. It indicates a
// defect in the verifier itself, never a problem with the input, and is
// deliberately not recoverable as an ordinary error result.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "internal invariant violated: " + e.Msg
}

// A posError attaches the byte offset at which a scan error occurred.
type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }
