// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify

import (
	"io"
	"strings"

	"go4.org/mem"
)

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token, or reports an error via Err.
//
// The scanner is strictly pull-based: it consumes no input beyond what the
// current token requires, plus a single peeked byte where the grammar needs
// one-byte lookahead.
type Scanner struct {
	in  *Cursor
	tok Token
	err error
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner { return &Scanner{in: NewCursor(r)} }

// Next advances s to the next token of the input and reports whether one was
// available. When Next returns false, Err returns nil if the input was
// cleanly exhausted, or the I/O or lexical error that stopped the scan.
func (s *Scanner) Next() bool {
	s.tok = Token{}
	s.err = nil

	if err := s.skipSpace(); err != nil {
		return s.fail(err)
	}
	b, err := s.in.Peek()
	if err == io.EOF {
		return false // clean end of input
	} else if err != nil {
		return s.fail(err)
	}

	// Handle punctuation.
	if k, ok := selfDelim(b); ok {
		s.in.ReadByte()
		s.tok = Token{Kind: k}
		return true
	}

	// Handle string values.
	if b == '"' {
		return s.scanString()
	}

	// Handle numbers.
	if b == '-' || isDigit(b) {
		return s.scanNumber()
	}

	// Anything else must be a bareword constant: true, false, null.
	return s.scanBareword()
}

// Token returns the current token. The value is replaced by the next call
// of Next.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next, or nil if the most recent
// call stopped at a clean end of input.
func (s *Scanner) Err() error { return s.err }

// skipSpace consumes input up to the first non-whitespace byte. It scans the
// buffered region directly, pulling more input only when the entire region
// is whitespace. End of input is a legal stopping point and is not an error.
func (s *Scanner) skipSpace() error {
	for {
		buf, err := s.in.Buffered()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		for i, b := range buf {
			if !isSpace(b) {
				s.in.Discard(i)
				return nil
			}
		}
		s.in.Discard(len(buf))
	}
}

func (s *Scanner) scanString() bool {
	s.in.ReadByte() // the opening quote, already checked by the caller

	var chars []Char
	var esc bool
	for {
		b, err := s.in.MustByte()
		if err != nil {
			return s.fail(err)
		}
		if esc {
			esc = false
			if k, ok := escKind(b); ok {
				chars = append(chars, Char{Kind: k})
			} else if b == 'u' {
				var hex [4]byte
				if err := s.in.ReadFull(hex[:]); err != nil {
					return s.fail(err)
				}
				v, ok := parseHex4(hex)
				if !ok {
					return s.fail(&UnicodeEscapeError{Digits: hex})
				}
				chars = append(chars, Char{Kind: CharUnicode, Code: v})
			} else {
				return s.fail(&EscapeError{Byte: b})
			}
		} else if b == '"' {
			s.tok = Token{Kind: String, Chars: chars}
			return true
		} else if b == '\\' {
			esc = true
		} else {
			chars = append(chars, Char{Kind: CharByte, Code: uint16(b)})
		}
	}
}

// numState enumerates the positions of the RFC 8259 number grammar. States
// in the first group require a byte; states in the second group accept an
// optional byte and otherwise terminate the number.
type numState byte

const (
	numStart     numState = iota // a minus sign, zero, or leading digit
	numLeadDigit                 // after a minus sign: a digit
	numFracFirst                 // after a decimal point: a digit
	numExpStart                  // after an exponent marker: a sign or digit
	numExpFirst                  // after an exponent sign: a digit

	numZero     // after a leading zero: a point or exponent may follow
	numMantissa // within the mantissa: digits, a point, or an exponent
	numFrac     // within the fraction: digits or an exponent
	numExp      // within the exponent: digits
)

func (s *Scanner) scanNumber() bool {
	var buf []byte
	st := numStart
	for {
		switch st {
		case numStart, numLeadDigit, numFracFirst, numExpStart, numExpFirst:
			b, err := s.in.MustByte()
			if err != nil {
				return s.fail(err)
			}
			switch {
			case st == numStart && b == '-':
				st = numLeadDigit
			case (st == numStart || st == numLeadDigit) && b == '0':
				// The leading-zero rule: no further mantissa digits.
				st = numZero
			case (st == numStart || st == numLeadDigit) && '1' <= b && b <= '9':
				st = numMantissa
			case st == numFracFirst && isDigit(b):
				st = numFrac
			case st == numExpStart && (b == '+' || b == '-'):
				st = numExpFirst
			case (st == numExpStart || st == numExpFirst) && isDigit(b):
				st = numExp
			default:
				return s.fail(&NumberError{Byte: b})
			}
			buf = append(buf, b)

		default:
			b, err := s.in.Peek()
			if err == io.EOF {
				return s.emitNumber(buf)
			} else if err != nil {
				return s.fail(err)
			}
			switch {
			case st != numZero && isDigit(b):
				// extend the current digit run, state unchanged
			case (st == numZero || st == numMantissa) && b == '.':
				st = numFracFirst
			case st != numExp && (b == 'e' || b == 'E'):
				st = numExpStart
			default:
				return s.emitNumber(buf)
			}
			buf = append(buf, b)
			s.in.ReadByte()
		}
	}
}

func (s *Scanner) emitNumber(text []byte) bool {
	s.tok = Token{Kind: Number, Text: text}
	return true
}

func (s *Scanner) scanBareword() bool {
	// The shortest barewords are 4 bytes long (true, null), so read exactly
	// that much and compare.
	var word [4]byte
	if err := s.in.ReadFull(word[:]); err != nil {
		return s.fail(err)
	}
	got := mem.B(word[:])
	switch {
	case got.Equal(mem.S("true")):
		s.tok = Token{Kind: True}
	case got.Equal(mem.S("null")):
		s.tok = Token{Kind: Null}
	case got.Equal(mem.S("fals")):
		b, err := s.in.MustByte()
		if err != nil {
			return s.fail(err)
		} else if b != 'e' {
			return s.fail(&BarewordError{Text: string(append(word[:], b))})
		}
		s.tok = Token{Kind: False}
	default:
		return s.fail(&BarewordError{Text: string(word[:])})
	}
	return true
}

// fail records err at the current input offset and reports false so that
// scan methods can return it directly.
func (s *Scanner) fail(err error) bool {
	s.err = posError{pos: s.in.Offset(), err: err}
	return false
}

// parseHex4 decodes four ASCII hex digits into a 16-bit value.
func parseHex4(digits [4]byte) (uint16, bool) {
	var v uint16
	for _, b := range digits {
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += uint16(b - '0')
		case 'a' <= b && b <= 'f':
			v += uint16(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += uint16(b - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

// escKind maps an escape selector byte to the Char kind it denotes.
func escKind(b byte) (CharKind, bool) {
	switch b {
	case '"':
		return CharQuote, true
	case '\\':
		return CharBackslash, true
	case '/':
		return CharSlash, true
	case 'b':
		return CharBackspace, true
	case 'f':
		return CharFormFeed, true
	case 'n':
		return CharLineFeed, true
	case 'r':
		return CharReturn, true
	case 't':
		return CharTab, true
	}
	return 0, false
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(b byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", b)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
