// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify

import (
	"slices"
	"strings"
)

var escRune = [...]rune{
	CharQuote:     '"',
	CharBackslash: '\\',
	CharSlash:     '/',
	CharBackspace: '\b',
	CharFormFeed:  '\f',
	CharLineFeed:  '\n',
	CharReturn:    '\r',
	CharTab:       '\t',
}

// Interpret decodes the content of a string token into its canonical text.
// Raw bytes are reassembled as UTF-8 and Unicode escapes are interpreted as
// UTF-16 code units, pairing surrogates. The result is independent of how
// the string was spelled in the source, so two spellings of the same text
// compare equal; the verifier relies on this for duplicate key detection.
func Interpret(chars []Char) (string, error) {
	var sb strings.Builder
	sb.Grow(len(chars))

	for i := 0; i < len(chars); i++ {
		c := chars[i]
		switch c.Kind {
		case CharByte:
			b := byte(c.Code)
			var size int
			switch {
			case b&0x80 == 0x00:
				sb.WriteByte(b)
				continue
			case b&0xE0 == 0xC0:
				size = 2
			case b&0xF0 == 0xE0:
				size = 3
			case b&0xF8 == 0xF0:
				size = 4
			default:
				return "", &UTF8Error{Seen: []Char{c}}
			}
			r, err := decodeSeq(chars, i, size)
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
			i += size - 1

		case CharUnicode:
			u := c.Code
			switch {
			case u >= 0xD800 && u <= 0xDBFF:
				// High surrogate: a low surrogate escape must follow.
				if i+1 >= len(chars) {
					return "", &SurrogatePairError{Seen: []Char{c}}
				}
				c2 := chars[i+1]
				if c2.Kind != CharUnicode || c2.Code < 0xDC00 || c2.Code > 0xDFFF {
					return "", &SurrogatePairError{Seen: []Char{c, c2}}
				}
				sb.WriteRune(0x10000 + rune(u-0xD800)<<10 + rune(c2.Code-0xDC00))
				i++
			case u >= 0xDC00 && u <= 0xDFFF:
				// Low surrogate with no preceding high surrogate.
				return "", &SurrogatePairError{Seen: []Char{c}}
			default:
				sb.WriteRune(rune(u))
			}

		default:
			sb.WriteRune(escRune[c.Kind])
		}
	}
	return sb.String(), nil
}

var leadMask = [...]byte{2: 0x1F, 3: 0x0F, 4: 0x07}

// decodeSeq decodes the multi-byte UTF-8 sequence of the given size starting
// at chars[start]. Every unit after the lead must be a raw byte matching the
// continuation pattern 10xxxxxx, and the decoded value must be a Unicode
// scalar; legal UTF-8 cannot produce a surrogate.
func decodeSeq(chars []Char, start, size int) (rune, error) {
	v := uint32(byte(chars[start].Code) & leadMask[size])
	for j := 1; j < size; j++ {
		if start+j >= len(chars) {
			return 0, &UTF8Error{Seen: slices.Clone(chars[start : start+j])}
		}
		c := chars[start+j]
		if c.Kind != CharByte || byte(c.Code)&0xC0 != 0x80 {
			return 0, &UTF8Error{Seen: slices.Clone(chars[start : start+j+1])}
		}
		v = v<<6 | uint32(byte(c.Code)&0x3F)
	}
	if (v >= 0xD800 && v <= 0xDFFF) || v > 0x10FFFF {
		return 0, &SurrogateError{Value: v}
	}
	return rune(v), nil
}
