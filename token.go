// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify

import (
	"fmt"
	"strings"
)

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number, raw and unparsed
	String              // quoted string
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token of JSON input. A Token is produced once
// by a Scanner and is not modified thereafter.
type Token struct {
	Kind Kind

	// For Kind == String, the content of the string as written, excluding
	// the enclosing quotation marks, escapes not yet decoded.
	Chars []Char

	// For Kind == Number, the raw matched bytes of the number.
	Text []byte
}

// String renders t in a human-readable form. String tokens are rendered in
// their source spelling, with quotation marks and escapes intact.
func (t Token) String() string {
	switch t.Kind {
	case String:
		var sb strings.Builder
		sb.WriteByte('"')
		for _, c := range t.Chars {
			sb.WriteString(c.String())
		}
		sb.WriteByte('"')
		return sb.String()
	case Number:
		return string(t.Text)
	default:
		return t.Kind.String()
	}
}

// A Char is one logical unit of a JSON string's content as written: either a
// raw (unescaped) byte, one of the eight fixed single-character escapes, or
// the 16-bit value of a "\uXXXX" Unicode escape. A Char records the source
// form only; see Interpret for decoding.
type Char struct {
	Kind CharKind

	// The raw byte for CharByte, or the code unit for CharUnicode.
	// Zero for the fixed escapes.
	Code uint16
}

// CharKind indicates the source form of a Char.
type CharKind byte

// Constants defining the valid CharKind values.
const (
	CharByte      CharKind = iota // a raw byte, not an escape
	CharQuote                     // \"
	CharBackslash                 // \\
	CharSlash                     // \/
	CharBackspace                 // \b
	CharFormFeed                  // \f
	CharLineFeed                  // \n
	CharReturn                    // \r
	CharTab                       // \t
	CharUnicode                   // \uXXXX
)

var escLetter = [...]byte{
	CharQuote:     '"',
	CharBackslash: '\\',
	CharSlash:     '/',
	CharBackspace: 'b',
	CharFormFeed:  'f',
	CharLineFeed:  'n',
	CharReturn:    'r',
	CharTab:       't',
}

// String renders c in its source form, e.g. `\n` for a line-feed escape.
func (c Char) String() string {
	switch c.Kind {
	case CharByte:
		return string([]byte{byte(c.Code)})
	case CharUnicode:
		return fmt.Sprintf(`\u%04x`, c.Code)
	default:
		if int(c.Kind) < len(escLetter) {
			return string([]byte{'\\', escLetter[c.Kind]})
		}
		return "invalid char"
	}
}
