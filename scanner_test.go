// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jverify"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jverify.Kind
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []jverify.Kind{jverify.True, jverify.False, jverify.Null}},

		// Punctuation
		{"{ [ ] } , :", []jverify.Kind{
			jverify.LBrace, jverify.LSquare, jverify.RSquare, jverify.RBrace, jverify.Comma, jverify.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []jverify.Kind{jverify.String, jverify.String, jverify.String}},
		{`"\"\\\/\b\f\n\r\t"`, []jverify.Kind{jverify.String}},
		{`" Ǽꪜ"`, []jverify.Kind{jverify.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []jverify.Kind{
			jverify.Number, jverify.Number, jverify.Number,
			jverify.Number, jverify.Number, jverify.Number, jverify.Number,
		}},

		// A leading zero terminates the mantissa, so "01" is two tokens.
		{`01`, []jverify.Kind{jverify.Number, jverify.Number}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []jverify.Kind{
			jverify.LBrace, jverify.True, jverify.Comma, jverify.String, jverify.Colon,
			jverify.Number, jverify.Null, jverify.LSquare, jverify.RSquare, jverify.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []jverify.Kind{
			jverify.LBrace,
			jverify.String, jverify.Colon, jverify.True, jverify.Comma,
			jverify.String, jverify.Colon,
			jverify.LSquare,
			jverify.Null, jverify.Comma, jverify.Number, jverify.Comma, jverify.Number,
			jverify.RSquare,
			jverify.RBrace,
		}},
		{`"a",1,true
       false["b"]
       `, []jverify.Kind{
			jverify.String, jverify.Comma, jverify.Number, jverify.Comma, jverify.True,
			jverify.False, jverify.LSquare, jverify.String, jverify.RSquare,
		}},
	}

	for _, test := range tests {
		var got []jverify.Kind
		s := jverify.NewScanner(strings.NewReader(test.input))
		for s.Next() {
			got = append(got, s.Token().Kind)
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerString(t *testing.T) {
	const input = `"a\tb\u0020c"`
	s := jverify.NewScanner(strings.NewReader(input))
	if !s.Next() {
		t.Fatalf("Next failed: %v", s.Err())
	}
	tok := s.Token()
	if tok.Kind != jverify.String {
		t.Fatalf("Token: got %v, want %v", tok.Kind, jverify.String)
	}

	want := []jverify.Char{
		{Kind: jverify.CharByte, Code: 'a'},
		{Kind: jverify.CharTab},
		{Kind: jverify.CharByte, Code: 'b'},
		{Kind: jverify.CharUnicode, Code: 0x20},
		{Kind: jverify.CharByte, Code: 'c'},
	}
	if diff := cmp.Diff(want, tok.Chars); diff != "" {
		t.Errorf("Chars: (-want, +got)\n%s", diff)
	}
	if got := tok.String(); got != input {
		t.Errorf("String: got %#q, want %#q", got, input)
	}
}

func TestScannerNumbers(t *testing.T) {
	// Valid numbers are returned with their exact matched bytes.
	for _, input := range []string{
		"0", "-0", "5", "0.5", "1e10", "-1.5E-3", "120", "0e0", "3E+7", "-0.001E-100",
	} {
		s := jverify.NewScanner(strings.NewReader(input))
		if !s.Next() {
			t.Errorf("Next %#q failed: %v", input, s.Err())
			continue
		}
		tok := s.Token()
		if tok.Kind != jverify.Number {
			t.Errorf("Token %#q: got %v, want %v", input, tok.Kind, jverify.Number)
		}
		if got := string(tok.Text); got != input {
			t.Errorf("Text: got %#q, want %#q", got, input)
		}
		if s.Next() {
			t.Errorf("Input %#q: unexpected extra token %v", input, s.Token())
		}
	}

	// Numbers cut short at a mandatory digit position.
	for _, input := range []string{"-", "1.", "1e", "1e+", "-1.2e-"} {
		s := jverify.NewScanner(strings.NewReader(input))
		if s.Next() {
			t.Errorf("Next %#q: got %v, want error", input, s.Token())
		} else if !errors.Is(s.Err(), jverify.ErrUnexpectedEOF) {
			t.Errorf("Err %#q: got %v, want %v", input, s.Err(), jverify.ErrUnexpectedEOF)
		}
	}

	// Wrong bytes at a mandatory digit position.
	for _, input := range []string{"1.x", "-x", "1ex", "2e+x"} {
		s := jverify.NewScanner(strings.NewReader(input))
		var nerr *jverify.NumberError
		if s.Next() {
			t.Errorf("Next %#q: got %v, want error", input, s.Token())
		} else if !errors.As(s.Err(), &nerr) {
			t.Errorf("Err %#q: got %v, want a NumberError", input, s.Err())
		}
	}
}

func TestScannerErrors(t *testing.T) {
	t.Run("UnexpectedEOF", func(t *testing.T) {
		for _, input := range []string{
			`"abc`,  // unterminated string
			`"ab\`,  // unterminated escape
			`"\u12`, // truncated Unicode escape
			`tru`,   // short bareword
			`.5`,    // not a number start; short bareword read
		} {
			s := jverify.NewScanner(strings.NewReader(input))
			if s.Next() {
				t.Errorf("Next %#q: got %v, want error", input, s.Token())
			} else if !errors.Is(s.Err(), jverify.ErrUnexpectedEOF) {
				t.Errorf("Err %#q: got %v, want %v", input, s.Err(), jverify.ErrUnexpectedEOF)
			}
		}
	})
	t.Run("UnknownEscape", func(t *testing.T) {
		s := jverify.NewScanner(strings.NewReader(`"\x"`))
		var eerr *jverify.EscapeError
		if s.Next() {
			t.Fatalf("Next: got %v, want error", s.Token())
		} else if !errors.As(s.Err(), &eerr) {
			t.Fatalf("Err: got %v, want an EscapeError", s.Err())
		}
		if eerr.Byte != 'x' {
			t.Errorf("Byte: got %q, want 'x'", eerr.Byte)
		}
	})
	t.Run("UnicodeEscape", func(t *testing.T) {
		s := jverify.NewScanner(strings.NewReader(`"\u12g4"`))
		var uerr *jverify.UnicodeEscapeError
		if s.Next() {
			t.Fatalf("Next: got %v, want error", s.Token())
		} else if !errors.As(s.Err(), &uerr) {
			t.Fatalf("Err: got %v, want a UnicodeEscapeError", s.Err())
		}
		if got := string(uerr.Digits[:]); got != "12g4" {
			t.Errorf("Digits: got %#q, want %#q", got, "12g4")
		}
	})
	t.Run("Bareword", func(t *testing.T) {
		for input, want := range map[string]string{
			`falsx`: "falsx", // fals requires a trailing e
			`nule`:  "nule",
			`@foo!`: "@foo",
		} {
			s := jverify.NewScanner(strings.NewReader(input))
			var berr *jverify.BarewordError
			if s.Next() {
				t.Errorf("Next %#q: got %v, want error", input, s.Token())
			} else if !errors.As(s.Err(), &berr) {
				t.Errorf("Err %#q: got %v, want a BarewordError", input, s.Err())
			} else if berr.Text != want {
				t.Errorf("Text: got %#q, want %#q", berr.Text, want)
			}
		}
	})
}

func TestScannerReadError(t *testing.T) {
	boom := errors.New("read failed")
	s := jverify.NewScanner(iotest.ErrReader(boom))
	if s.Next() {
		t.Errorf("Next: got %v, want error", s.Token())
	}
	if !errors.Is(s.Err(), boom) {
		t.Errorf("Err: got %v, want %v", s.Err(), boom)
	}
}
