// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jverify implements a strict streaming verifier for JSON syntax.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a scanner
// from an io.Reader and call its Next method to iterate over the stream. Next
// advances to the next input token and reports whether one was available:
//
//	s := jverify.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// When Next returns false, Err reports nil if the input was fully consumed,
// or the I/O or lexical error that stopped the scan.
//
// Tokens carry their source form: a string token holds the sequence of Char
// units as written, escapes undecoded, and a number token holds its raw
// matched bytes. Interpret decodes a string token's Char sequence into its
// canonical text. No value tree is built and numbers are never converted to
// machine numbers.
//
// # Verifying
//
// Check reads from an io.Reader and returns nil if the entire input is a
// single syntactically valid JSON document followed only by whitespace, or
// an error describing the first violation found. Verify is the boolean form:
//
//	if err := jverify.Check(input); err != nil {
//	   log.Printf("Invalid JSON: %v", err)
//	}
//
// The verifier enforces the RFC 8259 grammar, including the leading-zero
// number rule and well-formed string escapes, and additionally rejects
// objects that repeat a key. Keys are compared by canonical decoded text, so
// differently-escaped spellings of the same key, such as `"a"` and
// `"\u0061"`, collide.
//
// Verification is a pure function of the input bytes: memory use is bounded
// by the nesting depth of the input plus the keys of the largest open
// object, and the first violation aborts the call.
package jverify
