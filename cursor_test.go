// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jverify"
)

func TestCursor(t *testing.T) {
	c := jverify.NewCursor(strings.NewReader("abcdef"))

	// Peek does not consume.
	for i := 0; i < 3; i++ {
		b, err := c.Peek()
		if err != nil {
			t.Fatalf("Peek failed: %v", err)
		} else if b != 'a' {
			t.Fatalf("Peek: got %q, want 'a'", b)
		}
	}
	if off := c.Offset(); off != 0 {
		t.Errorf("Offset: got %d, want 0", off)
	}

	// ReadByte consumes one byte at a time.
	for i, want := range []byte("ab") {
		b, err := c.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte failed: %v", err)
		} else if b != want {
			t.Errorf("ReadByte %d: got %q, want %q", i, b, want)
		}
	}
	if off := c.Offset(); off != 2 {
		t.Errorf("Offset: got %d, want 2", off)
	}

	// ReadFull consumes exactly the requested count.
	var buf [3]byte
	if err := c.ReadFull(buf[:]); err != nil {
		t.Fatalf("ReadFull failed: %v", err)
	} else if got := string(buf[:]); got != "cde" {
		t.Errorf("ReadFull: got %#q, want %#q", got, "cde")
	}

	// One byte remains; a second exact read of 3 must fail.
	if err := c.ReadFull(buf[:]); !errors.Is(err, jverify.ErrUnexpectedEOF) {
		t.Errorf("ReadFull: got %v, want %v", err, jverify.ErrUnexpectedEOF)
	}
}

func TestCursorEOF(t *testing.T) {
	c := jverify.NewCursor(strings.NewReader(""))

	// Optional positions see io.EOF.
	if _, err := c.Peek(); err != io.EOF {
		t.Errorf("Peek: got %v, want io.EOF", err)
	}
	if _, err := c.ReadByte(); err != io.EOF {
		t.Errorf("ReadByte: got %v, want io.EOF", err)
	}

	// Mandatory positions see ErrUnexpectedEOF.
	if _, err := c.MustByte(); !errors.Is(err, jverify.ErrUnexpectedEOF) {
		t.Errorf("MustByte: got %v, want %v", err, jverify.ErrUnexpectedEOF)
	}
}

func TestCursorBuffered(t *testing.T) {
	c := jverify.NewCursor(strings.NewReader("  \t x"))

	buf, err := c.Buffered()
	if err != nil {
		t.Fatalf("Buffered failed: %v", err)
	} else if len(buf) == 0 {
		t.Fatal("Buffered: got an empty region")
	}
	c.Discard(len(buf) - 1)

	b, err := c.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte failed: %v", err)
	} else if b != 'x' {
		t.Errorf("ReadByte: got %q, want 'x'", b)
	}
	if _, err := c.Buffered(); err != io.EOF {
		t.Errorf("Buffered: got %v, want io.EOF", err)
	}
}
