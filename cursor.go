// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify

import (
	"bufio"
	"io"
)

// A Cursor is a buffered byte source for the scanner. It supports a
// non-consuming peek at the next byte, consuming reads of one byte or an
// exact count of bytes, and direct access to its buffered region.
//
// The distinction between ReadByte and MustByte is load-bearing for the
// grammar readers: positions where end of input is a legal terminator use
// the io.EOF-reporting forms, while positions that require a byte use
// MustByte or ReadFull, which report ErrUnexpectedEOF instead.
type Cursor struct {
	r   *bufio.Reader
	off int // offset of the next unread byte, 0-based
}

// NewCursor constructs a Cursor that consumes input from r.
func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br}
}

// Peek returns the next byte of input without consuming it.
// At the end of input it returns io.EOF.
func (c *Cursor) Peek() (byte, error) {
	buf, err := c.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadByte consumes and returns the next byte of input.
// At the end of input it returns io.EOF.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, err
	}
	c.off++
	return b, nil
}

// MustByte consumes and returns the next byte of input, at a grammar
// position where a byte is mandatory: end of input is reported as
// ErrUnexpectedEOF rather than io.EOF.
func (c *Cursor) MustByte() (byte, error) {
	b, err := c.ReadByte()
	if err == io.EOF {
		return 0, ErrUnexpectedEOF
	}
	return b, err
}

// ReadFull consumes exactly len(buf) bytes of input into buf. If fewer are
// available it reports ErrUnexpectedEOF.
func (c *Cursor) ReadFull(buf []byte) error {
	n, err := io.ReadFull(c.r, buf)
	c.off += n
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEOF
	}
	return err
}

// Buffered returns a view of the currently buffered input, reading from the
// underlying source if the buffer is empty. At the end of input it returns
// io.EOF. The returned slice is only valid until the next read or discard.
func (c *Cursor) Buffered() ([]byte, error) {
	if c.r.Buffered() == 0 {
		if _, err := c.r.Peek(1); err != nil {
			return nil, err
		}
	}
	return c.r.Peek(c.r.Buffered())
}

// Discard consumes n bytes without interpreting them.
// Precondition: n bytes are buffered.
func (c *Cursor) Discard(n int) {
	d, _ := c.r.Discard(n)
	c.off += d
}

// Offset reports the offset of the next unread byte, 0-based.
func (c *Cursor) Offset() int { return c.off }
