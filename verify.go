// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jverify

import (
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/mds/mapset"
)

// Expect is a set of the token categories legal at the current position of
// the document grammar. The six categories are closed and exhaustive.
type Expect uint8

// Constants defining the valid Expect bits.
const (
	NeedValue     Expect = 1 << iota // any JSON value
	NeedKey                          // an object key string
	NeedComma                        // a "," separator
	NeedColon                        // a ":" separator
	NeedEndArray                     // a "]" closing the open array
	NeedEndObject                    // a "}" closing the open object
)

var expectName = []struct {
	bit  Expect
	name string
}{
	{NeedValue, "value"},
	{NeedKey, "key"},
	{NeedComma, `","`},
	{NeedColon, `":"`},
	{NeedEndArray, `"]"`},
	{NeedEndObject, `"}"`},
}

func (e Expect) String() string {
	var names []string
	for _, v := range expectName {
		if e&v.bit != 0 {
			names = append(names, v.name)
		}
	}
	if len(names) == 0 {
		return "nothing"
	}
	return strings.Join(names, " or ")
}

// A frame tracks one open container on the verifier's stack.
type frame interface {
	// label describes the in-progress element of the frame for diagnostics.
	label() string
}

type arrayFrame struct {
	index int // index of the element in progress
}

func (f *arrayFrame) label() string { return fmt.Sprintf("array element %d", f.index) }

type objectFrame struct {
	keys    mapset.Set[string] // canonical text of the keys seen so far
	pending string             // the key whose value is in progress
	haveKey bool
}

func (f *objectFrame) label() string {
	if f.haveKey {
		return fmt.Sprintf("object member %q", f.pending)
	}
	return "object"
}

// Verify reports whether the entire input from r is a single syntactically
// valid JSON document followed by only whitespace.
func Verify(r io.Reader) bool { return Check(r) == nil }

// Check reads the input from r and returns nil if it comprises a single
// syntactically valid JSON document followed by only whitespace. Otherwise
// it returns an error describing the first violation encountered.
//
// Violations of the document grammar are reported as *TokenError,
// *DuplicateKeyError, *UnclosedError, or ErrTrailingGarbage; lexical and
// string-encoding errors propagate from the scanner and Interpret. An I/O
// failure of r is returned wrapped, and a mismatch between the verifier's
// stack and its expectation state raises a panic with an *InvariantError
// value rather than returning an ordinary error.
func Check(r io.Reader) error {
	s := NewScanner(r)
	v := &verifier{want: NeedValue}

	for s.Next() {
		done, err := v.apply(s.Token())
		if err != nil {
			return err
		}
		if done {
			// The top-level value is complete. Anything but whitespace in
			// the remaining input, including a scan error, is garbage.
			if s.Next() || s.Err() != nil {
				return ErrTrailingGarbage
			}
			return nil
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if n := len(v.stack); n > 0 {
		return &UnclosedError{Depth: n, Inner: v.top().label()}
	}
	return nil
}

// A verifier walks tokens through a container stack and an expectation set.
// Both are owned by a single Check call and never outlive it.
type verifier struct {
	stack []frame
	want  Expect
}

// apply feeds one token to the grammar and recomputes the expectation set.
// It reports done == true when the token completed the top-level value,
// after which no further tokens may occur.
func (v *verifier) apply(tok Token) (done bool, _ error) {
	switch tok.Kind {
	case String:
		// Keys are compared by canonical text, so `"a"` and `"\u0061"` are
		// the same key. Value strings are decoded too: the text is discarded,
		// but a malformed string is rejected wherever it occurs.
		text, err := Interpret(tok.Chars)
		if err != nil {
			return false, err
		}
		if v.want&NeedKey != 0 {
			obj, ok := v.top().(*objectFrame)
			if !ok {
				v.corrupt("key expected with no open object")
			}
			if obj.keys.Has(text) {
				return false, &DuplicateKeyError{Key: text}
			}
			obj.keys.Add(text)
			obj.pending, obj.haveKey = text, true
			v.want = NeedColon
			return false, nil
		} else if v.want&NeedValue != 0 {
			return v.valueDone(), nil
		}
		return false, v.reject(tok)

	case Null, True, False, Number:
		if v.want&NeedValue == 0 {
			return false, v.reject(tok)
		}
		return v.valueDone(), nil

	case Colon:
		if v.want&NeedColon == 0 {
			return false, v.reject(tok)
		}
		if _, ok := v.top().(*objectFrame); !ok {
			v.corrupt("colon expected with no open object")
		}
		v.want = NeedValue
		return false, nil

	case Comma:
		if v.want&NeedComma == 0 {
			return false, v.reject(tok)
		}
		switch f := v.top().(type) {
		case *arrayFrame:
			f.index++
			v.want = NeedValue
		case *objectFrame:
			f.pending, f.haveKey = "", false
			v.want = NeedKey
		default:
			v.corrupt("comma expected with no open container")
		}
		return false, nil

	case LSquare:
		if v.want&NeedValue == 0 {
			return false, v.reject(tok)
		}
		v.stack = append(v.stack, &arrayFrame{})
		v.want = NeedValue | NeedEndArray // an empty array is permitted
		return false, nil

	case RSquare:
		if v.want&NeedEndArray == 0 {
			return false, v.reject(tok)
		}
		if _, ok := v.pop().(*arrayFrame); !ok {
			v.corrupt(`"]" closed a frame that is not an array`)
		}
		return v.valueDone(), nil

	case LBrace:
		if v.want&NeedValue == 0 {
			return false, v.reject(tok)
		}
		v.stack = append(v.stack, &objectFrame{keys: mapset.New[string]()})
		v.want = NeedKey | NeedEndObject // an empty object is permitted
		return false, nil

	case RBrace:
		if v.want&NeedEndObject == 0 {
			return false, v.reject(tok)
		}
		if _, ok := v.pop().(*objectFrame); !ok {
			v.corrupt(`"}" closed a frame that is not an object`)
		}
		return v.valueDone(), nil
	}
	return false, v.reject(tok)
}

// valueDone recomputes the expectation set after a completed value. It
// reports true when the stack is empty, meaning the value just finished was
// the whole document.
func (v *verifier) valueDone() bool {
	switch v.top().(type) {
	case *arrayFrame:
		v.want = NeedComma | NeedEndArray
	case *objectFrame:
		v.want = NeedComma | NeedEndObject
	default:
		return true
	}
	return false
}

func (v *verifier) top() frame {
	if len(v.stack) == 0 {
		return nil
	}
	return v.stack[len(v.stack)-1]
}

func (v *verifier) pop() frame {
	if len(v.stack) == 0 {
		v.corrupt("close token with an empty stack")
	}
	f := v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
	return f
}

func (v *verifier) reject(tok Token) error {
	return &TokenError{Token: tok, Want: v.want}
}

// corrupt raises an InvariantError panic. The grammar transitions keep the
// stack and the expectation set aligned, so these conditions are unreachable
// from any input; reaching one means the verifier itself is defective. The
// panic is deliberately not recovered, keeping logic bugs distinct from
// syntax errors.
func (v *verifier) corrupt(msg string) {
	panic(&InvariantError{
		Msg: fmt.Sprintf("%s (depth %d, expecting %v)", msg, len(v.stack), v.want),
	})
}
