// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

// Package cursor implements navigation over the tree of a parsed JSON
// value, including in-place replacement of the value under the cursor.
package cursor

import (
	"errors"
	"fmt"

	"github.com/hofstead/jot/ast"
)

// Path traverses a sequential path into the structure of v, where path
// elements are as documented for the Cursor.Down method, and returns the
// value reached as type T. This is a convenience wrapper for creating a
// cursor, applying path, and retrieving its value.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of an ast.Value.
// Each step below the origin remembers the member or array slot it was
// reached through, so the value under the cursor can be replaced in place.
type Cursor struct {
	org ast.Value
	stk []frame
	err error
}

// A frame records one traversal step: the value reached, plus the object
// member or array slot it occupies in its parent.
type frame struct {
	value ast.Value
	mem   *ast.Member // non-nil if reached through an object member
	arr   ast.Array   // non-nil if reached through an array slot
	idx   int         // slot index when arr is non-nil
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1].value
}

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []ast.Value {
	out := []ast.Value{c.org}
	for _, f := range c.stk {
		out = append(out, f.value)
	}
	return out
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from
// the current value, where path elements are either strings (denoting
// object keys) or integers (denoting offsets into arrays or objects). If
// the path cannot be completely consumed, traversal stops and an error is
// recorded; use Err to recover it. Down returns c to permit chaining.
//
// A string element requires the current value to be an object, and resolves
// to the value of the first member with that key. An integer element
// requires an array or object, and resolves to the element (or member
// value) at that index; negative indices count backward from the end (-1 is
// last, -2 second last).
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := ast.AsObject(cur)
			if !ok {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), t)
			}
			m := obj.Find(t)
			if m == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(frame{value: m.Value, mem: m})

		case int:
			switch e := cur.(type) {
			case ast.Array:
				i, ok := fixBound(len(e), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", t, len(e))
				}
				cur = c.push(frame{value: e[i], arr: e, idx: i})
			case ast.Object:
				i, ok := fixBound(len(e), t)
				if !ok {
					return c.setErrorf("object index %d out of bounds (n=%d)", t, len(e))
				}
				cur = c.push(frame{value: e[i].Value, mem: e[i]})
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), t)
			}

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

// Set replaces the value under the cursor within its parent, through the
// object member or array slot the cursor traversed. It reports an error if
// the cursor is at its origin, which belongs to no parent.
func (c *Cursor) Set(v ast.Value) error {
	if c.AtOrigin() {
		return errors.New("cannot replace the origin value")
	}
	f := &c.stk[len(c.stk)-1]
	if f.mem != nil {
		f.mem.Value = v
	} else {
		f.arr[f.idx] = v
	}
	f.value = v
	return nil
}

func (c *Cursor) push(f frame) ast.Value {
	c.stk = append(c.stk, f)
	return f.value
}

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
