package lexer

import (
	"testing"

	"arith/internal/source"
)

func TestCursorPeekBump(t *testing.T) {
	c := NewCursor([]byte("ab"))
	if c.EOF() {
		t.Fatalf("fresh cursor at EOF")
	}
	if c.Peek() != 'a' || c.Bump() != 'a' {
		t.Fatalf("expected 'a'")
	}
	if c.Bump() != 'b' {
		t.Fatalf("expected 'b'")
	}
	if !c.EOF() {
		t.Fatalf("expected EOF after two bumps")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Fatalf("Peek/Bump at EOF must return 0")
	}
	if c.Off != 2 {
		t.Fatalf("Bump at EOF moved the cursor to %d", c.Off)
	}
}

func TestCursorMarkAndSpan(t *testing.T) {
	c := NewCursor([]byte("123+4"))
	m := c.Mark()
	c.Bump()
	c.Bump()
	c.Bump()
	if sp := c.SpanFrom(m); sp != (source.Span{Start: 0, End: 3}) {
		t.Fatalf("SpanFrom = %v, want 0-3", sp)
	}
	if string(c.Rest()) != "+4" {
		t.Fatalf("Rest() = %q", c.Rest())
	}
}

func TestCursorAdvanceClamps(t *testing.T) {
	c := NewCursor([]byte("xyz"))
	c.Advance(10)
	if c.Off != 3 || !c.EOF() {
		t.Fatalf("Advance past end: Off=%d", c.Off)
	}
	c = NewCursor([]byte("xyz"))
	c.SkipToEnd()
	if !c.EOF() {
		t.Fatalf("SkipToEnd must reach EOF")
	}
}
