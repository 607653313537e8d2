package lexer

import (
	"testing"

	"arith/internal/token"
)

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lx := New([]byte("12+3"), Options{})
	if got := lx.Peek(); got != token.Int(12) {
		t.Fatalf("Peek() = %v, want Int(12)", got)
	}
	if got := lx.Next(); got != token.Int(12) {
		t.Fatalf("Next() after Peek = %v, want Int(12)", got)
	}
	if got := lx.Next(); got != token.Op(token.Plus) {
		t.Fatalf("Next() = %v, want Operator(Plus)", got)
	}
	if lx.Offset() != 3 {
		t.Fatalf("Offset() = %d, want 3", lx.Offset())
	}
}

func TestLexerStopsAfterError(t *testing.T) {
	lx := New([]byte("1?2"), Options{})
	if got := lx.Next(); got != token.Int(1) {
		t.Fatalf("first token = %v", got)
	}
	if got := lx.Next(); got.Kind != token.Invalid {
		t.Fatalf("expected Invalid on '?', got %v", got)
	}
	// после ошибки — только EOF, "2" не лексится
	for range 3 {
		if got := lx.Next(); got.Kind != token.EOF {
			t.Fatalf("expected EOF after error, got %v", got)
		}
	}
	if lx.Err() == nil || lx.Err().Text != "?" {
		t.Fatalf("Err() = %v", lx.Err())
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	lx := New(nil, Options{})
	for range 2 {
		if got := lx.Next(); got.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", got)
		}
	}
	if lx.Err() != nil {
		t.Fatalf("empty input must not error")
	}
}
