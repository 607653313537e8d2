package diag

import (
	"testing"

	"arith/internal/source"
)

func TestBagRespectsLimit(t *testing.T) {
	bag := NewBag(2)
	for i := range 3 {
		added := bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Token: i})
		if want := i < 2; added != want {
			t.Fatalf("Add #%d = %v, want %v", i, added, want)
		}
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("error diagnostics must count as errors and warnings")
	}
}

func TestBagDefaultCap(t *testing.T) {
	if got := NewBag(0).Cap(); got != 100 {
		t.Fatalf("Cap() = %d, want 100", got)
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(Diagnostic{Severity: SevWarning, Code: SynNoTokenLeft, Token: 3})
	bag.Add(Diagnostic{Severity: SevError, Code: LexUnknownChar, Primary: source.Span{Start: 4, End: 5}, HasSpan: true})
	bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Token: 3})
	bag.Sort()

	items := bag.Items()
	if items[0].Code != SynUnexpectedToken || items[1].Code != SynNoTokenLeft {
		t.Fatalf("errors must sort before warnings at the same position, got %v, %v", items[0].Code, items[1].Code)
	}
	if items[2].Code != LexUnknownChar {
		t.Fatalf("later span must sort last, got %v", items[2].Code)
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Code: LexBadNumber, Severity: SevError})
	b := NewBag(2)
	b.Add(Diagnostic{Code: SynNoTokenLeft, Severity: SevError})
	b.Add(Diagnostic{Code: SynUnexpectedToken, Severity: SevError})

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len() after Merge = %d, want 3", a.Len())
	}
	a.Merge(nil)
	if a.Len() != 3 {
		t.Fatalf("Merge(nil) must be a no-op")
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynNoTokenLeft:     "SYN2002",
		IOReadFailed:       "IO4001",
		UnknownCode:        "E0000",
		SynUnexpectedToken: "SYN2001",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Errorf("unknown code title = %q", got)
	}
}
