package diagfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"arith/internal/diag"
	"arith/internal/source"
)

func TestPrettyCaretUnderSpan(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unrecognized character 'e'",
		Primary:  source.Span{Start: 3, End: 4},
		HasSpan:  true,
		Token:    -1,
	})

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "12 e", bag, PrettyOpts{}))
	want := "error[LEX1001]: unrecognized character 'e'\n" +
		"  |\n" +
		"  | 12 e\n" +
		"  |    ^\n"
	require.Equal(t, want, buf.String())
}

func TestPrettyWideRunes(t *testing.T) {
	bag := diag.NewBag(10)
	// "一" занимает три байта и две колонки
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "bad",
		Primary:  source.Span{Start: 2, End: 5},
		HasSpan:  true,
		Token:    -1,
	})

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "1+一", bag, PrettyOpts{Label: "line 2"}))
	require.Contains(t, buf.String(), "line 2: error[LEX1001]: bad\n")
	require.Contains(t, buf.String(), "  |   ^~\n")
}

func TestPrettyTokenOnly(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynNoTokenLeft,
		Message:  "no token left: expected an integer",
		Token:    2,
		Notes:    []diag.Note{{Msg: "input ends after an operator"}},
	})

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "1+", bag, PrettyOpts{}))
	want := "error[SYN2002]: no token left: expected an integer\n" +
		"  = token #3\n" +
		"  = note: input ends after an operator\n"
	require.Equal(t, want, buf.String())
}

func TestPrettyColor(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Message: "x", Token: -1})

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, "", bag, PrettyOpts{Color: true}))
	require.Contains(t, buf.String(), "\x1b[")
}

func TestFormatShort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.LexBadNumber, Message: "too big", Token: -1})

	var buf bytes.Buffer
	require.NoError(t, FormatShort(&buf, bag, "line 1"))
	require.Equal(t, "line 1: error[LEX1004]: too big\n", buf.String())

	require.NoError(t, FormatShort(&buf, nil, ""))
}
