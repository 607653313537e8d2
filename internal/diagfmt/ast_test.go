package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	"arith/internal/ast"
)

// 1 + (2 * 3)
func sampleTree() *ast.Tree {
	exprs := ast.NewExprs(5)
	one := exprs.NewIntLit(1)
	two := exprs.NewIntLit(2)
	three := exprs.NewIntLit(3)
	mul := exprs.NewBinary(two, ast.OpMult, three)
	root := exprs.NewBinary(one, ast.OpPlus, mul)
	return ast.NewTree(exprs, root)
}

func TestFormatASTPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatASTPretty(&buf, sampleTree(), OutputOpts{}))
	want := strings.Join([]string{
		"BinaryExpression Plus",
		"├─ IntLiteral 1",
		"└─ BinaryExpression Mult",
		"   ├─ IntLiteral 2",
		"   └─ IntLiteral 3",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestFormatASTTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatASTTree(&buf, sampleTree()))
	want := strings.Join([]string{
		"   +",
		" /   \\",
		"1     *",
		"     / \\",
		"    2   3",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestFormatASTTreeSingleLiteral(t *testing.T) {
	exprs := ast.NewExprs(1)
	root := exprs.NewIntLit(42)

	var buf bytes.Buffer
	require.NoError(t, FormatASTTree(&buf, ast.NewTree(exprs, root)))
	require.Equal(t, "42\n", buf.String())
}

func TestFormatASTCanonicalAndInfix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatAST(&buf, sampleTree(), FormatCanonical, OutputOpts{}))
	require.Equal(t,
		"BinaryExpression(IntLiteral(1), Plus, BinaryExpression(IntLiteral(2), Mult, IntLiteral(3)))\n",
		buf.String())

	buf.Reset()
	require.NoError(t, FormatAST(&buf, sampleTree(), FormatInfix, OutputOpts{}))
	require.Equal(t, "(1 + (2 * 3))\n", buf.String())
}

func TestFormatASTJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatAST(&buf, sampleTree(), FormatJSON, OutputOpts{}))

	var got ASTNodeOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "BinaryExpression", got.Type)
	require.Equal(t, "Plus", got.Op)
	require.Len(t, got.Children, 2)
	require.NotNil(t, got.Children[0].Value)
	require.Equal(t, int32(1), *got.Children[0].Value)
	require.Equal(t, "Mult", got.Children[1].Op)
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestFormatASTYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatAST(&buf, sampleTree(), FormatYAML, OutputOpts{}))

	var got ASTNodeOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "Plus", got.Op)
	require.Equal(t, int32(3), *got.Children[1].Children[1].Value)
}

func TestFormatASTMsgpackRoundTrip(t *testing.T) {
	tree := sampleTree()
	var buf bytes.Buffer
	require.NoError(t, FormatAST(&buf, tree, FormatMsgpack, OutputOpts{}))

	decoded, err := ast.DecodeMsgpack(&buf)
	require.NoError(t, err)
	require.Equal(t, tree.String(), decoded.String())
}

func TestFormatASTDumpNoColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatAST(&buf, sampleTree(), FormatDump, OutputOpts{}))
	require.Contains(t, buf.String(), "BinaryExpression")
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestFormatASTNilTree(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, FormatASTPretty(&buf, nil, OutputOpts{}))
	require.Error(t, FormatASTTree(&buf, nil))
	require.Error(t, FormatASTJSON(&buf, nil, OutputOpts{}))
}

func TestParseFormat(t *testing.T) {
	for name, want := range formatNames {
		got, err := ParseFormat(strings.ToUpper(name))
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, name, got.String())
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}
