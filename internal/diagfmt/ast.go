package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	"arith/internal/ast"
)

type ASTNodeOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Value    *int32          `json:"value,omitempty" yaml:"value,omitempty"`
	Op       string          `json:"op,omitempty" yaml:"op,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildASTJSON converts the tree into nested nodes; binary nodes list left then right.
func BuildASTJSON(tree *ast.Tree) (ASTNodeOutput, error) {
	if tree == nil || tree.Exprs == nil {
		return ASTNodeOutput{}, fmt.Errorf("tree is empty")
	}
	return buildNode(tree.Exprs, tree.Root)
}

func buildNode(exprs *ast.Exprs, id ast.ExprID) (ASTNodeOutput, error) {
	if lit, ok := exprs.IntLit(id); ok {
		v := lit.Value
		return ASTNodeOutput{Type: ast.ExprIntLit.String(), Value: &v}, nil
	}
	bin, ok := exprs.Binary(id)
	if !ok {
		return ASTNodeOutput{}, fmt.Errorf("expression %d not found", id)
	}
	left, err := buildNode(exprs, bin.Left)
	if err != nil {
		return ASTNodeOutput{}, err
	}
	right, err := buildNode(exprs, bin.Right)
	if err != nil {
		return ASTNodeOutput{}, err
	}
	return ASTNodeOutput{
		Type:     ast.ExprBinary.String(),
		Op:       bin.Op.String(),
		Children: []ASTNodeOutput{left, right},
	}, nil
}

// FormatASTPretty prints an outline of the tree:
//
//	BinaryExpression Plus
//	├─ IntLiteral 1
//	└─ BinaryExpression Mult
//	   ├─ IntLiteral 2
//	   └─ IntLiteral 3
func FormatASTPretty(w io.Writer, tree *ast.Tree, opts OutputOpts) error {
	if tree == nil || tree.Exprs == nil {
		return fmt.Errorf("tree is empty")
	}
	opColor := color.New(color.FgYellow, color.Bold)
	litColor := color.New(color.FgCyan)
	if opts.Color {
		opColor.EnableColor()
		litColor.EnableColor()
	} else {
		opColor.DisableColor()
		litColor.DisableColor()
	}

	var walk func(id ast.ExprID, prefix, branch string) error
	walk = func(id ast.ExprID, prefix, branch string) error {
		var label string
		if lit, ok := tree.Exprs.IntLit(id); ok {
			label = "IntLiteral " + litColor.Sprint(strconv.FormatInt(int64(lit.Value), 10))
		} else if bin, ok := tree.Exprs.Binary(id); ok {
			label = "BinaryExpression " + opColor.Sprint(bin.Op.String())
		} else {
			return fmt.Errorf("expression %d not found", id)
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, label); err != nil {
			return err
		}
		bin, ok := tree.Exprs.Binary(id)
		if !ok {
			return nil
		}
		childPrefix := prefix
		switch branch {
		case "├─ ":
			childPrefix += "│  "
		case "└─ ":
			childPrefix += "   "
		}
		if err := walk(bin.Left, childPrefix, "├─ "); err != nil {
			return err
		}
		return walk(bin.Right, childPrefix, "└─ ")
	}
	return walk(tree.Root, "", "")
}

// FormatASTCanonical prints the BinaryExpression(...) form on one line.
func FormatASTCanonical(w io.Writer, tree *ast.Tree) error {
	_, err := fmt.Fprintln(w, tree.String())
	return err
}

// FormatASTInfix prints the fully parenthesised infix form.
func FormatASTInfix(w io.Writer, tree *ast.Tree) error {
	_, err := fmt.Fprintln(w, tree.Infix())
	return err
}

func FormatASTJSON(w io.Writer, tree *ast.Tree, opts OutputOpts) error {
	node, err := BuildASTJSON(tree)
	if err != nil {
		return err
	}
	return writeJSON(w, node, opts.Color)
}

func FormatASTYAML(w io.Writer, tree *ast.Tree) error {
	node, err := BuildASTJSON(tree)
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// FormatAST dispatches on f.
func FormatAST(w io.Writer, tree *ast.Tree, f Format, opts OutputOpts) error {
	switch f {
	case FormatPretty:
		return FormatASTPretty(w, tree, opts)
	case FormatTree:
		return FormatASTTree(w, tree)
	case FormatCanonical:
		return FormatASTCanonical(w, tree)
	case FormatInfix:
		return FormatASTInfix(w, tree)
	case FormatJSON:
		return FormatASTJSON(w, tree, opts)
	case FormatYAML:
		return FormatASTYAML(w, tree)
	case FormatMsgpack:
		return tree.EncodeMsgpack(w)
	case FormatDump:
		node, err := BuildASTJSON(tree)
		if err != nil {
			return err
		}
		return writeDump(w, node, opts.Color)
	default:
		return fmt.Errorf("unknown format: %s", f)
	}
}
