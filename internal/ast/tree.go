package ast

import (
	"strconv"
	"strings"
)

// Tree is a finished expression: the arena plus its root.
// Children are always allocated before their parent, so every child ID is
// smaller than its parent's and the root carries the largest ID.
type Tree struct {
	Exprs *Exprs
	Root  ExprID
}

func NewTree(exprs *Exprs, root ExprID) *Tree {
	return &Tree{Exprs: exprs, Root: root}
}

// Len is the number of nodes in the tree.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(ExprID, int) bool {
		n++
		return true
	})
	return n
}

// Depth is the number of nodes on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	deepest := 0
	t.Walk(func(_ ExprID, depth int) bool {
		deepest = max(deepest, depth+1)
		return true
	})
	return deepest
}

// Walk visits nodes in pre-order (node, left, right). Returning false from fn
// skips the children of that node.
func (t *Tree) Walk(fn func(id ExprID, depth int) bool) {
	if t == nil || t.Exprs == nil {
		return
	}
	type frame struct {
		id    ExprID
		depth int
	}
	// явный стек: правоассоциативные цепочки бывают длинными
	stack := []frame{{t.Root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f.id.IsValid() {
			continue
		}
		if !fn(f.id, f.depth) {
			continue
		}
		if bin, ok := t.Exprs.Binary(f.id); ok {
			stack = append(stack, frame{bin.Right, f.depth + 1}, frame{bin.Left, f.depth + 1})
		}
	}
}

// String renders the canonical form, e.g.
// BinaryExpression(IntLiteral(1), Plus, IntLiteral(2)).
func (t *Tree) String() string {
	if t == nil || t.Exprs == nil {
		return "<nil>"
	}
	var sb strings.Builder
	t.write(&sb, t.Root)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, id ExprID) {
	expr := t.Exprs.Get(id)
	if expr == nil {
		sb.WriteString("<invalid>")
		return
	}
	switch expr.Kind {
	case ExprIntLit:
		lit, _ := t.Exprs.IntLit(id)
		sb.WriteString("IntLiteral(")
		sb.WriteString(strconv.FormatInt(int64(lit.Value), 10))
		sb.WriteByte(')')
	case ExprBinary:
		bin, _ := t.Exprs.Binary(id)
		sb.WriteString("BinaryExpression(")
		t.write(sb, bin.Left)
		sb.WriteString(", ")
		sb.WriteString(bin.Op.String())
		sb.WriteString(", ")
		t.write(sb, bin.Right)
		sb.WriteByte(')')
	default:
		sb.WriteString("<invalid>")
	}
}

// Infix renders the tree with explicit parentheses around every binary node,
// which makes the grouping visible: (1 * (2 + 3)).
func (t *Tree) Infix() string {
	if t == nil || t.Exprs == nil {
		return ""
	}
	var sb strings.Builder
	t.writeInfix(&sb, t.Root)
	return sb.String()
}

func (t *Tree) writeInfix(sb *strings.Builder, id ExprID) {
	if lit, ok := t.Exprs.IntLit(id); ok {
		sb.WriteString(strconv.FormatInt(int64(lit.Value), 10))
		return
	}
	if bin, ok := t.Exprs.Binary(id); ok {
		sb.WriteByte('(')
		t.writeInfix(sb, bin.Left)
		sb.WriteByte(' ')
		sb.WriteString(bin.Op.Symbol())
		sb.WriteByte(' ')
		t.writeInfix(sb, bin.Right)
		sb.WriteByte(')')
		return
	}
	sb.WriteString("?")
}
