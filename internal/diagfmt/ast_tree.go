package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"arith/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

func buildTreeNode(exprs *ast.Exprs, id ast.ExprID) *treeNode {
	if lit, ok := exprs.IntLit(id); ok {
		return &treeNode{label: strconv.FormatInt(int64(lit.Value), 10)}
	}
	if bin, ok := exprs.Binary(id); ok {
		return &treeNode{
			label:    bin.Op.Symbol(),
			children: []*treeNode{buildTreeNode(exprs, bin.Left), buildTreeNode(exprs, bin.Right)},
		}
	}
	return &treeNode{label: "?"}
}

// FormatASTTree draws the tree top-down:
//
//	   +
//	 /   \
//	1     *
//	     / \
//	    2   3
func FormatASTTree(w io.Writer, tree *ast.Tree) error {
	if tree == nil || tree.Exprs == nil {
		return fmt.Errorf("tree is empty")
	}
	block := renderTree(buildTreeNode(tree.Exprs, tree.Root))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// renderTree lays children side by side and centres the label above them.
// Labels are ASCII (digits and operator symbols), so byte length is the width.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := len(label)

	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	childBlocks := make([]treeBlock, len(node.children))
	maxChildHeight := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		maxChildHeight = max(maxChildHeight, len(childBlocks[i].lines))
	}

	const spacing = 3

	positions := make([]int, len(childBlocks))
	totalWidth := 0
	for i, block := range childBlocks {
		positions[i] = totalWidth + block.root
		totalWidth += block.width
		if i != len(childBlocks)-1 {
			totalWidth += spacing
		}
	}

	// корень по центру между первым и последним ребёнком
	rootPos := (positions[0] + positions[len(positions)-1]) / 2
	labelStart := rootPos - labelWidth/2
	childPrefix := 0
	if labelStart < 0 {
		childPrefix = -labelStart
		labelStart = 0
		rootPos += childPrefix
	}
	width := max(totalWidth+childPrefix, labelStart+labelWidth)

	rootLine := padRight(strings.Repeat(" ", labelStart)+label, width)

	connector := []byte(strings.Repeat(" ", width))
	for _, pos := range positions {
		pos += childPrefix
		switch {
		case pos < rootPos:
			connector[pos+1] = '/'
		case pos > rootPos:
			connector[pos-1] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, maxChildHeight+2)
	lines = append(lines, rootLine, string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childPrefix))
		for i, block := range childBlocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
			if i != len(childBlocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: rootPos}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
