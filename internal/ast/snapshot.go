package ast

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the snapshot layout changes
const snapshotSchemaVersion uint16 = 1

// ErrBadSnapshot is wrapped by every structural decoding failure.
var ErrBadSnapshot = errors.New("malformed tree snapshot")

type snapshot struct {
	Schema uint16         `msgpack:"schema"`
	Root   ExprID         `msgpack:"root"`
	Nodes  []snapshotNode `msgpack:"nodes"`
}

// snapshotNode flattens Expr and its payload; IDs are positions in Nodes (1-based).
type snapshotNode struct {
	Kind  ExprKind `msgpack:"k"`
	Value int32    `msgpack:"v,omitempty"`
	Op    Op       `msgpack:"op,omitempty"`
	Left  ExprID   `msgpack:"l,omitempty"`
	Right ExprID   `msgpack:"r,omitempty"`
}

// EncodeMsgpack writes the tree as a msgpack snapshot.
func (t *Tree) EncodeMsgpack(w io.Writer) error {
	snap := snapshot{
		Schema: snapshotSchemaVersion,
		Root:   t.Root,
		Nodes:  make([]snapshotNode, 0, t.Exprs.Len()),
	}
	for i := uint32(1); i <= t.Exprs.Len(); i++ {
		id := ExprID(i)
		node := snapshotNode{Kind: t.Exprs.Get(id).Kind}
		switch node.Kind {
		case ExprIntLit:
			lit, _ := t.Exprs.IntLit(id)
			node.Value = lit.Value
		case ExprBinary:
			bin, _ := t.Exprs.Binary(id)
			node.Left, node.Op, node.Right = bin.Left, bin.Op, bin.Right
		}
		snap.Nodes = append(snap.Nodes, node)
	}
	return msgpack.NewEncoder(w).Encode(&snap)
}

// DecodeMsgpack reads a snapshot written by EncodeMsgpack and rebuilds the arena.
// It rejects snapshots that do not describe a strict tree: every child must be
// allocated before its parent and referenced exactly once, and every node
// except the root must have a parent.
func DecodeMsgpack(r io.Reader) (*Tree, error) {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if snap.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%w: schema %d, want %d", ErrBadSnapshot, snap.Schema, snapshotSchemaVersion)
	}
	n := len(snap.Nodes)
	if n == 0 || int(snap.Root) != n {
		return nil, fmt.Errorf("%w: root %d must be the last of %d nodes", ErrBadSnapshot, snap.Root, n)
	}

	exprs := NewExprs(uint(n))
	parents := make([]int, n+1)
	for i, node := range snap.Nodes {
		id := ExprID(i + 1)
		switch node.Kind {
		case ExprIntLit:
			exprs.NewIntLit(node.Value)
		case ExprBinary:
			if !node.Op.valid() {
				return nil, fmt.Errorf("%w: node %d has unknown operator %d", ErrBadSnapshot, id, node.Op)
			}
			for _, child := range []ExprID{node.Left, node.Right} {
				if !child.IsValid() || child >= id {
					return nil, fmt.Errorf("%w: node %d references %d", ErrBadSnapshot, id, child)
				}
				parents[child]++
			}
			exprs.NewBinary(node.Left, node.Op, node.Right)
		default:
			return nil, fmt.Errorf("%w: node %d has kind %d", ErrBadSnapshot, id, node.Kind)
		}
	}
	for id := 1; id < n; id++ {
		if parents[id] != 1 {
			return nil, fmt.Errorf("%w: node %d has %d parents", ErrBadSnapshot, id, parents[id])
		}
	}
	if parents[n] != 0 {
		return nil, fmt.Errorf("%w: root has a parent", ErrBadSnapshot)
	}
	return NewTree(exprs, snap.Root), nil
}
