package ast

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestSnapshotPreservesTree(t *testing.T) {
	tree := sampleTree()
	var buf bytes.Buffer
	require.NoError(t, tree.EncodeMsgpack(&buf))

	decoded, err := DecodeMsgpack(&buf)
	require.NoError(t, err)
	require.Equal(t, tree.String(), decoded.String())
	require.Equal(t, tree.Root, decoded.Root)
}

func encodeRaw(t *testing.T, snap snapshot) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, msgpack.NewEncoder(&buf).Encode(&snap))
	return &buf
}

func TestSnapshotRejectsNonTrees(t *testing.T) {
	lit := func(v int32) snapshotNode { return snapshotNode{Kind: ExprIntLit, Value: v} }
	bin := func(l, r ExprID) snapshotNode { return snapshotNode{Kind: ExprBinary, Op: OpPlus, Left: l, Right: r} }

	tests := []struct {
		name string
		snap snapshot
	}{
		{"wrong-schema", snapshot{Schema: 99, Root: 1, Nodes: []snapshotNode{lit(1)}}},
		{"empty", snapshot{Schema: snapshotSchemaVersion}},
		{"root-not-last", snapshot{Schema: snapshotSchemaVersion, Root: 1, Nodes: []snapshotNode{lit(1), lit(2)}}},
		{"forward-reference", snapshot{Schema: snapshotSchemaVersion, Root: 2, Nodes: []snapshotNode{bin(2, 2), lit(1)}}},
		{"shared-child", snapshot{Schema: snapshotSchemaVersion, Root: 2, Nodes: []snapshotNode{lit(1), bin(1, 1)}}},
		{"orphan", snapshot{Schema: snapshotSchemaVersion, Root: 4, Nodes: []snapshotNode{lit(1), lit(2), lit(3), bin(1, 2)}}},
		{"bad-kind", snapshot{Schema: snapshotSchemaVersion, Root: 1, Nodes: []snapshotNode{{Kind: ExprInvalid}}}},
		{"bad-op", snapshot{Schema: snapshotSchemaVersion, Root: 3, Nodes: []snapshotNode{lit(1), lit(2), {Kind: ExprBinary, Op: 9, Left: 1, Right: 2}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMsgpack(encodeRaw(t, tt.snap))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrBadSnapshot), "error %v must wrap ErrBadSnapshot", err)
		})
	}
}

func TestSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeMsgpack(bytes.NewReader([]byte{0xc1, 0x00}))
	require.ErrorIs(t, err, ErrBadSnapshot)
}
