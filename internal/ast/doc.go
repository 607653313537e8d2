// Package ast holds the parsed expression tree.
//
// Nodes live in index arenas (see Arena) and refer to each other by ExprID.
// The parser builds trees bottom-up, so a node is only allocated once both of
// its children exist; a finished Tree is never modified afterwards.
package ast
