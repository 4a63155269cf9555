// Package tree declares the Node entity and its sentinel errors.
//
// This file declares Node, NewNode, and the Validate sentinel.
package tree

import "errors"

// ErrNotATree indicates Validate found a node reachable by more than one
// path — either a cycle or a shared subtree.
var ErrNotATree = errors.New("tree: node reachable twice (cycle or shared subtree)")

// Node is a binary-tree node: a value and two optional owned children.
// A nil *Node is the empty tree everywhere in lvltree; absent children
// stay nil and are never an error.
type Node struct {
	// Value is the datum carried by this node. No validation is applied.
	Value int64

	// Left is the exclusively owned left subtree, or nil.
	Left *Node

	// Right is the exclusively owned right subtree, or nil.
	Right *Node
}

// NewNode returns a Node holding v with both children absent.
// Children are wired afterwards by assigning Left/Right directly.
func NewNode(v int64) *Node {
	return &Node{Value: v}
}
