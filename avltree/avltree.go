// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avltree implements a generic self-balancing binary search
// tree (AVL) mapping ordered keys to arbitrary values. Keys are
// unique; values are opaque and never compared.
//
// A tree is not safe for concurrent mutation. Use it from a single
// goroutine or guard it with a mutex.
package avltree

import (
	"cmp"
	"fmt"
)

// Tree is an ordered map with the AVL balance guarantee: at every
// node the two subtree heights differ by at most 1, which bounds the
// overall height to ~1.44*log2(n+2).
type Tree[K cmp.Ordered, V any] struct {
	root *Node[K, V]
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{root: nil}
}

// Root returns the root node, or nil for an empty tree. Exposed for
// read-only walks such as rendering; callers must not retain nodes
// across mutations.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Insert adds key with its value. Inserting a key that is already
// present returns an error wrapping ErrDuplicateKey and leaves the
// tree unchanged.
func (t *Tree[K, V]) Insert(key K, value V) error {
	root, err := insertNode(t.root, key, value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	t.root = root
	return nil
}

func insertNode[K cmp.Ordered, V any](node *Node[K, V], key K, value V) (*Node[K, V], error) {
	if node == nil {
		return &Node[K, V]{key: key, value: value, height: 1}, nil
	}

	switch {
	case key < node.key:
		left, err := insertNode(node.left, key, value)
		if err != nil {
			return node, err
		}
		node.left = left
	case key > node.key:
		right, err := insertNode(node.right, key, value)
		if err != nil {
			return node, err
		}
		node.right = right
	default:
		// Error before any link or height on the path is touched,
		// so a failed insert mutates nothing.
		return node, ErrDuplicateKey
	}

	updateHeight(node)
	return rebalance(node), nil
}

// Remove deletes the node holding key. Removing an absent key is a
// no-op, not an error. A node with two children is overwritten with
// the key and value of the minimum of its right subtree (the in-order
// successor), and that minimum is then removed from the right subtree.
func (t *Tree[K, V]) Remove(key K) {
	t.root = removeNode(t.root, key)
}

func removeNode[K cmp.Ordered, V any](node *Node[K, V], key K) *Node[K, V] {
	if node == nil {
		return nil // key not in tree
	}

	switch {
	case key < node.key:
		node.left = removeNode(node.left, key)
	case key > node.key:
		node.right = removeNode(node.right, key)
	default:
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		succ := minNode(node.right)
		node.key = succ.key
		node.value = succ.value
		node.right = removeNode(node.right, succ.key)
	}

	updateHeight(node)
	return rebalance(node)
}

// Search returns the value stored under key. The second result is
// false when the key is absent.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	node := t.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node.value, true
		}
	}
	var zero V
	return zero, false
}

// Min returns the smallest key, or ErrEmptyTree.
func (t *Tree[K, V]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return minNode(t.root).key, nil
}

// Max returns the largest key, or ErrEmptyTree.
func (t *Tree[K, V]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	node := t.root
	for node.right != nil {
		node = node.right
	}
	return node.key, nil
}

// Len returns the number of nodes. Counted on demand, O(n).
func (t *Tree[K, V]) Len() int {
	return countNodes(t.root)
}

func countNodes[K cmp.Ordered, V any](node *Node[K, V]) int {
	if node == nil {
		return 0
	}
	return 1 + countNodes(node.left) + countNodes(node.right)
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree[K, V]) Height() int {
	return t.root.Height()
}

// IsBalanced verifies the AVL invariant at every node by recomputing
// subtree heights from scratch, independent of the cached values.
// Useful as a consistency oracle in tests.
func (t *Tree[K, V]) IsBalanced() bool {
	_, ok := measureBalance(t.root)
	return ok
}

func measureBalance[K cmp.Ordered, V any](node *Node[K, V]) (int, bool) {
	if node == nil {
		return 0, true
	}
	lh, ok := measureBalance(node.left)
	if !ok {
		return 0, false
	}
	rh, ok := measureBalance(node.right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

func minNode[K cmp.Ordered, V any](node *Node[K, V]) *Node[K, V] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func updateHeight[K cmp.Ordered, V any](node *Node[K, V]) {
	node.height = max(node.left.Height(), node.right.Height()) + 1
}

func balanceFactor[K cmp.Ordered, V any](node *Node[K, V]) int {
	if node == nil {
		return 0
	}
	return node.left.Height() - node.right.Height()
}

// rotateLeft re-roots the subtree at node's right child. Only the two
// rotated nodes need their heights recomputed; callers fix heights
// further up on the unwind path.
func rotateLeft[K cmp.Ordered, V any](node *Node[K, V]) *Node[K, V] {
	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateRight re-roots the subtree at node's left child.
func rotateRight[K cmp.Ordered, V any](node *Node[K, V]) *Node[K, V] {
	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance applies at most one single or double rotation at node,
// assuming both subtrees already satisfy the AVL invariant.
func rebalance[K cmp.Ordered, V any](node *Node[K, V]) *Node[K, V] {
	bf := balanceFactor(node)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(node.left) < 0 {
			// Left-Right case
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(node.right) > 0 {
			// Right-Left case
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	}

	return node
}
