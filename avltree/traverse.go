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

package avltree

import "cmp"

// InOrder visits every key/value pair in ascending key order.
func (t *Tree[K, V]) InOrder(visit func(key K, value V)) {
	inOrder(t.root, visit)
}

func inOrder[K cmp.Ordered, V any](node *Node[K, V], visit func(K, V)) {
	if node == nil {
		return
	}
	inOrder(node.left, visit)
	visit(node.key, node.value)
	inOrder(node.right, visit)
}

// ReverseInOrder visits every key/value pair in strictly descending
// key order: right subtree, node, left subtree.
func (t *Tree[K, V]) ReverseInOrder(visit func(key K, value V)) {
	reverseInOrder(t.root, visit)
}

func reverseInOrder[K cmp.Ordered, V any](node *Node[K, V], visit func(K, V)) {
	if node == nil {
		return
	}
	reverseInOrder(node.right, visit)
	visit(node.key, node.value)
	reverseInOrder(node.left, visit)
}

// KeysInRange returns all keys k with lo <= k <= hi in ascending
// order. Subtrees entirely outside the interval are never entered.
func (t *Tree[K, V]) KeysInRange(lo, hi K) []K {
	var keys []K
	rangeKeys(t.root, lo, hi, &keys)
	return keys
}

func rangeKeys[K cmp.Ordered, V any](node *Node[K, V], lo, hi K, keys *[]K) {
	if node == nil {
		return
	}

	// Only descend left if some key there can still reach lo.
	if node.key > lo {
		rangeKeys(node.left, lo, hi, keys)
	}

	if node.key >= lo && node.key <= hi {
		*keys = append(*keys, node.key)
	}

	// Only descend right if some key there can still be <= hi.
	if node.key < hi {
		rangeKeys(node.right, lo, hi, keys)
	}
}

// Predecessor returns the largest key strictly less than key, or
// false when no such key exists. The argument itself need not be in
// the tree.
func (t *Tree[K, V]) Predecessor(key K) (K, bool) {
	var best *Node[K, V]
	node := t.root
	for node != nil {
		if node.key < key {
			best = node
			node = node.right
		} else {
			node = node.left
		}
	}
	if best == nil {
		var zero K
		return zero, false
	}
	return best.key, true
}

// Successor returns the smallest key strictly greater than key, or
// false when no such key exists.
func (t *Tree[K, V]) Successor(key K) (K, bool) {
	var best *Node[K, V]
	node := t.root
	for node != nil {
		if node.key > key {
			best = node
			node = node.left
		} else {
			node = node.right
		}
	}
	if best == nil {
		var zero K
		return zero, false
	}
	return best.key, true
}
