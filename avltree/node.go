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

// Node is a single element of a Tree. A leaf has height 1; a nil
// child counts as height 0. Nodes are owned by exactly one tree and
// are only reachable through read-only accessors.
type Node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int
	left   *Node[K, V]
	right  *Node[K, V]
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the node's associated value.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// Height returns the cached height of the subtree rooted at n.
// A nil node has height 0.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}
