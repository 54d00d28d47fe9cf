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

// Equal reports whether both trees hold equal keys in an identical
// shape. Values are not compared. A nil other matches only an empty
// receiver.
func (t *Tree[K, V]) Equal(other *Tree[K, V]) bool {
	if other == nil {
		return t.root == nil
	}
	return sameShape(t.root, other.root)
}

// IsSubtree reports whether other's whole structure occurs rooted at
// some node of t: key equality and shape at every position, values
// ignored, with two nil children matching. An empty other matches any
// tree.
//
// This is containment by structure, not by key order, so every node
// of t is tried as a candidate root rather than descending by
// comparison.
func (t *Tree[K, V]) IsSubtree(other *Tree[K, V]) bool {
	if other == nil || other.root == nil {
		return true
	}

	stack := []*Node[K, V]{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		if node.key == other.root.key && sameShape(node, other.root) {
			return true
		}
		stack = append(stack, node.left, node.right)
	}
	return false
}

// sameShape walks both subtrees in lockstep with an explicit stack,
// comparing keys and shape only.
func sameShape[K cmp.Ordered, V any](a, b *Node[K, V]) bool {
	type pair struct {
		a *Node[K, V]
		b *Node[K, V]
	}

	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.a == nil && p.b == nil {
			continue
		}
		if p.a == nil || p.b == nil || p.a.key != p.b.key {
			return false
		}
		stack = append(stack, pair{p.a.left, p.b.left}, pair{p.a.right, p.b.right})
	}
	return true
}
