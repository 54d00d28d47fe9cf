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

// Copy returns a deep clone of the tree: identical key, value and
// height structure with no node shared between the two graphs.
// Mutations on either side never affect the other.
//
// The walk uses an explicit work stack instead of recursion so that
// stack usage stays constant regardless of tree size.
func (t *Tree[K, V]) Copy() *Tree[K, V] {
	clone := New[K, V]()
	if t.root == nil {
		return clone
	}

	type pair struct {
		src *Node[K, V]
		dst *Node[K, V]
	}

	clone.root = cloneNode(t.root)
	stack := []pair{{t.root, clone.root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.src.left != nil {
			p.dst.left = cloneNode(p.src.left)
			stack = append(stack, pair{p.src.left, p.dst.left})
		}
		if p.src.right != nil {
			p.dst.right = cloneNode(p.src.right)
			stack = append(stack, pair{p.src.right, p.dst.right})
		}
	}
	return clone
}

// cloneNode copies key, value and cached height; links are filled in
// by the caller.
func cloneNode[K cmp.Ordered, V any](node *Node[K, V]) *Node[K, V] {
	return &Node[K, V]{
		key:    node.key,
		value:  node.value,
		height: node.height,
	}
}
