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

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// checkInvariants verifies BST ordering, cached-height correctness
// and the AVL balance bound at every node, from scratch.
func checkInvariants(t *testing.T, tree *Tree[int, int]) {
	t.Helper()

	var walk func(node *Node[int, int]) int
	walk = func(node *Node[int, int]) int {
		if node == nil {
			return 0
		}
		if node.left != nil && node.left.key >= node.key {
			t.Fatalf("BST violation: left child %d >= parent %d", node.left.key, node.key)
		}
		if node.right != nil && node.right.key <= node.key {
			t.Fatalf("BST violation: right child %d <= parent %d", node.right.key, node.key)
		}
		lh := walk(node.left)
		rh := walk(node.right)
		if lh-rh > 1 || rh-lh > 1 {
			t.Fatalf("AVL violation at key %d: left height %d, right height %d", node.key, lh, rh)
		}
		h := max(lh, rh) + 1
		if node.height != h {
			t.Fatalf("stale cached height at key %d: cached %d, actual %d", node.key, node.height, h)
		}
		return h
	}
	walk(tree.root)
}

func TestInvariantsUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := New[int, int]()
	present := map[int]int{}

	for i := 0; i < 2000; i++ {
		key := rng.Intn(500)
		if rng.Intn(3) == 0 {
			tree.Remove(key)
			delete(present, key)
		} else if _, ok := present[key]; !ok {
			if err := tree.Insert(key, i); err != nil {
				t.Fatalf("Insert(%d) failed: %v", key, err)
			}
			present[key] = i
		}
		checkInvariants(t, tree)
	}

	if got, want := tree.Len(), len(present); got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	// Whatever survived must still be found with its latest value.
	var keys []int
	for key := range present {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	for _, key := range keys {
		got, ok := tree.Search(key)
		if !ok || got != present[key] {
			t.Errorf("Search(%d) = %d, %v; want %d, true", key, got, ok, present[key])
		}
	}

	if got := collectIntOrder(tree); !sort.IntsAreSorted(got) {
		t.Errorf("in-order traversal is not sorted: %v", got)
	}
}

func TestHeightBound(t *testing.T) {
	for _, n := range []int{15, 100, 1024} {
		tree := New[int, int]()
		for key := 0; key < n; key++ {
			if err := tree.Insert(key, key); err != nil {
				t.Fatalf("Insert(%d) failed: %v", key, err)
			}
		}
		bound := 1.45 * math.Log2(float64(n)+2)
		if h := tree.Height(); float64(h) > bound {
			t.Errorf("n=%d: Height() = %d exceeds bound %.2f", n, h, bound)
		}
		if !tree.IsBalanced() {
			t.Errorf("n=%d: IsBalanced() = false after sequential inserts", n)
		}
	}
}

func TestIsBalancedDetectsBrokenTree(t *testing.T) {
	// Hand-built degenerate chain, bypassing Insert.
	tree := New[int, int]()
	tree.root = &Node[int, int]{key: 1, height: 3,
		right: &Node[int, int]{key: 2, height: 2,
			right: &Node[int, int]{key: 3, height: 1},
		},
	}
	if tree.IsBalanced() {
		t.Errorf("IsBalanced() = true for a right chain of three nodes")
	}
}

func collectIntOrder(tree *Tree[int, int]) []int {
	keys := []int{}
	tree.InOrder(func(key, _ int) {
		keys = append(keys, key)
	})
	return keys
}
