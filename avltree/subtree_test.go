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
	"fmt"
	"testing"
)

func buildTree(t *testing.T, keys ...int) *Tree[int, string] {
	t.Helper()
	tree := New[int, string]()
	for _, key := range keys {
		if err := tree.Insert(key, fmt.Sprintf("v%d", key)); err != nil {
			t.Fatalf("Insert(%d) failed: %v", key, err)
		}
	}
	return tree
}

func TestIsSubtree(t *testing.T) {
	// Perfect tree: 4 at the root, 2 and 6 below, leaves 1 3 5 7.
	host := buildTree(t, 4, 2, 6, 1, 3, 5, 7)

	testCases := []struct {
		Name  string
		Other *Tree[int, string]
		Want  bool
	}{
		{
			Name:  "Left Subtree",
			Other: buildTree(t, 2, 1, 3),
			Want:  true,
		},
		{
			Name:  "Right Subtree",
			Other: buildTree(t, 6, 5, 7),
			Want:  true,
		},
		{
			Name:  "Whole Tree",
			Other: buildTree(t, 4, 2, 6, 1, 3, 5, 7),
			Want:  true,
		},
		{
			Name:  "Single Leaf",
			Other: buildTree(t, 5),
			Want:  true,
		},
		{
			Name:  "Empty Tree Matches Anywhere",
			Other: New[int, string](),
			Want:  true,
		},
		{
			Name:  "Differing Key",
			Other: buildTree(t, 2, 1, 9),
			Want:  false,
		},
		{
			Name:  "Missing Sibling",
			Other: buildTree(t, 2, 1), // host's node 2 also has a right child
			Want:  false,
		},
		{
			Name:  "Key Not Present",
			Other: buildTree(t, 42),
			Want:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := host.IsSubtree(tc.Other); got != tc.Want {
				t.Errorf("IsSubtree = %v, want %v", got, tc.Want)
			}
		})
	}
}

func TestIsSubtreeIgnoresValues(t *testing.T) {
	host := buildTree(t, 4, 2, 6)

	other := New[int, string]()
	for _, key := range []int{2} {
		if err := other.Insert(key, "completely different value"); err != nil {
			t.Fatalf("Insert(%d) failed: %v", key, err)
		}
	}

	if !host.IsSubtree(other) {
		t.Errorf("IsSubtree = false for a key/shape match with differing values")
	}
}

func TestEqual(t *testing.T) {
	a := buildTree(t, 4, 2, 6)
	b := buildTree(t, 4, 2, 6)
	c := buildTree(t, 4, 2, 7)

	if !a.Equal(b) {
		t.Errorf("Equal = false for identical trees")
	}
	if a.Equal(c) {
		t.Errorf("Equal = true for trees with differing keys")
	}
	if !New[int, string]().Equal(New[int, string]()) {
		t.Errorf("Equal = false for two empty trees")
	}
	if a.Equal(New[int, string]()) {
		t.Errorf("Equal = true for a non-empty and an empty tree")
	}
}

func TestCopyIndependence(t *testing.T) {
	original := buildTree(t, 50, 30, 70, 20, 40, 60, 80)
	clone := original.Copy()

	if !original.Equal(clone) {
		t.Fatalf("Copy() is not structurally equal to the original")
	}
	if clone.Height() != original.Height() {
		t.Errorf("Copy() height = %d, want %d", clone.Height(), original.Height())
	}
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		got, ok := clone.Search(key)
		want, _ := original.Search(key)
		if !ok || got != want {
			t.Errorf("clone Search(%d) = %q, %v; want %q, true", key, got, ok, want)
		}
	}

	// Mutating the clone must not leak into the original.
	clone.Remove(30)
	if err := clone.Insert(99, "clone only"); err != nil {
		t.Fatalf("Insert on clone failed: %v", err)
	}

	if _, ok := original.Search(30); !ok {
		t.Errorf("original lost key 30 after clone.Remove")
	}
	if _, ok := original.Search(99); ok {
		t.Errorf("original gained key 99 after clone.Insert")
	}

	// And the other way around.
	original.Remove(80)
	if _, ok := clone.Search(80); !ok {
		t.Errorf("clone lost key 80 after original.Remove")
	}

	if !clone.IsBalanced() || !original.IsBalanced() {
		t.Errorf("a tree became unbalanced after independent mutations")
	}
}

func TestCopyEmptyTree(t *testing.T) {
	clone := New[int, string]().Copy()
	if !clone.IsEmpty() {
		t.Errorf("Copy() of an empty tree is not empty")
	}
	if err := clone.Insert(1, "one"); err != nil {
		t.Errorf("Insert on copied empty tree failed: %v", err)
	}
}
