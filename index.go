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

package main

import (
	"strconv"

	"github.com/willf/bloom"

	"github.com/cybrota/treelab/avltree"
)

const (
	keyFilterSize   = 1 << 16 // bits
	keyFilterHashes = 5
)

// KeyIndex fronts the live tree with a bloom filter so that lookups
// for keys that were never inserted can answer without walking the
// tree. False positives fall through to a real search; removals leave
// the filter untouched, which only ever costs an extra tree walk.
type KeyIndex struct {
	filter *bloom.BloomFilter
	tree   *avltree.Tree[int, string]
}

func NewKeyIndex() *KeyIndex {
	return &KeyIndex{
		filter: bloom.New(keyFilterSize, keyFilterHashes),
		tree:   avltree.New[int, string](),
	}
}

// Tree exposes the underlying tree for operations the index does not
// mediate (render, copy, traversal, range, subtree).
func (ix *KeyIndex) Tree() *avltree.Tree[int, string] {
	return ix.tree
}

func (ix *KeyIndex) Insert(key int, value string) error {
	if err := ix.tree.Insert(key, value); err != nil {
		return err
	}
	ix.filter.AddString(strconv.Itoa(key))
	return nil
}

func (ix *KeyIndex) Remove(key int) {
	ix.tree.Remove(key)
}

// MayContain reports whether key could be present. A false result is
// definitive; a true result must be confirmed against the tree.
func (ix *KeyIndex) MayContain(key int) bool {
	return ix.filter.TestString(strconv.Itoa(key))
}

func (ix *KeyIndex) Search(key int) (string, bool) {
	if !ix.MayContain(key) {
		return "", false
	}
	return ix.tree.Search(key)
}
