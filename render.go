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
	"cmp"
	"fmt"
	"strings"

	"github.com/cybrota/treelab/avltree"
)

// RenderTree draws the tree as indented text, one node per line:
//
//	R----4
//	    L----2
//	    |   L----1
//	    |   R----3
//	    R----6
//
// R/L mark whether a node is its parent's right or left child (the
// root counts as R). Beneath each node the left subtree is emitted
// first, then the right, each one level deeper; "|   " continues an
// ancestor's left branch through the prefix.
func RenderTree[K cmp.Ordered, V any](tree *avltree.Tree[K, V]) string {
	var sb strings.Builder
	renderNode(&sb, tree.Root(), "", false)
	return sb.String()
}

func renderNode[K cmp.Ordered, V any](sb *strings.Builder, node *avltree.Node[K, V], prefix string, isLeft bool) {
	if node == nil {
		return
	}

	sb.WriteString(prefix)
	if isLeft {
		sb.WriteString("L----")
		prefix += "|   "
	} else {
		sb.WriteString("R----")
		prefix += "    "
	}
	fmt.Fprintf(sb, "%v\n", node.Key())

	renderNode(sb, node.Left(), prefix, true)
	renderNode(sb, node.Right(), prefix, false)
}
