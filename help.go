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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown is the raw usage guide. The plain shell renders it
// with go-term-markdown; the explorer renders it with glamour.
func usageMarkdown() string {
	return fmt.Sprintf(`

 **Treelab %s**

An interactive workbench for a self-balancing (AVL) search tree. Insert,
remove and query integer keys with string values, watch rotations keep the
tree balanced, and compare snapshots structurally.

Built with Go %s

# 1. Commands
* treelab shell — line-oriented menu loop (default)
* treelab explore — full-screen explorer with the same actions
* treelab usage — this guide
* treelab version — print the version

# 2. Shell actions
Type an action number (or its name) followed by its parameters, e.g.
"1 42 hello" inserts key 42 with value "hello". Type "help" for the
full menu and "help <n>" for a single action. "0" quits.

# 3. Snapshots
Action 10 takes a deep, independent copy of the live tree. Action 13
checks whether that snapshot still occurs as a structural subtree of
the live tree (keys and shape, values ignored).

# 4. Configuration
~/.treelab.yaml controls display options:

    display:
      color: true
      prompt: "treelab> "
      menu_on_start: true

# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version())
}

func getUsageMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
