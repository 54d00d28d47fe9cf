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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/treelab/avltree"
)

// menuAction describes one selectable shell action. Detail is raw
// markdown, rendered (and cached) on demand by "help <n>".
type menuAction struct {
	Selector string
	Name     string
	Usage    string
	Detail   string
}

var menuActions = []menuAction{
	{"1", "insert", "1 <key> <value>", "**insert** adds an integer key with a string value. Inserting a key that already exists is an error and changes nothing."},
	{"2", "remove", "2 <key>", "**remove** deletes a key. Removing a key that is not present is a silent no-op. Two-child nodes are replaced by the minimum of their right subtree."},
	{"3", "search", "3 <key>", "**search** looks a key up and prints its value. A bloom filter answers definite misses without walking the tree."},
	{"4", "min", "4", "**min** prints the smallest key. Fails on an empty tree."},
	{"5", "max", "5", "**max** prints the largest key. Fails on an empty tree."},
	{"6", "count", "6", "**count** prints the number of keys."},
	{"7", "balanced", "7", "**balanced** verifies the AVL invariant at every node, recomputing heights from scratch."},
	{"8", "height", "8", "**height** prints the height of the tree (0 when empty)."},
	{"9", "print", "9", "**print** renders the tree, one `<prefix><R|L>----<key>` line per node."},
	{"10", "copy", "10", "**copy** takes a deep, fully independent snapshot of the live tree."},
	{"11", "reverse", "11", "**reverse** lists all keys in descending order (reverse in-order traversal)."},
	{"12", "range", "12 <lo> <hi>", "**range** lists all keys between lo and hi inclusive, ascending."},
	{"13", "subtree", "13", "**subtree** checks whether the snapshot taken with `copy` still occurs as a structural subtree of the live tree (keys and shape, values ignored)."},
	{"14", "pred", "14 <key>", "**pred** prints the largest key strictly less than the given key, if any."},
	{"15", "clip", "15", "**clip** copies the most recent `print` output to the system clipboard."},
	{"16", "help", "16 [n]", "**help** shows the menu, or the detailed page for one action."},
	{"0", "quit", "0", "**quit** leaves the shell."},
}

// shell is the line-oriented driver around a live tree and an
// optional snapshot. It performs no tree logic itself.
type shell struct {
	index      *KeyIndex
	snapshot   *avltree.Tree[int, string]
	cfg        *Config
	helpCache  *cache.Cache
	lastRender string
	out        io.Writer
}

func newShell(cfg *Config, out io.Writer) *shell {
	return &shell{
		index:     NewKeyIndex(),
		cfg:       cfg,
		helpCache: NewHelpCache(),
		out:       out,
	}
}

// run reads one line per action until quit or EOF. Unknown selectors
// print an error and re-prompt; they never terminate the loop.
func (s *shell) run(in io.Reader) error {
	if s.cfg.Display.MenuOnStart {
		fmt.Fprint(s.out, s.menu())
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, s.cfg.Display.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		output, quit := s.exec(scanner.Text())
		if output != "" {
			fmt.Fprintln(s.out, output)
		}
		if quit {
			return nil
		}
	}
}

func (s *shell) menu() string {
	var sb strings.Builder
	sb.WriteString("Actions:\n")
	for _, action := range menuActions {
		fmt.Fprintf(&sb, "  %-14s %s\n", action.Usage, action.Name)
	}
	return sb.String()
}

// exec runs a single input line and returns its printable result.
func (s *shell) exec(line string) (string, bool) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return s.errorf("cannot parse input: %v", err), false
	}
	if len(args) == 0 {
		return "", false
	}

	selector, params := args[0], args[1:]
	tree := s.index.Tree()

	switch selector {
	case "0", "quit", "q":
		return "bye", true

	case "1", "insert":
		if len(params) < 2 {
			return s.errorf("usage: 1 <key> <value>"), false
		}
		key, err := parseKey(params[0])
		if err != nil {
			return s.errorf("%v", err), false
		}
		value := strings.Join(params[1:], " ")
		if err := s.index.Insert(key, value); err != nil {
			if errors.Is(err, avltree.ErrDuplicateKey) {
				return s.errorf("key %d already exists", key), false
			}
			return s.errorf("%v", err), false
		}
		return s.okf("inserted %d", key), false

	case "2", "remove":
		key, err := oneKey(params, "2 <key>")
		if err != nil {
			return s.errorf("%v", err), false
		}
		s.index.Remove(key)
		return s.okf("removed %d if it was present", key), false

	case "3", "search":
		key, err := oneKey(params, "3 <key>")
		if err != nil {
			return s.errorf("%v", err), false
		}
		value, ok := s.index.Search(key)
		if !ok {
			return fmt.Sprintf("key %d not found", key), false
		}
		return fmt.Sprintf("%d -> %q", key, value), false

	case "4", "min":
		key, err := tree.Min()
		if err != nil {
			return s.errorf("the tree is empty"), false
		}
		return fmt.Sprintf("min key: %d", key), false

	case "5", "max":
		key, err := tree.Max()
		if err != nil {
			return s.errorf("the tree is empty"), false
		}
		return fmt.Sprintf("max key: %d", key), false

	case "6", "count":
		return fmt.Sprintf("%d keys", tree.Len()), false

	case "7", "balanced":
		return fmt.Sprintf("balanced: %v", tree.IsBalanced()), false

	case "8", "height":
		return fmt.Sprintf("height: %d", tree.Height()), false

	case "9", "print":
		if tree.IsEmpty() {
			return "(empty tree)", false
		}
		s.lastRender = RenderTree(tree)
		return strings.TrimRight(s.lastRender, "\n"), false

	case "10", "copy":
		s.snapshot = tree.Copy()
		return s.okf("snapshot of %d keys taken", s.snapshot.Len()), false

	case "11", "reverse":
		var keys []string
		tree.ReverseInOrder(func(key int, _ string) {
			keys = append(keys, strconv.Itoa(key))
		})
		if len(keys) == 0 {
			return "(empty tree)", false
		}
		return strings.Join(keys, " "), false

	case "12", "range":
		if len(params) < 2 {
			return s.errorf("usage: 12 <lo> <hi>"), false
		}
		lo, err := parseKey(params[0])
		if err != nil {
			return s.errorf("%v", err), false
		}
		hi, err := parseKey(params[1])
		if err != nil {
			return s.errorf("%v", err), false
		}
		keys := tree.KeysInRange(lo, hi)
		if len(keys) == 0 {
			return fmt.Sprintf("no keys in [%d, %d]", lo, hi), false
		}
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = strconv.Itoa(key)
		}
		return strings.Join(parts, " "), false

	case "13", "subtree":
		if s.snapshot == nil {
			return s.errorf("no snapshot yet, take one with action 10"), false
		}
		return fmt.Sprintf("snapshot is a subtree: %v", tree.IsSubtree(s.snapshot)), false

	case "14", "pred":
		key, err := oneKey(params, "14 <key>")
		if err != nil {
			return s.errorf("%v", err), false
		}
		pred, ok := tree.Predecessor(key)
		if !ok {
			return fmt.Sprintf("no key smaller than %d", key), false
		}
		return fmt.Sprintf("predecessor of %d: %d", key, pred), false

	case "15", "clip":
		if s.lastRender == "" {
			return s.errorf("nothing rendered yet, use action 9 first"), false
		}
		if err := clipboard.WriteAll(s.lastRender); err != nil {
			return s.errorf("clipboard unavailable: %v", err), false
		}
		return s.okf("render copied to clipboard"), false

	case "16", "help":
		if len(params) == 0 {
			return strings.TrimRight(s.menu(), "\n"), false
		}
		for _, action := range menuActions {
			if params[0] == action.Selector || params[0] == action.Name {
				return strings.TrimRight(renderedHelp(s.helpCache, action.Name, action.Detail), "\n"), false
			}
		}
		return s.errorf("no such action %q", params[0]), false

	default:
		return s.errorf("unknown action %q, type \"help\" for the menu", selector), false
	}
}

func (s *shell) okf(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if s.cfg.Display.Color {
		return Green + msg + Reset
	}
	return msg
}

func (s *shell) errorf(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if s.cfg.Display.Color {
		return Red + msg + Reset
	}
	return msg
}

func parseKey(arg string) (int, error) {
	key, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("key must be an integer, got %q", arg)
	}
	return key, nil
}

func oneKey(params []string, usage string) (int, error) {
	if len(params) < 1 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return parseKey(params[0])
}
