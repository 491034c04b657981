/*
Package nodeprint pretty-prints generic labelled trees, for demo CLIs
that want to show a parsed value's shape rather than just its Go
%v-representation.

A Node is a named bag of fields, each of which may itself be a Node, a
slice, or a leaf value — the same shape grammar_utils.py's Node/stringify
pair renders, reimplemented here as a tree of pterm.TreeNode so the demo
CLIs can lean on pterm's existing renderer instead of hand-rolling
indentation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package nodeprint

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
)

// Node is a named bag of fields, mirroring the Python original's
// (type, **kwargs) shape: Type labels the node, Data holds its children
// keyed by field name.
type Node struct {
	Type string
	Data map[string]interface{}
}

// NewNode builds a Node with the given type and no fields yet.
func NewNode(typ string) *Node {
	return &Node{Type: typ, Data: make(map[string]interface{})}
}

// Set attaches a field to the node and returns it, for chained
// construction.
func (n *Node) Set(key string, value interface{}) *Node {
	n.Data[key] = value
	return n
}

// String renders the node on one line: its Type followed by the %v
// form of its Data map — useful for log lines and test failure output.
func (n *Node) String() string {
	return fmt.Sprintf("%s%v", n.Type, n.Data)
}

// Tree renders v (a *Node, a []interface{}, or a leaf value) as a
// pterm.TreeNode, ready for pterm.DefaultTree.WithRoot(...).Render().
// Only []interface{} is expanded element by element; any other slice
// type (such as []int) is rendered as a single leaf in its %v form.
func Tree(label string, v interface{}) pterm.TreeNode {
	return pterm.TreeNode{Text: label, Children: children(v)}
}

func children(v interface{}) []pterm.TreeNode {
	switch x := v.(type) {
	case *Node:
		keys := make([]string, 0, len(x.Data))
		for k := range x.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]pterm.TreeNode, 0, len(keys))
		for _, k := range keys {
			out = append(out, pterm.TreeNode{Text: k, Children: children(x.Data[k])})
		}
		return []pterm.TreeNode{{Text: x.Type, Children: out}}
	case []interface{}:
		out := make([]pterm.TreeNode, len(x))
		for i, e := range x {
			out[i] = pterm.TreeNode{Text: fmt.Sprintf("[%d]", i), Children: children(e)}
		}
		return out
	default:
		return []pterm.TreeNode{{Text: fmt.Sprintf("%v", x)}}
	}
}
