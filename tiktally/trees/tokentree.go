// Package trees holds the recursive result structure produced by directory
// tokenization: a keyed tree whose leaves are token sequences and whose
// branches are subdirectory results, in filesystem iteration order.
package trees

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Node is one named entry of a TokenTree: either a file leaf carrying token
// IDs or a subdirectory branch carrying a nested tree.
type Node struct {
	Name   string
	Tokens []int
	Subdir *TokenTree
}

// IsLeaf reports whether the node is a file entry.
func (n *Node) IsLeaf() bool {
	return n.Subdir == nil
}

// TokenTree is an ordered, keyed collection of tokenization results. It is
// produced fresh per call and never shared between calls.
type TokenTree struct {
	nodes []*Node
	index map[string]*Node
}

// NewTokenTree returns an empty tree.
func NewTokenTree() *TokenTree {
	return &TokenTree{index: make(map[string]*Node)}
}

// AddTokens appends a file leaf. A duplicate name replaces the earlier entry's
// payload but keeps its position.
func (t *TokenTree) AddTokens(name string, tokens []int) {
	if existing, ok := t.index[name]; ok {
		existing.Tokens = tokens
		existing.Subdir = nil
		return
	}
	node := &Node{Name: name, Tokens: tokens}
	t.nodes = append(t.nodes, node)
	t.index[name] = node
}

// AddSubtree appends a subdirectory branch.
func (t *TokenTree) AddSubtree(name string, sub *TokenTree) {
	if existing, ok := t.index[name]; ok {
		existing.Tokens = nil
		existing.Subdir = sub
		return
	}
	node := &Node{Name: name, Subdir: sub}
	t.nodes = append(t.nodes, node)
	t.index[name] = node
}

// Get returns the entry with the given name.
func (t *TokenTree) Get(name string) (*Node, bool) {
	node, ok := t.index[name]
	return node, ok
}

// Names returns entry names in insertion order.
func (t *TokenTree) Names() []string {
	names := make([]string, len(t.nodes))
	for i, node := range t.nodes {
		names[i] = node.Name
	}
	return names
}

// Len returns the number of immediate entries.
func (t *TokenTree) Len() int {
	return len(t.nodes)
}

// IsEmpty reports whether the tree has no entries at all.
func (t *TokenTree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// TotalTokens sums token counts across all leaves, recursively.
func (t *TokenTree) TotalTokens() int {
	total := 0
	for _, node := range t.nodes {
		if node.IsLeaf() {
			total += len(node.Tokens)
		} else {
			total += node.Subdir.TotalTokens()
		}
	}
	return total
}

// MarshalJSON renders the tree as a nested JSON object, file names mapped to
// token arrays and subdirectory names mapped to nested objects. Entry order is
// preserved, which plain maps would not give us.
func (t *TokenTree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, node := range t.nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(node.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		var value []byte
		if node.IsLeaf() {
			tokens := node.Tokens
			if tokens == nil {
				tokens = []int{}
			}
			value, err = json.Marshal(tokens)
		} else {
			value, err = node.Subdir.MarshalJSON()
		}
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
