// Package trie implements a prefix tree keyed by Morse tokens. Each edge is a
// whole token (one encoded character), so the path from the root to a
// terminal node spells the Morse sequence of the word stored there.
package trie

import (
	"sort"

	"github.com/kumarlokesh/morse-decoder/internal/morse"
)

// Node represents a node in the trie
type Node struct {
	// children maps the next token to the child node
	children map[morse.Token]*Node

	// terminal marks that a dictionary word's sequence ends here
	terminal bool

	// word is the dictionary word stored at a terminal node
	word string
}

// newNode creates a new trie node
func newNode() *Node {
	return &Node{
		children: make(map[morse.Token]*Node),
	}
}

// Child returns the child reached over token t.
func (n *Node) Child(t morse.Token) (*Node, bool) {
	c, ok := n.children[t]
	return c, ok
}

// Terminal reports whether a word ends at n.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Word returns the word stored at n. ok is false for non-terminal nodes.
func (n *Node) Word() (word string, ok bool) {
	return n.word, n.terminal
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// sortedTokens returns the child keys in byte order. Dash sorts before dot.
func (n *Node) sortedTokens() []morse.Token {
	tokens := make([]morse.Token, 0, len(n.children))
	for tok := range n.children {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })
	return tokens
}
