package trie

import (
	"github.com/kumarlokesh/morse-decoder/internal/morse"
)

// Entry is a dictionary word together with its Morse encoding.
type Entry struct {
	Word     string
	Sequence []morse.Token
}

// DuplicatePolicy decides which word a terminal node keeps when two words
// share the same Morse encoding.
type DuplicatePolicy int

const (
	// KeepLast overwrites the stored word with the newly inserted one.
	KeepLast DuplicatePolicy = iota
	// KeepFirst ignores later words with an already stored encoding.
	KeepFirst
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case KeepFirst:
		return "first"
	default:
		return "last"
	}
}

// CollisionFunc is called when an inserted word's sequence already ends at a
// terminal node holding a different word. kept is the word left in the trie.
type CollisionFunc func(existing, incoming, kept string, seq []morse.Token)

// Option configures a Trie.
type Option func(*Trie)

// WithDuplicatePolicy sets the duplicate-encoding policy. The default is KeepLast.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(t *Trie) {
		t.policy = p
	}
}

// WithCollisionFunc registers a callback for duplicate encodings.
func WithCollisionFunc(fn CollisionFunc) Option {
	return func(t *Trie) {
		t.onCollision = fn
	}
}

// Trie represents a trie data structure. It is built once and only read
// afterwards; a built Trie is safe for concurrent readers.
type Trie struct {
	root        *Node
	words       int
	nodes       int
	policy      DuplicatePolicy
	onCollision CollisionFunc
}

// New creates a new empty trie
func New(opts ...Option) *Trie {
	t := &Trie{
		root:  newNode(),
		nodes: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Build creates a fresh trie holding every entry, inserted in order.
func Build(entries []Entry, opts ...Option) *Trie {
	t := New(opts...)
	for _, e := range entries {
		t.Insert(e)
	}
	return t
}

// Insert adds an entry, creating nodes along its sequence on demand. Insert
// must not be called once the trie is shared with readers.
func (t *Trie) Insert(e Entry) {
	node := t.root
	for _, tok := range e.Sequence {
		child, exists := node.children[tok]
		if !exists {
			child = newNode()
			node.children[tok] = child
			t.nodes++
		}
		node = child
	}

	if !node.terminal {
		node.terminal = true
		node.word = e.Word
		t.words++
		return
	}
	if node.word == e.Word {
		return
	}

	existing := node.word
	if t.policy == KeepLast {
		node.word = e.Word
	}
	if t.onCollision != nil {
		t.onCollision(existing, e.Word, node.word, e.Sequence)
	}
}

// Root returns the root node.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of terminal nodes, i.e. distinct encodings stored.
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the number of nodes including the root.
func (t *Trie) NodeCount() int {
	return t.nodes
}

// Policy returns the duplicate-encoding policy in effect.
func (t *Trie) Policy() DuplicatePolicy {
	return t.policy
}

// Lookup returns the word whose encoding is exactly seq.
func (t *Trie) Lookup(seq []morse.Token) (string, bool) {
	node := t.findNode(seq)
	if node == nil {
		return "", false
	}
	return node.Word()
}

// findNode returns the node corresponding to seq, or nil if not found
func (t *Trie) findNode(seq []morse.Token) *Node {
	node := t.root
	for _, tok := range seq {
		next, exists := node.children[tok]
		if !exists {
			return nil
		}
		node = next
	}
	return node
}

// WalkFunc is called for each stored word with its encoding. The sequence
// slice is reused between calls and must be copied if retained. Returning
// false stops the walk.
type WalkFunc func(word string, seq []morse.Token) bool

// Walk visits every stored word in pre-order, children in token byte order.
func (t *Trie) Walk(fn WalkFunc) {
	walkNode(t.root, nil, fn)
}

// walkNode is a helper function that recursively traverses the trie
func walkNode(node *Node, seq []morse.Token, fn WalkFunc) bool {
	if node.terminal {
		if !fn(node.word, seq) {
			return false
		}
	}
	for _, tok := range node.sortedTokens() {
		if !walkNode(node.children[tok], append(seq, tok), fn) {
			return false
		}
	}
	return true
}

// Words returns all stored words in Walk order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.words)
	t.Walk(func(word string, _ []morse.Token) bool {
		words = append(words, word)
		return true
	})
	return words
}

// Equal reports whether t and other have the same shape and the same words
// at the same terminal nodes.
func (t *Trie) Equal(other *Trie) bool {
	if t == nil || other == nil {
		return t == other
	}
	return equalNodes(t.root, other.root)
}

func equalNodes(a, b *Node) bool {
	if a.terminal != b.terminal || a.word != b.word || len(a.children) != len(b.children) {
		return false
	}
	for tok, ac := range a.children {
		bc, ok := b.children[tok]
		if !ok || !equalNodes(ac, bc) {
			return false
		}
	}
	return true
}
