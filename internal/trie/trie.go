package trie

import (
	"github.com/Iron-Ham/compoundword/internal/errors"
)

// alphabetSize is the number of distinct edge labels ('a' to 'z').
const alphabetSize = 26

// Node is one character position in the indexed word set.
type Node struct {
	children [alphabetSize]*Node
	terminal bool
	word     string
}

// Child returns the node reached by consuming c, or nil when no indexed word
// continues with c at this position. Bytes outside 'a' to 'z' never have a child.
func (n *Node) Child(c byte) *Node {
	if n == nil || c < 'a' || c > 'z' {
		return nil
	}
	return n.children[c-'a']
}

// IsTerminal reports whether an indexed word ends exactly at this node.
func (n *Node) IsTerminal() bool {
	return n != nil && n.terminal
}

// Word returns the indexed word that ends at this node, or "" when the node
// is not terminal.
func (n *Node) Word() string {
	if !n.IsTerminal() {
		return ""
	}
	return n.word
}

// Trie is the dictionary index. The zero value is not usable; use New or Build.
type Trie struct {
	root  *Node
	words int
	nodes int
}

// New returns an empty trie holding only its root.
func New() *Trie {
	return &Trie{root: &Node{}, nodes: 1}
}

// Build returns a trie holding every word in words. Malformed words are
// skipped and reported together in the returned error; the trie is still
// usable and contains all the valid words.
func Build(words []string) (*Trie, error) {
	t := New()
	var errs []error
	for _, w := range words {
		if err := t.Insert(w); err != nil {
			errs = append(errs, err)
		}
	}
	return t, errors.Join(errs...)
}

// Validate reports whether word can be inserted: it must be non-empty and
// contain only 'a' to 'z'.
func Validate(word string) error {
	if word == "" {
		return errors.NewValidationError("word is empty").
			WithField("word").
			WithCause(errors.ErrInvalidWord)
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			return errors.NewValidationError("word contains a byte outside a-z").
				WithField("word").
				WithValue(word).
				WithCause(errors.ErrInvalidWord)
		}
	}
	return nil
}

// Insert adds word to the trie. Inserting a word that is already present
// re-marks the same terminal node and changes nothing else.
func (t *Trie) Insert(word string) error {
	if err := Validate(word); err != nil {
		return err
	}

	n := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'a'
		next := n.children[idx]
		if next == nil {
			next = &Node{}
			n.children[idx] = next
			t.nodes++
		}
		n = next
	}

	if !n.terminal {
		n.terminal = true
		n.word = word
		t.words++
	}
	return nil
}

// Root returns the root node. The root is never terminal.
func (t *Trie) Root() *Node {
	return t.root
}

// Find returns the node reached by consuming every byte of s from the root,
// or nil when no indexed word has s as a prefix.
func (t *Trie) Find(s string) *Node {
	n := t.root
	for i := 0; i < len(s) && n != nil; i++ {
		n = n.Child(s[i])
	}
	return n
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	return t.Find(word).IsTerminal()
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.words
}

// NodeCount returns the number of nodes, root included.
func (t *Trie) NodeCount() int {
	return t.nodes
}

// WithPrefix returns every indexed word starting with prefix, in
// lexicographic order. An empty prefix returns every word.
func (t *Trie) WithPrefix(prefix string) []string {
	n := t.Find(prefix)
	if n == nil {
		return []string{}
	}
	result := []string{}
	n.collect(&result)
	return result
}

// Words returns every indexed word in lexicographic order.
func (t *Trie) Words() []string {
	return t.WithPrefix("")
}

// collect appends the words ending at or below n. Children are visited in
// letter order, which yields lexicographic order without sorting.
func (n *Node) collect(out *[]string) {
	if n.terminal {
		*out = append(*out, n.word)
	}
	for _, child := range n.children {
		if child != nil {
			child.collect(out)
		}
	}
}
