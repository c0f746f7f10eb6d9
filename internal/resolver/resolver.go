package resolver

import (
	"github.com/Iron-Ham/compoundword/internal/trie"
)

// Decomposition is the outcome of resolving one word.
type Decomposition struct {
	// Word is the input word.
	Word string
	// Compound is true when Word splits into two or more indexed words.
	Compound bool
	// Segments is the accepted segmentation in order, nil when not compound.
	Segments []string
	// SubWords is the sorted, de-duplicated set chosen by the CollectMode.
	SubWords []string
}

// Resolver tests words against a built trie.
type Resolver struct {
	trie *trie.Trie
	mode CollectMode
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCollectMode sets the sub-word collection mode used by Decompose.
func WithCollectMode(mode CollectMode) Option {
	return func(r *Resolver) {
		r.mode = mode
	}
}

// New returns a Resolver over t. The trie must not be modified afterwards.
func New(t *trie.Trie, opts ...Option) *Resolver {
	r := &Resolver{trie: t, mode: DefaultCollectMode}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mode returns the configured collect mode.
func (r *Resolver) Mode() CollectMode {
	return r.mode
}

// IsCompound reports whether word is the concatenation of at least two
// indexed words. A word that is itself indexed but has no other split is
// not compound.
func (r *Resolver) IsCompound(word string) bool {
	s := newSearch(r.trie.Root(), word, false)
	return s.fromRoot(0)
}

// Decompose resolves word and reports its segmentation and sub-words.
func (r *Resolver) Decompose(word string) Decomposition {
	s := newSearch(r.trie.Root(), word, r.mode == CollectVisited)
	d := Decomposition{Word: word, Compound: s.fromRoot(0)}
	if d.Compound {
		d.Segments = s.segments()
	}

	switch r.mode {
	case CollectVisited:
		d.SubWords = s.visited.sorted()
	case CollectPath:
		set := wordSet{}
		for _, seg := range d.Segments {
			set.add(seg)
		}
		d.SubWords = set.sorted()
	default:
		d.SubWords = allSegmentWords(r.trie.Root(), word)
	}
	return d
}

// outcome of a restart position.
type outcome int8

const (
	unknown outcome = iota
	accepted
	rejected
)

// search holds the per-word state of one resolution.
type search struct {
	root *trie.Node
	word string
	memo []outcome
	// split[pos] is where the accepted segment starting at pos ends.
	split   []int
	visited wordSet
}

func newSearch(root *trie.Node, word string, collect bool) *search {
	s := &search{
		root:  root,
		word:  word,
		memo:  make([]outcome, len(word)+1),
		split: make([]int, len(word)+1),
	}
	if collect {
		s.visited = wordSet{}
	}
	return s
}

// fromRoot runs the search from state (root, pos) and reports whether
// word[pos:] can be finished with indexed words.
func (s *search) fromRoot(pos int) bool {
	if s.memo[pos] != unknown {
		return s.memo[pos] == accepted
	}

	// consume until the word ends or no child continues it, remembering
	// the terminal nodes crossed on the way
	var boundaries []int
	n := s.root
	end := len(s.word)
	ok := false
	for i := pos; i < end; {
		n = n.Child(s.word[i])
		if n == nil {
			break
		}
		i++
		if i == end {
			if n.IsTerminal() && n.Word() != s.word {
				ok = true
				s.split[pos] = end
				s.visit(n)
			}
			break
		}
		if n.IsTerminal() {
			boundaries = append(boundaries, i)
			s.visit(n)
		}
	}

	// restart at each crossed boundary, longest segment first
	for k := len(boundaries) - 1; k >= 0 && !ok; k-- {
		if s.fromRoot(boundaries[k]) {
			ok = true
			s.split[pos] = boundaries[k]
		}
	}

	if ok {
		s.memo[pos] = accepted
	} else {
		s.memo[pos] = rejected
	}
	return ok
}

func (s *search) visit(n *trie.Node) {
	if s.visited != nil {
		s.visited.add(n.Word())
	}
}

// segments follows the recorded splits from position 0. Only valid after
// fromRoot(0) returned true.
func (s *search) segments() []string {
	var out []string
	for pos := 0; pos < len(s.word); pos = s.split[pos] {
		out = append(out, s.word[pos:s.split[pos]])
	}
	return out
}

// allSegmentWords returns the words that appear in at least one valid
// segmentation of word into two or more indexed words.
func allSegmentWords(root *trie.Node, word string) []string {
	end := len(word)
	if end == 0 {
		return []string{}
	}

	// edges[pos] lists the ends of indexed words starting at pos
	edges := make([][]int, end)
	reach := make([]bool, end+1)
	reach[0] = true
	for pos := 0; pos < end; pos++ {
		if !reach[pos] {
			continue
		}
		n := root
		for i := pos; i < end; i++ {
			if n = n.Child(word[i]); n == nil {
				break
			}
			if !n.IsTerminal() || (pos == 0 && i+1 == end) {
				continue
			}
			edges[pos] = append(edges[pos], i+1)
			reach[i+1] = true
		}
	}

	finish := make([]bool, end+1)
	finish[end] = true
	for pos := end - 1; pos >= 0; pos-- {
		for _, e := range edges[pos] {
			if finish[e] {
				finish[pos] = true
				break
			}
		}
	}

	set := wordSet{}
	if !finish[0] {
		return set.sorted()
	}
	for pos := 0; pos < end; pos++ {
		if !reach[pos] || !finish[pos] {
			continue
		}
		for _, e := range edges[pos] {
			if finish[e] {
				set.add(word[pos:e])
			}
		}
	}
	return set.sorted()
}
