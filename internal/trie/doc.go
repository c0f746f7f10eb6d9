// Package trie provides the dictionary index used to decide whether a word is
// a concatenation of other dictionary words.
//
// The index is an insertion-only prefix tree over the lowercase ASCII letters
// a-z. Every node owns at most one child per letter; a node is terminal when
// some inserted word ends there, and a terminal node keeps the complete word so
// a match can be reported without rebuilding it from the path.
//
// # Lifecycle
//
// A [Trie] is built once, usually with [Build], and is read-only afterwards.
// Reads ([Trie.Root], [Node.Child], [Trie.Contains], [Trie.WithPrefix]) never
// mutate the tree and are safe for concurrent use once loading has finished.
// [Trie.Insert] is not safe to call concurrently with anything else.
//
// # Input
//
// Words must be non-empty and contain only the bytes 'a' to 'z'. Malformed
// words are rejected before any node is created, so a rejected insert leaves
// the trie untouched. Callers that read raw text should sanitize it first
// (see the wordlist package).
//
// # Example
//
//	t, err := trie.Build([]string{"cat", "dog", "catdog"})
//	if err != nil {
//	    return err
//	}
//	n := t.Root().Child('c').Child('a').Child('t')
//	fmt.Println(n.IsTerminal(), n.Word()) // true cat
package trie
