// Package resolver decides whether a word is a compound word: the
// concatenation of two or more words held in a trie.Trie.
//
// The search is a small state machine over (trie node, position) pairs,
// started at (root, 0), with two transitions:
//
//   - consume: step from the current node to its child for word[position]
//     and advance the position. There is at most one successor.
//   - restart: when the current node is terminal and every continuation
//     through consume has failed, begin a new segment at (root, position).
//
// A state accepts when the position reaches the end of the word, the node
// is terminal, and the node's word is not the whole input. A word never
// counts as compound by matching itself.
//
// Longer segments are tried before shorter ones. A restart position always
// has the same outcome whatever segment led to it, so outcomes are memoized
// per position and every position is explored at most once. Checking an
// n-letter word costs O(n²) trie steps in the worst case.
//
// # Collecting sub-words
//
// [Resolver.Decompose] returns a [Decomposition] value with the accepted
// segments and a sorted set of sub-words chosen by [CollectMode]:
//
//   - [CollectVisited]: every terminal word the traversal crossed, including
//     words from branches that were abandoned later.
//   - [CollectPath]: only the words of the accepted segmentation.
//   - [CollectAll]: the words of every valid segmentation.
//
// # Concurrency
//
// A Resolver only reads its trie. One Resolver may be shared by any number
// of goroutines once the trie is fully built.
package resolver
