// Package analysis runs the compound word search over a whole dictionary:
// load the word list, build the trie, test every word, and decompose the
// longest compound word.
//
// Words are tested in parallel. The trie is read-only once built, and each
// worker writes only to its own slice of the result flags, so the workers
// share nothing mutable. The longest word is picked afterwards in sorted
// order, which makes the first of several equally long words win.
package analysis

import (
	"context"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Iron-Ham/compoundword/internal/errors"
	"github.com/Iron-Ham/compoundword/internal/logging"
	"github.com/Iron-Ham/compoundword/internal/resolver"
	"github.com/Iron-Ham/compoundword/internal/trie"
	"github.com/Iron-Ham/compoundword/internal/wordlist"
)

// chunkSize is the number of consecutive words one worker task tests.
const chunkSize = 512

// Config controls a run.
type Config struct {
	// Workers bounds the number of words tested concurrently. Zero or less
	// uses GOMAXPROCS.
	Workers int
	// CollectMode selects the sub-words reported for the longest word.
	CollectMode resolver.CollectMode
	// MaxLineBytes bounds a single input line. Zero uses the loader default.
	MaxLineBytes int
	// Logger receives progress entries. Nil discards them.
	Logger *logging.Logger
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (c Config) logger() *logging.Logger {
	if c.Logger == nil {
		return logging.NopLogger()
	}
	return c.Logger
}

// Result is the outcome of a run.
type Result struct {
	// Input is the dictionary path, empty when the list was supplied directly.
	Input string
	// Loaded is the number of words loaded, duplicates included.
	Loaded int
	// Skipped is the number of input lines that held no letters.
	Skipped int
	// Distinct is the number of distinct words in the trie.
	Distinct int
	// NodeCount is the number of trie nodes, root included.
	NodeCount int
	// Compounds lists every compound word in sorted input order. A word
	// listed twice in the input appears twice.
	Compounds []string
	// Longest is the decomposition of the longest compound word. Its
	// Compound field is false when the dictionary holds none.
	Longest resolver.Decomposition
	// CollectMode is the mode used to collect Longest.SubWords.
	CollectMode resolver.CollectMode
	// Workers is the concurrency the run used.
	Workers int
	// PrepTime covers loading and sorting the word list.
	PrepTime time.Duration
	// ProcessTime covers building the trie and testing every word.
	ProcessTime time.Duration
}

// Found reports whether the dictionary holds at least one compound word.
func (r *Result) Found() bool {
	return r.Longest.Compound
}

// Run loads the word list at path and analyzes it. A dictionary that
// cannot be opened or read yields an error matching
// errors.ErrInputUnavailable.
func Run(ctx context.Context, path string, cfg Config) (*Result, error) {
	log := cfg.logger().WithInput(path)

	start := time.Now()
	list, err := wordlist.Load(path, wordlist.Options{MaxLineBytes: cfg.MaxLineBytes})
	if err != nil {
		log.WithPhase("load").Error("failed to load word list", "error", err.Error())
		return nil, err
	}
	prep := time.Since(start)
	log.WithPhase("load").Info("word list loaded",
		"words", list.Len(),
		"lines", list.Lines,
		"skipped", list.Skipped,
		"duration_ms", prep.Milliseconds())

	cfg.Logger = log
	res, err := RunList(ctx, list, cfg)
	if err != nil {
		return nil, err
	}
	res.Input = path
	res.PrepTime = prep
	return res, nil
}

// RunList analyzes an already loaded word list. list.Words must be sorted
// for the tie-break between equally long words to be meaningful.
func RunList(ctx context.Context, list *wordlist.List, cfg Config) (*Result, error) {
	mode := cfg.CollectMode
	if mode == "" {
		mode = resolver.DefaultCollectMode
	}
	log := cfg.logger().With("collect_mode", string(mode))

	res := &Result{
		Loaded:      list.Len(),
		Skipped:     list.Skipped,
		Compounds:   []string{},
		CollectMode: mode,
		Workers:     cfg.workers(),
	}

	start := time.Now()
	t, err := trie.Build(list.Words)
	if err != nil {
		// the loader only yields a-z words, so this is a caller bug
		log.WithPhase("index").Warn("words rejected by index", "error", err.Error())
	}
	res.Distinct = t.Len()
	res.NodeCount = t.NodeCount()
	log.WithPhase("index").Debug("index built", "distinct", res.Distinct, "nodes", res.NodeCount)

	r := resolver.New(t, resolver.WithCollectMode(mode))
	flags, err := resolveAll(ctx, r, list.Words, res.Workers)
	if err != nil {
		log.WithPhase("resolve").Warn("resolution canceled", "error", err.Error())
		return nil, err
	}

	longest := -1
	for i, word := range list.Words {
		if !flags[i] {
			continue
		}
		res.Compounds = append(res.Compounds, word)
		if longest < 0 || len(word) > len(list.Words[longest]) {
			longest = i
		}
	}
	res.ProcessTime = time.Since(start)
	log.WithPhase("resolve").Info("words resolved",
		"compounds", len(res.Compounds),
		"workers", res.Workers,
		"duration_ms", res.ProcessTime.Milliseconds())

	if longest >= 0 {
		res.Longest = r.Decompose(list.Words[longest])
		if log.Enabled(logging.LevelDebug) {
			log.WithPhase("decompose").Debug("longest compound word decomposed",
				"word", res.Longest.Word,
				"segments", strings.Join(res.Longest.Segments, "+"),
				"sub_words", len(res.Longest.SubWords))
		}
	}
	return res, nil
}

// resolveAll tests every word with r, workers chunks at a time, and
// returns one flag per word.
func resolveAll(ctx context.Context, r *resolver.Resolver, words []string, workers int) ([]bool, error) {
	flags := make([]bool, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(words); lo += chunkSize {
		if gctx.Err() != nil {
			break
		}
		hi := min(lo+chunkSize, len(words))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				flags[i] = r.IsCompound(words[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(errors.ErrCanceled, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(errors.ErrCanceled, err)
	}
	return flags, nil
}
