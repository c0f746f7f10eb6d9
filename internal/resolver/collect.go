package resolver

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/compoundword/internal/errors"
)

// CollectMode selects which sub-words Decompose reports.
type CollectMode string

const (
	// CollectVisited reports every terminal word crossed during the search.
	CollectVisited CollectMode = "visited"
	// CollectPath reports the words of the accepted segmentation only.
	CollectPath CollectMode = "path"
	// CollectAll reports the words of every valid segmentation.
	CollectAll CollectMode = "all"
)

// DefaultCollectMode is used when no mode is configured.
const DefaultCollectMode = CollectAll

// ValidCollectModes returns the accepted collect mode names.
func ValidCollectModes() []string {
	return []string{string(CollectVisited), string(CollectPath), string(CollectAll)}
}

// ParseCollectMode converts a configuration string to a CollectMode.
// The empty string selects DefaultCollectMode.
func ParseCollectMode(s string) (CollectMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultCollectMode, nil
	}
	if !slices.Contains(ValidCollectModes(), s) {
		return "", errors.NewValidationError(
			fmt.Sprintf("must be one of: %s", strings.Join(ValidCollectModes(), ", "))).
			WithField("resolver.collect_mode").
			WithValue(s)
	}
	return CollectMode(s), nil
}

// wordSet is a set of sub-words that renders as a sorted slice.
type wordSet map[string]struct{}

func (s wordSet) add(w string) {
	s[w] = struct{}{}
}

func (s wordSet) sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}
