// Package wordlist reads the plain-text dictionary: one word per line,
// ASCII only. Each line is sanitized by dropping every byte outside A-Z and
// a-z and folding the rest to lowercase; lines left empty are skipped. The
// resulting list is sorted so every later stage iterates in a fixed order.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"slices"

	"github.com/Iron-Ham/compoundword/internal/errors"
)

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 1 << 20

// List is a loaded, sorted dictionary.
type List struct {
	// Words holds the sanitized words in lexicographic order. Duplicates
	// in the input are kept.
	Words []string
	// Lines is the number of input lines read.
	Lines int
	// Skipped is the number of lines that were empty after sanitizing.
	Skipped int
}

// Len returns the number of loaded words.
func (l *List) Len() int {
	return len(l.Words)
}

// Options controls how a dictionary is read.
type Options struct {
	// MaxLineBytes is the longest accepted line. Zero selects DefaultMaxLineBytes.
	MaxLineBytes int
}

// Sanitize folds line to lowercase and drops every byte that is not an
// ASCII letter. It does not split: a byte such as '-' or ' ' inside a word
// disappears rather than acting as a delimiter.
func Sanitize(line []byte) string {
	out := make([]byte, 0, len(line))
	for _, c := range line {
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}

// Read parses a dictionary from r.
func Read(r io.Reader, opts Options) (*List, error) {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	list := &List{Words: []string{}}
	for scanner.Scan() {
		list.Lines++
		word := Sanitize(scanner.Bytes())
		if word == "" {
			list.Skipped++
			continue
		}
		list.Words = append(list.Words, word)
	}
	if err := scanner.Err(); err != nil {
		cause := err
		if errors.Is(err, bufio.ErrTooLong) {
			cause = errors.Join(errors.ErrLineTooLong, err)
		}
		return nil, errors.NewDictionaryError("failed to read word list", cause).WithLine(list.Lines + 1)
	}

	slices.Sort(list.Words)
	return list, nil
}

// Load opens path and parses it with Read. A file that cannot be opened
// or read yields a *errors.DictionaryError matching errors.ErrInputUnavailable.
func Load(path string, opts Options) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDictionaryError("cannot open word list", err).WithPath(path)
	}
	defer f.Close()

	list, err := Read(f, opts)
	if err != nil {
		var dictErr *errors.DictionaryError
		if errors.As(err, &dictErr) {
			dictErr.WithPath(path)
		}
		return nil, err
	}
	return list, nil
}
