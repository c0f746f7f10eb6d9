// Package report renders the result of a run: the console summary in text
// or JSON, and the optional file listing every compound word.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/Iron-Ham/compoundword/internal/analysis"
	"github.com/Iron-Ham/compoundword/internal/errors"
	"github.com/Iron-Ham/compoundword/internal/util"
)

// Format selects the console report layout.
type Format string

const (
	// FormatText is the human-readable summary, styled when color is on.
	FormatText Format = "text"
	// FormatJSON is a single indented JSON object.
	FormatJSON Format = "json"
)

// ColorMode selects when the text report is styled.
type ColorMode string

const (
	// ColorAuto styles the report only when it goes to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles the report even when it is piped.
	ColorAlways ColorMode = "always"
	// ColorNever prints plain text.
	ColorNever ColorMode = "never"
)

const (
	longestLabel = "The longest compound word is"
	// subWordIndent prefixes every line of the sub-word list.
	subWordIndent = "    "
)

// Options controls a Writer.
type Options struct {
	Format Format
	Color  ColorMode
	// MaxWidth bounds the lines of the sub-word list. Zero disables wrapping.
	MaxWidth int
}

// Writer renders results to an output stream.
type Writer struct {
	out    io.Writer
	opts   Options
	styles styles
	width  int
}

// New returns a Writer rendering to out.
func New(out io.Writer, opts Options) *Writer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Color == "" {
		opts.Color = ColorAuto
	}
	return &Writer{
		out:    out,
		opts:   opts,
		styles: newStyles(out, useColor(opts.Color, out)),
		width:  lineWidth(opts.MaxWidth, out),
	}
}

// Write renders res in the configured format.
func (w *Writer) Write(res *analysis.Result) error {
	if w.opts.Format == FormatJSON {
		return w.writeJSON(res)
	}
	return w.writeText(res)
}

func (w *Writer) writeText(res *analysis.Result) error {
	s := w.styles
	var b strings.Builder

	fmt.Fprintf(&b, "Loaded %s words\n\n", s.value.Render(fmt.Sprint(res.Loaded)))

	if res.Found() {
		// the word is printed whole; only the sub-word list wraps
		word := res.Longest.Word
		fmt.Fprintf(&b, "%s '%s'\n\n", s.heading.Render(longestLabel), s.word.Render(word))
		fmt.Fprintf(&b, "%s\n", s.heading.Render(fmt.Sprintf("Sub-words of '%s':", word)))

		subWords := make([]string, len(res.Longest.SubWords))
		for i, sw := range res.Longest.SubWords {
			subWords[i] = s.subWord.Render(sw)
		}
		fmt.Fprintf(&b, "%s\n\n", util.WrapList(subWords, " ", subWordIndent, w.width))
	} else {
		fmt.Fprintf(&b, "%s\n\n", s.warning.Render("No compound words found"))
	}

	fmt.Fprintf(&b, "%s %s\n", s.label.Render("  Compound words:"), s.value.Render(fmt.Sprint(len(res.Compounds))))
	fmt.Fprintf(&b, "%s %s\n\n", s.label.Render("      Trie nodes:"), s.value.Render(fmt.Sprint(res.NodeCount)))

	fmt.Fprintf(&b, "%s %s ms\n", s.label.Render("Preparation time:"), s.value.Render(fmt.Sprint(res.PrepTime.Milliseconds())))
	fmt.Fprintf(&b, "%s %s ms\n", s.label.Render(" Processing time:"), s.value.Render(fmt.Sprint(res.ProcessTime.Milliseconds())))

	_, err := io.WriteString(w.out, b.String())
	return err
}

// jsonReport is the machine-readable form of a Result.
type jsonReport struct {
	Input         string       `json:"input,omitempty"`
	Loaded        int          `json:"loaded"`
	Skipped       int          `json:"skipped"`
	Distinct      int          `json:"distinct"`
	TrieNodes     int          `json:"trie_nodes"`
	CompoundCount int          `json:"compound_count"`
	Longest       *jsonLongest `json:"longest"`
	CollectMode   string       `json:"collect_mode"`
	Workers       int          `json:"workers"`
	PrepMS        int64        `json:"preparation_ms"`
	ProcessMS     int64        `json:"processing_ms"`
}

type jsonLongest struct {
	Word     string   `json:"word"`
	Segments []string `json:"segments"`
	SubWords []string `json:"sub_words"`
}

func (w *Writer) writeJSON(res *analysis.Result) error {
	rep := jsonReport{
		Input:         res.Input,
		Loaded:        res.Loaded,
		Skipped:       res.Skipped,
		Distinct:      res.Distinct,
		TrieNodes:     res.NodeCount,
		CompoundCount: len(res.Compounds),
		CollectMode:   string(res.CollectMode),
		Workers:       res.Workers,
		PrepMS:        res.PrepTime.Milliseconds(),
		ProcessMS:     res.ProcessTime.Milliseconds(),
	}
	if res.Found() {
		rep.Longest = &jsonLongest{
			Word:     res.Longest.Word,
			Segments: res.Longest.Segments,
			SubWords: res.Longest.SubWords,
		}
	}

	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// WriteCompounds writes words to path, one per line, replacing any
// existing file. Failures yield an *errors.OutputError matching
// errors.ErrOutputUnavailable.
func WriteCompounds(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewOutputError("cannot create output file", err).WithPath(path)
	}

	bw := bufio.NewWriter(f)
	for _, word := range words {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			_ = f.Close()
			return errors.NewOutputError("failed to write output file", err).WithPath(path)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return errors.NewOutputError("failed to write output file", err).WithPath(path)
	}
	if err := f.Close(); err != nil {
		return errors.NewOutputError("failed to close output file", err).WithPath(path)
	}
	return nil
}
