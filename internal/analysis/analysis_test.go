package analysis_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iron-Ham/compoundword/internal/analysis"
	"github.com/Iron-Ham/compoundword/internal/errors"
	"github.com/Iron-Ham/compoundword/internal/logging"
	"github.com/Iron-Ham/compoundword/internal/resolver"
	"github.com/Iron-Ham/compoundword/internal/testutil"
	"github.com/Iron-Ham/compoundword/internal/wordlist"
)

func list(words ...string) *wordlist.List {
	l, err := wordlist.Read(strings.NewReader(strings.Join(words, "\n")), wordlist.Options{})
	if err != nil {
		panic(err)
	}
	return l
}

func TestRunList_CatDog(t *testing.T) {
	res, err := analysis.RunList(context.Background(), list("cat", "dog", "catdog"), analysis.Config{})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Loaded)
	assert.Equal(t, []string{"catdog"}, res.Compounds)
	require.True(t, res.Found())
	assert.Equal(t, "catdog", res.Longest.Word)
	assert.Equal(t, []string{"cat", "dog"}, res.Longest.SubWords)
	assert.Equal(t, resolver.CollectAll, res.CollectMode)
	assert.Positive(t, res.Workers)
}

func TestRunList_EmptyDictionary(t *testing.T) {
	res, err := analysis.RunList(context.Background(), list(), analysis.Config{Workers: 2})
	require.NoError(t, err)

	assert.Zero(t, res.Loaded)
	assert.Empty(t, res.Compounds)
	assert.False(t, res.Found())
	assert.Equal(t, 1, res.NodeCount)
}

func TestRunList_NoCompounds(t *testing.T) {
	res, err := analysis.RunList(context.Background(), list("apple", "banana", "cherry"), analysis.Config{})
	require.NoError(t, err)

	assert.Empty(t, res.Compounds)
	assert.False(t, res.Found())
	assert.Equal(t, "", res.Longest.Word)
}

func TestRunList_TieGoesToFirstInSortedOrder(t *testing.T) {
	// "abab" and "baba" are both four letters long
	for _, workers := range []int{1, 2, 8} {
		res, err := analysis.RunList(context.Background(),
			list("baba", "abab", "ab", "ba"),
			analysis.Config{Workers: workers})
		require.NoError(t, err)

		assert.Equal(t, []string{"abab", "baba"}, res.Compounds, "workers=%d", workers)
		assert.Equal(t, "abab", res.Longest.Word, "workers=%d", workers)
	}
}

func TestRunList_DuplicatesKept(t *testing.T) {
	res, err := analysis.RunList(context.Background(),
		list("cat", "dog", "catdog", "catdog"),
		analysis.Config{})
	require.NoError(t, err)

	assert.Equal(t, []string{"catdog", "catdog"}, res.Compounds)
	assert.Equal(t, 4, res.Loaded)
	assert.Equal(t, 3, res.Distinct)
}

func TestRunList_ParallelMatchesSequential(t *testing.T) {
	var words []string
	for _, a := range []string{"a", "b", "ab", "ba", "abc", "c", "ca", "bc"} {
		for _, b := range []string{"", "a", "b", "ab", "ba", "abc", "c", "ca", "bc", "cab"} {
			for _, c := range []string{"", "a", "cc", "bab"} {
				for _, d := range []string{"", "b", "ca"} {
					words = append(words, a+b+c+d)
				}
			}
		}
	}
	l := list(words...)
	require.Greater(t, l.Len(), 512)

	seq, err := analysis.RunList(context.Background(), l, analysis.Config{Workers: 1})
	require.NoError(t, err)
	par, err := analysis.RunList(context.Background(), l, analysis.Config{Workers: 7})
	require.NoError(t, err)

	assert.Equal(t, seq.Compounds, par.Compounds)
	assert.Equal(t, seq.Longest, par.Longest)
}

func TestRunList_CollectMode(t *testing.T) {
	res, err := analysis.RunList(context.Background(),
		list("a", "b", "ab", "abab"),
		analysis.Config{CollectMode: resolver.CollectPath})
	require.NoError(t, err)

	assert.Equal(t, "abab", res.Longest.Word)
	assert.Equal(t, []string{"ab"}, res.Longest.SubWords)
	assert.Equal(t, resolver.CollectPath, res.CollectMode)
}

func TestRunList_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analysis.RunList(ctx, list("cat", "dog", "catdog"), analysis.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunList_LogsDecompositionAtDebug(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
	}{
		{logging.LevelDebug, true},
		{logging.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := analysis.Config{
				CollectMode: resolver.CollectPath,
				Logger:      logging.NewWriterLogger(&buf, tt.level),
			}
			_, err := analysis.RunList(context.Background(), list("cat", "dog", "catdog"), cfg)
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, `"msg":"words resolved"`)
			assert.Contains(t, out, `"collect_mode":"path"`)
			if tt.wantDebug {
				assert.Contains(t, out, `"segments":"cat+dog"`)
			} else {
				assert.NotContains(t, out, "longest compound word decomposed")
			}
		})
	}
}

func TestRun_FromFile(t *testing.T) {
	path := testutil.WriteWordFile(t, "words.txt", "Dog", "cat", "", "cat-dog", "hippo", "potamus", "hippopotamus")

	res, err := analysis.Run(context.Background(), path, analysis.Config{})
	require.NoError(t, err)

	assert.Equal(t, path, res.Input)
	assert.Equal(t, 6, res.Loaded)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []string{"catdog", "hippopotamus"}, res.Compounds)
	assert.Equal(t, "hippopotamus", res.Longest.Word)
	assert.Equal(t, []string{"hippo", "potamus"}, res.Longest.Segments)
}

func TestRun_MissingInput(t *testing.T) {
	_, err := analysis.Run(context.Background(), t.TempDir()+"/missing.txt", analysis.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInputUnavailable)

	var dictErr *errors.DictionaryError
	require.True(t, errors.As(err, &dictErr))
	assert.Contains(t, dictErr.Path, "missing.txt")
}
