package wordlist

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/compoundword/internal/errors"
	"github.com/Iron-Ham/compoundword/internal/testutil"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "cat", "cat"},
		{"uppercase folded", "CatDog", "catdog"},
		{"carriage return dropped", "cat\r", "cat"},
		{"punctuation dropped", "don't", "dont"},
		{"inner space dropped", "ice cream", "icecream"},
		{"digits dropped", "r2d2", "rd"},
		{"non ascii dropped", "caf\xc3\xa9", "caf"},
		{"only junk", "123 -!", ""},
		{"empty", "", ""},
		{"bracket neighbours", "[`@{", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize([]byte(tt.in)); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	input := "dog\r\nCat\n\n  \ncatdog\ncat\n123\n"

	list, err := Read(strings.NewReader(input), Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	want := []string{"cat", "cat", "catdog", "dog"}
	if strings.Join(list.Words, ",") != strings.Join(want, ",") {
		t.Errorf("Words = %v, want %v", list.Words, want)
	}
	if list.Len() != 4 {
		t.Errorf("Len() = %d, want 4", list.Len())
	}
	if list.Lines != 7 {
		t.Errorf("Lines = %d, want 7", list.Lines)
	}
	if list.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", list.Skipped)
	}
}

func TestRead_NoTrailingNewline(t *testing.T) {
	list, err := Read(strings.NewReader("b\na"), Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if strings.Join(list.Words, ",") != "a,b" {
		t.Errorf("Words = %v, want [a b]", list.Words)
	}
}

func TestRead_Empty(t *testing.T) {
	list, err := Read(strings.NewReader(""), Options{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if list.Words == nil || len(list.Words) != 0 {
		t.Errorf("Words = %#v, want empty non-nil slice", list.Words)
	}
}

func TestRead_LongLines(t *testing.T) {
	long := strings.Repeat("a", 4096)

	t.Run("accepted beyond the original 128 byte buffer", func(t *testing.T) {
		list, err := Read(strings.NewReader(long+"\n"), Options{})
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if len(list.Words) != 1 || list.Words[0] != long {
			t.Errorf("expected the long word to be loaded intact")
		}
	})

	t.Run("rejected above the configured limit", func(t *testing.T) {
		_, err := Read(strings.NewReader("ok\n"+long+"\n"), Options{MaxLineBytes: 1024})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, errors.ErrLineTooLong) {
			t.Errorf("expected ErrLineTooLong, got %v", err)
		}
		if !errors.Is(err, errors.ErrInputUnavailable) {
			t.Errorf("expected ErrInputUnavailable, got %v", err)
		}
		var dictErr *errors.DictionaryError
		if !errors.As(err, &dictErr) || dictErr.Line != 2 {
			t.Errorf("expected DictionaryError at line 2, got %v", err)
		}
	})
}

func TestLoad(t *testing.T) {
	path := testutil.WriteWordFile(t, "words.txt", "Zebra", "apple", "mango")

	list, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if strings.Join(list.Words, ",") != "apple,mango,zebra" {
		t.Errorf("Words = %v", list.Words)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Load(path, Options{})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, errors.ErrInputUnavailable) {
		t.Errorf("expected ErrInputUnavailable, got %v", err)
	}
	var dictErr *errors.DictionaryError
	if !errors.As(err, &dictErr) {
		t.Fatalf("expected *DictionaryError, got %T", err)
	}
	if dictErr.Path != path {
		t.Errorf("Path = %q, want %q", dictErr.Path, path)
	}
	if !errors.IsFatal(err) {
		t.Error("a missing dictionary must be fatal")
	}
}
