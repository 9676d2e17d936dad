// Package fs provides file-based input listing and output storage.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/splice"
)

// Ensure Source implements splice.DocumentSource at compile time.
var _ splice.DocumentSource = (*Source)(nil)

// Extensions lists the file extensions Source treats as input documents.
var Extensions = []string{".htm", ".html", ".xhtml"}

// Source lists input documents from a file or a directory.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// List returns path itself when it is a file. For a directory it returns
// the markup files it holds, ordered by SortFiles.
func (s *Source) List(ctx context.Context, path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, splice.Errorf(splice.ENOTFOUND, "input %q not found", path)
	} else if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !isMarkup(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, splice.Errorf(splice.ENOTFOUND, "no markup files in %q", path)
	}

	names = SortFiles(names)
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(path, name)
	}
	return paths, nil
}

// Open opens a listed input file.
func (s *Source) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, splice.Errorf(splice.ENOTFOUND, "input %q not found", path)
	}
	return f, err
}

// SortFiles orders file names by the numeric value of their leading run of
// decimal digits. Names without leading digits sort after all numbered
// names. Ties keep their original order. The input slice is not modified.
func SortFiles(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessKey(LeadingDigits(sorted[i]), LeadingDigits(sorted[j]))
	})
	return sorted
}

// LeadingDigits returns the leading run of decimal digits of name, or ""
// if name does not start with a digit.
func LeadingDigits(name string) string {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	return name[:i]
}

// lessKey compares two digit runs numerically without overflowing.
// The empty key sorts last.
func lessKey(a, b string) bool {
	switch {
	case a == "":
		return false
	case b == "":
		return true
	}
	a, b = strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isMarkup(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
