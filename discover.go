package fundholdings

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// FundFiles groups discovered snapshot files by fund identifier, preserving
// the order in which funds first appear.
type FundFiles struct {
	codes []string
	files map[string][]string
}

// Codes returns the fund identifiers in discovery order.
func (f *FundFiles) Codes() []string { return f.codes }

// Files returns the snapshot files of one fund, in discovery order.
func (f *FundFiles) Files(code string) []string { return f.files[code] }

func (f *FundFiles) add(code, path string) {
	if _, ok := f.files[code]; !ok {
		f.codes = append(f.codes, code)
	}
	f.files[code] = append(f.files[code], path)
}

// DiscoverFunds scans a directory of snapshot files and groups them by fund
// identifier. The identifier is the second underscore-delimited token of the
// file name (e.g. "fund_000001_20230930.csv"). A file name without at least
// two tokens is skipped with a diagnostic; it never aborts the run.
//
// An error is returned only when no usable input exists at all: either the
// directory holds no CSV files, or no file name is parseable.
func DiscoverFunds(dir string) (*FundFiles, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot directory %q: %w", dir, err)
	}

	ff := &FundFiles{files: make(map[string][]string)}
	found := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}
		found++
		tokens := strings.Split(name, "_")
		if len(tokens) < 2 {
			log.Printf("skipping %s: file name does not contain a fund identifier", name)
			continue
		}
		ff.add(tokens[1], filepath.Join(dir, name))
	}

	if found == 0 {
		return nil, fmt.Errorf("no snapshot files found in %q", dir)
	}
	if len(ff.codes) == 0 {
		return nil, fmt.Errorf("no parseable snapshot file names in %q", dir)
	}
	return ff, nil
}
