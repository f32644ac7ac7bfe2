package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/testgen/internal/errors"
)

const (
	javaExtension  = ".java"
	testFileSuffix = "Test.java"
	recursiveMark  = "/..."
)

// skippedDirs are never descended into during recursive scans
var skippedDirs = map[string]bool{
	".git":         true,
	"build":        true,
	"target":       true,
	"node_modules": true,
}

// SourceScanner expands command line arguments into Java source files.
// A file argument is taken as-is. A directory contributes its *.java files,
// and a "dir/..." pattern contributes every *.java file below dir.
// Files already named *Test.java are skipped when scanning directories.
type SourceScanner struct{}

// NewSourceScanner creates a new source scanner
func NewSourceScanner() *SourceScanner {
	return &SourceScanner{}
}

// Scan returns the de-duplicated, sorted list of source files named by args
func (s *SourceScanner) Scan(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		clean := filepath.Clean(path)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, clean)
		}
	}

	for _, arg := range args {
		if strings.HasSuffix(arg, recursiveMark) {
			base := strings.TrimSuffix(arg, recursiveMark)
			if base == "" {
				base = "."
			}
			found, err := s.walk(base)
			if err != nil {
				return nil, err
			}
			for _, f := range found {
				add(f)
			}
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.WrapFileSystemError("stat", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, errors.WrapFileSystemError("read directory", arg, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isSourceFile(entry.Name()) {
				add(filepath.Join(arg, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func (s *SourceScanner) walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (skippedDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if isSourceFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", root, err)
	}
	return files, nil
}

func isSourceFile(name string) bool {
	return strings.HasSuffix(name, javaExtension) && !strings.HasSuffix(name, testFileSuffix)
}
