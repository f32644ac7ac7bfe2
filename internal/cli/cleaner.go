package cli

import (
	"bytes"
	"os"

	"github.com/toyz/testgen/internal/errors"
)

// Cleaner removes generated test files that still match what would be generated today.
// Files that were edited after generation are left alone.
type Cleaner struct {
	scanner   *SourceScanner
	generator ClassGenerator
}

// NewCleaner creates a new cleaner
func NewCleaner(gen ClassGenerator) *Cleaner {
	return &Cleaner{
		scanner:   NewSourceScanner(),
		generator: gen,
	}
}

// CleanGeneratedFiles removes unmodified generated tests for the sources named by inputs.
// It returns the removed paths and the paths that were kept because they differ.
func (c *Cleaner) CleanGeneratedFiles(inputs []string, outDir string) (removed, kept []string, err error) {
	files, err := c.scanner.Scan(inputs)
	if err != nil {
		return nil, nil, err
	}

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return removed, kept, errors.WrapFileSystemError("read", path, err)
		}

		result, err := c.generator.GenerateClass(string(source))
		if err != nil {
			// nothing could have been generated from this source
			continue
		}

		target := OutputPath(path, result, outDir)
		existing, err := os.ReadFile(target)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, kept, errors.WrapFileSystemError("read", target, err)
		}

		if !bytes.Equal(existing, []byte(result.Output)) {
			kept = append(kept, target)
			continue
		}

		if err := os.Remove(target); err != nil {
			return removed, kept, errors.WrapFileSystemError("remove", target, err)
		}
		removed = append(removed, target)
	}

	return removed, kept, nil
}
