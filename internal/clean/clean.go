// Package clean removes the well-known test and packaging artifacts left
// behind by pytest, coverage, and setuptools.
package clean

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var cacheDirs = map[string]bool{
	"__pycache__":   true,
	".pytest_cache": true,
	"htmlcov":       true,
}

// Result lists what a cleanup pass did. Warnings are entries that could
// not be removed; they never fail the run.
type Result struct {
	Removed  []string
	Warnings []string
}

// Clean walks root and deletes matching artifacts. A missing root means
// there is nothing to clean. Idempotent: a second pass removes nothing.
func Clean(root string) (*Result, error) {
	res := &Result{}

	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return res, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", path, err))
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if name == ".git" {
				return fs.SkipDir
			}
			if cacheDirs[name] || strings.HasSuffix(name, ".egg-info") {
				if rmErr := os.RemoveAll(path); rmErr != nil {
					res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", path, rmErr))
				} else {
					res.Removed = append(res.Removed, path)
				}
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(name, ".pyc") || name == ".coverage" {
			if rmErr := os.Remove(path); rmErr != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", path, rmErr))
			} else {
				res.Removed = append(res.Removed, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("clean %s: %w", root, err)
	}

	return res, nil
}
