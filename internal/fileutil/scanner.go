package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// DefaultExtensions are the filename suffixes recognized as FASTQ files.
// Matching is against the full suffix, not filepath.Ext, since gzipped
// FASTQ files carry a double extension.
var DefaultExtensions = []string{".fastq", ".fastq.gz", ".fq", ".fq.gz"}

// ScanOptions configures the directory scanning behavior.
type ScanOptions struct {
	// Filter is an optional regex applied to the full path of each
	// candidate; non-matching paths are skipped.
	Filter *regexp.Regexp
	// ExtraExtensions extends DefaultExtensions with additional suffixes.
	ExtraExtensions []string
}

// ScanResult contains the results of a directory scan.
type ScanResult struct {
	// Files contains the absolute paths of all candidate files, sorted
	// lexicographically.
	Files []string
	// Errors contains per-path errors encountered while walking; the scan
	// continues past them.
	Errors []error
}

// IsCandidate reports whether the filename carries a recognized FASTQ
// suffix. Comparison is case-insensitive.
func IsCandidate(filename string, extra []string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range DefaultExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	for _, ext := range extra {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ScanDirectory walks root and collects candidate FASTQ files. Hidden
// directories are skipped. A root that is itself a candidate file is
// accepted and returned as the single result. Walk errors on individual
// entries are collected and do not abort the scan; only an unusable root is
// a hard error.
func ScanDirectory(root string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	if !info.IsDir() {
		if !IsCandidate(filepath.Base(root), opts.ExtraExtensions) {
			return nil, fmt.Errorf("not a fastq file: %s", root)
		}
		absPath, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", root, err)
		}
		if opts.Filter == nil || opts.Filter.MatchString(absPath) {
			result.Files = append(result.Files, absPath)
		}
		return result, nil
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil // Continue walking
		}

		if path == root {
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsCandidate(d.Name(), opts.ExtraExtensions) {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("failed to resolve path %s: %w", path, err))
			return nil
		}

		if opts.Filter != nil && !opts.Filter.MatchString(absPath) {
			return nil
		}

		result.Files = append(result.Files, absPath)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	// Sort for deterministic discovery order
	sort.Strings(result.Files)

	return result, nil
}
