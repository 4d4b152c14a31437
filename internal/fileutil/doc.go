// Package fileutil provides directory scanning for FASTQ discovery:
// recursive traversal, extension filtering, optional regex path filtering,
// and deterministic (sorted) result ordering.
package fileutil
