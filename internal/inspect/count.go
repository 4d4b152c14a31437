package inspect

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/tidyss/tidyss/internal/pattern"
)

// CountReads streams the whole file and reports the number of reads,
// assuming the standard four-lines-per-record FASTQ layout. Unlike Inspect
// this reads the entire file, so it only runs when explicitly requested.
func CountReads(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if pattern.IsGzipped(path) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return 0, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var lines int64
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines / 4, nil
}
