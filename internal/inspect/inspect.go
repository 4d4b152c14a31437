// Package inspect composes the filename and sequence-ID matchers: it opens a
// candidate FASTQ file, reads only its first line, and produces one flat
// inspection record with everything both matchers extracted plus provenance.
package inspect

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidyss/tidyss/internal/models"
	"github.com/tidyss/tidyss/internal/pattern"
)

// ErrNotFastq marks a path whose filename matches no FASTQ naming pattern,
// not even the generic fallback.
var ErrNotFastq = errors.New("filename does not match any fastq pattern")

// Inspect classifies the file at path. The returned record always carries
// path, filename, gzip flag and the filename classification. When the file
// cannot be opened or decompressed, the partial record is returned together
// with the error so best-effort callers can keep it while fail-fast callers
// abort.
func Inspect(path string) (*models.Record, error) {
	filename := filepath.Base(path)

	patName, fields := pattern.MatchFilename(filename)
	if patName == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFastq)
	}

	rec := &models.Record{
		Path:            path,
		Filename:        filename,
		Gzipped:         pattern.IsGzipped(filename),
		FilenamePattern: ptr(patName),
	}
	applyFilenameFields(rec, fields)

	line, err := firstLine(path, rec.Gzipped)
	if err != nil {
		return rec, fmt.Errorf("failed to read first line of %s: %w", path, err)
	}
	applySeqID(rec, line)

	return rec, nil
}

// applyFilenameFields copies the filename matcher's captures onto the
// record, normalizing lane and read tokens to their bare numeric form.
func applyFilenameFields(rec *models.Record, fields pattern.Fields) {
	setField(&rec.Name, fields.Get("name"))
	setField(&rec.Barcode, fields.Get("barcode"))
	setField(&rec.Set, fields.Get("set"))
	if lane := fields.Get("lane"); lane != "" {
		rec.Lane = ptr(pattern.NormalizeLane(lane))
	}
	if read := fields.Get("read"); read != "" {
		rec.Read = ptr(pattern.NormalizeRead(read))
	}
}

// applySeqID classifies the first line and merges the result onto the
// record. Lane from the header overrides the filename lane (the header is
// authoritative for run geometry); the read number from the filename is
// kept when present, since paired files are distinguished by name. The
// readgroup is derived here, outside any single pattern, so every header
// format shares the computation.
func applySeqID(rec *models.Record, line string) {
	setField(&rec.SeqID, line)

	patName, fields := pattern.MatchSeqID(line)
	if patName == "" {
		return
	}
	rec.SeqIDPattern = ptr(patName)

	setField(&rec.Instrument, fields.Get("instrument"))
	setField(&rec.RunNumber, fields.Get("run_number"))
	setField(&rec.FCID, fields.Get("fcid"))
	setField(&rec.Tile, fields.Get("tile"))
	setField(&rec.XPos, fields.Get("x_pos"))
	setField(&rec.YPos, fields.Get("y_pos"))
	setField(&rec.IsFiltered, fields.Get("is_filtered"))
	setField(&rec.ControlNumber, fields.Get("control_number"))
	if rec.Barcode == nil {
		setField(&rec.Barcode, fields.Get("barcode"))
	}
	if lane := fields.Get("lane"); lane != "" {
		rec.Lane = ptr(lane)
	}
	if rec.Read == nil {
		setField(&rec.Read, fields.Get("read"))
	}

	if key := pattern.ReadGroupKey(models.StringValue(rec.FCID, ""), models.StringValue(rec.Lane, "")); key != "" {
		rec.ReadGroup = ptr(key)
	}
}

// firstLine reads exactly one line from the file, decompressing when the
// filename says the content is gzipped. The file is closed before returning
// regardless of outcome. An empty file yields an empty line and no error.
func firstLine(path string, gzipped bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	if gzipped {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", err
		}
		defer gz.Close()
		r = gz
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func setField(dst **string, value string) {
	if value != "" {
		*dst = ptr(value)
	}
}

func ptr(s string) *string { return &s }
