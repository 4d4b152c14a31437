package inspect

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const casavaRead = "@K01234:82:HXXXXXXXX:6:1101:2027:1068 1:N:0:NGATTACA\n" +
	"NACTGACTGACTGACTGACTGACTGACTGACT\n" +
	"+\n" +
	"AAFFFJJJJJJJJJJJJJJJJJJJJJJJJJJJ\n"

func writeFastq(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeFastqGz(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return path
}

func deref(t *testing.T, s *string) string {
	t.Helper()
	require.NotNil(t, s)
	return *s
}

func TestInspectPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFastq(t, dir, "sample1_R1.fastq", casavaRead)

	rec, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, path, rec.Path)
	assert.Equal(t, "sample1_R1.fastq", rec.Filename)
	assert.False(t, rec.Gzipped)
	assert.Equal(t, "IlluminaFastqFilename", deref(t, rec.FilenamePattern))
	assert.Equal(t, "IlluminaSeqidV2", deref(t, rec.SeqIDPattern))

	assert.Equal(t, "sample1", deref(t, rec.Name))
	assert.Equal(t, "1", deref(t, rec.Read))
	assert.Equal(t, "K01234", deref(t, rec.Instrument))
	assert.Equal(t, "82", deref(t, rec.RunNumber))
	assert.Equal(t, "HXXXXXXXX", deref(t, rec.FCID))
	assert.Equal(t, "6", deref(t, rec.Lane))
	assert.Equal(t, "N", deref(t, rec.IsFiltered))
	assert.Equal(t, "0", deref(t, rec.ControlNumber))
	assert.Equal(t, "NGATTACA", deref(t, rec.Barcode))

	// Readgroup is derived from fcid and lane outside any single pattern.
	assert.Equal(t, "HXXXXXXXX.6", deref(t, rec.ReadGroup))
}

func TestInspectGzippedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFastqGz(t, dir, "sample1_R2.fastq.gz", casavaRead)

	rec, err := Inspect(path)
	require.NoError(t, err)

	assert.True(t, rec.Gzipped)
	assert.Equal(t, "sample1", deref(t, rec.Name))
	// The filename read token wins over the header's read field, so the
	// R2 mate keeps read 2 even though its header says read 1.
	assert.Equal(t, "2", deref(t, rec.Read))
	assert.Equal(t, "HXXXXXXXX.6", deref(t, rec.ReadGroup))
}

func TestInspectHeaderLaneOverridesFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeFastq(t, dir, "s_L003_R1.fastq", casavaRead)

	rec, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "6", deref(t, rec.Lane))
}

func TestInspectEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFastq(t, dir, "empty.fastq", "")

	rec, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, "empty", deref(t, rec.Name))
	assert.Nil(t, rec.SeqID)
	assert.Nil(t, rec.SeqIDPattern)
	assert.Nil(t, rec.Instrument)
	assert.Nil(t, rec.ReadGroup)
}

func TestInspectNonFastqHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFastq(t, dir, "weird.fastq", ">chr1 not a fastq\nACGT\n")

	rec, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, ">chr1 not a fastq", deref(t, rec.SeqID))
	assert.Nil(t, rec.SeqIDPattern)
	assert.Nil(t, rec.FCID)
}

func TestInspectUnrecognizedFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeFastq(t, dir, "reads.txt", casavaRead)

	rec, err := Inspect(path)
	assert.Nil(t, rec)
	require.ErrorIs(t, err, ErrNotFastq)
}

func TestInspectMissingFile(t *testing.T) {
	rec, err := Inspect(filepath.Join(t.TempDir(), "gone.fastq"))
	require.Error(t, err)

	// The partial record still carries the filename classification so
	// best-effort callers can keep it.
	require.NotNil(t, rec)
	assert.Equal(t, "gone", deref(t, rec.Name))
	assert.Nil(t, rec.SeqIDPattern)
}

func TestInspectCorruptGzip(t *testing.T) {
	dir := t.TempDir()
	path := writeFastq(t, dir, "bad.fastq.gz", "this is not gzip data")

	rec, err := Inspect(path)
	require.Error(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.Gzipped)
	assert.Equal(t, "bad", deref(t, rec.Name))
	assert.Nil(t, rec.SeqIDPattern)
}

func TestInspectLegacyHeader(t *testing.T) {
	dir := t.TempDir()
	path := writeFastq(t, dir, "legacy.fastq", "@HWUSI-EAS100R:6:73:941:1973#0/1\nACGT\n+\nIIII\n")

	rec, err := Inspect(path)
	require.NoError(t, err)

	assert.Equal(t, "IlluminaSeqidV1", deref(t, rec.SeqIDPattern))
	assert.Equal(t, "HWUSI-EAS100R", deref(t, rec.Instrument))
	assert.Equal(t, "6", deref(t, rec.Lane))
	assert.Equal(t, "1", deref(t, rec.Read))
	// V1 headers carry no flow-cell ID, so no readgroup can be derived.
	assert.Nil(t, rec.FCID)
	assert.Nil(t, rec.ReadGroup)
}

func TestCountReads(t *testing.T) {
	dir := t.TempDir()
	content := casavaRead + casavaRead

	plain := writeFastq(t, dir, "two.fastq", content)
	n, err := CountReads(plain)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	gz := writeFastqGz(t, dir, "two.fastq.gz", content)
	n, err = CountReads(gz)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCountReadsMissing(t *testing.T) {
	_, err := CountReads(filepath.Join(t.TempDir(), "gone.fastq"))
	assert.Error(t, err)
}
