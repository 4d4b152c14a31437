package pattern

import "regexp"

// Filename pattern names as reported in inspection records and the
// discover summary table.
const (
	IlluminaFastqFilename = "IlluminaFastqFilename"
	FastqFilename         = "FastqFilename"
)

// filenamePatterns is the priority-ordered set of filename conventions,
// most specific first.
var filenamePatterns = []Pattern{
	// Illumina bcl2fastq-style naming: sample name, then optional barcode,
	// optional lane and set/segment tokens around a mandatory read token.
	&regexPattern{
		name: IlluminaFastqFilename,
		re: regexp.MustCompile(`^(?P<name>.+?)` +
			`(?:_(?P<barcode>[ACGTN]{3,30}))?` +
			`(?:_(?P<lane>L\d{3}))?` +
			`_(?P<read>R\d)` +
			`(?:_(?P<set>\d{3}))?` +
			`(?P<extension>\.fastq|\.fq)(?P<gz>\.gz)?$`),
	},
	// Generic fallback: anything with a recognized FASTQ extension. The
	// whole basename minus the extension becomes the sample name.
	&regexPattern{
		name: FastqFilename,
		re:   regexp.MustCompile(`^(?P<name>.*?)(?P<extension>\.fastq|\.fq)(?P<gz>\.gz)?$`),
	},
}

// MatchFilename classifies a bare filename (no directory components) against
// the known naming conventions. It returns the name of the first matching
// pattern and its extracted fields, or an empty name when the filename does
// not look like a FASTQ file at all.
func MatchFilename(filename string) (string, Fields) {
	return FirstMatch(filenamePatterns, filename)
}
