package pattern

import "regexp"

// Sequence-ID pattern names as reported in inspection records and the
// discover summary table.
const (
	IlluminaSeqidV2 = "IlluminaSeqidV2"
	IlluminaSeqidV1 = "IlluminaSeqidV1"
)

// seqidPatterns is the priority-ordered set of sequence-identifier header
// formats, newest first. The patterns anchor only at the start of the line:
// CASAVA headers may carry a trailing description.
var seqidPatterns = []Pattern{
	// Casava 1.8+ eleven-field header:
	// @instrument:run:flowcell:lane:tile:x:y read:filtered:control:index
	&regexPattern{
		name: IlluminaSeqidV2,
		re: regexp.MustCompile(`^@(?P<instrument>[a-zA-Z0-9_-]*)` +
			`:(?P<run_number>\d*)` +
			`:(?P<fcid>[a-zA-Z0-9]*)` +
			`:(?P<lane>\d*)` +
			`:(?P<tile>\d*)` +
			`:(?P<x_pos>\d*)` +
			`:(?P<y_pos>\d*)` +
			`\s(?P<read>\d*)` +
			`:(?P<is_filtered>[YN])` +
			`:(?P<control_number>\d*)` +
			`:(?P<barcode>[ACGTN+]*)`),
	},
	// Legacy pre-1.8 header:
	// @instrument:lane:tile:x:y#index/read
	&regexPattern{
		name: IlluminaSeqidV1,
		re: regexp.MustCompile(`^@(?P<instrument>[a-zA-Z0-9_-]*)` +
			`:(?P<lane>\d*)` +
			`:(?P<tile>\d*)` +
			`:(?P<x_pos>\d*)` +
			`:(?P<y_pos>\d*)` +
			`(?:#(?P<index_number>\d+)|(?P<barcode>[ACGTN]+))?` +
			`/(?P<read>\d)`),
	},
}

// MatchSeqID classifies the first line of a read file against the known
// sequence-identifier formats. An empty line, or one that does not start
// with the @ sigil, matches nothing and yields an empty pattern name.
func MatchSeqID(line string) (string, Fields) {
	if line == "" || line[0] != '@' {
		return "", nil
	}
	return FirstMatch(seqidPatterns, line)
}
