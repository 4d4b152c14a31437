// Package models defines the data types shared across tidyss: the flat
// per-file inspection record and the aggregated sample sheet.
package models

// Record is the flat result of inspecting one FASTQ file. Path, Filename and
// Gzipped are always populated; the remaining fields are pointers so that
// attributes the matched patterns did not extract serialize as explicit
// nulls. Fields are declared in alphabetical order of their serialized keys
// so marshalled documents come out key-sorted.
//
// Records are built once by the inspector and never mutated afterwards.
type Record struct {
	Barcode         *string `yaml:"barcode" json:"barcode"`
	ControlNumber   *string `yaml:"control_number" json:"control_number"`
	FCID            *string `yaml:"fcid" json:"fcid"`
	Filename        string  `yaml:"filename" json:"filename"`
	FilenamePattern *string `yaml:"filename_pattern" json:"filename_pattern"`
	Gzipped         bool    `yaml:"gzipped" json:"gzipped"`
	Instrument      *string `yaml:"instrument" json:"instrument"`
	IsFiltered      *string `yaml:"is_filtered" json:"is_filtered"`
	Lane            *string `yaml:"lane" json:"lane"`
	Name            *string `yaml:"name" json:"name"`
	Path            string  `yaml:"path" json:"path"`
	Read            *string `yaml:"read" json:"read"`
	ReadGroup       *string `yaml:"readgroup" json:"readgroup"`
	Reads           *int64  `yaml:"reads,omitempty" json:"reads,omitempty"`
	RunNumber       *string `yaml:"run_number" json:"run_number"`
	SeqID           *string `yaml:"seqid" json:"seqid"`
	SeqIDPattern    *string `yaml:"seqid_pattern" json:"seqid_pattern"`
	Set             *string `yaml:"set" json:"set"`
	Tile            *string `yaml:"tile" json:"tile"`
	XPos            *string `yaml:"x_pos" json:"x_pos"`
	YPos            *string `yaml:"y_pos" json:"y_pos"`
}

// StringValue dereferences an optional field, returning fallback when the
// field is absent.
func StringValue(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
