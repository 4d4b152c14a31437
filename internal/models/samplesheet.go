package models

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported sample-sheet serialization formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ReadGroup maps a read number ("1", "2") to the path of the file holding
// that read.
type ReadGroup map[string]string

// Sample is one sample's entry in the sheet: its name and the read groups
// discovered for it, keyed by "<fcid>.<lane>".
type Sample struct {
	Name       string               `yaml:"name" json:"name"`
	ReadGroups map[string]ReadGroup `yaml:"readgroups" json:"readgroups"`
}

// SampleSheet is the aggregate artifact produced by discovery: a mapping
// from sample name to sample entry. Both YAML and JSON marshalling sort map
// keys, so serialization is deterministic.
type SampleSheet struct {
	Samples map[string]*Sample `yaml:"samples" json:"samples"`
}

// NewSampleSheet returns an empty sheet.
func NewSampleSheet() *SampleSheet {
	return &SampleSheet{Samples: make(map[string]*Sample)}
}

// Collision describes two records competing for the same
// (sample, readgroup, read) slot in a sheet.
type Collision struct {
	Sample    string
	ReadGroup string
	Read      string
	Existing  string
	Incoming  string
}

// Fallbacks for records whose patterns did not yield a readgroup or read
// number. Single-lane, single-read data commonly omits both tokens.
const (
	unknownFCID = "unknown"
	defaultLane = "1"
	defaultRead = "1"
)

// BuildSampleSheet groups inspection records by sample name, then readgroup,
// then read number. Records without a sample name are skipped. When two
// records land in the same slot the later one wins and onCollision (if
// non-nil) is invoked with both paths, so callers can surface a warning.
func BuildSampleSheet(records []*Record, onCollision func(Collision)) *SampleSheet {
	sheet := NewSampleSheet()
	for _, rec := range records {
		sheet.Add(rec, onCollision)
	}
	return sheet
}

// Add inserts one record into the sheet. See BuildSampleSheet for the
// grouping and collision semantics.
func (s *SampleSheet) Add(rec *Record, onCollision func(Collision)) {
	if rec == nil || rec.Name == nil {
		return
	}
	name := *rec.Name

	sample, ok := s.Samples[name]
	if !ok {
		sample = &Sample{Name: name, ReadGroups: make(map[string]ReadGroup)}
		s.Samples[name] = sample
	}

	rgKey := StringValue(rec.ReadGroup, unknownFCID+"."+StringValue(rec.Lane, defaultLane))
	rg, ok := sample.ReadGroups[rgKey]
	if !ok {
		rg = make(ReadGroup)
		sample.ReadGroups[rgKey] = rg
	}

	read := StringValue(rec.Read, defaultRead)
	if existing, ok := rg[read]; ok && existing != rec.Path && onCollision != nil {
		onCollision(Collision{
			Sample:    name,
			ReadGroup: rgKey,
			Read:      read,
			Existing:  existing,
			Incoming:  rec.Path,
		})
	}
	rg[read] = rec.Path
}

// Merge copies samples from other that this sheet does not already define.
// Existing samples are never overwritten; this is the semantics behind
// appending freshly discovered samples to a hand-maintained sheet.
func (s *SampleSheet) Merge(other *SampleSheet) {
	if other == nil {
		return
	}
	for name, sample := range other.Samples {
		if _, ok := s.Samples[name]; !ok {
			s.Samples[name] = sample
		}
	}
}

// Marshal serializes the sheet in the requested format. An empty format
// defaults to YAML.
func (s *SampleSheet) Marshal(format string) ([]byte, error) {
	switch format {
	case "", FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "    ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported samplesheet format %q", format)
	}
}

// LoadSampleSheet reads and parses an existing sheet from path. An empty
// format defaults to YAML.
func LoadSampleSheet(path, format string) (*SampleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read samplesheet %s: %w", path, err)
	}

	sheet := NewSampleSheet()
	switch format {
	case "", FormatYAML:
		if err := yaml.Unmarshal(data, sheet); err != nil {
			return nil, fmt.Errorf("failed to parse samplesheet %s: %w", path, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, sheet); err != nil {
			return nil, fmt.Errorf("failed to parse samplesheet %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported samplesheet format %q", format)
	}

	if sheet.Samples == nil {
		sheet.Samples = make(map[string]*Sample)
	}
	return sheet, nil
}
