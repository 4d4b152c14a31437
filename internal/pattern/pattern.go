// Package pattern classifies FASTQ filenames and sequence-identifier lines
// against priority-ordered naming conventions and extracts named fields from
// the first convention that matches.
//
// Patterns are tried most specific first; the first match wins. Failing to
// match any pattern is an expected classification outcome, not an error.
package pattern

import (
	"regexp"
	"strings"
)

// Fields holds the named capture groups extracted by one pattern match.
// Captures that matched the empty string are omitted.
type Fields map[string]string

// Get returns the value for key, or the empty string if the field is absent.
func (f Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}

// Pattern is a named matching rule. TryMatch reports whether the input
// conforms to the rule and, if so, the fields extracted from it.
// Extraction only happens on a confirmed match.
type Pattern interface {
	Name() string
	TryMatch(input string) (Fields, bool)
}

// regexPattern implements Pattern with a compiled regular expression
// using named capture groups.
type regexPattern struct {
	name string
	re   *regexp.Regexp
}

func (p *regexPattern) Name() string { return p.name }

func (p *regexPattern) TryMatch(input string) (Fields, bool) {
	m := p.re.FindStringSubmatch(input)
	if m == nil {
		return nil, false
	}

	fields := make(Fields)
	for i, name := range p.re.SubexpNames() {
		if name == "" || m[i] == "" {
			continue
		}
		fields[name] = m[i]
	}
	return fields, true
}

// FirstMatch tries each pattern in order and returns the name and fields of
// the first one that matches. If none match it returns an empty name and nil
// fields.
func FirstMatch(patterns []Pattern, input string) (string, Fields) {
	for _, p := range patterns {
		if fields, ok := p.TryMatch(input); ok {
			return p.Name(), fields
		}
	}
	return "", nil
}

// IsGzipped reports whether the filename carries a gzip suffix. This is
// derived independently of which naming pattern matched, so every convention
// shares a single definition.
func IsGzipped(filename string) bool {
	return strings.HasSuffix(filename, ".gz")
}

// ReadGroupKey derives the read-group key from a flow-cell ID and lane.
// Returns the empty string unless both parts are known.
func ReadGroupKey(fcid, lane string) string {
	if fcid == "" || lane == "" {
		return ""
	}
	return fcid + "." + lane
}

// NormalizeLane converts a filename lane token such as "L001" to its bare
// numeric form ("1"), matching the form carried by sequence-ID headers.
// Bare digit input is normalized the same way.
func NormalizeLane(token string) string {
	return stripZeros(strings.TrimPrefix(token, "L"))
}

// NormalizeRead converts a filename read token such as "R2" to its bare
// numeric form ("2").
func NormalizeRead(token string) string {
	return stripZeros(strings.TrimPrefix(token, "R"))
}

func stripZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" && s != "" {
		return "0"
	}
	return trimmed
}
