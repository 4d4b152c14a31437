package pattern

import "testing"

func TestMatchFilename(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantPattern string
		wantFields  map[string]string
	}{
		{
			name:        "full illumina name",
			filename:    "sample1_NACTGACG_L006_R2_001.fastq.gz",
			wantPattern: IlluminaFastqFilename,
			wantFields: map[string]string{
				"name":    "sample1",
				"barcode": "NACTGACG",
				"lane":    "L006",
				"read":    "R2",
				"set":     "001",
			},
		},
		{
			name:        "illumina name without lane and set",
			filename:    "sample1_R1.fastq.gz",
			wantPattern: IlluminaFastqFilename,
			wantFields: map[string]string{
				"name": "sample1",
				"read": "R1",
			},
		},
		{
			name:        "illumina name with lane and set, uncompressed",
			filename:    "tumor_L001_R1_001.fq",
			wantPattern: IlluminaFastqFilename,
			wantFields: map[string]string{
				"name": "tumor",
				"lane": "L001",
				"read": "R1",
				"set":  "001",
			},
		},
		{
			name:        "underscores in sample name",
			filename:    "my_deep_sample_R2.fastq",
			wantPattern: IlluminaFastqFilename,
			wantFields: map[string]string{
				"name": "my_deep_sample",
				"read": "R2",
			},
		},
		{
			name:        "generic fallback",
			filename:    "mysample.fastq",
			wantPattern: FastqFilename,
			wantFields:  map[string]string{"name": "mysample"},
		},
		{
			name:        "generic fallback keeps underscores without read token",
			filename:    "my_sample.fq.gz",
			wantPattern: FastqFilename,
			wantFields:  map[string]string{"name": "my_sample"},
		},
		{
			name:        "unrecognized extension",
			filename:    "reads.txt",
			wantPattern: "",
		},
		{
			name:        "no extension at all",
			filename:    "reads",
			wantPattern: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPattern, gotFields := MatchFilename(tt.filename)
			if gotPattern != tt.wantPattern {
				t.Fatalf("MatchFilename(%q) pattern = %q, want %q", tt.filename, gotPattern, tt.wantPattern)
			}
			for key, want := range tt.wantFields {
				if got := gotFields.Get(key); got != want {
					t.Errorf("field %q = %q, want %q", key, got, want)
				}
			}
		})
	}
}

func TestMatchFilenameAbsentFieldsAreEmpty(t *testing.T) {
	_, fields := MatchFilename("sample1_R1.fastq.gz")
	for _, key := range []string{"barcode", "lane", "set"} {
		if got := fields.Get(key); got != "" {
			t.Errorf("field %q = %q, want empty", key, got)
		}
	}
}

func TestIsGzipped(t *testing.T) {
	if !IsGzipped("a.fastq.gz") {
		t.Error("a.fastq.gz should be gzipped")
	}
	if IsGzipped("a.fastq") {
		t.Error("a.fastq should not be gzipped")
	}
	// The gzip flag is independent of which pattern matched
	if !IsGzipped("whatever.gz") {
		t.Error("whatever.gz should be gzipped")
	}
}

func TestNormalizeTokens(t *testing.T) {
	tests := []struct {
		in, lane, read string
	}{
		{"L001", "1", ""},
		{"L012", "12", ""},
		{"R1", "", "1"},
		{"R2", "", "2"},
	}
	for _, tt := range tests {
		if tt.lane != "" {
			if got := NormalizeLane(tt.in); got != tt.lane {
				t.Errorf("NormalizeLane(%q) = %q, want %q", tt.in, got, tt.lane)
			}
		}
		if tt.read != "" {
			if got := NormalizeRead(tt.in); got != tt.read {
				t.Errorf("NormalizeRead(%q) = %q, want %q", tt.in, got, tt.read)
			}
		}
	}

	if got := NormalizeLane("L000"); got != "0" {
		t.Errorf("NormalizeLane(L000) = %q, want 0", got)
	}
}

func TestReadGroupKey(t *testing.T) {
	if got := ReadGroupKey("HXXXXXXXX", "6"); got != "HXXXXXXXX.6" {
		t.Errorf("ReadGroupKey = %q, want HXXXXXXXX.6", got)
	}
	if got := ReadGroupKey("", "6"); got != "" {
		t.Errorf("ReadGroupKey without fcid = %q, want empty", got)
	}
	if got := ReadGroupKey("HX", ""); got != "" {
		t.Errorf("ReadGroupKey without lane = %q, want empty", got)
	}
}
