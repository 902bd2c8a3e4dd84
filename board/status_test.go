package board

import (
	"reflect"
	"testing"
)

func TestNormalizeStatus_FreeText(t *testing.T) {
	tests := []struct {
		raw          string
		wantLine     string
		wantStatus   string
		wantSeverity string
	}{
		{"Bakerloo: Minor Delays", "Bakerloo", "Minor Delays", SeverityWarn},
		{"Victoria - Good Service", "Victoria", "Good Service", SeverityGood},
		{"Central — Severe Delays", "Central", "Severe Delays", SeverityMajor},
		{"District", "District", "", SeverityGood},
	}
	for _, tt := range tests {
		got := NormalizeStatus(tt.raw)
		if got.Line != tt.wantLine || got.Status != tt.wantStatus || got.Severity != tt.wantSeverity {
			t.Errorf("NormalizeStatus(%q) = %+v, want line=%q status=%q severity=%q",
				tt.raw, got, tt.wantLine, tt.wantStatus, tt.wantSeverity)
		}
	}
}

func TestNormalizeStatus_ColonBeatsDash(t *testing.T) {
	got := NormalizeStatus("Jubilee: Part Closure - see posters")
	if got.Line != "Jubilee" || got.Status != "Part Closure - see posters" {
		t.Errorf("delimiter priority broken: %+v", got)
	}
}

func TestNormalizeStatus_MappingVariants(t *testing.T) {
	tests := []struct {
		name  string
		entry map[string]any
		want  LineStatusRecord
	}{
		{
			name:  "primary keys",
			entry: map[string]any{"line": "Victoria", "status": "Good Service", "reason": ""},
			want: LineStatusRecord{
				Line: "Victoria", Status: "Good Service",
				Severity: SeverityGood, Colour: "#0098D4",
			},
		},
		{
			name: "tfl raw keys",
			entry: map[string]any{
				"name":                      "Northern",
				"statusSeverityDescription": "Part Suspended",
				"statusReason":              "planned engineering works",
			},
			want: LineStatusRecord{
				Line: "Northern", Status: "Part Suspended", Reason: "planned engineering works",
				Severity: SeverityWarn, Colour: "#000000",
			},
		},
		{
			name:  "nothing resolvable",
			entry: map[string]any{},
			want: LineStatusRecord{
				Line: "Unknown", Status: "Unknown",
				Severity: SeverityGood, Colour: defaultLineColour,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStatus(tt.entry)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		status, reason, want string
	}{
		{"Major Delays", "", SeverityMajor},
		{"Special Service", "significant disruption expected", SeverityMajor},
		{"Minor Delays", "", SeverityWarn},
		{"Reduced Service", "", SeverityWarn},
		{"Planned Closure", "", SeverityWarn},
		{"Good Service", "", SeverityGood},
		{"Something Unrecognised", "", SeverityGood},
	}
	for _, tt := range tests {
		if got := classifySeverity(tt.status, tt.reason); got != tt.want {
			t.Errorf("classifySeverity(%q, %q) = %q, want %q", tt.status, tt.reason, got, tt.want)
		}
	}
}

func TestBuildStatusBoard_SortAndPartition(t *testing.T) {
	entries := []any{
		"Victoria - Good Service",
		"Bakerloo: Minor Delays",
		"Central: Severe Delays",
		"Circle: Minor Delays",
	}
	b := BuildStatusBoard(entries)

	var order []string
	for _, l := range b.Lines {
		order = append(order, l.Line)
	}
	want := []string{"Central", "Bakerloo", "Circle", "Victoria"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("sorted order = %v, want %v", order, want)
	}
	if len(b.Issues) != 3 || len(b.Good) != 1 {
		t.Errorf("partition = %d issues / %d good, want 3/1", len(b.Issues), len(b.Good))
	}
}

func TestBuildStatusBoard_SortIsStableAndIdempotent(t *testing.T) {
	entries := []any{
		"Bakerloo: Minor Delays",
		"Circle: Minor Delays",
		"District: Minor Delays",
	}
	first := BuildStatusBoard(entries)

	// Re-sorting the already-sorted list must not reorder equal tiers.
	var asEntries []any
	for _, l := range first.Lines {
		asEntries = append(asEntries, map[string]any{"line": l.Line, "status": l.Status, "reason": l.Reason})
	}
	second := BuildStatusBoard(asEntries)
	if !reflect.DeepEqual(first.Lines, second.Lines) {
		t.Errorf("sort not stable: %v != %v", first.Lines, second.Lines)
	}
}

func TestStatusSummary(t *testing.T) {
	tests := []struct {
		issues, good int
		want         string
	}{
		{0, 0, ""},
		{0, 5, "Good service on all lines"},
		{2, 0, ""},
		{2, 1, "Good service on the other line"},
		{2, 3, "Good service on all other lines"},
	}
	for _, tt := range tests {
		if got := statusSummary(tt.issues, tt.good); got != tt.want {
			t.Errorf("statusSummary(%d, %d) = %q, want %q", tt.issues, tt.good, got, tt.want)
		}
	}
}
