package board

import (
	"sort"
	"strings"

	"github.com/commutedash/commutedash/internal/payload"
)

// defaultLineColour is used when the line name is not in the table.
const defaultLineColour = "#808080"

// lineColours holds the TfL published line colours, keyed by normalized
// (lowercase) line name. Static read-only data, safe to share.
var lineColours = map[string]string{
	"bakerloo":           "#B36305",
	"central":            "#E32017",
	"circle":             "#FFD300",
	"district":           "#00782A",
	"elizabeth line":     "#6950A1",
	"hammersmith & city": "#F3A9BB",
	"jubilee":            "#A0A5A9",
	"metropolitan":       "#9B0056",
	"northern":           "#000000",
	"piccadilly":         "#003688",
	"victoria":           "#0098D4",
	"waterloo & city":    "#95CDBA",
	"dlr":                "#00A4A7",
	"london overground":  "#EE7C0E",
	"overground":         "#EE7C0E",
	"tram":               "#84B817",
}

// Keyword tables for the severity tiers. Matched case-insensitively
// against status and reason text.
var (
	majorKeywords = []string{"major", "severe", "significant"}
	warnKeywords  = []string{"minor", "part", "planned", "closure", "reduced"}
)

var severityRank = map[string]int{
	SeverityMajor: 0,
	SeverityWarn:  1,
	SeverityGood:  2,
}

// Candidate key lists for mapping-shaped status entries. Different
// revisions of the TfL integration used different field names.
var (
	statusNameKeys   = [][]string{{"line"}, {"name"}, {"lineName"}}
	statusTextKeys   = [][]string{{"status"}, {"statusSeverityDescription"}, {"description"}}
	statusReasonKeys = [][]string{{"reason"}, {"statusReason"}, {"details"}}
)

// Free-text entries use one of these delimiters between name and status,
// tried in priority order.
var statusDelimiters = []string{":", " - ", "—"}

// NormalizeStatus converts one raw status entry, either a mapping with
// variant key names or a delimited free-text string, into a
// LineStatusRecord. The variant never leaves this function.
func NormalizeStatus(entry any) LineStatusRecord {
	var rec LineStatusRecord
	switch v := entry.(type) {
	case map[string]any:
		rec.Line = payload.String(v, "Unknown", statusNameKeys...)
		rec.Status = payload.String(v, "Unknown", statusTextKeys...)
		rec.Reason = payload.String(v, "", statusReasonKeys...)
	case string:
		rec.Line, rec.Status = splitStatusText(v)
	default:
		rec.Line, rec.Status = "Unknown", "Unknown"
	}
	if rec.Line == "" {
		rec.Line = "Unknown"
		if rec.Status == "" {
			rec.Status = "Unknown"
		}
	}
	rec.Severity = classifySeverity(rec.Status, rec.Reason)
	rec.Colour = lineColour(rec.Line)
	return rec
}

func splitStatusText(s string) (name, status string) {
	for _, delim := range statusDelimiters {
		if i := strings.Index(s, delim); i >= 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(delim):])
		}
	}
	return strings.TrimSpace(s), ""
}

func classifySeverity(status, reason string) string {
	text := strings.ToLower(status + " " + reason)
	for _, kw := range majorKeywords {
		if strings.Contains(text, kw) {
			return SeverityMajor
		}
	}
	for _, kw := range warnKeywords {
		if strings.Contains(text, kw) {
			return SeverityWarn
		}
	}
	return SeverityGood
}

func lineColour(name string) string {
	if c, ok := lineColours[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return defaultLineColour
}

// BuildStatusBoard normalizes the raw entries, stable-sorts them worst
// first and partitions them into issues and good-service lines with a
// one-line summary.
func BuildStatusBoard(entries []any) StatusBoard {
	lines := make([]LineStatusRecord, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, NormalizeStatus(e))
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return severityRank[lines[i].Severity] < severityRank[lines[j].Severity]
	})

	b := StatusBoard{Lines: lines}
	for _, l := range lines {
		if l.Severity == SeverityGood {
			b.Good = append(b.Good, l)
		} else {
			b.Issues = append(b.Issues, l)
		}
	}
	b.Summary = statusSummary(len(b.Issues), len(b.Good))
	return b
}

func statusSummary(issues, good int) string {
	switch {
	case issues == 0 && good == 0:
		return ""
	case issues == 0:
		return "Good service on all lines"
	case good == 0:
		return ""
	case good == 1:
		return "Good service on the other line"
	default:
		return "Good service on all other lines"
	}
}
