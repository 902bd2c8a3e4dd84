package board

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/commutedash/commutedash/internal/payload"
)

// rolloverGrace is how far in the past a parsed HH:MM may fall before it is
// taken to mean the next calendar day. Upstream text values are not
// contractually enumerable, so this and the sentinel lists below are plain
// constants rather than invariants.
const rolloverGrace = 5 * time.Minute

// Expected-time texts that mean "no due time can be derived".
var noTimeSentinels = map[string]bool{
	"cancelled": true,
	"no report": true,
}

// Expected-time texts that carry status only; the scheduled time remains
// the due-in reference.
var statusOnlySentinels = map[string]bool{
	"on time": true,
	"due":     true,
	"delayed": true,
	"":        true,
}

// likelyPlatforms maps well-known destinations to the platform they almost
// always leave from, used when the feed omits the platform.
var likelyPlatforms = map[string]string{
	"Sutton":          "4",
	"Sutton (London)": "4",
	"Orpington":       "3",
	"London Victoria": "2",
	"St Albans":       "1",
	"St Albans City":  "1",
}

// Candidate paths per field: the feed namespaces the same elements under
// either the lt4 or lt5 prefix depending on schema revision.
var (
	stdPaths      = [][]string{{"lt4:std"}, {"lt5:std"}}
	etdPaths      = [][]string{{"lt4:etd"}, {"lt5:etd"}}
	platformPaths = [][]string{{"lt4:platform"}, {"lt5:platform"}}
	operatorPaths = [][]string{{"lt4:operator"}, {"lt5:operator"}}
	opCodePaths   = [][]string{{"lt4:operatorCode"}, {"lt5:operatorCode"}}
	destPaths     = [][]string{
		{"lt5:destination", "lt4:location", "lt4:locationName"},
		{"lt5:destination", "lt5:location", "lt4:locationName"},
		{"lt5:destination", "lt5:location", "lt5:locationName"},
		{"lt5:destination", "lt4:locationName"},
		{"lt4:destination", "lt4:location", "lt4:locationName"},
	}
)

// NormalizeDeparture converts one raw service tree into a DepartureRecord.
// The second return is false when the entry is not a mapping at all; any
// merely incomplete entry still yields a record built from defaults.
func NormalizeDeparture(entry any, now time.Time) (DepartureRecord, bool) {
	if _, ok := entry.(map[string]any); !ok {
		return DepartureRecord{}, false
	}

	rec := DepartureRecord{
		Scheduled:    payload.String(entry, "", stdPaths...),
		Expected:     payload.String(entry, "", etdPaths...),
		Platform:     payload.String(entry, "-", platformPaths...),
		Operator:     payload.String(entry, "Unknown", operatorPaths...),
		OperatorCode: payload.String(entry, "", opCodePaths...),
		Destination:  payload.String(entry, "Unknown", destPaths...),
	}
	if rec.Platform == "-" {
		rec.Platform = inferPlatform(rec.Destination)
	}
	rec.DueIn, rec.DueInMins = dueIn(rec.Scheduled, rec.Expected, now)
	return rec, true
}

// inferPlatform consults the known-destination table, exact match first,
// then prefix match, else keeps the "-" sentinel.
func inferPlatform(destination string) string {
	if p, ok := likelyPlatforms[destination]; ok {
		return p
	}
	for name, p := range likelyPlatforms {
		if strings.HasPrefix(destination, name) {
			return p
		}
	}
	return "-"
}

// dueIn derives the minutes-until-departure display value. Precedence: a
// cancelled/no-report expected time yields nothing; an expected time that
// is itself a clock value beats the scheduled time; anything unparseable
// degrades to empty rather than failing the record.
func dueIn(scheduled, expected string, now time.Time) (string, *int) {
	expLower := strings.ToLower(strings.TrimSpace(expected))
	if noTimeSentinels[expLower] {
		return "", nil
	}

	ref := scheduled
	if strings.Contains(expected, ":") && !statusOnlySentinels[expLower] {
		ref = expected
	}

	clock, err := time.Parse("15:04", strings.TrimSpace(ref))
	if err != nil {
		return "", nil
	}

	at := time.Date(now.Year(), now.Month(), now.Day(),
		clock.Hour(), clock.Minute(), 0, 0, now.Location())
	// An HH:MM more than rolloverGrace in the past refers to tomorrow.
	if at.Before(now.Add(-rolloverGrace)) {
		at = at.Add(24 * time.Hour)
	}

	mins := int(math.Floor(at.Sub(now).Minutes()))
	if mins <= 1 {
		return "Due", nil
	}
	return strconv.Itoa(mins), &mins
}

// GroupDepartures normalizes raw service entries and groups them by
// (possibly inferred) platform. Entries that are not mappings are skipped;
// insertion order is preserved within each platform.
func GroupDepartures(entries []any, now time.Time) []PlatformGroup {
	byPlatform := map[string][]DepartureRecord{}
	var order []string
	for _, entry := range entries {
		rec, ok := NormalizeDeparture(entry, now)
		if !ok {
			continue
		}
		if _, seen := byPlatform[rec.Platform]; !seen {
			order = append(order, rec.Platform)
		}
		byPlatform[rec.Platform] = append(byPlatform[rec.Platform], rec)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return platformLess(order[i], order[j])
	})

	groups := make([]PlatformGroup, 0, len(order))
	for _, p := range order {
		groups = append(groups, PlatformGroup{Platform: p, Departures: byPlatform[p]})
	}
	return groups
}

// platformLess orders numeric labels ascending ahead of any non-numeric
// label, which compare lexicographically among themselves.
func platformLess(a, b string) bool {
	na, aerr := strconv.Atoi(a)
	nb, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return na < nb
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}
