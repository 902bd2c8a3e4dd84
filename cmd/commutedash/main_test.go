package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/commutedash/commutedash/board"
)

func TestWriteBoardFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	groups := []board.PlatformGroup{
		{Platform: "2", Departures: []board.DepartureRecord{
			{Scheduled: "08:15", Expected: "On time", Destination: "London Victoria",
				Platform: "2", Operator: "Thameslink", OperatorCode: "TL"},
			{Scheduled: "", Expected: "Cancelled", Destination: "Sutton",
				Platform: "2", Operator: "Thameslink", OperatorCode: "TL"},
		}},
	}

	if err := writeBoardFile(path, "PUT", groups); err != nil {
		t.Fatalf("writeBoardFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		"Upcoming departures for PUT:",
		"Platform 2",
		"08:15",
		"London Victoria",
		"Thameslink (TL)",
		"Cancelled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// A blank scheduled time renders as the "-" placeholder.
	if !strings.Contains(out, "-     ") {
		t.Errorf("blank scheduled time not rendered as placeholder:\n%s", out)
	}
}

func TestWriteBoardFile_ErrorsSurface(t *testing.T) {
	// The target path is a directory, so the write cannot succeed.
	if err := writeBoardFile(t.TempDir(), "PUT", nil); err == nil {
		t.Error("expected error writing the board to a directory path")
	}
}
