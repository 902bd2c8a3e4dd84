package board

import (
	"reflect"
	"testing"

	"github.com/commutedash/commutedash/tfl"
)

func TestNormalizeArrivals_SortsSoonestFirst(t *testing.T) {
	raw := []tfl.Arrival{
		{LineName: "213", DestinationName: "Kingston", TimeToStation: 540},
		{LineName: "93", DestinationName: "Putney Bridge", TimeToStation: 120},
		{LineName: "154", DestinationName: "Morden", TimeToStation: 300},
	}

	got := NormalizeArrivals(raw, 0)
	want := []string{"93", "154", "213"}
	for i, line := range want {
		if got[i].Line != line {
			t.Errorf("position %d: line %q, want %q", i, got[i].Line, line)
		}
	}
	// Input order is preserved.
	if raw[0].LineName != "213" {
		t.Error("input slice was mutated")
	}
}

func TestNormalizeArrivals_SortIsStable(t *testing.T) {
	raw := []tfl.Arrival{
		{LineName: "93", VehicleID: "LX1", TimeToStation: 120},
		{LineName: "93", VehicleID: "LX2", TimeToStation: 120},
	}
	got := NormalizeArrivals(raw, 0)
	if got[0].VehicleID != "LX1" || got[1].VehicleID != "LX2" {
		t.Errorf("equal-time arrivals reordered: %+v", got)
	}
}

func TestNormalizeArrivals_Limit(t *testing.T) {
	raw := []tfl.Arrival{
		{LineName: "a", TimeToStation: 60},
		{LineName: "b", TimeToStation: 120},
		{LineName: "c", TimeToStation: 180},
	}
	if got := NormalizeArrivals(raw, 2); len(got) != 2 {
		t.Errorf("limit 2 kept %d arrivals", len(got))
	}
	if got := NormalizeArrivals(raw, 10); len(got) != 3 {
		t.Errorf("limit above length kept %d arrivals", len(got))
	}
	if got := NormalizeArrivals(raw, -1); len(got) != 3 {
		t.Errorf("negative limit kept %d arrivals", len(got))
	}
}

func TestNormalizeArrivals_MinutesTruncate(t *testing.T) {
	raw := []tfl.Arrival{
		{LineName: "93", TimeToStation: 59},
		{LineName: "93", TimeToStation: 60},
		{LineName: "93", TimeToStation: 119},
		{LineName: "93", TimeToStation: 121},
	}
	got := NormalizeArrivals(raw, 0)
	mins := []int{got[0].ExpectedInMin, got[1].ExpectedInMin, got[2].ExpectedInMin, got[3].ExpectedInMin}
	if !reflect.DeepEqual(mins, []int{0, 1, 1, 2}) {
		t.Errorf("minute conversion = %v, want [0 1 1 2]", mins)
	}
}

func TestNormalizeArrivals_CarriesContextFields(t *testing.T) {
	raw := []tfl.Arrival{{
		LineName:        "154",
		DestinationName: "Morden",
		TimeToStation:   300,
		VehicleID:       "LJ13FBO",
		Towards:         "Morden via St Helier",
		StationName:     "Rose Hill",
	}}
	got := NormalizeArrivals(raw, 0)[0]
	if got.VehicleID != "LJ13FBO" || got.Towards != "Morden via St Helier" || got.StationName != "Rose Hill" {
		t.Errorf("context fields dropped: %+v", got)
	}
}

func TestNormalizeArrivals_Empty(t *testing.T) {
	if got := NormalizeArrivals(nil, 5); len(got) != 0 {
		t.Errorf("nil input produced %d arrivals", len(got))
	}
}
