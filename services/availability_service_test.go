package services

import (
	"errors"
	"testing"
	"time"

	"github.com/SerfiMolotov/MissDelice/entity"
)

// 2026-08-31 is a Monday.
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 8, 31, hour, min, 0, 0, time.UTC)
}

func openDay(text string) entity.OpeningHour {
	return entity.OpeningHour{DayName: "Lundi", DayOrder: 1, HoursText: text}
}

func TestSlotsForFullWindow(t *testing.T) {
	svc := NewAvailabilityService(nil)

	slots, err := svc.SlotsFor(mondayAt(8, 0), openDay("14h00 - 18h00"))
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16: %v", len(slots), slots)
	}
	if slots[0] != "14h00" || slots[15] != "17h45" {
		t.Errorf("unexpected bounds: first=%s last=%s", slots[0], slots[15])
	}
}

func TestSlotsForLeadTime(t *testing.T) {
	svc := NewAvailabilityService(nil)

	// 14:31 + 15min = 14:46, so 14:45 is gone and 15:00 is the first slot.
	slots, err := svc.SlotsFor(mondayAt(14, 31), openDay("14h00 - 18h00"))
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	if len(slots) == 0 || slots[0] != "15h00" {
		t.Fatalf("got %v, want first slot 15h00", slots)
	}
}

func TestSlotsForCutoffIsStrict(t *testing.T) {
	svc := NewAvailabilityService(nil)

	// 14:45 + 15min lands exactly on 15:00; that slot is already lost.
	slots, err := svc.SlotsFor(mondayAt(14, 45), openDay("14h00 - 18h00"))
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	if len(slots) == 0 || slots[0] != "15h15" {
		t.Fatalf("got %v, want first slot 15h15", slots)
	}
}

func TestSlotsForClosedDay(t *testing.T) {
	svc := NewAvailabilityService(nil)

	slots, err := svc.SlotsFor(mondayAt(8, 0), entity.OpeningHour{IsClosed: true})
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("got %v, want empty non-nil list", slots)
	}
}

func TestSlotsForAfterClose(t *testing.T) {
	svc := NewAvailabilityService(nil)

	slots, err := svc.SlotsFor(mondayAt(17, 50), openDay("14h00 - 18h00"))
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("got %v, want no slots", slots)
	}
}

func TestSlotsForSplitDay(t *testing.T) {
	svc := NewAvailabilityService(nil)

	slots, err := svc.SlotsFor(mondayAt(7, 0), openDay("09h00 - 12h00 & 14h00 - 18h00"))
	if err != nil {
		t.Fatalf("SlotsFor: %v", err)
	}
	// 12 morning slots then 16 afternoon ones, morning first.
	if len(slots) != 28 {
		t.Fatalf("got %d slots, want 28: %v", len(slots), slots)
	}
	if slots[0] != "09h00" || slots[11] != "11h45" || slots[12] != "14h00" {
		t.Errorf("windows out of order: %v", slots)
	}
}

func TestSlotsForBadConfiguration(t *testing.T) {
	svc := NewAvailabilityService(nil)

	for _, text := range []string{
		"14h00 -",
		"nonsense",
		"18h00 - 14h00",
		"14h00 - 14h00",
		"25h00 - 26h00",
	} {
		_, err := svc.SlotsFor(mondayAt(8, 0), openDay(text))
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%q: got %v, want ErrInvalidConfiguration", text, err)
		}
	}
}

type fakeHours struct {
	entries map[int]*entity.OpeningHour
}

func (f *fakeHours) GetByDayOrder(dayOrder int) (*entity.OpeningHour, error) {
	e, ok := f.entries[dayOrder]
	if !ok {
		return nil, errors.New("no row")
	}
	return e, nil
}

func TestSlotsNowUsesTodayRow(t *testing.T) {
	day := openDay("14h00 - 18h00")
	svc := NewAvailabilityService(&fakeHours{entries: map[int]*entity.OpeningHour{1: &day}})

	slots, err := svc.SlotsNow(mondayAt(8, 0))
	if err != nil {
		t.Fatalf("SlotsNow: %v", err)
	}
	if len(slots) != 16 {
		t.Fatalf("got %d slots, want 16", len(slots))
	}
}

func TestSlotsNowMissingRow(t *testing.T) {
	svc := NewAvailabilityService(&fakeHours{entries: map[int]*entity.OpeningHour{}})

	if _, err := svc.SlotsNow(mondayAt(8, 0)); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("got %v, want ErrInvalidConfiguration", err)
	}
}

func TestDayOrderOf(t *testing.T) {
	if got := dayOrderOf(mondayAt(8, 0)); got != 1 {
		t.Errorf("Monday: got %d, want 1", got)
	}
	sunday := time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC)
	if got := dayOrderOf(sunday); got != 7 {
		t.Errorf("Sunday: got %d, want 7", got)
	}
}

func TestParseBuildRoundTrip(t *testing.T) {
	cases := []struct{ in, want string }{
		{"14h00 - 18h00", "14h00 - 18h00"},
		{"09h00 - 12h00 & 14h00 - 18h00", "09h00 - 12h00 & 14h00 - 18h00"},
		{"09h00-12h00&14h00-18h00", "09h00 - 12h00 & 14h00 - 18h00"},
		{"", ""},
		// An incomplete half collapses away on rebuild.
		{"14h00 - & 15h00 - 18h00", "15h00 - 18h00"},
	}
	for _, c := range cases {
		if got := BuildHoursText(ParseHoursText(c.in)); got != c.want {
			t.Errorf("round trip %q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	// Parts with each half fully populated or fully empty survive a
	// build/parse cycle unchanged.
	cases := []HoursParts{
		{},
		{MorningStart: "14h00", MorningEnd: "18h00"},
		{AfternoonStart: "14h00", AfternoonEnd: "18h00"},
		{MorningStart: "09h00", MorningEnd: "12h00", AfternoonStart: "14h00", AfternoonEnd: "18h00"},
	}
	for _, p := range cases {
		got := ParseHoursText(BuildHoursText(p))
		// A lone afternoon half builds to a single range, which reads back
		// as the morning half; compare window contents, not field names.
		if onlyAfternoon(p) {
			p = HoursParts{MorningStart: p.AfternoonStart, MorningEnd: p.AfternoonEnd}
		}
		if got != p {
			t.Errorf("round trip %+v: got %+v", p, got)
		}
	}
}

func onlyAfternoon(p HoursParts) bool {
	return p.MorningStart == "" && p.MorningEnd == "" &&
		p.AfternoonStart != "" && p.AfternoonEnd != ""
}

func TestFormatSlot(t *testing.T) {
	if got := FormatSlot(9*60 + 5); got != "09h05" {
		t.Errorf("got %q, want 09h05", got)
	}
	if got := FormatSlot(17*60 + 45); got != "17h45" {
		t.Errorf("got %q, want 17h45", got)
	}
}
