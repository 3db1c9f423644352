package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SerfiMolotov/MissDelice/entity"
)

const (
	// LeadTime is the minimum buffer between "now" and the earliest bookable
	// slot. A slot exactly at now+LeadTime is NOT bookable.
	LeadTime = 15 * time.Minute

	// SlotGranularity is the spacing between slot boundaries.
	SlotGranularity = 15 * time.Minute
)

// HoursParts is the admin-form view of an opening-hours text: two optional
// half-day windows, each end a "HHhMM" label or empty.
type HoursParts struct {
	MorningStart   string `json:"morning_start"`
	MorningEnd     string `json:"morning_end"`
	AfternoonStart string `json:"afternoon_start"`
	AfternoonEnd   string `json:"afternoon_end"`
}

// ParseHoursText splits "14h00 - 18h00" or "09h00 - 12h00 & 14h00 - 18h00"
// into its four ends. Anything missing comes back empty; it does not validate
// the labels themselves.
func ParseHoursText(text string) HoursParts {
	var p HoursParts
	if strings.TrimSpace(text) == "" {
		return p
	}
	halves := strings.SplitN(text, "&", 2)

	m := splitRange(halves[0])
	p.MorningStart, p.MorningEnd = m[0], m[1]
	if len(halves) > 1 {
		a := splitRange(halves[1])
		p.AfternoonStart, p.AfternoonEnd = a[0], a[1]
	}
	return p
}

func splitRange(s string) [2]string {
	var out [2]string
	parts := strings.SplitN(s, "-", 2)
	out[0] = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		out[1] = strings.TrimSpace(parts[1])
	}
	return out
}

// BuildHoursText is the inverse of ParseHoursText. A half with only one end
// set collapses to nothing: that is deliberate normalization, the admin form
// saves only complete ranges.
func BuildHoursText(p HoursParts) string {
	morning := ""
	if p.MorningStart != "" && p.MorningEnd != "" {
		morning = p.MorningStart + " - " + p.MorningEnd
	}
	afternoon := ""
	if p.AfternoonStart != "" && p.AfternoonEnd != "" {
		afternoon = p.AfternoonStart + " - " + p.AfternoonEnd
	}
	switch {
	case morning != "" && afternoon != "":
		return morning + " & " + afternoon
	case morning != "":
		return morning
	default:
		return afternoon
	}
}

var labelRe = regexp.MustCompile(`^(\d{1,2})h(\d{2})$`)

// parseLabel turns "14h30" into minutes since midnight.
func parseLabel(label string) (int, error) {
	m := labelRe.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, fmt.Errorf("bad time label %q", label)
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return 0, fmt.Errorf("bad time label %q", label)
	}
	return h*60 + min, nil
}

// FormatSlot renders minutes since midnight as the public "HHhMM" label.
func FormatSlot(minutes int) string {
	return fmt.Sprintf("%02dh%02d", minutes/60, minutes%60)
}

type window struct{ start, end int } // minutes since midnight, [start, end)

// windowsFor extracts the day's open windows in source order. Closed days and
// days without text have none; a malformed or inverted range is a
// configuration error.
func windowsFor(entry entity.OpeningHour) ([]window, error) {
	if entry.IsClosed {
		return nil, nil
	}
	p := ParseHoursText(entry.HoursText)

	var out []window
	for _, half := range [][2]string{
		{p.MorningStart, p.MorningEnd},
		{p.AfternoonStart, p.AfternoonEnd},
	} {
		if half[0] == "" && half[1] == "" {
			continue
		}
		if half[0] == "" || half[1] == "" {
			return nil, fmt.Errorf("%w: incomplete range in %q", ErrInvalidConfiguration, entry.HoursText)
		}
		start, err := parseLabel(half[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		end, err := parseLabel(half[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		if start >= end {
			return nil, fmt.Errorf("%w: empty range %q", ErrInvalidConfiguration, entry.HoursText)
		}
		out = append(out, window{start: start, end: end})
	}
	return out, nil
}

// HoursSource resolves the configured row for a day of week (1 = Monday).
type HoursSource interface {
	GetByDayOrder(dayOrder int) (*entity.OpeningHour, error)
}

type AvailabilityService struct {
	Hours HoursSource
}

func NewAvailabilityService(hours HoursSource) *AvailabilityService {
	return &AvailabilityService{Hours: hours}
}

// SlotsFor lists the bookable "HHhMM" slots of entry's day as seen at now:
// every SlotGranularity boundary inside an open window, keeping only slots
// strictly later than now+LeadTime. Windows are emitted in source order, so
// a split day yields morning slots before afternoon ones.
func (s *AvailabilityService) SlotsFor(now time.Time, entry entity.OpeningHour) ([]string, error) {
	return slotsFor(now, entry, LeadTime, SlotGranularity)
}

func slotsFor(now time.Time, entry entity.OpeningHour, lead, granularity time.Duration) ([]string, error) {
	if lead < 0 || granularity <= 0 {
		return nil, fmt.Errorf("%w: bad lead time or granularity", ErrInvalidConfiguration)
	}
	windows, err := windowsFor(entry)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(lead)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	step := int(granularity / time.Minute)

	slots := []string{}
	for _, w := range windows {
		for m := w.start; m < w.end; m += step {
			at := midnight.Add(time.Duration(m) * time.Minute)
			if at.After(cutoff) { // strictly later, a slot at the cutoff is lost
				slots = append(slots, FormatSlot(m))
			}
		}
	}
	return slots, nil
}

// SlotsNow computes today's slots from the stored configuration. A missing
// row is a configuration error, never an open day.
func (s *AvailabilityService) SlotsNow(now time.Time) ([]string, error) {
	entry, err := s.Hours.GetByDayOrder(dayOrderOf(now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return s.SlotsFor(now, *entry)
}

// dayOrderOf maps Go's Sunday-first weekday to the stored 1..7 Monday-first
// order.
func dayOrderOf(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}
