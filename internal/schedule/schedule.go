// Package schedule converts between civil wall-clock values and absolute
// instants without losing determinism around DST transitions. Role
// windows are entered as wall-clock times in the event timezone and
// stored as instants, so every comparison later is plain instant math.
package schedule

import (
	"errors"
	"fmt"
	"time"

	// events carry IANA timezone names, so the zone database must be
	// available even on scratch containers
	_ "time/tzdata"
)

var ErrUnknownTimezone = errors.New("unknown timezone")

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) validate() error {
	norm := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	y, m, day := norm.Date()
	if y != d.Year || m != d.Month || day != d.Day {
		return fmt.Errorf("invalid calendar date %s", d)
	}
	return nil
}

type WallClock struct {
	Hour   int
	Minute int
}

func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

func (w WallClock) validate() error {
	if w.Hour < 0 || w.Hour > 23 || w.Minute < 0 || w.Minute > 59 {
		return fmt.Errorf("invalid wall-clock time %s", w)
	}
	return nil
}

// ParseDate reads an ISO calendar date, e.g. "2026-07-14".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// ParseWallClock reads a 24h clock value, e.g. "18:00".
func ParseWallClock(s string) (WallClock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return WallClock{}, fmt.Errorf("parse wall-clock time %q: %w", s, err)
	}
	return WallClock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ToAbsolute resolves a civil date and wall-clock time in the given IANA
// timezone to one UTC instant. DST edge cases resolve deterministically:
// a wall-clock value that occurs twice (clocks fall back) maps to the
// earlier instant, one that never occurs (clocks spring forward) shifts
// forward by the width of the gap.
func ToAbsolute(d Date, w WallClock, tzID string) (time.Time, error) {
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownTimezone, tzID)
	}
	if err := d.validate(); err != nil {
		return time.Time{}, err
	}
	if err := w.validate(); err != nil {
		return time.Time{}, err
	}

	// pseudo reads the civil value as if the zone had no offset; real
	// candidates differ from it by exactly one zone offset
	pseudo := time.Date(d.Year, d.Month, d.Day, w.Hour, w.Minute, 0, 0, time.UTC)

	offBefore := zoneOffset(pseudo.Add(-24*time.Hour), loc)

	var matches []time.Time
	for _, off := range distinctOffsets(
		offBefore,
		zoneOffset(pseudo, loc),
		zoneOffset(pseudo.Add(24*time.Hour), loc),
	) {
		cand := pseudo.Add(-off)
		if rendersAs(cand, loc, d, w) {
			matches = append(matches, cand)
		}
	}

	switch len(matches) {
	case 0:
		// the wall-clock value fell into a spring-forward gap; keep the
		// pre-transition offset so the result lands past the gap
		return pseudo.Add(-offBefore), nil
	case 1:
		return matches[0], nil
	default:
		earliest := matches[0]
		for _, m := range matches[1:] {
			if m.Before(earliest) {
				earliest = m
			}
		}
		return earliest, nil
	}
}

// ToWallClock renders an instant as the civil date and wall-clock time a
// local observer in the given timezone would read.
func ToWallClock(t time.Time, tzID string) (Date, WallClock, error) {
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		return Date{}, WallClock{}, fmt.Errorf("%w: %q", ErrUnknownTimezone, tzID)
	}
	lt := t.In(loc)
	y, m, d := lt.Date()
	return Date{Year: y, Month: m, Day: d}, WallClock{Hour: lt.Hour(), Minute: lt.Minute()}, nil
}

// ValidateTimezone checks that tzID names a loadable IANA zone.
func ValidateTimezone(tzID string) error {
	if _, err := time.LoadLocation(tzID); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownTimezone, tzID)
	}
	return nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func zoneOffset(t time.Time, loc *time.Location) time.Duration {
	_, off := t.In(loc).Zone()
	return time.Duration(off) * time.Second
}

func distinctOffsets(offs ...time.Duration) []time.Duration {
	out := offs[:0:0]
	for _, off := range offs {
		seen := false
		for _, o := range out {
			if o == off {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, off)
		}
	}
	return out
}

func rendersAs(t time.Time, loc *time.Location, d Date, w WallClock) bool {
	lt := t.In(loc)
	y, m, day := lt.Date()
	return y == d.Year && m == d.Month && day == d.Day &&
		lt.Hour() == w.Hour && lt.Minute() == w.Minute
}
