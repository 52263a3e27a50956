// Package season maps calendar dates to named behavioral modes and their
// factor-weight tables. It supports plain month-range schedules, asymmetric
// bell ramps centered on a peak day-of-year, and calendar-parity gates for
// species whose runs only exist in odd or even years.
//
// Selection is pure: the same (schedule, date) pair always yields the same
// profile, and nothing here reads the clock.
package season

import (
	"time"

	"fishcast/internal/types"
)

// OutOfSeasonFloor is the ramp multiplier outside a ramp's boundaries. It is
// a small positive constant, never exactly zero: stragglers exist outside
// every run window unless a gatekeeper says otherwise.
const OutOfSeasonFloor = 0.1

// Parity restricts a schedule to odd or even calendar years.
type Parity string

const (
	ParityAny  Parity = ""
	ParityOdd  Parity = "odd"
	ParityEven Parity = "even"
)

// Ramp is an asymmetric bell centered on PeakDOY. Outside [StartDOY, EndDOY]
// the multiplier floors at OutOfSeasonFloor. The rise and fall are triangular
// with independent slopes, which is as close to a Gaussian as run-timing data
// deserves.
type Ramp struct {
	StartDOY int `yaml:"start_doy" json:"start_doy"`
	PeakDOY  int `yaml:"peak_doy" json:"peak_doy"`
	EndDOY   int `yaml:"end_doy" json:"end_doy"`
}

// Multiplier returns the ramp value for a day-of-year, in
// [OutOfSeasonFloor, 1.0].
func (r Ramp) Multiplier(doy int) float64 {
	if r.StartDOY == 0 && r.EndDOY == 0 {
		return 1.0 // no ramp configured
	}
	if doy < r.StartDOY || doy > r.EndDOY {
		return OutOfSeasonFloor
	}
	if doy == r.PeakDOY {
		return 1.0
	}
	if doy < r.PeakDOY {
		rise := float64(r.PeakDOY - r.StartDOY)
		if rise <= 0 {
			return 1.0
		}
		return OutOfSeasonFloor + (1.0-OutOfSeasonFloor)*float64(doy-r.StartDOY)/rise
	}
	fall := float64(r.EndDOY - r.PeakDOY)
	if fall <= 0 {
		return 1.0
	}
	return OutOfSeasonFloor + (1.0-OutOfSeasonFloor)*float64(r.EndDOY-doy)/fall
}

// Entry binds a set of months (or a ramp window) to a seasonal profile.
type Entry struct {
	Months  []time.Month          `yaml:"months,flow" json:"months"`
	Ramp    *Ramp                 `yaml:"ramp,omitempty" json:"ramp,omitempty"`
	Profile types.SeasonalProfile `yaml:"profile" json:"profile"`
}

// covers reports whether the entry is active on the given date.
func (e Entry) covers(date time.Time) bool {
	if e.Ramp != nil && len(e.Months) == 0 {
		doy := date.YearDay()
		return doy >= e.Ramp.StartDOY && doy <= e.Ramp.EndDOY
	}
	for _, m := range e.Months {
		if date.Month() == m {
			return true
		}
	}
	return false
}

// Schedule is one species' complete seasonal configuration.
type Schedule struct {
	// Parity restricts the schedule to odd/even years. The selector reports
	// the violation via InSeason=false; zeroing the score is the gatekeeper's
	// job, not the selector's.
	Parity Parity `yaml:"parity,omitempty" json:"parity,omitempty"`

	Entries []Entry `yaml:"entries" json:"entries"`

	// OffSeason is the fallback profile when no entry covers the date.
	OffSeason types.SeasonalProfile `yaml:"off_season" json:"off_season"`
}

// Selection is the outcome of profile selection for one date.
type Selection struct {
	Profile types.SeasonalProfile
	// InSeason is false when the date fell through to the off-season profile
	// or the parity gate failed.
	InSeason bool
	// RampMultiplier scales the core score for ramped entries; 1.0 otherwise.
	// Never zero (see OutOfSeasonFloor).
	RampMultiplier float64
	// ParityBlocked is set when the calendar-year parity gate failed.
	ParityBlocked bool
}

// Select resolves the active profile for a date. It is total: a schedule with
// no matching entry yields the off-season profile at the floor multiplier.
func (s Schedule) Select(date time.Time) Selection {
	if blocked := s.parityBlocked(date); blocked {
		return Selection{
			Profile:        s.OffSeason,
			InSeason:       false,
			RampMultiplier: OutOfSeasonFloor,
			ParityBlocked:  true,
		}
	}

	for _, e := range s.Entries {
		if !e.covers(date) {
			continue
		}
		sel := Selection{Profile: e.Profile, InSeason: true, RampMultiplier: 1.0}
		if e.Ramp != nil {
			sel.RampMultiplier = e.Ramp.Multiplier(date.YearDay())
		}
		return sel
	}

	return Selection{
		Profile:        s.OffSeason,
		InSeason:       false,
		RampMultiplier: OutOfSeasonFloor,
	}
}

func (s Schedule) parityBlocked(date time.Time) bool {
	switch s.Parity {
	case ParityOdd:
		return date.Year()%2 == 0
	case ParityEven:
		return date.Year()%2 != 0
	default:
		return false
	}
}

// Validate checks weight closure on every profile in the schedule.
func (s Schedule) Validate() error {
	for _, e := range s.Entries {
		if err := e.Profile.ValidateWeights(); err != nil {
			return err
		}
	}
	return s.OffSeason.ValidateWeights()
}
