// Package types defines the shared domain types for the fishcast scoring
// engine: the EnvironmentalContext consumed by every species calculator, the
// FactorScore/ScoreResult shapes they produce, and the enums used by the
// physics primitives and the bio-intel extractor.
//
// Unit conventions (deliberately mixed, matching the instruments that produce
// them): wind and current speeds in knots, directions in degrees true (wind
// reported FROM, current reported SET-TO), swell height in meters and period
// in seconds, tidal exchange in feet, temperatures in Celsius, precipitation
// in millimeters, barometric pressure in hPa, depth advice in feet.
package types

import "time"

// WindState describes surface wind at the evaluation instant.
type WindState struct {
	SpeedKts     float64 `json:"speed_kts" validate:"gte=0"`
	DirectionDeg float64 `json:"direction_deg" validate:"gte=0,lt=360"` // blowing FROM
	GustKts      float64 `json:"gust_kts" validate:"gte=0"`
}

// PressureSample is one historical barometer reading. History is used to
// derive 3h and 6h deltas; samples may arrive in any order.
type PressureSample struct {
	At  time.Time `json:"at"`
	HPa float64   `json:"hpa" validate:"gt=0"`
}

// PressureState carries the current barometric reading plus recent history.
type PressureState struct {
	CurrentHPa float64          `json:"current_hpa" validate:"gt=0"`
	History    []PressureSample `json:"history,omitempty"`
}

// SwellState describes open-water swell at the evaluation point.
type SwellState struct {
	HeightM float64 `json:"height_m" validate:"gte=0"`
	PeriodS float64 `json:"period_s" validate:"gte=0"`
}

// TideState describes tidal current and exchange. MinutesToSlack is the time
// until the next slack window; negative values are treated as unknown.
type TideState struct {
	CurrentSpeedKts float64 `json:"current_speed_kts" validate:"gte=0"`
	SetDirectionDeg float64 `json:"set_direction_deg" validate:"gte=0,lt=360"` // flowing TOWARD
	ExchangeFt      float64 `json:"exchange_ft" validate:"gte=0"`
	Rising          bool    `json:"rising"`
	MinutesToSlack  float64 `json:"minutes_to_slack"`
	WaterTempC      float64 `json:"water_temp_c"`
}

// PrecipState carries the trailing 24h precipitation total together with the
// 24h maximum air temperature, which the freshet primitive uses as a snowmelt
// proxy during the melt months.
type PrecipState struct {
	Total24hMM    float64 `json:"total_24h_mm" validate:"gte=0"`
	MaxAirTemp24C float64 `json:"max_air_temp_24h_c"`
}

// Overrides lets a caller pin values that would otherwise be derived from the
// base fields. A non-nil override always wins over the derived value.
type Overrides struct {
	SunElevationDeg *float64 `json:"sun_elevation_deg,omitempty"`
	MinutesToSlack  *float64 `json:"minutes_to_slack,omitempty"`
}

// EnvironmentalContext is the complete input for one scoring call. It is
// owned by the caller and treated as immutable for the duration of the call.
// Optional sub-structs are pointers; nil means "no data" and every consumer
// substitutes its documented neutral default rather than failing.
type EnvironmentalContext struct {
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Sunrise   time.Time `json:"sunrise"`
	Sunset    time.Time `json:"sunset"`
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`

	Wind          *WindState     `json:"wind,omitempty"`
	Pressure      *PressureState `json:"pressure,omitempty"`
	Precip        *PrecipState   `json:"precip,omitempty"`
	CloudCoverPct float64        `json:"cloud_cover_pct" validate:"gte=0,lte=100"`
	Swell         *SwellState    `json:"swell,omitempty"`
	Tide          *TideState     `json:"tide,omitempty"`

	// BioIntelText is opaque untrusted free text from situational reports.
	// Empty text yields the "no signal" level for every text-derived factor.
	BioIntelText string `json:"bio_intel_text,omitempty"`

	Overrides *Overrides `json:"overrides,omitempty"`
}

// MinutesToSlack resolves the effective minutes-to-slack, preferring an
// explicit override, then tide data. ok=false means no value is available.
func (c *EnvironmentalContext) MinutesToSlack() (minutes float64, ok bool) {
	if c.Overrides != nil && c.Overrides.MinutesToSlack != nil {
		return *c.Overrides.MinutesToSlack, true
	}
	if c.Tide != nil && c.Tide.MinutesToSlack >= 0 {
		return c.Tide.MinutesToSlack, true
	}
	return 0, false
}

// SunElevationOverride returns the caller-pinned sun elevation, if any.
func (c *EnvironmentalContext) SunElevationOverride() (deg float64, ok bool) {
	if c.Overrides != nil && c.Overrides.SunElevationDeg != nil {
		return *c.Overrides.SunElevationDeg, true
	}
	return 0, false
}
