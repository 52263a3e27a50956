package types

// BaitLevel is the categorical bait-presence signal extracted from free-text
// reports. Ordering is significant: higher levels map to higher scores.
type BaitLevel string

const (
	BaitNone      BaitLevel = "none"
	BaitScattered BaitLevel = "scattered"
	BaitPresent   BaitLevel = "present"
	BaitAbundant  BaitLevel = "abundant"
	BaitMassive   BaitLevel = "massive"
)

// PredatorLevel is the apex-predator presence signal. Confirmed presence
// (orcas working a bank, for example) suppresses most salmon scores.
type PredatorLevel string

const (
	PredatorNone      PredatorLevel = "none"
	PredatorSuspected PredatorLevel = "suspected"
	PredatorConfirmed PredatorLevel = "confirmed"
)

// RunStrength is the schooling/run-strength confidence signal.
type RunStrength string

const (
	RunUnknown  RunStrength = "unknown"
	RunWeak     RunStrength = "weak"
	RunModerate RunStrength = "moderate"
	RunStrong   RunStrength = "strong"
)

// WaterClarity classifies effective water visibility from freshet inputs.
type WaterClarity string

const (
	ClarityClear    WaterClarity = "clear"
	ClarityStained  WaterClarity = "slightly_stained"
	ClarityMurky    WaterClarity = "murky"
	ClarityBlownOut WaterClarity = "blown_out"
)

// PressureTrend classifies the recent barometric movement.
type PressureTrend string

const (
	TrendFallingFast PressureTrend = "falling_fast"
	TrendFalling     PressureTrend = "falling"
	TrendSteady      PressureTrend = "steady"
	TrendRising      PressureTrend = "rising"
	TrendRisingFast  PressureTrend = "rising_fast"
	TrendUnknown     PressureTrend = "no_pressure_history"
)

// Species identifies a target species supported by the engine.
type Species string

const (
	SpeciesChinook Species = "chinook"
	SpeciesCoho    Species = "coho"
	SpeciesPink    Species = "pink"
	SpeciesLingcod Species = "lingcod"
	SpeciesHalibut Species = "halibut"
)
