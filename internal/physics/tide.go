package physics

import "fmt"

// Tidal thresholds. Exchanges are in feet; windows in minutes.
const (
	// slackWindowMin is the half-width of the slack window. Inside it a big
	// exchange means concentrated bait, not blowback.
	slackWindowMin = 30.0
	// bigExchangeFt marks a large tidal exchange.
	bigExchangeFt = 10.0
	// moderateExchangeFt marks a workable exchange.
	moderateExchangeFt = 6.0
)

// SlackProximity scores nearness to the next slack window. Ten minutes out
// scores above 0.9; the score decays smoothly toward a floor of 0.15 as the
// evaluation instant moves hours away from slack. Negative input is treated
// as zero (at slack).
func SlackProximity(minutesToSlack float64) (score float64, label string) {
	m := clampMin(minutesToSlack, 0)

	switch {
	case m <= 15:
		return 1.0 - m*0.005, "at_slack" // 10 min -> 0.95
	case m <= 45:
		return 0.925 - (m-15)*0.01, "approaching_slack" // 45 min -> 0.625
	case m <= 120:
		return 0.625 - (m-45)*0.005, "mid_exchange" // 120 min -> 0.25
	default:
		s := 0.25 - (m-120)*0.001
		if s < 0.15 {
			s = 0.15
		}
		return s, "far_from_slack"
	}
}

// TrollabilityResult is the outcome of the blowback/trollability primitive.
type TrollabilityResult struct {
	Score float64
	Label string
	// BlowbackPct estimates how far short of target depth gear rides due to
	// current drag, as a percentage of intended depth.
	BlowbackPct float64
	// PrimeWindow is set when a large exchange coincides with the slack
	// window: the non-monotonic "big water about to go still" bonus.
	PrimeWindow bool
	Advice      string
}

// Trollability scores the ability to hold gear at target depth. A large
// exchange far from slack drags gear up and away (blowback) and degrades the
// score; the same large exchange evaluated inside the slack window flips to a
// bonus, because big moving water concentrates bait and is about to become
// fishable. This non-monotonic exception is deliberate.
func Trollability(exchangeFt, minutesToSlack, currentKts float64) TrollabilityResult {
	exchangeFt = clampMin(exchangeFt, 0)
	currentKts = clampMin(currentKts, 0)
	m := clampMin(minutesToSlack, 0)

	// Blowback grows with current speed: roughly 15% of depth per knot.
	blowback := clampRange(currentKts*15, 0, 80)

	res := TrollabilityResult{BlowbackPct: blowback}

	inSlackWindow := m <= slackWindowMin

	switch {
	case exchangeFt >= bigExchangeFt && inSlackWindow:
		res.PrimeWindow = true
		res.Score = 1.0
		res.Label = "prime_time"
		res.Advice = "large exchange going slack: fish hard through the window"
	case exchangeFt >= bigExchangeFt:
		res.Score = clamp01(0.35 - blowback/200)
		res.Label = "heavy_blowback"
		res.Advice = fmt.Sprintf("expect ~%.0f%% blowback; add weight or wait for slack", blowback)
	case exchangeFt >= moderateExchangeFt && !inSlackWindow:
		res.Score = clamp01(0.65 - blowback/250)
		res.Label = "moderate_blowback"
		res.Advice = fmt.Sprintf("expect ~%.0f%% blowback", blowback)
	case exchangeFt >= moderateExchangeFt:
		res.Score = 0.85
		res.Label = "moderate_exchange_slack"
	default:
		// Small exchange: little current either way, easy to fish but less
		// bait movement.
		res.Score = 0.7
		res.Label = "small_exchange"
	}

	return res
}
