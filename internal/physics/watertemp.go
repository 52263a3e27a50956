package physics

// TempResult is the outcome of the water-temperature suitability primitive.
type TempResult struct {
	Score float64
	Label string
}

// TempSuitability scores a water temperature against a species' preferred
// band [loC, hiC]. Inside the band scores 1.0; outside, the score decays
// linearly at ~12% per degree to a floor of 0.1; fish rarely vanish on
// temperature alone, they just slow down.
func TempSuitability(tempC, loC, hiC float64) TempResult {
	if loC > hiC {
		loC, hiC = hiC, loC
	}

	var off float64
	switch {
	case tempC < loC:
		off = loC - tempC
	case tempC > hiC:
		off = tempC - hiC
	default:
		return TempResult{Score: 1.0, Label: "optimal_temp"}
	}

	score := 1.0 - off*0.12
	if score < 0.1 {
		score = 0.1
	}
	label := "cold_water"
	if tempC > hiC {
		label = "warm_water"
	}
	return TempResult{Score: score, Label: label}
}
