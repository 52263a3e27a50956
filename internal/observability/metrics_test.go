package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveResult(t *testing.T) {
	m := NewMetricsForTesting()

	m.ObserveResult("chinook", 7.25, true, "", 0.002)
	m.ObserveResult("halibut", 0.0, false, "steep_swell", 0.001)
	m.ObserveResult("halibut", 0.0, false, "steep_swell", 0.001)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScoreRequests.WithLabelValues("chinook", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScoreRequests.WithLabelValues("halibut", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.UnsafeResults.WithLabelValues("chinook")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.UnsafeResults.WithLabelValues("halibut")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GatekeeperHits.WithLabelValues("halibut", "steep_swell")))
}
