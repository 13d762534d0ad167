package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, cv *prometheus.CounterVec, label string) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, cv.WithLabelValues(label).Write(m))
	return m.GetCounter().GetValue()
}

func TestCountersIncrementPerLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCounters(reg)

	c.Recomputed("doubled")
	c.Recomputed("doubled")
	c.CacheHit("doubled")
	c.DirtyPropagated("count")
	c.NonReactiveAccess("doubled")

	assert.Equal(t, float64(2), counterValue(t, c.Recomputations, "doubled"))
	assert.Equal(t, float64(1), counterValue(t, c.CacheHits, "doubled"))
	assert.Equal(t, float64(1), counterValue(t, c.DirtyPropagations, "count"))
	assert.Equal(t, float64(1), counterValue(t, c.ReentrancyViolations, "doubled"))
}

func TestNewCountersRegistersAllFour(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCounters(reg)
	// A CounterVec reports a metric family only once it has at least one
	// labelled child, so give each of the four a child before gathering.
	c.Recomputed("")
	c.CacheHit("")
	c.DirtyPropagated("")
	c.NonReactiveAccess("")

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 4)
}
