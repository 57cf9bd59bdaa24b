package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestObserveRequest(t *testing.T) {
	c := HTTPRequestsTotal.WithLabelValues("/api/v1/campaigns/all", "GET", "200")
	before := counterValue(t, c)

	ObserveRequest("/api/v1/campaigns/all", "GET", 200, 15*time.Millisecond)

	assert.Equal(t, before+1, counterValue(t, c))
}

func TestObserveUpstream(t *testing.T) {
	c := UpstreamCallsTotal.WithLabelValues("youtube", "search", "error")
	before := counterValue(t, c)

	ObserveUpstream("youtube", "search", "error")

	assert.Equal(t, before+1, counterValue(t, c))
}
