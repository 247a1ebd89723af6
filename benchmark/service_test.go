package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupSeededMetric(t *testing.T) {
	svc := NewService()
	v := svc.Lookup("tech", "digital_transformation")
	assert.Equal(t, 80.0, v.Average)
	assert.Equal(t, 95.0, v.MaxValue)
}

func TestLookupFallbackChain(t *testing.T) {
	svc := NewService()
	tests := []struct {
		name     string
		industry string
		metric   string
		want     MetricValue
	}{
		{"industry alias", "fs", "profit_margin", svc.Lookup("finance", "profit_margin")},
		{"default table", "tech", "market_share", MetricValue{Average: 21, MaxValue: 37.8}},
		{"metric alias to industry", "tech", "digital", MetricValue{Average: 80, MaxValue: 95}},
		{"metric alias to default", "nowhere", "efficiency", MetricValue{Average: 64, MaxValue: 115.2}},
		{"unknown everything", "nowhere", "no_such_metric", MetricValue{Average: 50, MaxValue: 90}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Lookup(tt.industry, tt.metric))
		})
	}
}

func TestAdvanceRecomputesMax(t *testing.T) {
	svc := NewService()
	svc.randFn = func() float64 { return 0.9 } // deterministic positive step
	svc.Advance()

	for name, table := range svc.industries {
		for metric, v := range table {
			assert.InDelta(t, v.Average*1.8, v.MaxValue, 1e-9, "%s/%s", name, metric)
		}
	}
	for metric, v := range svc.defaults {
		assert.InDelta(t, v.Average*1.8, v.MaxValue, 1e-9, "default/%s", metric)
	}
}

func TestAdvanceDriftMagnitude(t *testing.T) {
	svc := NewService()
	svc.randFn = func() float64 { return 1 } // max upward step

	before := svc.Lookup("tech", "digital_transformation")
	defBefore := svc.Lookup("", "market_share")
	svc.Advance()
	after := svc.Lookup("tech", "digital_transformation")
	defAfter := svc.Lookup("", "market_share")

	// industry metrics move by (1-0.4)*0.02, defaults by (1-0.4)*0.015
	assert.InDelta(t, before.Average*1.012, after.Average, 1e-9)
	assert.InDelta(t, defBefore.Average*1.009, defAfter.Average, 1e-9)
}

func TestAdvanceDownwardStep(t *testing.T) {
	svc := NewService()
	svc.randFn = func() float64 { return 0 } // max downward step
	before := svc.Lookup("retail", "revenue_growth")
	svc.Advance()
	after := svc.Lookup("retail", "revenue_growth")
	assert.InDelta(t, before.Average*(1-0.008), after.Average, 1e-9)
}

func TestTrendThresholds(t *testing.T) {
	tests := []struct {
		name string
		prev float64
		cur  float64
		want string
	}{
		{"clearly up", 100, 102, "up"},
		{"just above band", 100, 100.51, "up"},
		{"at upper band", 100, 100.5, "stable"},
		{"unchanged", 100, 100, "stable"},
		{"at lower band", 100, 99.5, "stable"},
		{"just below band", 100, 99.49, "down"},
		{"clearly down", 100, 95, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trend(tt.prev, tt.cur))
		})
	}
}

func TestChangePercentOneDecimal(t *testing.T) {
	assert.Equal(t, 2.0, ChangePercent(100, 102))
	assert.Equal(t, -1.2, ChangePercent(100, 98.76))
	assert.Equal(t, 0.0, ChangePercent(0, 50))
	assert.Equal(t, 0.1, ChangePercent(1000, 1001.4))
}
