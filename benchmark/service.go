// Package benchmark simulates a live market-data feed: per-industry metric
// values that drift on a timer and stream to WebSocket subscribers.
package benchmark

import (
	"math"
	"math/rand"
	"sync"
)

// MetricValue is one tracked benchmark reading.
type MetricValue struct {
	Average  float64 `json:"average"`
	MaxValue float64 `json:"maxValue"`
}

// Drift magnitudes. The random factor subtracts 0.4 rather than 0.5, so the
// walk carries a slight upward bias.
const (
	industryDrift = 0.02
	defaultDrift  = 0.015
	maxRatio      = 1.8
)

var industryAliases = map[string]string{
	"fs":                 "finance",
	"financial_services": "finance",
	"technology":         "tech",
	"software":           "tech",
	"medical":            "healthcare",
	"retailing":          "retail",
	"industrial":         "manufacturing",
}

var metricAliases = map[string]string{
	"digital":    "digital_transformation",
	"revenue":    "revenue_growth",
	"margin":     "profit_margin",
	"retention":  "customer_retention",
	"efficiency": "operational_efficiency",
}

// fallbackValue answers any (industry, metric) pair nothing else matches.
var fallbackValue = MetricValue{Average: 50, MaxValue: 90}

// Service owns the mutable benchmark universe. Construct one per feed so
// tests can run isolated universes; there is no package-level state.
type Service struct {
	mu         sync.Mutex
	industries map[string]map[string]MetricValue
	defaults   map[string]MetricValue
	randFn     func() float64
}

func NewService() *Service {
	return &Service{
		industries: map[string]map[string]MetricValue{
			"tech": {
				"revenue_growth":         {Average: 22, MaxValue: 41},
				"profit_margin":          {Average: 18, MaxValue: 33},
				"digital_transformation": {Average: 80, MaxValue: 95},
				"customer_retention":     {Average: 84, MaxValue: 97},
			},
			"retail": {
				"revenue_growth":         {Average: 8, MaxValue: 16},
				"profit_margin":          {Average: 6, MaxValue: 12},
				"digital_transformation": {Average: 46, MaxValue: 78},
				"customer_retention":     {Average: 62, MaxValue: 88},
			},
			"manufacturing": {
				"revenue_growth":         {Average: 6, MaxValue: 13},
				"profit_margin":          {Average: 11, MaxValue: 21},
				"digital_transformation": {Average: 38, MaxValue: 70},
				"customer_retention":     {Average: 77, MaxValue: 93},
			},
			"healthcare": {
				"revenue_growth":         {Average: 12, MaxValue: 24},
				"profit_margin":          {Average: 14, MaxValue: 26},
				"digital_transformation": {Average: 52, MaxValue: 82},
				"customer_retention":     {Average: 88, MaxValue: 98},
			},
			"finance": {
				"revenue_growth":         {Average: 10, MaxValue: 19},
				"profit_margin":          {Average: 24, MaxValue: 44},
				"digital_transformation": {Average: 66, MaxValue: 90},
				"customer_retention":     {Average: 81, MaxValue: 95},
			},
		},
		defaults: map[string]MetricValue{
			"operational_efficiency": {Average: 64, MaxValue: 115.2},
			"employee_productivity":  {Average: 58, MaxValue: 104.4},
			"market_share":           {Average: 21, MaxValue: 37.8},
		},
		randFn: rand.Float64,
	}
}

// Lookup resolves an (industry, metric) pair through the fallback chain:
// exact industry table, industry alias, default-metric table, metric alias,
// then the hardcoded fallback value.
func (s *Service) Lookup(industry, metric string) MetricValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookupLocked(industry, metric)
}

func (s *Service) lookupLocked(industry, metric string) MetricValue {
	ind := industry
	if alias, ok := industryAliases[ind]; ok {
		ind = alias
	}
	if table, ok := s.industries[ind]; ok {
		if v, ok := table[metric]; ok {
			return v
		}
	}
	if v, ok := s.defaults[metric]; ok {
		return v
	}
	if alias, ok := metricAliases[metric]; ok {
		if table, ok := s.industries[ind]; ok {
			if v, ok := table[alias]; ok {
				return v
			}
		}
		if v, ok := s.defaults[alias]; ok {
			return v
		}
	}
	return fallbackValue
}

// Advance perturbs every tracked value once and recomputes maxValue as
// average × 1.8. Called before each broadcast tick.
func (s *Service) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, table := range s.industries {
		for metric, v := range table {
			v.Average *= 1 + (s.randFn()-0.4)*industryDrift
			v.MaxValue = v.Average * maxRatio
			table[metric] = v
		}
	}
	for metric, v := range s.defaults {
		v.Average *= 1 + (s.randFn()-0.4)*defaultDrift
		v.MaxValue = v.Average * maxRatio
		s.defaults[metric] = v
	}
}

// Trend classifies the move from prev to cur. Thresholds leave a ±0.5% band
// that reads as stable.
func Trend(prev, cur float64) string {
	switch {
	case cur > prev*1.005:
		return "up"
	case cur < prev*0.995:
		return "down"
	default:
		return "stable"
	}
}

// ChangePercent is the relative difference in percent, one decimal place.
func ChangePercent(prev, cur float64) float64 {
	if prev == 0 {
		return 0
	}
	return math.Round((cur-prev)/prev*100*10) / 10
}
