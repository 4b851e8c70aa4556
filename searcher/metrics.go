package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	StartTime  time.Time
	Duration   time.Duration
	Lookups    int64
	Hits       int64
	Expansions int64
}

// HitRate is the share of memo lookups answered without searching
func (m SearchMetric) HitRate() float64 {
	if m.Lookups == 0 {
		return 0
	}
	return float64(m.Hits) / float64(m.Lookups)
}

type MetricsCollector interface {
	Start()
	AddLookup()
	AddHit()
	AddExpansion()
	Complete() SearchMetric
}

type metricsCollector struct {
	startTime  time.Time
	lookups    atomic.Int64
	hits       atomic.Int64
	expansions atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.lookups.Store(0)
	m.hits.Store(0)
	m.expansions.Store(0)
}

func (m *metricsCollector) AddLookup() {
	m.lookups.Add(1)
}

func (m *metricsCollector) AddHit() {
	m.hits.Add(1)
}

func (m *metricsCollector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Lookups:    m.lookups.Load(),
		Hits:       m.hits.Load(),
		Expansions: m.expansions.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                 {}
func (m *noMetricsCollector) AddLookup()             {}
func (m *noMetricsCollector) AddHit()                {}
func (m *noMetricsCollector) AddExpansion()          {}
func (m *noMetricsCollector) Complete() SearchMetric { return SearchMetric{} }
