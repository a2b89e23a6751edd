package noop

import "time"

// NoopMetricsProvider satisfies metrics.MetricsProvider without recording
// anything. Used in tests.
type NoopMetricsProvider struct{}

func NewNoopMetricsProvider() *NoopMetricsProvider {
	return &NoopMetricsProvider{}
}

func (p *NoopMetricsProvider) IncrementHTTPRequests(method, path, status string) {}

func (p *NoopMetricsProvider) RecordHTTPRequestDuration(method, path string, d time.Duration) {}

func (p *NoopMetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {}

func (p *NoopMetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {}

func (p *NoopMetricsProvider) IncrementUserOperations(operation string, success bool) {}

func (p *NoopMetricsProvider) IncrementPostOperations(operation string, success bool) {}

func (p *NoopMetricsProvider) SetServiceHealth(healthy bool) {}
