package metrics

import (
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome attribute values.
var (
	OutcomeSuccess  = attribute.String("outcome", "success")
	OutcomeError    = attribute.String("outcome", "error")
	OutcomeInvalid  = attribute.String("outcome", "invalid")
	OutcomeFallback = attribute.String("outcome", "fallback")
	OutcomeStale    = attribute.String("outcome", "stale")
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ItineraryRequestsTotal   metric.Int64Counter
	ItineraryDurationSeconds metric.Float64Histogram
	ItineraryWarningsTotal   metric.Int64Counter
	ChatRequestsTotal        metric.Int64Counter
	ChatDurationSeconds      metric.Float64Histogram
	ActiveSessions           metric.Int64UpDownCounter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// New creates the instruments on the given meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.ItineraryRequestsTotal, err = meter.Int64Counter(
		"itinerary_requests_total",
		metric.WithDescription("Total number of itinerary generation requests completed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("itinerary_requests_total: %w", err)
	}

	m.ItineraryDurationSeconds, err = meter.Float64Histogram(
		"itinerary_duration_seconds",
		metric.WithDescription("Duration of itinerary generation calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("itinerary_duration_seconds: %w", err)
	}

	m.ItineraryWarningsTotal, err = meter.Int64Counter(
		"itinerary_compliance_warnings_total",
		metric.WithDescription("Number of prompt rule violations found in generated plans"),
		metric.WithUnit("{warning}"),
	)
	if err != nil {
		return nil, fmt.Errorf("itinerary_compliance_warnings_total: %w", err)
	}

	m.ChatRequestsTotal, err = meter.Int64Counter(
		"chat_requests_total",
		metric.WithDescription("Total number of chat turns, by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("chat_requests_total: %w", err)
	}

	m.ChatDurationSeconds, err = meter.Float64Histogram(
		"chat_duration_seconds",
		metric.WithDescription("Duration of chat calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("chat_duration_seconds: %w", err)
	}

	m.ActiveSessions, err = meter.Int64UpDownCounter(
		"active_sessions",
		metric.WithDescription("Trip sessions currently held in memory"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("active_sessions: %w", err)
	}

	return m, nil
}

// InitAppMetrics initializes the global metrics instruments ONLY ONCE
// from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		m, err := New(otel.GetMeterProvider().Meter("TripItinerary"))
		if err != nil {
			log.Fatalf("Metrics: %v", err)
		}
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
