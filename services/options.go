package services

import (
	"time"

	"github.com/meinhoongagan/slot-booking/metrics"
)

type settings struct {
	clock     Clock
	loc       *time.Location
	formatter NotificationFormatter
	metrics   *metrics.Collector
}

// Option customizes a service built by one of the New* constructors.
type Option func(*settings)

func WithClock(c Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithLocation sets the zone in which slots and days are computed.
func WithLocation(loc *time.Location) Option {
	return func(s *settings) { s.loc = loc }
}

func WithFormatter(f NotificationFormatter) Option {
	return func(s *settings) { s.formatter = f }
}

func WithMetrics(m *metrics.Collector) Option {
	return func(s *settings) { s.metrics = m }
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:     SystemClock,
		loc:       time.UTC,
		formatter: EnglishFormatter{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	return s
}
