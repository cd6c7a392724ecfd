package rx

import (
	"context"

	"github.com/zoobzio/clockz"
)

// config holds configuration options for a subscription.
type config struct {
	ctx     context.Context
	name    string
	metrics MetricsProvider
	clock   clockz.Clock
}

// Option configures a subscription.
type Option func(*config)

// WithContext sets the parent context of the subscription. Canceling it has
// the same effect as calling Unsubscribe. The Observer's Context derives from
// it, so values carried by ctx are visible to producers.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		c.ctx = ctx
	}
}

// WithName sets the name reported on lifecycle signals.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithMetrics sets a metrics provider for the subscription.
func WithMetrics(provider MetricsProvider) Option {
	return func(c *config) {
		c.metrics = provider
	}
}

// WithClock sets the clock used to time workers.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		ctx:     context.Background(),
		metrics: NoOpMetricsProvider{},
		clock:   clockz.RealClock,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}
	if cfg.metrics == nil {
		cfg.metrics = NoOpMetricsProvider{}
	}
	if cfg.clock == nil {
		cfg.clock = clockz.RealClock
	}
	return cfg
}
