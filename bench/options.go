package bench

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	metrics "github.com/rcrowley/go-metrics"
)

// Option configures a Runner.
type Option func(*runnerConfig)

type runnerConfig struct {
	rng      *rand.Rand
	repeat   int
	verify   bool
	logger   *slog.Logger
	registry metrics.Registry
}

func newRunnerConfig(opts ...Option) runnerConfig {
	cfg := runnerConfig{
		repeat: 1,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.registry == nil {
		cfg.registry = metrics.NewRegistry()
	}

	return cfg
}

// WithSeed fixes the graph generator's random source.
func WithSeed(seed int64) Option {
	return func(c *runnerConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit random source with the graph generator.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bench: WithRand(nil)")
	}
	return func(c *runnerConfig) {
		c.rng = r
	}
}

// WithRepeat times n MST runs per scenario and reports their mean.
// Panics if n < 1.
func WithRepeat(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("bench: WithRepeat(%d): must be ≥ 1", n))
	}
	return func(c *runnerConfig) {
		c.repeat = n
	}
}

// WithVerify enables the forest-size cross-check after every scenario.
func WithVerify(on bool) Option {
	return func(c *runnerConfig) {
		c.verify = on
	}
}

// WithLogger sets the diagnostics logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(c *runnerConfig) {
		c.logger = l
	}
}

// WithRegistry records timing histograms into r instead of a private registry.
// Panics on nil.
func WithRegistry(r metrics.Registry) Option {
	if r == nil {
		panic("bench: WithRegistry(nil)")
	}
	return func(c *runnerConfig) {
		c.registry = r
	}
}
