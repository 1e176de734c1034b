package router

import (
	"github.com/katalvlaran/groute/maze"
	"github.com/katalvlaran/groute/net"
)

// SteinerTreeBuilder is the external Steiner-tree builder collaborator of
// spec §6; package steiner's DefaultBuilder satisfies it.
type SteinerTreeBuilder interface {
	MakeSteinerTree(xs, ys []int, s []int, accuracy int) (*net.StTree, error)
}

// Logger is the external logger sink of spec §6.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// CongestionSink receives per-tile capacity/usage/blockage updates from
// updateDbCongestion (spec §6, §4.6).
type CongestionSink interface {
	SetHCapacity(layer, x, y, value int)
	SetVCapacity(layer, x, y, value int)
	SetHUsage(layer, x, y, value int)
	SetVUsage(layer, x, y, value int)
	SetHBlockage(layer, x, y, value int)
	SetVBlockage(layer, x, y, value int)
}

// nopLogger discards everything; the default when no Logger is configured.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Config tunes a Router. Every field has a conservative default via
// DefaultConfig; the With... functions are the functional-options surface
// (spec's AMBIENT STACK: "every tunable surface is a type Option func(*Config)").
type Config struct {
	// OverflowIterations caps the number of rip-up-and-reroute passes
	// (spec §6 "setOverflowIterations").
	OverflowIterations int
	// AllowOverflow, if true, makes a non-zero final overflow a warning
	// instead of a fatal ErrCongestionTooHigh (spec §6 "setAllowOverflow").
	AllowOverflow bool
	// Verbose sets the logger verbosity level (spec §6 "setVerbose").
	Verbose int
	// MaxNetDegree bounds how large a net's pin count may be (spec §6
	// "setMaxNetDegree"); AddNet rejects nets above this when positive.
	MaxNetDegree int
	// Accuracy is passed to SteinerTreeBuilder.MakeSteinerTree.
	Accuracy int
	// ViaCost prices the layer change a pattern-routed L segment would
	// force at an endpoint already committed to the other candidate's
	// direction (spec §4.3 "via_cost is added for each endpoint whose
	// node status implies a layer change").
	ViaCost float64

	Builder SteinerTreeBuilder
	Logger  Logger
	Sink    CongestionSink

	Maze maze.Config
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns production-safe defaults: 25 overflow iterations,
// overflow not allowed, a no-op logger, no congestion sink, and the maze
// package's own DefaultConfig for the maze schedule's starting point.
func DefaultConfig() Config {
	return Config{
		OverflowIterations: 25,
		AllowOverflow:      false,
		Verbose:            0,
		MaxNetDegree:       0,
		Accuracy:           3,
		ViaCost:            2.0,
		Logger:             nopLogger{},
		Maze:               maze.DefaultConfig(),
	}
}

func WithOverflowIterations(n int) Option {
	if n <= 0 {
		panic("router: OverflowIterations must be positive")
	}

	return func(c *Config) { c.OverflowIterations = n }
}

func WithAllowOverflow(allow bool) Option {
	return func(c *Config) { c.AllowOverflow = allow }
}

func WithVerbose(level int) Option {
	return func(c *Config) { c.Verbose = level }
}

func WithMaxNetDegree(d int) Option {
	return func(c *Config) { c.MaxNetDegree = d }
}

func WithAccuracy(a int) Option {
	if a < 0 {
		panic("router: Accuracy must be non-negative")
	}

	return func(c *Config) { c.Accuracy = a }
}

func WithViaCost(v float64) Option {
	if v < 0 {
		panic("router: ViaCost must be non-negative")
	}

	return func(c *Config) { c.ViaCost = v }
}

func WithSteinerBuilder(b SteinerTreeBuilder) Option {
	return func(c *Config) { c.Builder = b }
}

func WithLogger(l Logger) Option {
	if l == nil {
		panic("router: Logger must not be nil")
	}

	return func(c *Config) { c.Logger = l }
}

func WithCongestionSink(s CongestionSink) Option {
	return func(c *Config) { c.Sink = s }
}

func WithMazeConfig(m maze.Config) Option {
	return func(c *Config) { c.Maze = m }
}

// NewConfig builds a Config from DefaultConfig() plus opts.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
