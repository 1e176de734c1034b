// File: options.go
// Role: functional options for the maze router's per-pass tuning knobs —
// spec §4.4 "Iteration driver" tuning parameters, in the teacher's
// Options/Option/With... idiom.
package maze

import "github.com/katalvlaran/groute/grid"

// Config holds the tuning parameters for one maze-routing pass over a net.
// Every field has a conservative default via DefaultConfig; callers
// override individual knobs with With... options.
type Config struct {
	// CostHeight scales the logistic congestion penalty (spec §4.4 "h" in
	// the cost formula).
	CostHeight float64
	// LogisCof is the logistic steepness coefficient.
	LogisCof float64
	// Slope scales the over-capacity linear penalty term.
	Slope float64

	// RipupThreshold: an edge is only ripped up and re-routed if its
	// current usage+reduction is within RipupThreshold of its capacity
	// (spec §4.4 "newRipupCheck" avoids re-routing edges nowhere near
	// congested).
	RipupThreshold int

	// BaseEnlarge is the upper bound (in tiles) on the search-region
	// padding added around an edge's endpoints; EnlargeForIter returns the
	// smaller of it and a padding that grows with the iteration count.
	BaseEnlarge int

	// L toggles whether the congestion-history term (grid.Edge2D.LastUsage)
	// is folded into the cost-table lookup key alongside usage+red (spec
	// §4.4 "usage + red + L · last_usage"). L's deeper semantics beyond
	// "enable history" are unspecified (spec §9 Open Questions); any
	// non-zero value enables it.
	L int

	// Decay enables congestion-history decay on non-overflowing edges each
	// pass (spec §4.4 "History / cost evolution"; FastRoute's stopDEC,
	// inverted).
	Decay bool
	// HistoryUpType selects how a non-overflowing edge's CongCNT is
	// adjusted when Decay is enabled (spec §4.4 "up_type").
	HistoryUpType grid.UpType
	// StrAccuRound is the rnd argument to grid.UpdateCongestionHistory: an
	// edge whose CongCNT exceeds this round number is treated as a
	// persistent offender and gets a str_accu boost (spec §4.4
	// "str_accu(rnd)"; grounded on FastRoute.cpp's str_accu(12) call).
	StrAccuRound int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the tuning parameters the iteration driver starts
// from absent caller overrides.
func DefaultConfig() Config {
	return Config{
		CostHeight:     4.0,
		LogisCof:       2.0,
		Slope:          5.0,
		RipupThreshold: 0,
		BaseEnlarge:    3,
		L:              1,
		Decay:          true,
		HistoryUpType:  grid.UpTypeHold,
		StrAccuRound:   12,
	}
}

// WithCostHeight overrides the logistic cost-function height.
func WithCostHeight(h float64) Option { return func(c *Config) { c.CostHeight = h } }

// WithLogisCof overrides the logistic steepness coefficient.
func WithLogisCof(k float64) Option { return func(c *Config) { c.LogisCof = k } }

// WithSlope overrides the over-capacity linear penalty slope.
func WithSlope(s float64) Option { return func(c *Config) { c.Slope = s } }

// WithRipupThreshold overrides the rip-up eligibility margin.
func WithRipupThreshold(t int) Option { return func(c *Config) { c.RipupThreshold = t } }

// WithBaseEnlarge overrides the cap on the search-region padding.
func WithBaseEnlarge(e int) Option { return func(c *Config) { c.BaseEnlarge = e } }

// WithL overrides the history-term toggle in the cost-table lookup key.
func WithL(l int) Option { return func(c *Config) { c.L = l } }

// WithDecay overrides whether non-overflowing edges decay their
// congestion history each pass.
func WithDecay(decay bool) Option { return func(c *Config) { c.Decay = decay } }

// WithHistoryUpType overrides the CongCNT adjustment rule applied to
// non-overflowing edges.
func WithHistoryUpType(t grid.UpType) Option { return func(c *Config) { c.HistoryUpType = t } }

// WithStrAccuRound overrides the persistent-offender round threshold.
func WithStrAccuRound(rnd int) Option { return func(c *Config) { c.StrAccuRound = rnd } }

// NewConfig builds a Config from DefaultConfig plus the given options.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// EnlargeForIter computes the search-region padding for rip-up-and-reroute
// iteration iter given a route's current length routelen (spec §4.4
// "enlarge = min(origEnlarge, (iter/6+3)*routelen)").
func (c Config) EnlargeForIter(iter, routelen int) int {
	if routelen < 1 {
		routelen = 1
	}
	grown := (iter/6 + 3) * routelen
	if grown < c.BaseEnlarge {
		return grown
	}

	return c.BaseEnlarge
}
