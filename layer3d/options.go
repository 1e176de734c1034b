package layer3d

// Config tunes the layer-assignment DP (spec §4.5 step 3). The via-cost
// fields mirror the original engine's three transition costs: a cheap
// first-step via charge, a pricier mid-path charge, and a cheap final
// charge when landing on the destination node's layer envelope.
type Config struct {
	// NumLayers is the grid's layer count; AssignEdge iterates layers
	// [0, NumLayers).
	NumLayers int

	// ViaCostFirst is charged per layer-level crossed at grid index 0.
	ViaCostFirst int
	// ViaCostMid is charged per layer-level crossed at any interior index.
	ViaCostMid int
	// ViaCostLast is charged per layer-level crossed when settling on the
	// final grid index's layer.
	ViaCostLast int
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns the original engine's tuning: a first-step via
// costs 2 per level, an interior via costs 3 per level, and the final
// settle costs 1 per level.
func DefaultConfig(numLayers int) Config {
	return Config{
		NumLayers:    numLayers,
		ViaCostFirst: 2,
		ViaCostMid:   3,
		ViaCostLast:  1,
	}
}

// WithViaCosts overrides all three via-cost tiers at once.
func WithViaCosts(first, mid, last int) Option {
	return func(c *Config) {
		c.ViaCostFirst = first
		c.ViaCostMid = mid
		c.ViaCostLast = last
	}
}

// NewConfig builds a Config from DefaultConfig(numLayers) plus opts.
func NewConfig(numLayers int, opts ...Option) Config {
	cfg := DefaultConfig(numLayers)
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
