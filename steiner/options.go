package steiner

// Mode names a builder variant (spec §4.2 "Two builder variants").
// DefaultBuilder does not read it: every Mode builds the same tree,
// weighted only by CoeffH/CoeffV.
type Mode int

const (
	// ModeNormal scales coordinates by a fixed (coeffH, coeffV) pair,
	// biasing every net the same way toward H-first or V-first topology.
	ModeNormal Mode = iota
	// ModeCongestionDriven names the variant that stretches coordinates
	// proportional to estimated congestion along each column/row strip;
	// that stretch is done only by calling StretchCongestion directly.
	ModeCongestionDriven
)

// Options configures a DefaultBuilder. Use DefaultOptions for the normal,
// unbiased (1.2, 1.0) scaling used when no congestion data is available yet.
type Options struct {
	Mode Mode

	// CoeffV/CoeffH weight vertical/horizontal distance during insertion
	// cost comparisons only; stored tree coordinates are always unscaled
	// (spec §4.2: "biases ... without altering its algorithm").
	CoeffV float64
	CoeffH float64
}

// Option configures Options. All Option functions modify the pointed-to
// Options.
type Option func(*Options)

// WithMode selects Normal or CongestionDriven scaling.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithCoeffV sets the vertical scaling coefficient. Typical values are
// 1.2 (H-biased) or 1.36 (V-biased), per spec §4.2.
func WithCoeffV(v float64) Option {
	return func(o *Options) { o.CoeffV = v }
}

// WithCoeffH sets the horizontal scaling coefficient.
func WithCoeffH(h float64) Option {
	return func(o *Options) { o.CoeffH = h }
}

// DefaultOptions returns Options initialized for Mode = ModeNormal,
// CoeffH = 1.0, CoeffV = 1.2, the unbiased baseline scaling.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeNormal,
		CoeffH: 1.0,
		CoeffV: 1.2,
	}
}
