package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Sentinel errors for configuration validation, surfaced by cmd/evacsim
// as exit code 2.
var (
	ErrInvalidDimensions = errors.New("config: L and C must be positive")
	ErrInvalidSeed       = errors.New("config: seed must be non-negative")
	ErrInvalidCount      = errors.New("config: num_simulations must be positive")
	ErrInvalidPedestrian = errors.New("config: exactly one of pedestrian count or density must be positive")
	ErrInvalidTolerance  = errors.New("config: tolerance must be positive")
)

// StaticFieldVariant selects which of the two static-field algorithms
// supplies the static attraction field a run's pedestrians consult.
type StaticFieldVariant int

const (
	// Zheng is the distance-based variant: one field over every open
	// exit cell.
	Zheng StaticFieldVariant = iota
	// Varas is the BFS-relaxation, per-exit variant: each accessible
	// exit's private field is combined by per-cell minimum distance
	// before the same distance-to-attraction transform Zheng uses.
	Varas
)

// Config holds every coefficient and flag the kernel needs as a minimum
// input, plus the ambient logging/reporting/ceiling fields cmd/evacsim
// adds.
type Config struct {
	// Grid dimensions.
	L, C int

	// StaticFieldVariant picks Zheng or Varas for this run; each run
	// configures which to use.
	StaticFieldVariant StaticFieldVariant

	// Sensitivities: static, dynamic, fire.
	Ks, Kd, Kf float64

	// Dynamic field diffusion coefficient and decay coefficient.
	Alpha, Delta float64

	// Inertia multiplier applied to the continuation direction.
	Omega float64

	// Collective same-target conflict denial probability.
	Mu float64

	// DiagonalCost is the relaxation step cost for a diagonal move in the
	// Varas static field; unused once the pedestrian stencil is fixed to
	// axial-only, kept for the field computation itself.
	DiagonalCost          float64
	PreventCornerCrossing bool

	ImmediateExit         bool
	AllowXMovement        bool
	IgnoreLatestSelfTrace bool
	VelocityDensityField  bool
	FireIsPresent         bool

	RiskDistance float64
	FireAlpha    float64
	FireGamma    float64
	SpreadRate   float64

	Seed           int64
	NumSimulations int

	PedestrianCount   int
	PedestrianDensity float64

	Tolerance float64

	// MaxTimesteps bounds a run that would otherwise loop forever under a
	// layout with no terminating configuration. Zero means unbounded.
	MaxTimesteps int

	LogLevel  string
	LogFormat string

	OutputDir    string
	HeatmapPath  string
	AnimationDir string
}

// Option configures a Config under construction, following a
// functional-options idiom (core.GraphOption).
type Option func(*Config)

func WithDimensions(lines, columns int) Option {
	return func(c *Config) { c.L, c.C = lines, columns }
}

func WithSensitivities(ks, kd, kf float64) Option {
	return func(c *Config) { c.Ks, c.Kd, c.Kf = ks, kd, kf }
}

func WithDiffusion(alpha, delta float64) Option {
	return func(c *Config) { c.Alpha, c.Delta = alpha, delta }
}

func WithInertia(omega float64) Option {
	return func(c *Config) { c.Omega = omega }
}

func WithConflictDenial(mu float64) Option {
	return func(c *Config) { c.Mu = mu }
}

func WithStaticFieldVariant(v StaticFieldVariant) Option {
	return func(c *Config) { c.StaticFieldVariant = v }
}

func WithDiagonalCost(cost float64, preventCornerCrossing bool) Option {
	return func(c *Config) {
		c.DiagonalCost = cost
		c.PreventCornerCrossing = preventCornerCrossing
	}
}

func WithImmediateExit(v bool) Option {
	return func(c *Config) { c.ImmediateExit = v }
}

func WithAllowXMovement(v bool) Option {
	return func(c *Config) { c.AllowXMovement = v }
}

func WithIgnoreLatestSelfTrace(v bool) Option {
	return func(c *Config) { c.IgnoreLatestSelfTrace = v }
}

func WithVelocityDensityField(v bool) Option {
	return func(c *Config) { c.VelocityDensityField = v }
}

func WithFire(present bool, riskDistance, fireAlpha, fireGamma, spreadRate float64) Option {
	return func(c *Config) {
		c.FireIsPresent = present
		c.RiskDistance = riskDistance
		c.FireAlpha = fireAlpha
		c.FireGamma = fireGamma
		c.SpreadRate = spreadRate
	}
}

func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

func WithNumSimulations(n int) Option {
	return func(c *Config) { c.NumSimulations = n }
}

func WithPedestrianCount(n int) Option {
	return func(c *Config) { c.PedestrianCount, c.PedestrianDensity = n, 0 }
}

func WithPedestrianDensity(d float64) Option {
	return func(c *Config) { c.PedestrianDensity, c.PedestrianCount = d, 0 }
}

func WithTolerance(t float64) Option {
	return func(c *Config) { c.Tolerance = t }
}

func WithMaxTimesteps(n int) Option {
	return func(c *Config) { c.MaxTimesteps = n }
}

func WithLogging(level, format string) Option {
	return func(c *Config) { c.LogLevel, c.LogFormat = level, format }
}

func WithReportPaths(outputDir, heatmapPath, animationDir string) Option {
	return func(c *Config) {
		c.OutputDir, c.HeatmapPath, c.AnimationDir = outputDir, heatmapPath, animationDir
	}
}

// defaults returns a Config pre-filled with conservative, widely-used
// values before any Option is applied.
func defaults() *Config {
	return &Config{
		NumSimulations: 1,
		Tolerance:      1e-9,
		Omega:          1,
		AllowXMovement: true,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// New builds a Config by applying opts over New's defaults, then
// validates the result.
// Complexity: O(len(opts)).
func New(opts ...Option) (*Config, error) {
	c := defaults()
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration-error class: bad dimensions,
// negative counts, and other malformed fields that must be fatal at
// setup.
func (c *Config) Validate() error {
	if c.L <= 0 || c.C <= 0 {
		return ErrInvalidDimensions
	}
	if c.Seed < 0 {
		return ErrInvalidSeed
	}
	if c.NumSimulations <= 0 {
		return ErrInvalidCount
	}
	if (c.PedestrianCount > 0) == (c.PedestrianDensity > 0) {
		return ErrInvalidPedestrian
	}
	if c.Tolerance <= 0 {
		return ErrInvalidTolerance
	}
	return nil
}

// FromViper builds a Config from a bound viper instance, the way
// cmd/evacsim wires pflag-declared flags into viper before construction.
// Keys match the flag names declared by cmd/evacsim. Every Option here
// overwrites New's defaults unconditionally, so cmd/evacsim's pflag
// definitions must set the same defaults as defaults() above (notably
// tolerance=1e-9, omega=1, allow-x-movement=true, num-simulations=1,
// log-level="info", log-format="text") — otherwise an unset flag reads
// back as viper's zero value and silently discards the corresponding
// default instead of preserving it.
func FromViper(v *viper.Viper) (*Config, error) {
	return New(
		WithDimensions(v.GetInt("lines"), v.GetInt("columns")),
		staticFieldVariantOption(v),
		WithSensitivities(v.GetFloat64("ks"), v.GetFloat64("kd"), v.GetFloat64("kf")),
		WithDiffusion(v.GetFloat64("alpha"), v.GetFloat64("delta")),
		WithInertia(v.GetFloat64("omega")),
		WithConflictDenial(v.GetFloat64("mu")),
		WithDiagonalCost(v.GetFloat64("diagonal-cost"), v.GetBool("prevent-corner-crossing")),
		WithImmediateExit(v.GetBool("immediate-exit")),
		WithAllowXMovement(v.GetBool("allow-x-movement")),
		WithIgnoreLatestSelfTrace(v.GetBool("ignore-latest-self-trace")),
		WithVelocityDensityField(v.GetBool("velocity-density-field")),
		WithFire(v.GetBool("fire"), v.GetFloat64("risk-distance"), v.GetFloat64("fire-alpha"), v.GetFloat64("fire-gamma"), v.GetFloat64("spread-rate")),
		WithSeed(v.GetInt64("seed")),
		WithNumSimulations(v.GetInt("num-simulations")),
		pedestrianOption(v),
		WithTolerance(v.GetFloat64("tolerance")),
		WithMaxTimesteps(v.GetInt("max-timesteps")),
		WithLogging(v.GetString("log-level"), v.GetString("log-format")),
		WithReportPaths(v.GetString("output-dir"), v.GetString("heatmap-path"), v.GetString("animation-dir")),
	)
}

// pedestrianOption picks count or density from whichever key viper has a
// positive value for, count taking precedence on a tie.
func pedestrianOption(v *viper.Viper) Option {
	if n := v.GetInt("pedestrian-count"); n > 0 {
		return WithPedestrianCount(n)
	}
	return WithPedestrianDensity(v.GetFloat64("pedestrian-density"))
}

// staticFieldVariantOption maps the "static-field" string flag ("zheng"
// or "varas") onto a StaticFieldVariant, defaulting to Zheng on any other
// value.
func staticFieldVariantOption(v *viper.Viper) Option {
	if v.GetString("static-field") == "varas" {
		return WithStaticFieldVariant(Varas)
	}
	return WithStaticFieldVariant(Zheng)
}
