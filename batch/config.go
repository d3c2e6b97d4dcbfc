package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rdynamic/adjacency"
	"github.com/katalvlaran/rdynamic/coloring"
	"github.com/katalvlaran/rdynamic/lp"
	"github.com/katalvlaran/rdynamic/metrics"
	"github.com/katalvlaran/rdynamic/star"
)

// validate is a singleton validator instance
var validate = validator.New()

// Sweep kinds accepted in Config.Sweep.
const (
	SweepKindKR        = "kr"
	SweepKindAntiprism = "antiprism"
	SweepKindCirculant = "circulant"
	SweepKindStar      = "star"
)

// GraphConfig describes the graph of a kr sweep. Exactly one field is set.
type GraphConfig struct {
	List   map[int][]int `yaml:"list,omitempty"`
	Matrix [][]int       `yaml:"matrix,omitempty"`
	// Text uses the adjacency text format, one "v: n1 n2" line per vertex.
	Text string `yaml:"text,omitempty"`
}

// Adjacency resolves the configured graph.
func (g *GraphConfig) Adjacency() (adjacency.List, error) {
	set := 0
	if g.List != nil {
		set++
	}
	if g.Matrix != nil {
		set++
	}
	if strings.TrimSpace(g.Text) != "" {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: graph needs exactly one of list, matrix, text", ErrInvalidConfig)
	}

	var (
		l   adjacency.List
		err error
	)
	switch {
	case g.List != nil:
		l = adjacency.List(g.List)
	case g.Matrix != nil:
		l, err = adjacency.FromMatrix(adjacency.Matrix(g.Matrix))
	default:
		l, err = adjacency.ParseText(g.Text)
	}
	if err == nil {
		err = adjacency.Validate(l)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: graph: %v", ErrInvalidConfig, err)
	}

	return l, nil
}

// Config describes one sweep.
type Config struct {
	Sweep  string `yaml:"sweep" validate:"required,oneof=kr antiprism circulant star"`
	Method string `yaml:"method" validate:"required"`
	// K is the fixed color budget of antiprism, circulant and star sweeps.
	K int `yaml:"k,omitempty" validate:"min=0"`
	// R is the fixed order of star sweeps.
	R      int    `yaml:"r,omitempty" validate:"min=0"`
	KRange *Range `yaml:"k_range,omitempty"`
	RRange *Range `yaml:"r_range,omitempty"`
	NRange *Range `yaml:"n_range,omitempty"`
	Jumps  []int  `yaml:"jumps,omitempty" validate:"dive,min=1"`
	// Family selects star graphs: "full" or "max_degree".
	Family string `yaml:"family,omitempty" validate:"omitempty,oneof=full max_degree"`
	// MaxGraphs bounds star generation per order; zero means unbounded.
	MaxGraphs   int           `yaml:"max_graphs,omitempty" validate:"min=0"`
	Graph       *GraphConfig  `yaml:"graph,omitempty"`
	Workers     int           `yaml:"workers,omitempty" validate:"min=0"`
	UnitTimeout time.Duration `yaml:"unit_timeout,omitempty" validate:"min=0"`
}

// LoadConfig reads and validates a YAML sweep file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes and validates a YAML sweep description.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal encodes cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks field ranges and the fields each sweep kind requires.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if _, err := coloring.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var missing []string
	need := func(ok bool, field string) {
		if !ok {
			missing = append(missing, field)
		}
	}
	switch c.Sweep {
	case SweepKindKR:
		need(c.Graph != nil, "graph")
		need(c.KRange != nil, "k_range")
		need(c.RRange != nil, "r_range")
	case SweepKindAntiprism:
		need(c.K >= 1, "k >= 1")
		need(c.RRange != nil, "r_range")
		need(c.NRange != nil, "n_range")
	case SweepKindCirculant:
		need(c.K >= 1, "k >= 1")
		need(c.RRange != nil, "r_range")
		need(c.NRange != nil, "n_range")
		need(len(c.Jumps) > 0, "jumps")
	case SweepKindStar:
		need(c.K >= 1, "k >= 1")
		need(c.NRange != nil, "n_range")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s sweep requires %s", ErrInvalidConfig, c.Sweep, strings.Join(missing, ", "))
	}

	return nil
}

// Runner builds a Runner from the Workers and UnitTimeout fields.
func (c *Config) Runner(opts ...Option) *Runner {
	var base []Option
	if c.Workers > 0 {
		base = append(base, WithWorkers(c.Workers))
	}
	if c.UnitTimeout > 0 {
		base = append(base, WithUnitTimeout(c.UnitTimeout))
	}

	return NewRunner(append(base, opts...)...)
}

// Run executes the configured sweep. Unit failures land in the report;
// the error covers configuration problems only.
func (c *Config) Run(ctx context.Context, solver lp.Solver, reg *metrics.Registry) (*Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	method, _ := coloring.ParseMethod(c.Method)
	runner := c.Runner(WithMetrics(reg))

	switch c.Sweep {
	case SweepKindKR:
		adj, err := c.Graph.Adjacency()
		if err != nil {
			return nil, err
		}
		return runner.SweepKR(ctx, solver, adj, method, *c.KRange, *c.RRange), nil
	case SweepKindAntiprism:
		return runner.AntiprismSweep(ctx, solver, method, c.K, *c.RRange, *c.NRange), nil
	case SweepKindCirculant:
		return runner.CirculantSweep(ctx, solver, method, c.K, *c.RRange, *c.NRange, c.Jumps...), nil
	default:
		family := StarFamily(c.Family)
		if family == "" {
			family = FullSet
		}
		var opts []star.Option
		if c.MaxGraphs > 0 {
			opts = append(opts, star.WithMaxGraphs(c.MaxGraphs))
		}
		opts = append(opts, star.WithMetrics(reg))
		params := coloring.Params{Method: method, K: c.K, R: c.R}
		return runner.StarSweep(ctx, solver, family, params, *c.NRange, opts...)
	}
}

// formatValidationError converts validator errors into ErrInvalidConfig.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fe := validationErrors[0]
		return fmt.Errorf("%w: field %s failed %q (param %q, value %v)",
			ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	}

	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}
