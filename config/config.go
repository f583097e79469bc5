// SPDX-License-Identifier: MIT
// Package: config
//
// config.go — YAML run description: which spin system, which temperatures,
// which enumeration limits.
//
// Contract:
//   • Exactly one of `lattice` or `spins` describes the system.
//   • Unknown YAML keys are rejected (typos must not silently change a run).
//   • Struct-level rules are enforced by go-playground/validator; cross-field
//     rules (system choice, distribution parameters) by Validate.
//   • Explicit edges must carry a weight, else ising.ErrWeightRequired.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ising/ising"
)

// Lattice kinds accepted in `lattice.kind`.
const (
	KindCycle         = "cycle"
	KindPath          = "path"
	KindStar          = "star"
	KindWheel         = "wheel"
	KindComplete      = "complete"
	KindGrid          = "grid"
	KindTorus         = "torus"
	KindRandomSparse  = "random_sparse"
	KindRandomRegular = "random_regular"
)

// Coupling distributions accepted in `lattice.distribution`.
const (
	DistConstant    = "constant"
	DistUniform     = "uniform"
	DistNormal      = "normal"
	DistBimodal     = "bimodal"
	DistExponential = "exponential"
)

// Default sweep grid when `temperatures` is omitted: T = 0.1, 0.2, ..., 9.9.
const (
	DefaultSweepStep  = 0.1
	DefaultSweepCount = 99
)

var (
	// ErrInvalid wraps every validation failure of a run description.
	ErrInvalid = errors.New("config: invalid run description")

	// ErrSystemChoice indicates that both or neither of `lattice` and `spins` are set.
	ErrSystemChoice = errors.New("config: exactly one of lattice or spins must be set")

	// ErrUnknownSpin indicates an edge endpoint or vacancy naming no declared spin.
	ErrUnknownSpin = errors.New("config: unknown spin")
)

var validate = validator.New()

// Run is one complete job: a spin system plus the temperatures to evaluate.
type Run struct {
	// Lattice generates the system from a builder constructor.
	Lattice *Lattice `yaml:"lattice"`

	// Spins and Edges describe the system explicitly.
	Spins []string `yaml:"spins" validate:"omitempty,unique,dive,required"`
	Edges []Edge   `yaml:"edges" validate:"dive"`

	// Vacancies removes sites (and their bonds) from either form.
	Vacancies []string `yaml:"vacancies" validate:"omitempty,unique,dive,required"`

	Temperatures Temperatures `yaml:"temperatures"`

	MaxSpins      int  `yaml:"max_spins" validate:"gte=0,lte=63"`
	Workers       int  `yaml:"workers" validate:"gte=0"`
	SweepWorkers  int  `yaml:"sweep_workers" validate:"gte=0"`
	CollectErrors bool `yaml:"collect_errors"`
}

// Lattice selects a generated bond graph and its coupling distribution.
type Lattice struct {
	Kind        string  `yaml:"kind" validate:"required,oneof=cycle path star wheel complete grid torus random_sparse random_regular"`
	Size        int     `yaml:"size" validate:"gte=0"`
	Rows        int     `yaml:"rows" validate:"gte=0"`
	Cols        int     `yaml:"cols" validate:"gte=0"`
	Degree      int     `yaml:"degree" validate:"gte=0"`
	Probability float64 `yaml:"probability" validate:"gte=0,lte=1"`
	Seed        int64   `yaml:"seed"`

	// Distribution defaults to constant; Coupling is then required.
	Distribution string   `yaml:"distribution" validate:"omitempty,oneof=constant uniform normal bimodal exponential"`
	Coupling     *float64 `yaml:"coupling"`
	Min          float64  `yaml:"min"`
	Max          float64  `yaml:"max"`
	Mean         float64  `yaml:"mean"`
	Stddev       float64  `yaml:"stddev" validate:"gte=0"`
	Rate         float64  `yaml:"rate" validate:"gte=0"`
}

// Edge is one explicit coupling between two declared spins.
type Edge struct {
	From   string   `yaml:"from" validate:"required"`
	To     string   `yaml:"to" validate:"required"`
	Weight *float64 `yaml:"weight"`
}

// Temperatures lists explicit values or describes a grid.
// Precedence: List, then Step (T = step·i, i = 1..count), then Start/Stop/Count.
type Temperatures struct {
	List  []float64 `yaml:"list" validate:"omitempty,dive,gt=0"`
	Step  float64   `yaml:"step" validate:"gte=0"`
	Start float64   `yaml:"start" validate:"gte=0"`
	Stop  float64   `yaml:"stop" validate:"gte=0"`
	Count int       `yaml:"count" validate:"gte=0"`
}

// Load reads and parses the run description at path.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Parse decodes a YAML run description and validates it.
func Parse(data []byte) (*Run, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Run
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Ring is the run for an N-site cycle with uniform coupling j and the
// default sweep grid.
func Ring(n int, j float64) *Run {
	return &Run{Lattice: &Lattice{Kind: KindCycle, Size: n, Coupling: &j}}
}

// Validate checks struct tags and cross-field rules.
func (r *Run) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if (r.Lattice == nil) == (len(r.Spins) == 0) {
		return ErrSystemChoice
	}
	if r.Lattice == nil {
		return nil
	}
	if len(r.Edges) > 0 {
		return fmt.Errorf("%w: edges require spins, not lattice", ErrSystemChoice)
	}

	return r.Lattice.validateDistribution()
}

func (l *Lattice) validateDistribution() error {
	switch l.Distribution {
	case "", DistConstant, DistBimodal:
		if l.Coupling == nil {
			return fmt.Errorf("config: lattice %s coupling: %w", l.Kind, ising.ErrWeightRequired)
		}
	case DistUniform:
		if l.Max < l.Min {
			return fmt.Errorf("%w: uniform max=%g < min=%g", ErrInvalid, l.Max, l.Min)
		}
	case DistExponential:
		if l.Rate <= 0 {
			return fmt.Errorf("%w: exponential rate=%g must be > 0", ErrInvalid, l.Rate)
		}
	}

	return nil
}

// Values expands the temperature description into an ordered list.
// An empty description yields the default grid.
func (t Temperatures) Values() ([]float64, error) {
	switch {
	case len(t.List) > 0:
		out := make([]float64, len(t.List))
		copy(out, t.List)
		return out, nil
	case t.Step > 0:
		return ising.SteppedTemperatures(t.Step, t.Count)
	case t.Start == 0 && t.Stop == 0 && t.Count == 0:
		return ising.SteppedTemperatures(DefaultSweepStep, DefaultSweepCount)
	default:
		return ising.LinearTemperatures(t.Start, t.Stop, t.Count)
	}
}

// Averager returns an averager honouring max_spins and workers; extra
// options are applied afterwards.
func (r *Run) Averager(opts ...ising.Option) *ising.Averager {
	var base []ising.Option
	if r.MaxSpins > 0 {
		base = append(base, ising.WithMaxSpins(r.MaxSpins))
	}
	if r.Workers > 0 {
		base = append(base, ising.WithWorkers(r.Workers))
	}

	return ising.NewAverager(append(base, opts...)...)
}

// SweepOptions maps sweep_workers and collect_errors to sweep options.
func (r *Run) SweepOptions() []ising.SweepOption {
	var opts []ising.SweepOption
	if r.SweepWorkers > 0 {
		opts = append(opts, ising.WithSweepWorkers(r.SweepWorkers))
	}
	if r.CollectErrors {
		opts = append(opts, ising.WithCollectErrors())
	}

	return opts
}
