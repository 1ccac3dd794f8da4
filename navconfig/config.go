// Package navconfig loads the small set of tunables a DwaPlanner needs from
// YAML: velocity/acceleration limits, per-layer cost weights, and the
// sampling/simulation parameters. It is deliberately narrow — the wire
// format for planner parameters only, not a general application config.
package navconfig

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/viamrobotics/gridnav/dwaplanner"
	"github.com/viamrobotics/gridnav/logging"
	"github.com/viamrobotics/gridnav/spatialmath"
)

// VelocityConfig mirrors spatialmath.Velocity with YAML tags.
type VelocityConfig struct {
	X     float64 `yaml:"x"`
	Theta float64 `yaml:"theta"`
}

func (v VelocityConfig) toVelocity() spatialmath.Velocity {
	return spatialmath.Velocity{X: v.X, Theta: v.Theta}
}

// AccelerationConfig mirrors spatialmath.Acceleration with YAML tags.
type AccelerationConfig struct {
	X     float64 `yaml:"x"`
	Theta float64 `yaml:"theta"`
}

func (a AccelerationConfig) toAcceleration() spatialmath.Acceleration {
	return spatialmath.Acceleration{X: a.X, Theta: a.Theta}
}

// LimitsConfig mirrors spatialmath.Limits with YAML tags.
type LimitsConfig struct {
	MaxVelocity VelocityConfig     `yaml:"max_velocity"`
	MinVelocity VelocityConfig     `yaml:"min_velocity"`
	MaxAccel    AccelerationConfig `yaml:"max_accel"`
	MinAccel    AccelerationConfig `yaml:"min_accel"`
}

func (l LimitsConfig) toLimits() spatialmath.Limits {
	return spatialmath.Limits{
		MaxVelocity: l.MaxVelocity.toVelocity(),
		MinVelocity: l.MinVelocity.toVelocity(),
		MaxAccel:    l.MaxAccel.toAcceleration(),
		MinAccel:    l.MinAccel.toAcceleration(),
	}
}

// Config is the YAML-serializable description of a DwaPlanner.
type Config struct {
	Limits             LimitsConfig       `yaml:"limits"`
	MapNameWeight      map[string]float64 `yaml:"map_name_weight"`
	ControllerDT       float64            `yaml:"controller_dt"`
	SimulationDuration float64            `yaml:"simulation_duration"`
	NumVelSample       int                `yaml:"num_vel_sample"`
}

// LoadConfig reads and parses a Config from the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config file %q", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "parsing %q: %s", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks the fields dwaplanner.New itself would reject, so a
// malformed file fails at load time with a config-shaped error instead of
// surfacing as dwaplanner.ErrInvalidParameters downstream.
func (c Config) validate() error {
	if err := c.Limits.toLimits().Validate(); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.ControllerDT <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "controller_dt %g must be positive", c.ControllerDT)
	}
	if c.SimulationDuration < c.ControllerDT {
		return errors.Wrapf(ErrInvalidConfig,
			"simulation_duration %g must be at least controller_dt %g", c.SimulationDuration, c.ControllerDT)
	}
	if c.NumVelSample < 1 {
		return errors.Wrapf(ErrInvalidConfig, "num_vel_sample %d must be at least 1", c.NumVelSample)
	}
	return nil
}

// Build constructs a dwaplanner.DwaPlanner from the config, attaching logger
// as its logging sink. Build revalidates the config so a Config assembled
// by hand (not through LoadConfig) is still caught before reaching
// dwaplanner.New.
func (c Config) Build(logger logging.Logger) (*dwaplanner.DwaPlanner, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	return dwaplanner.New(
		c.Limits.toLimits(),
		c.MapNameWeight,
		c.ControllerDT,
		c.SimulationDuration,
		c.NumVelSample,
		dwaplanner.WithLogger(logger),
	)
}
