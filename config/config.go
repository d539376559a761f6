// Package config holds the constant tables the control core is parameterized
// by: drive geometry, follower gains and tolerances, and loop frequencies.
// All values are in meters, radians, and seconds (m/s, rad/s). Defaults match
// a competition swerve base; a JSON document can override any subset.
package config

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
)

// Drive describes the vehicle's physical envelope.
type Drive struct {
	TrackwidthX            float64 `json:"trackwidth_x"`
	TrackwidthY            float64 `json:"trackwidth_y"`
	WheelRadius            float64 `json:"wheel_radius"`
	MaxLinearVelocity      float64 `json:"max_linear_velocity"`
	MaxLinearAcceleration  float64 `json:"max_linear_acceleration"`
	MaxAngularVelocity     float64 `json:"max_angular_velocity"`
	MaxAngularAcceleration float64 `json:"max_angular_acceleration"`
}

// DriveBaseRadius returns the distance from the drive base center to a
// wheel module.
func (d Drive) DriveBaseRadius() float64 {
	return math.Hypot(d.TrackwidthX/2, d.TrackwidthY/2)
}

// Follower holds the trajectory follower's feedback gains and its two
// tolerance tiers: the tracking tolerance used mid-trajectory and the goal
// tolerance used for final convergence.
type Follower struct {
	LinearKp float64 `json:"linear_kp"`
	LinearKd float64 `json:"linear_kd"`
	ThetaKp  float64 `json:"theta_kp"`
	ThetaKd  float64 `json:"theta_kd"`

	LinearTolerance          float64 `json:"linear_tolerance"`
	ThetaTolerance           float64 `json:"theta_tolerance"`
	GoalLinearTolerance      float64 `json:"goal_linear_tolerance"`
	GoalThetaTolerance       float64 `json:"goal_theta_tolerance"`
	LinearVelocityTolerance  float64 `json:"linear_velocity_tolerance"`
	AngularVelocityTolerance float64 `json:"angular_velocity_tolerance"`
}

// Config is the full constant table for the control core.
type Config struct {
	// FieldLength is the field's extent along x, the axis mirrored
	// between alliance sides.
	FieldLength float64 `json:"field_length"`

	ControlFrequency  float64 `json:"control_frequency"`
	OdometryFrequency float64 `json:"odometry_frequency"`

	Drive    Drive    `json:"drive"`
	Follower Follower `json:"follower"`
}

const (
	inchesToMeters  = 0.0254
	degreesToRadian = math.Pi / 180
	feetToMeters    = 0.3048
)

// Default returns the built-in constant table.
func Default() Config {
	drive := Drive{
		TrackwidthX:            25.0 * inchesToMeters,
		TrackwidthY:            25.0 * inchesToMeters,
		WheelRadius:            2.0 * inchesToMeters,
		MaxLinearVelocity:      13.05 * feetToMeters,
		MaxLinearAcceleration:  30.02 * feetToMeters,
		MaxAngularVelocity:     8.86,
		MaxAngularAcceleration: 43.97,
	}
	return Config{
		FieldLength:       16.541,
		ControlFrequency:  50.0,
		OdometryFrequency: 250.0,
		Drive:             drive,
		Follower: Follower{
			LinearKp:                 6.0,
			LinearKd:                 0.0,
			ThetaKp:                  10.0,
			ThetaKd:                  0.0,
			LinearTolerance:          4.0 * inchesToMeters,
			ThetaTolerance:           5.0 * degreesToRadian,
			GoalLinearTolerance:      5.0 * inchesToMeters,
			GoalThetaTolerance:       7.0 * degreesToRadian,
			LinearVelocityTolerance:  drive.MaxLinearVelocity / 2.0,
			AngularVelocityTolerance: drive.MaxAngularVelocity / 2.0,
		},
	}
}

// FromFile returns the default table with the JSON document at path applied
// over it.
func FromFile(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "cannot open config file %q", path)
	}
	defer goutils.UncheckedErrorFunc(f.Close)
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, errors.Wrapf(err, "malformed config file %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config file %q", path)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	if c.FieldLength <= 0 {
		err = multierr.Append(err, errors.New("field_length must be positive"))
	}
	if c.ControlFrequency <= 0 {
		err = multierr.Append(err, errors.New("control_frequency must be positive"))
	}
	if c.OdometryFrequency < c.ControlFrequency {
		err = multierr.Append(err, errors.New("odometry_frequency must be at least control_frequency"))
	}
	if c.Follower.LinearKp < 0 || c.Follower.LinearKd < 0 || c.Follower.ThetaKp < 0 || c.Follower.ThetaKd < 0 {
		err = multierr.Append(err, errors.New("follower gains must be non-negative"))
	}
	for name, tol := range map[string]float64{
		"linear_tolerance":           c.Follower.LinearTolerance,
		"theta_tolerance":            c.Follower.ThetaTolerance,
		"goal_linear_tolerance":      c.Follower.GoalLinearTolerance,
		"goal_theta_tolerance":       c.Follower.GoalThetaTolerance,
		"linear_velocity_tolerance":  c.Follower.LinearVelocityTolerance,
		"angular_velocity_tolerance": c.Follower.AngularVelocityTolerance,
	} {
		if tol <= 0 {
			err = multierr.Append(err, errors.Errorf("%s must be positive", name))
		}
	}
	return err
}

// ControlPeriod returns the control loop interval.
func (c Config) ControlPeriod() float64 {
	return 1.0 / c.ControlFrequency
}
