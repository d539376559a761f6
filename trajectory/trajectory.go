// Package trajectory loads externally authored, discretely sampled motion
// profiles and exposes continuous-time interpolated drive states.
package trajectory

import (
	"github.com/pkg/errors"

	"github.com/swervelib/swervecontrol/drive"
	"github.com/swervelib/swervecontrol/spatialmath"
)

// Sample is one timestamped drive state of a motion profile.
type Sample struct {
	Timestamp float64
	State     drive.State
}

// Trajectory is an immutable, time-ordered sequence of samples. Construct one
// with New or Load; the zero value is not usable.
type Trajectory struct {
	samples []Sample
}

// New validates the sample sequence and wraps it in a Trajectory. The
// sequence must be non-empty with non-decreasing timestamps.
func New(samples []Sample) (*Trajectory, error) {
	if len(samples) == 0 {
		return nil, errors.New("trajectory must contain at least one sample")
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Timestamp < samples[i-1].Timestamp {
			return nil, errors.Errorf(
				"trajectory timestamps must be non-decreasing: sample %d at %f follows %f",
				i, samples[i].Timestamp, samples[i-1].Timestamp)
		}
	}
	owned := make([]Sample, len(samples))
	copy(owned, samples)
	return &Trajectory{samples: owned}, nil
}

// Duration returns the timestamp of the final sample.
func (t *Trajectory) Duration() float64 {
	return t.samples[len(t.samples)-1].Timestamp
}

// StartState returns the first sample's drive state.
func (t *Trajectory) StartState() drive.State {
	return t.samples[0].State
}

// EndState returns the last sample's drive state.
func (t *Trajectory) EndState() drive.State {
	return t.samples[len(t.samples)-1].State
}

// Poses returns every sample's pose in order, for path visualization.
func (t *Trajectory) Poses() []spatialmath.Pose {
	poses := make([]spatialmath.Pose, 0, len(t.samples))
	for _, s := range t.samples {
		poses = append(poses, s.State.Pose)
	}
	return poses
}

// Sample returns the drive state at the given time in seconds. Times before
// the first sample clamp to the start state and times after the last clamp to
// the end state; no extrapolation is performed. An exact timestamp hit
// returns that sample's state with no interpolation, otherwise the state is
// interpolated between the bracketing samples.
func (t *Trajectory) Sample(timeSeconds float64) drive.State {
	var before, after *Sample
	for i := range t.samples {
		s := &t.samples[i]
		if s.Timestamp == timeSeconds {
			return s.State
		}
		if s.Timestamp < timeSeconds {
			before = s
		} else {
			after = s
			break
		}
	}

	if before == nil {
		return t.StartState()
	}
	if after == nil {
		return t.EndState()
	}

	s := (timeSeconds - before.Timestamp) / (after.Timestamp - before.Timestamp)
	return before.State.Interpolate(after.State, s)
}
