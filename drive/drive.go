// Package drive defines the kinematic value types exchanged between the
// trajectory, mirroring, and control packages.
package drive

import (
	"github.com/swervelib/swervecontrol/spatialmath"
	"github.com/swervelib/swervecontrol/utils"
)

// State is a snapshot of the vehicle's pose and velocities. Velocities are
// field-relative unless a call site documents otherwise. States are immutable
// value types.
type State struct {
	Pose            spatialmath.Pose
	VelocityX       float64
	VelocityY       float64
	AngularVelocity float64
}

// NewState builds a state from pose components and field-relative velocities.
func NewState(x, y, heading, vx, vy, omega float64) State {
	return State{
		Pose:            spatialmath.NewPose(x, y, heading),
		VelocityX:       vx,
		VelocityY:       vy,
		AngularVelocity: omega,
	}
}

// Interpolate moves from s toward other by the fraction t, interpolating the
// pose per spatialmath.Pose and each velocity component linearly.
func (s State) Interpolate(other State, t float64) State {
	return State{
		Pose:            s.Pose.Interpolate(other.Pose, t),
		VelocityX:       utils.Lerp(s.VelocityX, other.VelocityX, t),
		VelocityY:       utils.Lerp(s.VelocityY, other.VelocityY, t),
		AngularVelocity: utils.Lerp(s.AngularVelocity, other.AngularVelocity, t),
	}
}

// ChassisSpeeds is a body-frame velocity command: forward and leftward linear
// velocity in m/s and counterclockwise angular velocity in rad/s.
type ChassisSpeeds struct {
	VX    float64
	VY    float64
	Omega float64
}

// ChassisSpeedsFromFieldRelative rotates a field-relative velocity command
// into the body frame of a vehicle at the given heading.
func ChassisSpeedsFromFieldRelative(vx, vy, omega float64, heading spatialmath.Rotation) ChassisSpeeds {
	cos := heading.Cos()
	sin := heading.Sin()
	return ChassisSpeeds{
		VX:    vx*cos + vy*sin,
		VY:    -vx*sin + vy*cos,
		Omega: omega,
	}
}

// ToFieldRelative rotates a body-frame command back into the field frame at
// the given heading. It is the inverse of ChassisSpeedsFromFieldRelative.
func (c ChassisSpeeds) ToFieldRelative(heading spatialmath.Rotation) (vx, vy, omega float64) {
	cos := heading.Cos()
	sin := heading.Sin()
	return c.VX*cos - c.VY*sin, c.VX*sin + c.VY*cos, c.Omega
}
