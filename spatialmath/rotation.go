// Package spatialmath implements the planar geometry used by a holonomic
// ground vehicle: rotations on the unit circle and 2D poses, with the
// relative-frame and interpolation operations the trajectory follower needs.
package spatialmath

import (
	"math"

	"github.com/swervelib/swervecontrol/utils"
)

// Rotation is a planar rotation stored as a point on the unit circle so that
// composing and mirroring rotations never loses the wrap-around structure of
// the angle.
type Rotation struct {
	cos, sin float64
}

// NewRotation returns the rotation for the given angle in radians.
func NewRotation(rad float64) Rotation {
	return Rotation{cos: math.Cos(rad), sin: math.Sin(rad)}
}

// NewRotationFromComponents returns the rotation whose direction matches the
// vector (x, y). A zero-length input yields the identity rotation rather than
// a NaN-filled one.
func NewRotationFromComponents(x, y float64) Rotation {
	norm := math.Hypot(x, y)
	if norm == 0 {
		return Rotation{cos: 1, sin: 0}
	}
	return Rotation{cos: x / norm, sin: y / norm}
}

// Radians returns the rotation's angle in (-pi, pi].
func (r Rotation) Radians() float64 {
	return math.Atan2(r.sin, r.cos)
}

// Cos returns the cosine component of the rotation.
func (r Rotation) Cos() float64 {
	return r.cos
}

// Sin returns the sine component of the rotation.
func (r Rotation) Sin() float64 {
	return r.sin
}

// RotateBy composes the two rotations.
func (r Rotation) RotateBy(other Rotation) Rotation {
	return Rotation{
		cos: r.cos*other.cos - r.sin*other.sin,
		sin: r.sin*other.cos + r.cos*other.sin,
	}
}

// Inverse returns the opposite rotation.
func (r Rotation) Inverse() Rotation {
	return Rotation{cos: r.cos, sin: -r.sin}
}

// Minus returns the rotation that takes other to r.
func (r Rotation) Minus(other Rotation) Rotation {
	return r.RotateBy(other.Inverse())
}

// Interpolate moves from r toward other by the fraction s along the shortest
// arc. s is clamped to [0, 1].
func (r Rotation) Interpolate(other Rotation, s float64) Rotation {
	s = utils.Clamp(s, 0, 1)
	delta := other.Minus(r).Radians()
	return r.RotateBy(NewRotation(delta * s))
}
