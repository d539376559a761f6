package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/swervelib/swervecontrol/utils"
)

// Pose is a planar position and heading in the field frame. Poses are value
// types; operations return new poses.
type Pose struct {
	translation r2.Point
	rotation    Rotation
}

// NewPose returns the pose at (x, y) with the given heading in radians.
func NewPose(x, y, heading float64) Pose {
	return Pose{translation: r2.Point{X: x, Y: y}, rotation: NewRotation(heading)}
}

// NewPoseFromParts assembles a pose from a translation and rotation.
func NewPoseFromParts(translation r2.Point, rotation Rotation) Pose {
	return Pose{translation: translation, rotation: rotation}
}

// Translation returns the pose's position.
func (p Pose) Translation() r2.Point {
	return p.translation
}

// Rotation returns the pose's heading.
func (p Pose) Rotation() Rotation {
	return p.rotation
}

// RelativeTo returns this pose expressed in the frame of other, i.e. the
// transform that takes other to p.
func (p Pose) RelativeTo(other Pose) Pose {
	delta := p.translation.Sub(other.translation)
	cos := other.rotation.Cos()
	sin := other.rotation.Sin()
	// rotate the translation delta into other's frame
	local := r2.Point{
		X: delta.X*cos + delta.Y*sin,
		Y: -delta.X*sin + delta.Y*cos,
	}
	return Pose{translation: local, rotation: p.rotation.Minus(other.rotation)}
}

// Interpolate moves from p toward other by the fraction s, translating
// linearly and rotating along the shortest arc. s is clamped to [0, 1].
func (p Pose) Interpolate(other Pose, s float64) Pose {
	s = utils.Clamp(s, 0, 1)
	return Pose{
		translation: r2.Point{
			X: utils.Lerp(p.translation.X, other.translation.X, s),
			Y: utils.Lerp(p.translation.Y, other.translation.Y, s),
		},
		rotation: p.rotation.Interpolate(other.rotation, s),
	}
}

// PoseAlmostEqual reports whether two poses coincide within epsilon in both
// translation components and in heading, with the heading comparison taken
// through the angular wrap.
func PoseAlmostEqual(a, b Pose, epsilon float64) bool {
	return scalar.EqualWithinAbs(a.translation.X, b.translation.X, epsilon) &&
		scalar.EqualWithinAbs(a.translation.Y, b.translation.Y, epsilon) &&
		scalar.EqualWithinAbs(utils.AngleDiff(a.rotation.Radians(), b.rotation.Radians()), 0, epsilon)
}

func (p Pose) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f rad)", p.translation.X, p.translation.Y, p.rotation.Radians())
}
