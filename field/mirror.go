package field

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/swervelib/swervecontrol/drive"
	"github.com/swervelib/swervecontrol/spatialmath"
)

// Mirror reflects field geometry across the field's vertical center axis when
// the vehicle operates from the mirrored side. All methods are pure; the only
// inputs besides their arguments are the field length and the injected side
// accessor.
type Mirror struct {
	fieldLength float64
	side        SideFunc
}

// NewMirror returns a Mirror for a field of the given length along x. side
// may be nil, in which case nothing is ever mirrored.
func NewMirror(fieldLength float64, side SideFunc) *Mirror {
	return &Mirror{fieldLength: fieldLength, side: side}
}

// ShouldMirror reports whether geometry must currently be reflected. An
// unknown side means no.
func (m *Mirror) ShouldMirror() bool {
	return m.side != nil && m.side() == SideMirrored
}

// X reflects an x coordinate across the field's center axis.
func (m *Mirror) X(x float64) float64 {
	if m.ShouldMirror() {
		return m.fieldLength - x
	}
	return x
}

// Translation reflects a translation. Only the x component changes; the
// field is symmetric in y.
func (m *Mirror) Translation(t r2.Point) r2.Point {
	if m.ShouldMirror() {
		return r2.Point{X: m.X(t.X), Y: t.Y}
	}
	return t
}

// Rotation reflects a heading across the field's vertical axis: the cosine
// is negated and the sine preserved.
func (m *Mirror) Rotation(r spatialmath.Rotation) spatialmath.Rotation {
	if m.ShouldMirror() {
		return spatialmath.NewRotationFromComponents(-r.Cos(), r.Sin())
	}
	return r
}

// Pose reflects a pose's translation and rotation independently.
func (m *Mirror) Pose(p spatialmath.Pose) spatialmath.Pose {
	if m.ShouldMirror() {
		return spatialmath.NewPoseFromParts(m.Translation(p.Translation()), m.Rotation(p.Rotation()))
	}
	return p
}

// State reflects a drive state: the pose is mirrored and the x velocity and
// rotation sense reverse under the reflection, while the y velocity is kept.
func (m *Mirror) State(s drive.State) drive.State {
	if m.ShouldMirror() {
		return drive.State{
			Pose:            m.Pose(s.Pose),
			VelocityX:       -s.VelocityX,
			VelocityY:       s.VelocityY,
			AngularVelocity: -s.AngularVelocity,
		}
	}
	return s
}

// Rectangle reflects a rectangular region. Mirroring reverses the x-order of
// the corners, so both corners are transformed independently and then
// re-paired into a canonical (min, max) pair.
func (m *Mirror) Rectangle(r RectangularRegion) RectangularRegion {
	if m.ShouldMirror() {
		a := m.Translation(r.MinCorner)
		b := m.Translation(r.MaxCorner)
		return RectangularRegion{
			MinCorner: r2.Point{X: math.Min(a.X, b.X), Y: a.Y},
			MaxCorner: r2.Point{X: math.Max(a.X, b.X), Y: b.Y},
		}
	}
	return r
}

// Circle reflects a circular region by mirroring its center.
func (m *Mirror) Circle(c CircularRegion) CircularRegion {
	if m.ShouldMirror() {
		return CircularRegion{Center: m.Translation(c.Center), Radius: c.Radius}
	}
	return c
}
