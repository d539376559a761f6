package field

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"github.com/swervelib/swervecontrol/drive"
	"github.com/swervelib/swervecontrol/spatialmath"
)

const fieldLength = 16.541

func fixedSide(s Side) SideFunc {
	return func() Side { return s }
}

func TestShouldMirror(t *testing.T) {
	test.That(t, NewMirror(fieldLength, fixedSide(SideMirrored)).ShouldMirror(), test.ShouldBeTrue)
	test.That(t, NewMirror(fieldLength, fixedSide(SideNormal)).ShouldMirror(), test.ShouldBeFalse)
	test.That(t, NewMirror(fieldLength, fixedSide(SideUnknown)).ShouldMirror(), test.ShouldBeFalse)
	test.That(t, NewMirror(fieldLength, nil).ShouldMirror(), test.ShouldBeFalse)
}

func TestMirrorX(t *testing.T) {
	m := NewMirror(fieldLength, fixedSide(SideMirrored))
	test.That(t, m.X(2), test.ShouldAlmostEqual, fieldLength-2)
	test.That(t, m.X(m.X(2)), test.ShouldAlmostEqual, 2)

	unflipped := NewMirror(fieldLength, fixedSide(SideNormal))
	test.That(t, unflipped.X(2), test.ShouldAlmostEqual, 2)
}

func TestMirrorTranslation(t *testing.T) {
	m := NewMirror(fieldLength, fixedSide(SideMirrored))
	p := m.Translation(r2.Point{X: 3, Y: 4})
	test.That(t, p.X, test.ShouldAlmostEqual, fieldLength-3)
	test.That(t, p.Y, test.ShouldAlmostEqual, 4)
	// involution
	test.That(t, m.Translation(p).X, test.ShouldAlmostEqual, 3)
}

func TestMirrorRotation(t *testing.T) {
	m := NewMirror(fieldLength, fixedSide(SideMirrored))
	r := m.Rotation(spatialmath.NewRotation(math.Pi / 3))
	test.That(t, r.Cos(), test.ShouldAlmostEqual, -0.5)
	test.That(t, r.Sin(), test.ShouldAlmostEqual, math.Sqrt(3)/2)
	test.That(t, r.Radians(), test.ShouldAlmostEqual, 2*math.Pi/3)

	// involution
	back := m.Rotation(r)
	test.That(t, back.Radians(), test.ShouldAlmostEqual, math.Pi/3)
}

func TestMirrorPose(t *testing.T) {
	m := NewMirror(fieldLength, fixedSide(SideMirrored))
	p := m.Pose(spatialmath.NewPose(2, 5, 0))
	test.That(t, p.Translation().X, test.ShouldAlmostEqual, fieldLength-2)
	test.That(t, p.Translation().Y, test.ShouldAlmostEqual, 5)
	test.That(t, math.Abs(p.Rotation().Radians()), test.ShouldAlmostEqual, math.Pi)

	test.That(t, spatialmath.PoseAlmostEqual(m.Pose(p), spatialmath.NewPose(2, 5, 0), 1e-9), test.ShouldBeTrue)
}

func TestMirrorState(t *testing.T) {
	m := NewMirror(fieldLength, fixedSide(SideMirrored))
	s := drive.NewState(2, 5, math.Pi/4, 1.5, 0.5, 0.3)

	mirrored := m.State(s)
	test.That(t, mirrored.Pose.Translation().X, test.ShouldAlmostEqual, fieldLength-2)
	test.That(t, mirrored.Pose.Translation().Y, test.ShouldAlmostEqual, 5)
	test.That(t, mirrored.VelocityX, test.ShouldAlmostEqual, -1.5)
	test.That(t, mirrored.VelocityY, test.ShouldAlmostEqual, 0.5)
	test.That(t, mirrored.AngularVelocity, test.ShouldAlmostEqual, -0.3)

	back := m.State(mirrored)
	test.That(t, back.Pose.Translation().X, test.ShouldAlmostEqual, 2)
	test.That(t, back.VelocityX, test.ShouldAlmostEqual, 1.5)
	test.That(t, back.AngularVelocity, test.ShouldAlmostEqual, 0.3)

	unflipped := NewMirror(fieldLength, fixedSide(SideUnknown))
	test.That(t, unflipped.State(s), test.ShouldResemble, s)
}

func TestMirrorRectangleCanonicalCorners(t *testing.T) {
	m := NewMirror(fieldLength, fixedSide(SideMirrored))
	rect := RectangularRegion{
		MinCorner: r2.Point{X: 1, Y: 2},
		MaxCorner: r2.Point{X: 3, Y: 6},
	}

	mirrored := m.Rectangle(rect)
	// mirroring reverses x-order; the result must still be (min, max)
	test.That(t, mirrored.MinCorner.X, test.ShouldAlmostEqual, fieldLength-3)
	test.That(t, mirrored.MinCorner.Y, test.ShouldAlmostEqual, 2)
	test.That(t, mirrored.MaxCorner.X, test.ShouldAlmostEqual, fieldLength-1)
	test.That(t, mirrored.MaxCorner.Y, test.ShouldAlmostEqual, 6)
	test.That(t, mirrored.MinCorner.X, test.ShouldBeLessThanOrEqualTo, mirrored.MaxCorner.X)
	test.That(t, mirrored.MinCorner.Y, test.ShouldBeLessThanOrEqualTo, mirrored.MaxCorner.Y)

	back := m.Rectangle(mirrored)
	test.That(t, back.MinCorner.X, test.ShouldAlmostEqual, 1)
	test.That(t, back.MaxCorner.X, test.ShouldAlmostEqual, 3)
}

func TestMirrorCircle(t *testing.T) {
	m := NewMirror(fieldLength, fixedSide(SideMirrored))
	c := CircularRegion{Center: r2.Point{X: 4, Y: 1}, Radius: 0.75}

	mirrored := m.Circle(c)
	test.That(t, mirrored.Center.X, test.ShouldAlmostEqual, fieldLength-4)
	test.That(t, mirrored.Center.Y, test.ShouldAlmostEqual, 1)
	test.That(t, mirrored.Radius, test.ShouldAlmostEqual, 0.75)
}

func TestMirrorQueriesSideFresh(t *testing.T) {
	side := SideNormal
	m := NewMirror(fieldLength, func() Side { return side })
	test.That(t, m.X(2), test.ShouldAlmostEqual, 2)

	// the side flag can change between calls during warm-up
	side = SideMirrored
	test.That(t, m.X(2), test.ShouldAlmostEqual, fieldLength-2)
}

func TestRegionContains(t *testing.T) {
	rect := RectangularRegion{MinCorner: r2.Point{X: 0, Y: 0}, MaxCorner: r2.Point{X: 2, Y: 1}}
	test.That(t, rect.Contains(r2.Point{X: 1, Y: 0.5}), test.ShouldBeTrue)
	test.That(t, rect.Contains(r2.Point{X: 2, Y: 1}), test.ShouldBeTrue)
	test.That(t, rect.Contains(r2.Point{X: 2.1, Y: 0.5}), test.ShouldBeFalse)

	circle := CircularRegion{Center: r2.Point{X: 1, Y: 1}, Radius: 0.5}
	test.That(t, circle.Contains(r2.Point{X: 1.3, Y: 1}), test.ShouldBeTrue)
	test.That(t, circle.Contains(r2.Point{X: 1.6, Y: 1}), test.ShouldBeFalse)
}
