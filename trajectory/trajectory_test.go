package trajectory

import (
	"testing"

	"go.viam.com/test"

	"github.com/swervelib/swervecontrol/drive"
)

func twoSampleTrajectory(t *testing.T) *Trajectory {
	t.Helper()
	traj, err := New([]Sample{
		{Timestamp: 0, State: drive.NewState(0, 0, 0, 0, 0, 0)},
		{Timestamp: 2, State: drive.NewState(4, 0, 0, 2, 0, 0)},
	})
	test.That(t, err, test.ShouldBeNil)
	return traj
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "at least one sample")

	_, err = New([]Sample{
		{Timestamp: 1, State: drive.NewState(0, 0, 0, 0, 0, 0)},
		{Timestamp: 0.5, State: drive.NewState(1, 0, 0, 0, 0, 0)},
	})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "non-decreasing")
}

func TestDurationAndEndpoints(t *testing.T) {
	traj := twoSampleTrajectory(t)
	test.That(t, traj.Duration(), test.ShouldAlmostEqual, 2)
	test.That(t, traj.StartState().Pose.Translation().X, test.ShouldAlmostEqual, 0)
	test.That(t, traj.EndState().Pose.Translation().X, test.ShouldAlmostEqual, 4)
}

func TestPoses(t *testing.T) {
	traj := twoSampleTrajectory(t)
	poses := traj.Poses()
	test.That(t, poses, test.ShouldHaveLength, 2)
	test.That(t, poses[0].Translation().X, test.ShouldAlmostEqual, 0)
	test.That(t, poses[1].Translation().X, test.ShouldAlmostEqual, 4)
}

func TestSampleMidpoint(t *testing.T) {
	traj := twoSampleTrajectory(t)
	state := traj.Sample(1.0)
	test.That(t, state.Pose.Translation().X, test.ShouldAlmostEqual, 2)
	test.That(t, state.Pose.Translation().Y, test.ShouldAlmostEqual, 0)
	test.That(t, state.Pose.Rotation().Radians(), test.ShouldAlmostEqual, 0)
	test.That(t, state.VelocityX, test.ShouldAlmostEqual, 1)
	test.That(t, state.VelocityY, test.ShouldAlmostEqual, 0)
	test.That(t, state.AngularVelocity, test.ShouldAlmostEqual, 0)
}

func TestSampleClampsOutOfRange(t *testing.T) {
	traj := twoSampleTrajectory(t)
	test.That(t, traj.Sample(-1), test.ShouldResemble, traj.StartState())
	test.That(t, traj.Sample(5), test.ShouldResemble, traj.EndState())
}

func TestSampleExactTimestamp(t *testing.T) {
	samples := []Sample{
		{Timestamp: 0, State: drive.NewState(0, 0, 0, 0, 0, 0)},
		{Timestamp: 0.7, State: drive.NewState(1.3, 0.2, 0.1, 1.1, 0.3, 0.05)},
		{Timestamp: 2, State: drive.NewState(4, 0, 0, 2, 0, 0)},
	}
	traj, err := New(samples)
	test.That(t, err, test.ShouldBeNil)
	for _, s := range samples {
		test.That(t, traj.Sample(s.Timestamp), test.ShouldResemble, s.State)
	}
}

func TestSampleInteriorBracketing(t *testing.T) {
	traj, err := New([]Sample{
		{Timestamp: 1, State: drive.NewState(0, 0, 0, 0, 0, 0)},
		{Timestamp: 2, State: drive.NewState(1, 1, 0, 1, 1, 0)},
		{Timestamp: 4, State: drive.NewState(3, 1, 0, 1, 0, 0)},
	})
	test.That(t, err, test.ShouldBeNil)

	// timestamps do not start at zero; before-range still clamps
	test.That(t, traj.Sample(0.5), test.ShouldResemble, traj.StartState())

	state := traj.Sample(3)
	test.That(t, state.Pose.Translation().X, test.ShouldAlmostEqual, 2)
	test.That(t, state.Pose.Translation().Y, test.ShouldAlmostEqual, 1)
	test.That(t, state.VelocityY, test.ShouldAlmostEqual, 0.5)
}
