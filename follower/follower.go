// Package follower runs the per-tick trajectory-following pipeline: sample
// the profile at the elapsed time, mirror it for the current alliance side,
// and feed it with the latest pose estimate through the holonomic controller.
package follower

import (
	"github.com/edaniels/golog"

	"github.com/swervelib/swervecontrol/config"
	"github.com/swervelib/swervecontrol/control"
	"github.com/swervelib/swervecontrol/drive"
	"github.com/swervelib/swervecontrol/field"
	"github.com/swervelib/swervecontrol/trajectory"
)

// Follower tracks one trajectory with one controller. It is driven by a
// single control loop and is not safe for concurrent use.
type Follower struct {
	traj          *trajectory.Trajectory
	ctrl          *control.Holonomic
	mirror        *field.Mirror
	goalTolerance drive.State
	logger        golog.Logger
}

// GoalToleranceFromConfig shapes the follower config's goal tolerances into
// the controller's tolerance state.
func GoalToleranceFromConfig(f config.Follower) drive.State {
	return drive.NewState(
		f.GoalLinearTolerance, 0, f.GoalThetaTolerance,
		f.LinearVelocityTolerance, f.LinearVelocityTolerance, f.AngularVelocityTolerance,
	)
}

// New assembles a follower for one trajectory run.
func New(
	traj *trajectory.Trajectory,
	ctrl *control.Holonomic,
	mirror *field.Mirror,
	goalTolerance drive.State,
	logger golog.Logger,
) *Follower {
	return &Follower{
		traj:          traj,
		ctrl:          ctrl,
		mirror:        mirror,
		goalTolerance: goalTolerance,
		logger:        logger,
	}
}

// Start prepares the controller for a fresh run: derivative history is
// cleared and the goal tolerance installed. Call before the first Tick.
func (f *Follower) Start() {
	f.ctrl.ResetControllers()
	f.ctrl.SetGoalTolerance(f.goalTolerance)
	f.logger.Debugw("starting trajectory run", "duration", f.traj.Duration())
}

// Duration returns the trajectory's duration in seconds.
func (f *Follower) Duration() float64 {
	return f.traj.Duration()
}

// StartState returns the trajectory's start state mirrored for the current
// alliance side, e.g. to seed a simulated or estimated pose.
func (f *Follower) StartState() drive.State {
	return f.mirror.State(f.traj.StartState())
}

// Tick produces the body-frame command for the given elapsed run time and
// current state estimate. The goal state is refreshed from the (possibly
// mirrored) trajectory end state every tick, since the alliance side may
// still change during warm-up.
func (f *Follower) Tick(elapsed float64, current drive.State) drive.ChassisSpeeds {
	target := f.mirror.State(f.traj.Sample(elapsed))
	f.ctrl.SetGoalState(f.mirror.State(f.traj.EndState()))
	return f.ctrl.Calculate(current, target)
}

// Done reports whether the vehicle has converged to the trajectory's end
// state within the goal tolerance. It errors if Tick has not run yet.
func (f *Follower) Done() (bool, error) {
	return f.ctrl.AtGoal()
}
