package control

import (
	"math"

	"github.com/pkg/errors"

	"github.com/swervelib/swervecontrol/drive"
	"github.com/swervelib/swervecontrol/spatialmath"
)

// Holonomic converges a vehicle's measured drive state to a commanded
// trajectory state. Each Calculate call adds PD feedback on position and
// heading to the target state's own feedforward velocities and returns the
// resulting body-frame command.
//
// A Holonomic is owned by a single control loop and is not safe for
// concurrent use; the loop's fixed-tick discipline is the synchronization.
type Holonomic struct {
	linear *pdController
	theta  *pdController

	current    drive.State
	hasCurrent bool

	goalState     *drive.State
	goalTolerance *drive.State

	poseError spatialmath.Pose
}

// NewHolonomic builds a controller from linear and angular PD gains. period
// is the control interval in seconds at which Calculate will be called.
func NewHolonomic(linearKp, linearKd, thetaKp, thetaKd, period float64) *Holonomic {
	return &Holonomic{
		linear: newPDController(linearKp, linearKd, period, false),
		theta:  newPDController(thetaKp, thetaKd, period, true),
	}
}

// SetPID replaces the feedback gains. The new gains take effect on the next
// Calculate call.
func (h *Holonomic) SetPID(linearKp, linearKd, thetaKp, thetaKd float64) {
	h.linear.setGains(linearKp, linearKd)
	h.theta.setGains(thetaKp, thetaKd)
}

// ResetControllers clears both loops' derivative history. Call at the start
// of a new trajectory-following run.
func (h *Holonomic) ResetControllers() {
	h.linear.reset()
	h.theta.reset()
}

// ResetThetaController clears only the heading loop's derivative history.
func (h *Holonomic) ResetThetaController() {
	h.theta.reset()
}

// SetGoalState sets the state AtGoal converges against.
func (h *Holonomic) SetGoalState(goal drive.State) {
	h.goalState = &goal
}

// SetGoalTolerance sets the maximum allowed deviation per AtGoal field. The
// tolerance's translation is interpreted as a Euclidean norm bound, not
// per-axis bounds.
func (h *Holonomic) SetGoalTolerance(tolerance drive.State) {
	h.goalTolerance = &tolerance
}

// PoseError returns the target pose relative to the current pose as of the
// latest Calculate call, for diagnostics.
func (h *Holonomic) PoseError() spatialmath.Pose {
	return h.poseError
}

// Calculate returns the body-frame velocity command that tracks the target
// state from the current state.
func (h *Holonomic) Calculate(current, target drive.State) drive.ChassisSpeeds {
	h.current = current
	h.hasCurrent = true
	poseRef := target.Pose
	h.poseError = poseRef.RelativeTo(current.Pose)

	// Feedback drives the straight-line distance to the target position to
	// zero, projected onto the field axes through the bearing to the target.
	delta := poseRef.Translation().Sub(current.Pose.Translation())
	distance := delta.Norm()
	linearFeedback := h.linear.calculate(0, distance)
	var xFeedback, yFeedback float64
	if distance > 0 {
		bearing := math.Atan2(delta.Y, delta.X)
		xFeedback = linearFeedback * math.Cos(bearing)
		yFeedback = linearFeedback * math.Sin(bearing)
	}
	thetaFeedback := h.theta.calculate(
		current.Pose.Rotation().Radians(), poseRef.Rotation().Radians())

	return drive.ChassisSpeedsFromFieldRelative(
		target.VelocityX+xFeedback,
		target.VelocityY+yFeedback,
		target.AngularVelocity+thetaFeedback,
		current.Pose.Rotation(),
	)
}

// AtGoal reports whether the latest current state is within tolerance of the
// goal on position, heading, and all three velocity components at once. It
// errors if the goal, tolerance, or current state has not been supplied;
// comparing against an unset goal would yield a meaningless answer.
func (h *Holonomic) AtGoal() (bool, error) {
	if h.goalState == nil {
		return false, errors.New("goal state must be set before checking AtGoal")
	}
	if h.goalTolerance == nil {
		return false, errors.New("goal tolerance must be set before checking AtGoal")
	}
	if !h.hasCurrent {
		return false, errors.New("Calculate must be called before checking AtGoal")
	}

	goalPoseError := h.goalState.Pose.RelativeTo(h.current.Pose)
	withinPoseTolerance := goalPoseError.Translation().Norm() <= h.goalTolerance.Pose.Translation().Norm() &&
		math.Abs(goalPoseError.Rotation().Radians()) <= h.goalTolerance.Pose.Rotation().Radians()
	withinVelocityTolerance := math.Abs(h.current.VelocityX-h.goalState.VelocityX) < h.goalTolerance.VelocityX &&
		math.Abs(h.current.VelocityY-h.goalState.VelocityY) < h.goalTolerance.VelocityY &&
		math.Abs(h.current.AngularVelocity-h.goalState.AngularVelocity) < h.goalTolerance.AngularVelocity
	return withinPoseTolerance && withinVelocityTolerance, nil
}
