// Package main runs a trajectory follow loop against a simulated kinematic
// plant, as a wiring example and a tuning harness for gains and tolerances.
package main

import (
	"context"
	"flag"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/swervelib/swervecontrol/config"
	"github.com/swervelib/swervecontrol/control"
	"github.com/swervelib/swervecontrol/drive"
	"github.com/swervelib/swervecontrol/field"
	"github.com/swervelib/swervecontrol/follower"
	"github.com/swervelib/swervecontrol/odometry"
	"github.com/swervelib/swervecontrol/spatialmath"
	"github.com/swervelib/swervecontrol/trajectory"
)

func main() {
	goutils.ContextualMain(mainWithArgs, golog.NewDevelopmentLogger("trajrunner"))
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	trajPath := flags.String("trajectory", "", "path to a trajectory document")
	cfgPath := flags.String("config", "", "optional path to config overrides")
	mirrored := flags.Bool("mirrored", false, "run from the mirrored field side")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if *trajPath == "" {
		return errors.New("-trajectory is required")
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.FromFile(*cfgPath); err != nil {
			return err
		}
	}
	traj, err := trajectory.Load(*trajPath)
	if err != nil {
		return err
	}

	side := field.SideNormal
	if *mirrored {
		side = field.SideMirrored
	}
	mirror := field.NewMirror(cfg.FieldLength, func() field.Side { return side })
	ctrl := control.NewHolonomic(
		cfg.Follower.LinearKp, cfg.Follower.LinearKd,
		cfg.Follower.ThetaKp, cfg.Follower.ThetaKd,
		cfg.ControlPeriod(),
	)
	run := follower.New(traj, ctrl, mirror, follower.GoalToleranceFromConfig(cfg.Follower), logger)

	// The plant is shared between the control loop and the odometry
	// sampler, standing in for real sensors.
	var plantMu sync.Mutex
	current := run.StartState()

	sampler, err := odometry.NewSampler(cfg.OdometryFrequency, clock.New(), logger)
	if err != nil {
		return err
	}
	xQueue := sampler.RegisterSignal(func() float64 {
		plantMu.Lock()
		defer plantMu.Unlock()
		return current.Pose.Translation().X
	})
	headingQueue := sampler.RegisterSignal(func() float64 {
		plantMu.Lock()
		defer plantMu.Unlock()
		return current.Pose.Rotation().Radians()
	})
	sampler.Start()
	defer sampler.Stop()

	run.Start()
	logger.Infow("following trajectory",
		"duration", traj.Duration(), "samples", len(traj.Poses()), "mirrored", *mirrored)

	period := cfg.ControlPeriod()
	tick := time.Duration(period * float64(time.Second))
	timeout := traj.Duration() + 2.0
	var captured int
	for elapsed := 0.0; ; elapsed += period {
		plantMu.Lock()
		cur := current
		plantMu.Unlock()

		speeds := run.Tick(elapsed, cur)

		// Integrate the command as a perfect kinematic plant.
		vx, vy, omega := speeds.ToFieldRelative(cur.Pose.Rotation())
		translation := cur.Pose.Translation()
		next := drive.State{
			Pose: spatialmath.NewPose(
				translation.X+vx*period,
				translation.Y+vy*period,
				cur.Pose.Rotation().Radians()+omega*period,
			),
			VelocityX:       vx,
			VelocityY:       vy,
			AngularVelocity: omega,
		}
		plantMu.Lock()
		current = next
		plantMu.Unlock()

		captured += len(xQueue.Drain()) + len(headingQueue.Drain())

		if elapsed >= traj.Duration() {
			done, err := run.Done()
			if err != nil {
				return err
			}
			if done {
				logger.Infow("converged to goal",
					"pose", next.Pose, "elapsed", elapsed, "odometry_samples", captured)
				return nil
			}
			if elapsed > timeout {
				return errors.Errorf("did not converge within %.1fs, pose error %v",
					timeout, ctrl.PoseError())
			}
		}
		if !goutils.SelectContextOrWait(ctx, tick) {
			return ctx.Err()
		}
	}
}
