// Package control implements the closed-loop holonomic trajectory controller:
// independent linear and angular PD feedback layered on top of the
// trajectory's own feedforward velocities.
package control

import "github.com/swervelib/swervecontrol/utils"

// pdController is a discrete PD loop evaluated at a fixed period. There is
// deliberately no integral term: the setpoint changes every control tick, so
// an integrator would only accumulate wind-up.
type pdController struct {
	kp, kd float64
	period float64

	lastError    float64
	hasLastError bool

	// continuous treats the error domain as circular on [-pi, pi), so the
	// loop always takes the short way around.
	continuous bool
}

func newPDController(kp, kd, period float64, continuous bool) *pdController {
	return &pdController{kp: kp, kd: kd, period: period, continuous: continuous}
}

func (c *pdController) setGains(kp, kd float64) {
	c.kp = kp
	c.kd = kd
}

// reset clears the derivative-term history. Call it after a discontinuous
// setpoint jump so the next derivative is not a spike across the jump.
func (c *pdController) reset() {
	c.lastError = 0
	c.hasLastError = false
}

// calculate returns the PD output for the given measurement and setpoint.
func (c *pdController) calculate(measurement, setpoint float64) float64 {
	err := setpoint - measurement
	if c.continuous {
		err = utils.AngleDiff(measurement, setpoint)
	}
	var derivative float64
	if c.hasLastError {
		derivative = (err - c.lastError) / c.period
	}
	c.lastError = err
	c.hasLastError = true
	return c.kp*err + c.kd*derivative
}
