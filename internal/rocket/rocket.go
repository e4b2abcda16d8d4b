package rocket

import (
	"math"

	"github.com/mselway/skyrocket/internal/plan"
)

// Flight model defaults.
const (
	DefaultGravity = 308.0
	DefaultLift    = 0.7
	DefaultSteer   = 0.3
	DefaultFuel    = 1200.0
	DefaultThrust  = 250.0
)

// Physics holds the tunable constants of the flight model.
type Physics struct {
	Gravity       float64 // downward acceleration, units/s^2
	Lift          float64 // vertical gain on the thruster sum
	Steer         float64 // horizontal gain on the thruster difference
	InitialFuel   float64
	InitialThrust float64 // per-thruster magnitude at launch
}

func DefaultPhysics() Physics {
	return Physics{
		Gravity:       DefaultGravity,
		Lift:          DefaultLift,
		Steer:         DefaultSteer,
		InitialFuel:   DefaultFuel,
		InitialThrust: DefaultThrust,
	}
}

// Rocket is one simulated rocket. Y is measured upward from the ground
// line, and Angle is the lean from vertical in radians, positive toward +X.
type Rocket struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
	Left   float64
	Right  float64
	Fuel   float64
	Tick   int
	Plan   plan.Plan
}

// New returns a rocket at the origin with full fuel, both thrusters at the
// launch magnitude, and the given schedule.
func New(p plan.Plan, phys Physics) Rocket {
	return Rocket{
		Left:  phys.InitialThrust,
		Right: phys.InitialThrust,
		Fuel:  phys.InitialFuel,
		Plan:  p,
	}
}

// Step advances the rocket by elapsed seconds and returns the new state.
// The thruster sum lifts, the difference steers. Position integrates the
// pre-update VX while altitude integrates the post-update VY, and the
// schedule lookup is keyed by the pre-update tick counter. Fuel drains on
// the pre-update thrusters even past empty; once it is empty at the start
// of a step the thrusters stay at zero for good.
func (r Rocket) Step(elapsed float64, phys Physics) Rocket {
	noFuel := r.Fuel <= 0
	tL, tR := r.Left, r.Right

	var yThrust, xThrust float64
	if !noFuel {
		yThrust = elapsed * phys.Lift * (tL + tR)
		xThrust = elapsed * phys.Steer * (tL - tR)
	}

	vy := r.VY - elapsed*phys.Gravity + yThrust
	vx := r.VX + xThrust

	next := r
	next.X = r.X + elapsed*r.VX
	next.Y = r.Y + elapsed*vy
	// angle leans from vertical, so the x component leads
	next.Angle = math.Atan2(r.VX, vy)
	next.VX = vx
	next.VY = vy
	next.Fuel = r.Fuel - elapsed*(tL+tR)

	if t, ok := r.Plan[r.Tick]; ok {
		next.Left, next.Right = t.Left, t.Right
	}
	if noFuel {
		next.Left, next.Right = 0, 0
	}
	next.Tick = r.Tick + 1

	return next
}

// Speed returns the magnitude of the velocity vector.
func (r Rocket) Speed() float64 {
	return math.Hypot(r.VX, r.VY)
}
