// Package motion holds the movement vocabulary shared by the effects:
// closed-form scripted movers for sprite fly-bys, kinematic bodies with wall
// bouncing, and equal-mass elastic collisions.
package motion

import "math"

// AnimParam scripts one fly-by cycle. Flap selects the wing animation
// direction for toasters (1 normal ping-pong, -1 reversed) and doubles as
// the swim direction flag for fish rows (0 left-to-right, 1 right-to-left).
type AnimParam struct {
	FlyDuration float64 // seconds per full crossing
	Delay       float64 // seconds before the entity first appears
	Flap        int
}

// Pose anchors an entity's start position as percentages of the viewport.
// RightPct measures from the right edge, TopPct from the top; values may
// lie outside [0,100] to start off-screen.
type Pose struct {
	RightPct float64
	TopPct   float64
}

// ScriptedMover is an entity whose position is a pure function of elapsed
// time rather than integrated physics.
type ScriptedMover struct {
	Param AnimParam
	Pose  Pose
}

// Visible reports whether the mover has passed its start delay.
func (m *ScriptedMover) Visible(elapsed float64) bool {
	return elapsed >= m.Param.Delay
}

// LocalTime returns the time since the mover first appeared, negative
// before the delay passes.
func (m *ScriptedMover) LocalTime(elapsed float64) float64 {
	return elapsed - m.Param.Delay
}

// CycleFraction returns the mover's progress through its current crossing,
// in [0,1).
func (m *ScriptedMover) CycleFraction(elapsed float64) float64 {
	local := m.LocalTime(elapsed)
	if local < 0 {
		return 0
	}
	return math.Mod(local, m.Param.FlyDuration) / m.Param.FlyDuration
}

// DiagonalStart returns the mover's base top-left corner before the fly
// displacement is applied. half is half the sprite size; the pose anchors
// the sprite's centre.
func (m *ScriptedMover) DiagonalStart(w, h, half float64) (x, y float64) {
	x = w - m.Pose.RightPct/100*w - half
	y = m.Pose.TopPct/100*h - half
	return x, y
}

// WingFrame walks a 4-frame sheet over a 0.4 second cycle: up the frames
// for the first half, back down for the second. reverse plays the cycle
// mirrored, which some movers use so wing beats do not synchronise.
func WingFrame(local float64, reverse bool) int {
	cycle := math.Mod(local, 0.4)
	var frame int
	if !reverse {
		if cycle < 0.2 {
			frame = int(cycle / 0.2 * 4)
		} else {
			frame = 3 - int((cycle-0.2)/0.2*3)
		}
	} else {
		if cycle < 0.2 {
			frame = 3 - int(cycle/0.2*4)
		} else {
			frame = int((cycle - 0.2) / 0.2 * 3)
		}
	}
	if frame < 0 {
		frame = 0
	}
	if frame > 3 {
		frame = 3
	}
	return frame
}

// FlapFrame alternates between two frames with the given per-frame period.
func FlapFrame(local, period float64) int {
	if local < 0 {
		return 0
	}
	return int(local/period) % 2
}
