// Package movement advances entity shapes through a collision space one
// axis at a time, backing off until the entity fits.
package movement

import (
	"math"

	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
)

// Space is the collision view of an entity's active layer.
type Space interface {
	// Blocked reports whether e would collide with anything relevant when
	// placed at candidate.
	Blocked(e *shape.EntityShape, candidate geom.Point) bool
	// Sync is called after e's anchor has been committed.
	Sync(e *shape.EntityShape)
}

// AttemptMove moves e by up to amount units in dir and returns the distance
// actually applied. Without forced, the amount is reduced one unit at a
// time until the candidate position is free; the anchor is only written
// once a free position is found. forced skips collision checks entirely.
func AttemptMove(space Space, e *shape.EntityShape, dir geom.Orientation, amount int, forced bool) int {
	if e == nil || amount <= 0 {
		return 0
	}
	step := dir.Vector()
	if step == (geom.Point{}) {
		return 0
	}
	origin := e.Anchor()

	for n := amount; n > 0; n-- {
		candidate := origin.Add(step.Scale(n))
		if !forced && space != nil && space.Blocked(e, candidate) {
			continue
		}
		e.MoveTo(candidate)
		if space != nil {
			space.Sync(e)
		}
		return n
	}
	return 0
}

// DiagonalAmount scales an axis-aligned speed so that a move along both
// axes covers the same distance.
func DiagonalAmount(amount int) int {
	if amount <= 0 {
		return 0
	}
	return int(math.Round(float64(amount) / math.Sqrt2))
}

// AttemptDiagonal resolves a move along both axes as two independent
// single-axis moves, horizontal first. The per-axis amount is scaled by
// 1/sqrt(2). It returns the distance applied on each axis.
func AttemptDiagonal(space Space, e *shape.EntityShape, h, v geom.Orientation, amount int, forced bool) (dx, dy int) {
	per := DiagonalAmount(amount)
	dx = AttemptMove(space, e, h, per, forced)
	dy = AttemptMove(space, e, v, per, forced)
	return dx, dy
}

// Intent is a movement request from the input layer. The signs of X and Y
// pick the direction on each axis; zero leaves that axis idle.
type Intent struct {
	X, Y   int
	Amount int
	Forced bool
}

// Idle reports whether the intent requests no movement.
func (in Intent) Idle() bool {
	return (in.X == 0 && in.Y == 0) || in.Amount <= 0
}

// Apply resolves the intent against space and returns the signed
// displacement that was committed.
func (in Intent) Apply(space Space, e *shape.EntityShape) geom.Point {
	if e == nil || in.Idle() {
		return geom.Point{}
	}
	start := e.Anchor()
	h, v := geom.Right, geom.Down
	if in.X < 0 {
		h = geom.Left
	}
	if in.Y < 0 {
		v = geom.Up
	}
	switch {
	case in.X != 0 && in.Y != 0:
		AttemptDiagonal(space, e, h, v, in.Amount, in.Forced)
	case in.X != 0:
		AttemptMove(space, e, h, in.Amount, in.Forced)
	default:
		AttemptMove(space, e, v, in.Amount, in.Forced)
	}
	return e.Anchor().Sub(start)
}
