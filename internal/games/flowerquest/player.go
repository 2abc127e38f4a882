package flowerquest

import (
	"github.com/vovakirdan/flower-quest/internal/config"
	"github.com/vovakirdan/flower-quest/internal/core"
)

// Player holds the player's planar kinematics and cosmetic jump arc.
type Player struct {
	Pos      core.Vec2
	Heading  float64 // Degrees in [0, 360), 0 = +x
	JumpY    float64 // Vertical draw offset, never negative
	JumpVel  float64 // Signed vertical velocity of the jump arc
	Airborne bool
}

// newPlayer places a player at the configured start.
func newPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Pos:     core.Vec2{X: cfg.StartX, Y: cfg.StartY},
		Heading: core.NormalizeDegrees(cfg.Heading),
	}
}

// Jump starts a jump arc with the given upward velocity.
// Returns false if the player is already airborne.
func (p *Player) Jump(velocity float64) bool {
	if p.Airborne {
		return false
	}
	p.Airborne = true
	p.JumpVel = velocity
	return true
}

// update advances turning, forward motion and the jump arc by dt seconds.
func (p *Player) update(in core.InputFrame, cfg config.PlayerConfig, arena config.ArenaConfig, dt float64) {
	// Left and right are additive; holding both cancels out
	if in.IsHeld(core.ControlLeft) {
		p.Heading += cfg.TurnRate * dt
	}
	if in.IsHeld(core.ControlRight) {
		p.Heading -= cfg.TurnRate * dt
	}
	p.Heading = core.NormalizeDegrees(p.Heading)

	if in.IsHeld(core.ControlForward) {
		p.Pos = p.Pos.Add(core.Heading(p.Heading).Scale(cfg.Speed * dt))
		p.clamp(arena)
	}

	p.updateJump(cfg.Gravity, dt)
}

// updateJump integrates the jump arc. Landing is instantaneous, no bounce.
func (p *Player) updateJump(gravity, dt float64) {
	if !p.Airborne {
		return
	}
	p.JumpVel -= gravity * dt
	p.JumpY += p.JumpVel * dt
	if p.JumpY <= 0 {
		p.JumpY = 0
		p.JumpVel = 0
		p.Airborne = false
	}
}

// clamp keeps the player margin units inside the arena on each axis.
func (p *Player) clamp(arena config.ArenaConfig) {
	mx := arena.HalfWidth() - arena.Margin
	my := arena.HalfHeight() - arena.Margin
	p.Pos.X = core.ClampF(p.Pos.X, -mx, mx)
	p.Pos.Y = core.ClampF(p.Pos.Y, -my, my)
}
