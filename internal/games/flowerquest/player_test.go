package flowerquest

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flower-quest/internal/config"
	"github.com/vovakirdan/flower-quest/internal/core"
)

func TestForwardForOneSecond(t *testing.T) {
	g := newTestGame(t, 1)
	g.flowers.flowers = nil // keep pickups out of the way

	if g.player.Pos != (core.Vec2{X: 0, Y: -200}) || g.player.Heading != 90 {
		t.Fatalf("unexpected start: pos=%v heading=%v", g.player.Pos, g.player.Heading)
	}

	for i := 0; i < 60; i++ {
		g.Tick(frameDT, held(core.ControlForward))
	}

	p := g.Player()
	if math.Abs(p.Pos.X) > 1e-6 {
		t.Errorf("x drifted to %v, expected 0", p.Pos.X)
	}
	if math.Abs(p.Pos.Y-(-20)) > 1e-3 {
		t.Errorf("y = %v, expected -20", p.Pos.Y)
	}
}

func TestForwardClampsToArena(t *testing.T) {
	g := newTestGame(t, 1)
	g.flowers.flowers = nil
	g.player.Heading = 0

	for i := 0; i < 600; i++ {
		g.Tick(frameDT, held(core.ControlForward))
	}

	if g.player.Pos.X != 410 {
		t.Errorf("x = %v, expected clamp at 410", g.player.Pos.X)
	}
}

func TestPositionAlwaysInsideBounds(t *testing.T) {
	g := newTestGame(t, 7)
	rng := rand.New(rand.NewSource(99))
	controls := []core.Control{core.ControlForward, core.ControlLeft, core.ControlRight, core.ControlJump}

	for i := 0; i < 5000; i++ {
		f := core.NewInputFrame()
		for _, c := range controls {
			if rng.Intn(2) == 0 {
				f.Hold(c)
				f.Press(c)
			}
		}
		f.Hold(core.ControlForward)
		g.Tick(frameDT, f)
		if g.Mode() != ModePlaying {
			g.mode = ModePlaying
		}

		p := g.Player()
		if math.Abs(p.Pos.X) > 450-40 || math.Abs(p.Pos.Y) > 325-40 {
			t.Fatalf("player escaped bounds: %v", p.Pos)
		}
		if p.Heading < 0 || p.Heading >= 360 {
			t.Fatalf("heading out of range: %v", p.Heading)
		}
	}
}

func TestTurning(t *testing.T) {
	tests := []struct {
		name     string
		controls []core.Control
		expected float64
	}{
		{"left turns counter-clockwise", []core.Control{core.ControlLeft}, 180},
		{"right turns clockwise", []core.Control{core.ControlRight}, 0},
		{"both cancel", []core.Control{core.ControlLeft, core.ControlRight}, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			for i := 0; i < 30; i++ {
				g.Tick(frameDT, held(tc.controls...))
			}
			got := g.Player().Heading
			// Allow wrap-around near 0/360
			diff := math.Abs(got - tc.expected)
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > 1e-3 {
				t.Errorf("heading = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestJumpLandsExactlyOnGround(t *testing.T) {
	for _, v0 := range []float64{0, 1, 100, 420, 1000} {
		p := Player{}
		if !p.Jump(v0) {
			t.Fatalf("Jump(%v) refused on the ground", v0)
		}

		peak := 0.0
		for i := 0; p.Airborne; i++ {
			if i > 10000 {
				t.Fatalf("Jump(%v) never landed", v0)
			}
			p.updateJump(1200, 1.0/60)
			peak = math.Max(peak, p.JumpY)
			if p.JumpY < 0 {
				t.Fatalf("jump offset went negative: %v", p.JumpY)
			}
		}

		if p.JumpY != 0 || p.JumpVel != 0 {
			t.Errorf("Jump(%v) landed with offset=%v velocity=%v", v0, p.JumpY, p.JumpVel)
		}
		if v0 >= 420 && peak < 50 {
			t.Errorf("Jump(%v) peak %v is implausibly low", v0, peak)
		}
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	g := newTestGame(t, 1)

	g.Tick(frameDT, pressed(core.ControlJump))
	if !g.player.Airborne || g.jumps != 1 {
		t.Fatalf("jump press should launch: airborne=%v jumps=%d", g.player.Airborne, g.jumps)
	}
	vel := g.player.JumpVel

	// A second press mid-air is ignored
	g.Tick(frameDT, pressed(core.ControlJump))
	if g.jumps != 1 {
		t.Errorf("mid-air press should not count as a jump, jumps=%d", g.jumps)
	}
	if g.player.JumpVel >= vel {
		t.Errorf("mid-air press should not reset velocity: %v -> %v", vel, g.player.JumpVel)
	}

	// Holding without a fresh press does not relaunch after landing
	for i := 0; i < 120; i++ {
		g.Tick(frameDT, held(core.ControlJump))
	}
	if g.player.Airborne {
		t.Error("held jump without a press should not relaunch")
	}
}

func TestJumpDoesNotMovePlanarPosition(t *testing.T) {
	g := newTestGame(t, 1)
	g.flowers.flowers = nil
	start := g.player.Pos

	g.Tick(frameDT, pressed(core.ControlJump))
	for i := 0; i < 60; i++ {
		g.Tick(frameDT, core.NewInputFrame())
	}

	if g.player.Pos != start {
		t.Errorf("jump moved the player from %v to %v", start, g.player.Pos)
	}
}

func TestNewPlayerNormalizesHeading(t *testing.T) {
	p := newPlayer(config.PlayerConfig{Heading: -90})
	if p.Heading != 270 {
		t.Errorf("heading = %v, expected 270", p.Heading)
	}
}
