package flowerquest

import (
	"testing"
	"time"

	"github.com/vovakirdan/flower-quest/internal/config"
	"github.com/vovakirdan/flower-quest/internal/core"
)

const frameDT = time.Second / 60

// newTestGame returns a seeded game already in the playing mode.
func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultQuestConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	g.Start()
	return g
}

// held builds a frame with the given controls held.
func held(controls ...core.Control) core.InputFrame {
	f := core.NewInputFrame()
	for _, c := range controls {
		f.Hold(c)
	}
	return f
}

// pressed builds a frame with the given controls pressed and held.
func pressed(controls ...core.Control) core.InputFrame {
	f := held(controls...)
	for _, c := range controls {
		f.Press(c)
	}
	return f
}
