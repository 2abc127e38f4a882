package flowerquest

import (
	"math/rand"

	"github.com/vovakirdan/flower-quest/internal/config"
	"github.com/vovakirdan/flower-quest/internal/core"
)

// Heart is a celebration particle in free fall.
type Heart struct {
	Pos core.Vec2
	Vel core.Vec2
}

// HeartBurst is the particle pool spawned on delivery.
type HeartBurst struct {
	hearts []Heart
	cfg    config.HeartConfig
	floor  float64 // Hearts below this y are removed
	rng    *rand.Rand
}

func newHeartBurst(cfg config.HeartConfig, halfH float64, rng *rand.Rand) *HeartBurst {
	return &HeartBurst{
		cfg:   cfg,
		floor: -(halfH + cfg.FallMargin),
		rng:   rng,
	}
}

// Burst spawns the configured number of hearts at origin with random velocities.
func (h *HeartBurst) Burst(origin core.Vec2) {
	for i := 0; i < h.cfg.Burst; i++ {
		h.hearts = append(h.hearts, Heart{
			Pos: origin,
			Vel: core.Vec2{
				X: uniform(h.rng, h.cfg.MinVX, h.cfg.MaxVX),
				Y: uniform(h.rng, h.cfg.MinVY, h.cfg.MaxVY),
			},
		})
	}
}

// Update moves every heart by its velocity, applies gravity, and removes
// hearts that have fallen below the arena.
func (h *HeartBurst) Update(dt float64) {
	kept := h.hearts[:0]
	for _, ht := range h.hearts {
		ht.Pos = ht.Pos.Add(ht.Vel.Scale(dt))
		ht.Vel.Y -= h.cfg.Gravity * dt
		if ht.Pos.Y < h.floor {
			continue
		}
		kept = append(kept, ht)
	}
	h.hearts = kept
}

// Clear removes all hearts.
func (h *HeartBurst) Clear() {
	h.hearts = h.hearts[:0]
}

// Len returns the number of live hearts.
func (h *HeartBurst) Len() int {
	return len(h.hearts)
}

// Hearts returns the live hearts. The slice must not be modified.
func (h *HeartBurst) Hearts() []Heart {
	return h.hearts
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
