package flowerquest

import (
	"math/rand"

	"github.com/vovakirdan/flower-quest/internal/core"
)

// FlowerKind is the visual tag of a flower.
type FlowerKind int

const (
	FlowerPink FlowerKind = iota
	FlowerRed
	FlowerYellow
	flowerKinds
)

// Color returns the screen color for the flower kind.
func (k FlowerKind) Color() core.Color {
	switch k {
	case FlowerRed:
		return core.ColorBrightRed
	case FlowerYellow:
		return core.ColorBrightYellow
	default:
		return core.ColorPink
	}
}

// Flower is a collectible lying in the arena.
type Flower struct {
	Pos  core.Vec2
	Kind FlowerKind
}

// FlowerField is the live collectible pool.
type FlowerField struct {
	flowers []Flower
	halfW   float64
	halfH   float64
	rng     *rand.Rand
}

func newFlowerField(halfW, halfH float64, rng *rand.Rand) *FlowerField {
	return &FlowerField{halfW: halfW, halfH: halfH, rng: rng}
}

// Spawn adds one flower at a uniformly random point of the full arena.
// Flowers may overlap each other.
func (f *FlowerField) Spawn() {
	f.flowers = append(f.flowers, Flower{
		Pos: core.Vec2{
			X: (f.rng.Float64()*2 - 1) * f.halfW,
			Y: (f.rng.Float64()*2 - 1) * f.halfH,
		},
		Kind: FlowerKind(f.rng.Intn(int(flowerKinds))),
	})
}

// Fill clears the field and spawns n fresh flowers.
func (f *FlowerField) Fill(n int) {
	f.flowers = f.flowers[:0]
	for i := 0; i < n; i++ {
		f.Spawn()
	}
}

// Collect removes every flower within radius of pos, spawning one
// replacement per removal, and returns how many were collected.
func (f *FlowerField) Collect(pos core.Vec2, radius float64) int {
	kept := f.flowers[:0]
	picked := 0
	for _, fl := range f.flowers {
		if core.Distance(pos, fl.Pos) < radius {
			picked++
			continue
		}
		kept = append(kept, fl)
	}
	f.flowers = kept
	for i := 0; i < picked; i++ {
		f.Spawn()
	}
	return picked
}

// Len returns the number of live flowers.
func (f *FlowerField) Len() int {
	return len(f.flowers)
}

// Flowers returns the live flowers. The slice must not be modified.
func (f *FlowerField) Flowers() []Flower {
	return f.flowers
}
