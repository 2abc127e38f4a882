package flowerquest

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Session  int
	Score    int
	PlayerX  float64
	PlayerY  float64
	Heading  float64
	JumpY    float64
	Flowers  int
	Hearts   int
	Dialogue string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode.String(),
		Session:  g.sessions,
		Score:    g.score,
		PlayerX:  g.player.Pos.X,
		PlayerY:  g.player.Pos.Y,
		Heading:  g.player.Heading,
		JumpY:    g.player.JumpY,
		Flowers:  g.flowers.Len(),
		Hearts:   g.hearts.Len(),
		Dialogue: g.dialogue.Text(),
	}
}
