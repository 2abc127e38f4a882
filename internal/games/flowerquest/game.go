// Package flowerquest implements a small overworld quest: wander the arena,
// pick up flowers and deliver them to a waiting friend.
package flowerquest

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/flower-quest/internal/config"
	"github.com/vovakirdan/flower-quest/internal/core"
)

// Mode is the top-level state gating which subsystems run each tick.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeInventory
	ModeWon
)

// String returns the mode name used in logs and snapshots.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeInventory:
		return "inventory"
	case ModeWon:
		return "won"
	default:
		return "unknown"
	}
}

// NPC is the stationary friend waiting for flowers.
type NPC struct {
	Pos     core.Vec2
	Heading float64
}

// Game is one player's quest session. It owns every entity; nothing is
// shared between Game values.
type Game struct {
	cfg      config.QuestConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	mode     Mode
	player   Player
	npc      NPC
	flowers  *FlowerField
	hearts   *HeartBurst
	dialogue *Dialogue
	score    int     // Flowers collected this session
	elapsed  float64 // Seconds spent in playing mode
	jumps    int
	sessions int // Sessions started since Reset
	tick     uint64
	hud      string
}

// New creates a quest from a configuration. An invalid configuration is
// rejected here so no tick can ever see one.
func New(cfg config.QuestConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flowerquest"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flower Quest"
}

// Config returns the quest configuration in use.
func (g *Game) Config() config.QuestConfig {
	return g.cfg
}

// Reset reseeds the game and returns it to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	halfW, halfH := g.cfg.Arena.HalfWidth(), g.cfg.Arena.HalfHeight()
	g.flowers = newFlowerField(halfW, halfH, g.rng)
	g.hearts = newHeartBurst(g.cfg.Hearts, halfH, g.rng)
	g.dialogue = NewDialogue(g.cfg.Dialogue.RevealInterval)
	g.npc = NPC{
		Pos:     core.Vec2{X: g.cfg.NPC.X, Y: g.cfg.NPC.Y},
		Heading: g.cfg.NPC.Heading,
	}
	g.player = newPlayer(g.cfg.Player)

	g.mode = ModeMenu
	g.score = 0
	g.elapsed = 0
	g.jumps = 0
	g.sessions = 0
	g.tick = 0
	g.hud = ""
}

// Start begins a new session: all session state is discarded and rebuilt.
func (g *Game) Start() {
	g.mode = ModePlaying
	g.score = 0
	g.elapsed = 0
	g.jumps = 0
	g.sessions++

	g.flowers.Fill(g.cfg.Flowers.PoolSize)
	g.hearts.Clear()
	g.player = newPlayer(g.cfg.Player)
	g.dialogue.Set(strings.ReplaceAll(g.cfg.Dialogue.Greeting, "{goal}", strconv.Itoa(g.cfg.Flowers.Goal)))
	g.refreshHUD()
}

// Tick advances the game by dt using one input snapshot.
// Integration is scaled by dt, so late ticks just take a bigger step.
func (g *Game) Tick(dt time.Duration, in core.InputFrame) core.StepResult {
	g.tick++
	secs := dt.Seconds()
	var res core.StepResult

	switch g.mode {
	case ModeMenu:
		if in.WasPressed(core.ControlStart) {
			g.Start()
			res.Started = true
		}

	case ModePlaying:
		if in.WasPressed(core.ControlInventory) {
			g.mode = ModeInventory
			g.refreshHUD()
			break
		}
		g.elapsed += secs
		if in.WasPressed(core.ControlJump) && g.player.Jump(g.cfg.Player.JumpVelocity) {
			g.jumps++
		}
		g.player.update(in, g.cfg.Player, g.cfg.Arena, secs)
		g.score += g.flowers.Collect(g.player.Pos, g.cfg.Flowers.PickupRadius)
		res.Completed = g.checkDelivery()
		g.refreshHUD()
		g.dialogue.Update(dt)

	case ModeInventory:
		if in.WasPressed(core.ControlInventory) {
			g.mode = ModePlaying
		}
		g.refreshHUD()

	case ModeWon:
		if in.WasPressed(core.ControlStart) {
			g.Start()
			res.Started = true
			break
		}
		g.dialogue.Update(dt)
		g.hearts.Update(secs)
	}

	res.State = g.State()
	return res
}

// checkDelivery moves to the won mode once enough flowers are carried to
// the NPC. It only runs while playing, so it fires once per session.
func (g *Game) checkDelivery() bool {
	if g.score < g.cfg.Flowers.Goal {
		return false
	}
	if core.Distance(g.player.Pos, g.npc.Pos) >= g.cfg.NPC.DeliveryRadius {
		return false
	}
	g.mode = ModeWon
	g.dialogue.Set(g.cfg.Dialogue.Celebration)
	g.hearts.Burst(g.npc.Pos)
	return true
}

func (g *Game) refreshHUD() {
	g.hud = fmt.Sprintf("✿ %d / %d", g.score, g.cfg.Flowers.Goal)
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.player
}

// NPC returns the quest giver.
func (g *Game) NPC() NPC {
	return g.npc
}

// Dialogue returns the NPC's dialogue.
func (g *Game) Dialogue() *Dialogue {
	return g.dialogue
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:    g.mode.String(),
		Score:   g.score,
		Goal:    g.cfg.Flowers.Goal,
		Won:     g.mode == ModeWon,
		Elapsed: g.elapsed,
		Jumps:   g.jumps,
	}
}
