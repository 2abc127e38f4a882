package flowerquest

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flower-quest/internal/core"
)

// Visual characters for rendering
const (
	FlowerChar = '✿'
	HeartChar  = '♥'
	NPCChar    = '@'
	ShadowChar = '·'
)

// playerGlyphs are indexed by heading in 45 degree steps from +x.
var playerGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.mode == ModeMenu {
		g.renderMenu(dst)
		return
	}

	vp := g.Viewport(dst.Width(), dst.Height())

	if g.mode != ModeWon {
		for _, f := range g.flowers.Flowers() {
			col, row := vp.ToScreen(f.Pos)
			dst.SetColored(col, row, FlowerChar, f.Kind.Color())
		}
	}

	col, row := vp.ToScreen(g.npc.Pos)
	dst.SetColored(col, row, NPCChar, core.ColorBrightCyan)

	g.renderPlayer(dst, vp)

	for _, h := range g.hearts.Hearts() {
		hc, hr := vp.ToScreen(h.Pos)
		dst.SetColored(hc, hr, HeartChar, core.ColorRed)
	}

	g.renderDialogue(dst, vp)
	g.renderHUD(dst)

	switch g.mode {
	case ModeInventory:
		g.drawCenteredMessage(dst, "INVENTORY",
			fmt.Sprintf("%s flowers", g.hud),
			fmt.Sprintf("Time %.1fs  |  Jumps %d", g.elapsed, g.jumps),
			"Press I to resume")
	case ModeWon:
		if g.dialogue.Done() && g.hearts.Len() == 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press Enter to play again", core.ColorGray)
		}
	}
}

// renderPlayer draws the player arrow, lifted by the jump offset, and a
// shadow at its planar position while airborne.
func (g *Game) renderPlayer(dst *core.Screen, vp Viewport) {
	p := g.player
	idx := int(math.Round(p.Heading/45)) % len(playerGlyphs)

	col, row := vp.ToScreen(p.Pos)
	if p.Airborne {
		dst.SetColored(col, row, ShadowChar, core.ColorGray)
	}

	drawn := core.Vec2{X: p.Pos.X, Y: p.Pos.Y + p.JumpY}
	col, row = vp.ToScreen(drawn)
	dst.SetColored(col, row, playerGlyphs[idx], core.ColorBrightGreen)
}

// renderDialogue draws the revealed text centered above the NPC.
func (g *Game) renderDialogue(dst *core.Screen, vp Viewport) {
	text := g.dialogue.Text()
	if text == "" {
		return
	}
	anchor := g.npc.Pos.Add(core.Vec2{Y: g.cfg.NPC.DialogueOffset})
	col, row := vp.ToScreen(anchor)
	// Keep the line from sharing the NPC's row on very short screens
	if _, npcRow := vp.ToScreen(g.npc.Pos); row >= npcRow {
		row = npcRow - 1
	}
	full := core.TextWidth(g.dialogue.Target())
	x := core.Clamp(col-full/2, 0, core.Max(dst.Width()-full, 0))
	dst.DrawTextColored(x, row, text, core.ColorWhite)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(2, 0, g.hud, core.ColorPink)
	hint := "I = Inventory"
	if g.mode == ModeWon {
		hint = "Delivered!"
	}
	dst.DrawTextColored(dst.Width()-core.TextWidth(hint)-2, 0, hint, core.ColorGray)
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), h), core.ColorGray)

	dst.DrawTextCentered(h/2-4, "FLOWER QUEST", core.ColorBrightMagenta)
	dst.DrawTextCentered(h/2-2, "Collect flowers ✿ and help your friend!", core.ColorDefault)

	const button = "   PLAY   "
	bw := core.TextWidth(button) + 2
	bx := (dst.Width() - bw) / 2
	dst.DrawBox(core.NewRect(bx, h/2, bw, 3), core.ColorBrightBlue)
	dst.DrawTextColored(bx+1, h/2+1, button, core.ColorBrightBlue)

	dst.DrawTextCentered(h/2+4, "Enter or click to start", core.ColorGray)
	dst.DrawTextCentered(h/2+5, "W/A/D move  Space jump  I inventory", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := core.TextWidth(title)
	for _, l := range lines {
		boxW = core.Max(boxW, core.TextWidth(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorGray)

	dst.DrawTextColored(boxX+(boxW-core.TextWidth(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-core.TextWidth(l))/2, boxY+3+i, l)
	}
}
