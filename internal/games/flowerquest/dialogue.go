package flowerquest

import "time"

// Dialogue reveals its text one rune per interval, typewriter style.
type Dialogue struct {
	target   []rune
	revealed int
	timer    time.Duration
	interval time.Duration
}

// NewDialogue creates an empty dialogue revealing one rune per interval.
func NewDialogue(interval time.Duration) *Dialogue {
	return &Dialogue{interval: interval}
}

// Set replaces the target text and restarts the reveal from nothing.
func (d *Dialogue) Set(text string) {
	d.target = []rune(text)
	d.revealed = 0
	d.timer = 0
}

// Update accumulates dt and reveals at most one rune once the timer
// exceeds the interval. Large dt never reveals more than one rune.
func (d *Dialogue) Update(dt time.Duration) {
	if d.revealed >= len(d.target) {
		return
	}
	d.timer += dt
	if d.timer > d.interval {
		d.revealed++
		d.timer = 0
	}
}

// Text returns the revealed prefix.
func (d *Dialogue) Text() string {
	return string(d.target[:d.revealed])
}

// Target returns the full text being revealed.
func (d *Dialogue) Target() string {
	return string(d.target)
}

// Revealed returns the number of revealed runes.
func (d *Dialogue) Revealed() int {
	return d.revealed
}

// Done reports whether the whole target is visible.
func (d *Dialogue) Done() bool {
	return d.revealed >= len(d.target)
}
