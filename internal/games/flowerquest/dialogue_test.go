package flowerquest

import (
	"math/rand"
	"testing"
	"time"
)

func TestDialogueRevealsOneRunePerInterval(t *testing.T) {
	d := NewDialogue(35 * time.Millisecond)
	d.Set("hi")

	expected := []string{"h", "hi", "hi"}
	for i, want := range expected {
		d.Update(40 * time.Millisecond)
		if got := d.Text(); got != want {
			t.Errorf("tick %d: Text() = %q, expected %q", i+1, got, want)
		}
	}
	if !d.Done() {
		t.Error("dialogue should be done")
	}
}

func TestDialogueNoCatchUpAfterStall(t *testing.T) {
	d := NewDialogue(35 * time.Millisecond)
	d.Set("hello")

	d.Update(5 * time.Second)
	if d.Text() != "h" {
		t.Errorf("a stall should reveal one rune, got %q", d.Text())
	}
}

func TestDialogueThresholdIsStrict(t *testing.T) {
	d := NewDialogue(35 * time.Millisecond)
	d.Set("ab")

	d.Update(35 * time.Millisecond)
	if d.Revealed() != 0 {
		t.Errorf("timer equal to the interval should not reveal, revealed=%d", d.Revealed())
	}
	d.Update(time.Millisecond)
	if d.Revealed() != 1 {
		t.Errorf("timer past the interval should reveal, revealed=%d", d.Revealed())
	}
}

func TestDialogueSetDiscardsProgress(t *testing.T) {
	d := NewDialogue(35 * time.Millisecond)
	d.Set("first line")
	for i := 0; i < 4; i++ {
		d.Update(40 * time.Millisecond)
	}
	d.Update(20 * time.Millisecond) // partial timer

	d.Set("second")
	if d.Text() != "" || d.Revealed() != 0 {
		t.Errorf("Set should reset the reveal, got %q", d.Text())
	}
	if d.Target() != "second" {
		t.Errorf("Target() = %q", d.Target())
	}
	// The partial timer from the old line must not carry over
	d.Update(20 * time.Millisecond)
	if d.Revealed() != 0 {
		t.Error("timer should restart from zero on Set")
	}
}

func TestDialogueCountsRunes(t *testing.T) {
	d := NewDialogue(35 * time.Millisecond)
	d.Set("✿♥")

	d.Update(40 * time.Millisecond)
	if d.Text() != "✿" {
		t.Errorf("Text() = %q, expected a whole rune", d.Text())
	}
}

func TestDialogueMonotonic(t *testing.T) {
	d := NewDialogue(35 * time.Millisecond)
	target := "Please bring me 20 flowers ✿"
	d.Set(target)
	rng := rand.New(rand.NewSource(4))

	last := 0
	for i := 0; i < 2000; i++ {
		d.Update(time.Duration(rng.Intn(80)) * time.Millisecond)
		if d.Revealed() < last {
			t.Fatalf("revealed went backwards %d -> %d", last, d.Revealed())
		}
		if d.Revealed() > len([]rune(target)) {
			t.Fatalf("revealed %d exceeds target length", d.Revealed())
		}
		last = d.Revealed()
	}
	if d.Text() != target {
		t.Errorf("Text() = %q, expected full target", d.Text())
	}
}
