package core

import "math"

// Control is a logical game control, abstracted from physical keys and
// touch zones.
type Control int

const (
	ControlNone      Control = iota
	ControlForward           // W, Up arrow, joystick up
	ControlLeft              // A, Left arrow, joystick left
	ControlRight             // D, Right arrow, joystick right
	ControlJump              // Space
	ControlInventory         // I - toggle the inventory screen
	ControlStart             // Enter, click - begin a new game
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlNone:
		return "None"
	case ControlForward:
		return "Forward"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlJump:
		return "Jump"
	case ControlInventory:
		return "Inventory"
	case ControlStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// InputFrame is the read-only input snapshot consumed by one tick.
type InputFrame struct {
	// Held reports controls currently held down.
	Held map[Control]bool

	// Pressed reports controls that received a press since the previous frame.
	Pressed map[Control]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Control]bool),
		Pressed: make(map[Control]bool),
	}
}

// IsHeld returns true if the control is held this frame.
func (f InputFrame) IsHeld(c Control) bool {
	return f.Held[c]
}

// WasPressed returns true if the control was pressed since the last frame.
func (f InputFrame) WasPressed(c Control) bool {
	return f.Pressed[c]
}

// Hold marks a control as held. Used to build frames directly in tests.
func (f *InputFrame) Hold(c Control) {
	if f.Held == nil {
		f.Held = make(map[Control]bool)
	}
	f.Held[c] = true
}

// Press marks a control as pressed this frame.
func (f *InputFrame) Press(c Control) {
	if f.Pressed == nil {
		f.Pressed = make(map[Control]bool)
	}
	f.Pressed[c] = true
}

// InputState is the boolean control mapping written by device callbacks.
// The tick loop reads it once per tick through Frame.
type InputState struct {
	held    map[Control]bool
	pressed map[Control]bool
}

// NewInputState creates an input state with nothing held.
func NewInputState() *InputState {
	return &InputState{
		held:    make(map[Control]bool),
		pressed: make(map[Control]bool),
	}
}

// Press records a press event: the control becomes held and a press edge
// is queued for the next frame.
func (s *InputState) Press(c Control) {
	if c == ControlNone {
		return
	}
	s.held[c] = true
	s.pressed[c] = true
}

// Release records a release event.
func (s *InputState) Release(c Control) {
	delete(s.held, c)
}

// Held reports whether a control is currently held.
func (s *InputState) Held(c Control) bool {
	return s.held[c]
}

// ReleaseAll drops every held control, e.g. when a session restarts.
func (s *InputState) ReleaseAll() {
	clear(s.held)
	clear(s.pressed)
}

// Frame snapshots the current state and clears queued press edges.
func (s *InputState) Frame() InputFrame {
	f := NewInputFrame()
	for c, v := range s.held {
		f.Held[c] = v
	}
	for c, v := range s.pressed {
		f.Pressed[c] = v
	}
	clear(s.pressed)
	return f
}

// JoystickZone buckets a touch position, relative to the joystick anchor,
// into one of four directional zones inside the square of half-width size.
// The dominant axis picks the zone; ties go to the vertical zones. The down
// zone has no control bound to it, and positions outside the square or on
// the anchor itself map to ControlNone.
func JoystickZone(x, y, size float64) Control {
	if x <= -size || x >= size || y <= -size || y >= size {
		return ControlNone
	}
	ax, ay := math.Abs(x), math.Abs(y)
	switch {
	case ay >= ax && y > 0:
		return ControlForward
	case ay >= ax && y < 0:
		return ControlNone
	case x < 0:
		return ControlLeft
	case x > 0:
		return ControlRight
	}
	return ControlNone
}
