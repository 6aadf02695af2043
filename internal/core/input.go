package core

// Action represents a logical game action, abstracted from physical devices.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // start a round from the menu, restart after round over
	ActionFlap           // upward impulse while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}

// Normalized key names. Frontends translate their own key codes to these.
const (
	KeySpace  = "space"
	KeyUp     = "up"
	KeyEnter  = "enter"
	KeyEscape = "esc"
)

// EventKind identifies the raw device that produced an InputEvent.
type EventKind int

const (
	EventKey     EventKind = iota // keyboard key press
	EventPointer                  // mouse button press
	EventTouch                    // touch start
)

// InputEvent is a raw device event as reported by a frontend.
type InputEvent struct {
	Kind EventKind
	Key  string // normalized key name, only for EventKey
}

// KeyEvent is shorthand for a key press event.
func KeyEvent(key string) InputEvent {
	return InputEvent{Kind: EventKey, Key: key}
}

// Gesture is what a raw event means before the current phase is known.
type Gesture int

const (
	GestureNone        Gesture = iota
	GesturePress               // primary button: confirms or flaps depending on phase
	GestureConfirmOnly         // confirms, never flaps
)

// Normalize maps a raw event to a gesture. Unrecognized events map to
// GestureNone and should be passed through to the host untouched.
func Normalize(ev InputEvent) Gesture {
	switch ev.Kind {
	case EventPointer, EventTouch:
		return GesturePress
	case EventKey:
		switch ev.Key {
		case KeySpace, KeyUp:
			return GesturePress
		case KeyEnter:
			return GestureConfirmOnly
		}
	}
	return GestureNone
}

// InputFrame collects the raw events received between two simulation frames,
// in arrival order.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]InputEvent, 0, 4)}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev InputEvent) {
	f.Events = append(f.Events, ev)
}

// Len returns the number of queued events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for reuse, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
