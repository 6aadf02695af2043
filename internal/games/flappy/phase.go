package flappy

// Phase is the session's round state.
type Phase int

const (
	PhaseMenu      Phase = iota // waiting for the first confirm
	PhasePlaying                // physics active
	PhaseRoundOver              // physics frozen, overlay shown
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseRoundOver:
		return "RoundOver"
	default:
		return "Unknown"
	}
}

// Event drives phase transitions.
type Event int

const (
	EventConfirm Event = iota
	EventFlap
	EventCollision
)

// Effect is the side effect a transition asks the session to perform.
type Effect int

const (
	EffectNone     Effect = iota
	EffectNewRound        // reset all round state at the current time
	EffectFlap            // apply the flap impulse
	EffectEndRound        // freeze physics
)

type transition struct {
	next   Phase
	effect Effect
}

// transitions is the complete table; pairs not listed are ignored.
var transitions = map[Phase]map[Event]transition{
	PhaseMenu: {
		EventConfirm: {next: PhasePlaying, effect: EffectNewRound},
	},
	PhasePlaying: {
		EventFlap:      {next: PhasePlaying, effect: EffectFlap},
		EventCollision: {next: PhaseRoundOver, effect: EffectEndRound},
	},
	PhaseRoundOver: {
		EventConfirm: {next: PhasePlaying, effect: EffectNewRound},
	},
}

// Next looks up the transition for ev in phase p. ok is false when the event
// has no meaning in p.
func (p Phase) Next(ev Event) (next Phase, effect Effect, ok bool) {
	t, ok := transitions[p][ev]
	if !ok {
		return p, EffectNone, false
	}
	return t.next, t.effect, true
}
