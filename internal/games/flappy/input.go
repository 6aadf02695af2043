package flappy

import "github.com/vovakirdan/flappycat/internal/core"

// Resolve turns a raw input event into a logical action for the given phase.
// A press confirms in the menu and after a round, and flaps while playing.
func Resolve(ev core.InputEvent, phase Phase) core.Action {
	switch core.Normalize(ev) {
	case core.GesturePress:
		if phase == PhasePlaying {
			return core.ActionFlap
		}
		return core.ActionConfirm
	case core.GestureConfirmOnly:
		if phase == PhasePlaying {
			return core.ActionNone
		}
		return core.ActionConfirm
	}
	return core.ActionNone
}

func actionEvent(a core.Action) (Event, bool) {
	switch a {
	case core.ActionConfirm:
		return EventConfirm, true
	case core.ActionFlap:
		return EventFlap, true
	}
	return 0, false
}
