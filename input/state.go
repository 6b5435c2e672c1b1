package input

import "github.com/lixenwraith/monkey-runner/core"

// HoldLevel marks a movement held until an explicit Release
const HoldLevel = -1

// State turns raw input events into per-frame intent
// Movement is level-triggered; everything else is queued as an edge event
//
// Sources without release events (terminals) use Press, which holds the
// movement for holdFrames and is refreshed by key repeat. Sources with
// release events (windowed) use SetHeld
type State struct {
	holdFrames int
	left       int // Frames remaining, HoldLevel while explicitly held
	right      int
	queue      []Command
}

// NewState creates input state with the given terminal hold window
func NewState(holdFrames int) *State {
	return &State{holdFrames: holdFrames}
}

// Press records a key press or repeat
func (s *State) Press(cmd Command) {
	switch cmd.Action {
	case ActionNone:
	case ActionMoveLeft:
		s.left = s.holdFrames
		s.right = 0
	case ActionMoveRight:
		s.right = s.holdFrames
		s.left = 0
	default:
		s.queue = append(s.queue, cmd)
	}
}

// SetHeld sets a level-triggered movement directly
func (s *State) SetHeld(a Action, held bool) {
	v := 0
	if held {
		v = HoldLevel
	}
	switch a {
	case ActionMoveLeft:
		s.left = v
	case ActionMoveRight:
		s.right = v
	}
}

// Move returns the held direction; left wins when both are held
func (s *State) Move() core.Direction {
	switch {
	case s.left != 0:
		return core.DirLeft
	case s.right != 0:
		return core.DirRight
	default:
		return core.DirNone
	}
}

// Drain returns and clears the pending edge events in arrival order
func (s *State) Drain() []Command {
	if len(s.queue) == 0 {
		return nil
	}
	out := s.queue
	s.queue = nil
	return out
}

// Tick decays terminal holds by one frame
func (s *State) Tick() {
	if s.left > 0 {
		s.left--
	}
	if s.right > 0 {
		s.right--
	}
}

// Clear drops every held movement and pending event
func (s *State) Clear() {
	s.left, s.right = 0, 0
	s.queue = nil
}
