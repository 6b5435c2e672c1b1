package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/monkey-runner/core"
)

// Action is a player intent delivered by a frontend
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionUsePower
	ActionTogglePause
	ActionStop
	ActionStart
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionJump:
		return "jump"
	case ActionUsePower:
		return "use_power"
	case ActionTogglePause:
		return "pause"
	case ActionStop:
		return "stop"
	case ActionStart:
		return "start"
	default:
		return "none"
	}
}

// Level reports whether the action is held (level-triggered) rather than pressed once
func (a Action) Level() bool {
	return a == ActionMoveLeft || a == ActionMoveRight
}

// Command is one resolved input event
// Power is meaningful only for ActionUsePower
type Command struct {
	Action Action
	Power  core.PowerKind
}

// UsePower builds the command for a power activation
func UsePower(kind core.PowerKind) Command {
	return Command{Action: ActionUsePower, Power: kind}
}

func (c Command) String() string {
	if c.Action == ActionUsePower {
		return "use_" + strings.ReplaceAll(c.Power.String(), "-", "_")
	}
	return c.Action.String()
}

// ParseCommand resolves a binding name such as "jump" or "use_ghost_pepper"
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if kindName, ok := strings.CutPrefix(name, "use_"); ok {
		kind, ok := core.ParsePowerKind(kindName)
		if !ok {
			return Command{}, fmt.Errorf("unknown power in action %q", name)
		}
		return UsePower(kind), nil
	}
	for a := ActionMoveLeft; a <= ActionStart; a++ {
		if a != ActionUsePower && a.String() == name {
			return Command{Action: a}, nil
		}
	}
	if name == "none" {
		return Command{}, nil
	}
	return Command{}, fmt.Errorf("unknown action: %q", name)
}
