package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/monkey-runner/core"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys accepted in [keys]
var specialKeys = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
}

// Keymap translates terminal key events into commands
type Keymap struct {
	Runes map[rune]Command
	Keys  map[tcell.Key]Command
}

// DefaultKeymap returns the stock bindings:
// arrows move and jump, z/x/c/space fire powers, p pauses, enter starts, esc and q stop
func DefaultKeymap() *Keymap {
	return &Keymap{
		Runes: map[rune]Command{
			'z': UsePower(core.PowerAtomic),
			'x': UsePower(core.PowerGhostPepper),
			'c': UsePower(core.PowerCheese),
			' ': UsePower(core.PowerBroccoli),
			'p': {Action: ActionTogglePause},
			'q': {Action: ActionStop},
			'h': {Action: ActionMoveLeft},
			'l': {Action: ActionMoveRight},
			'k': {Action: ActionJump},
		},
		Keys: map[tcell.Key]Command{
			tcell.KeyLeft:   {Action: ActionMoveLeft},
			tcell.KeyRight:  {Action: ActionMoveRight},
			tcell.KeyUp:     {Action: ActionJump},
			tcell.KeyEnter:  {Action: ActionStart},
			tcell.KeyEscape: {Action: ActionStop},
			tcell.KeyCtrlC:  {Action: ActionStop},
		},
	}
}

// Clone returns a deep copy
func (m *Keymap) Clone() *Keymap {
	out := &Keymap{
		Runes: make(map[rune]Command, len(m.Runes)),
		Keys:  make(map[tcell.Key]Command, len(m.Keys)),
	}
	for r, c := range m.Runes {
		out.Runes[r] = c
	}
	for k, c := range m.Keys {
		out.Keys[k] = c
	}
	return out
}

// Apply overlays key name -> action name bindings, "none" unbinds
// Ctrl+C stays bound to stop regardless of overrides
func (m *Keymap) Apply(bindings map[string]string) error {
	for keyName, actionName := range bindings {
		cmd, err := ParseCommand(actionName)
		if err != nil {
			return fmt.Errorf("key %q: %w", keyName, err)
		}

		lower := strings.ToLower(keyName)
		if k, ok := specialKeys[lower]; ok {
			if cmd.Action == ActionNone {
				delete(m.Keys, k)
			} else {
				m.Keys[k] = cmd
			}
			continue
		}

		r, err := resolveRune(keyName)
		if err != nil {
			return err
		}
		if cmd.Action == ActionNone {
			delete(m.Runes, r)
		} else {
			m.Runes[r] = cmd
		}
	}
	m.Keys[tcell.KeyCtrlC] = Command{Action: ActionStop}
	return nil
}

// Translate resolves a key event, false when unbound
func (m *Keymap) Translate(ev *tcell.EventKey) (Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := m.Runes[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := m.Keys[ev.Key()]
	return cmd, ok
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}
