package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neumo/engine"
)

// eventForRune maps a typed character to an engine event.
func eventForRune(r rune) (engine.Event, bool) {
	if r >= '0' && r <= '9' {
		return engine.Digit{N: int(r - '0')}, true
	}
	switch r {
	case '.', ',':
		return engine.DecimalPoint{}, true
	case '+':
		return engine.Operator{Op: engine.OpAdd}, true
	case '-', '−':
		return engine.Operator{Op: engine.OpSub}, true
	case '*', 'x', 'X', '×':
		return engine.Operator{Op: engine.OpMul}, true
	case '/', '÷':
		return engine.Operator{Op: engine.OpDiv}, true
	case '=':
		return engine.Equals{}, true
	case '%':
		return engine.Percent{}, true
	case 'c', 'C':
		return engine.Clear{}, true
	case 's', 'S':
		return engine.ToggleSign{}, true
	}
	return nil, false
}

// Keys that do not arrive as input characters.
var specialKeys = []struct {
	key   ebiten.Key
	event engine.Event
}{
	{key: ebiten.KeyEnter, event: engine.Equals{}},
	{key: ebiten.KeyNumpadEnter, event: engine.Equals{}},
	{key: ebiten.KeyEscape, event: engine.Clear{}},
	{key: ebiten.KeyBackspace, event: engine.Backspace{}},
	{key: ebiten.KeyDelete, event: engine.ClearEntry{}},
}

// pollKeys appends the engine events produced by this frame's keyboard
// input. Character input is read with AppendInputChars; everything else is
// edge-triggered through inpututil.
func pollKeys(evs []engine.Event) []engine.Event {
	for _, r := range ebiten.AppendInputChars(nil) {
		if ev, ok := eventForRune(r); ok {
			evs = append(evs, ev)
		}
	}
	for _, sk := range specialKeys {
		if inpututil.IsKeyJustPressed(sk.key) {
			evs = append(evs, sk.event)
		}
	}
	return evs
}
