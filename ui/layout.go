package ui

import "neumo/engine"

// button is one cell of the keypad grid.
type button struct {
	label  string
	event  engine.Event
	op     engine.Op // OpNone unless this is an operator key
	accent bool

	x, y, w, h float32
}

func (b *button) contains(px, py int) bool {
	fx, fy := float32(px), float32(py)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

type cell struct {
	label string
	event engine.Event
	op    engine.Op
}

// Keypad rows, matching a standard calculator face.
var keypad = [][]cell{
	{
		{label: "C", event: engine.Clear{}},
		{label: "CE", event: engine.ClearEntry{}},
		{label: "±", event: engine.ToggleSign{}},
		{label: "⌫", event: engine.Backspace{}},
	},
	{
		{label: "7", event: engine.Digit{N: 7}},
		{label: "8", event: engine.Digit{N: 8}},
		{label: "9", event: engine.Digit{N: 9}},
		{label: "÷", event: engine.Operator{Op: engine.OpDiv}, op: engine.OpDiv},
	},
	{
		{label: "4", event: engine.Digit{N: 4}},
		{label: "5", event: engine.Digit{N: 5}},
		{label: "6", event: engine.Digit{N: 6}},
		{label: "×", event: engine.Operator{Op: engine.OpMul}, op: engine.OpMul},
	},
	{
		{label: "1", event: engine.Digit{N: 1}},
		{label: "2", event: engine.Digit{N: 2}},
		{label: "3", event: engine.Digit{N: 3}},
		{label: "−", event: engine.Operator{Op: engine.OpSub}, op: engine.OpSub},
	},
	{
		{label: "0", event: engine.Digit{N: 0}},
		{label: ".", event: engine.DecimalPoint{}},
		{label: "%", event: engine.Percent{}},
		{label: "+", event: engine.Operator{Op: engine.OpAdd}, op: engine.OpAdd},
	},
}

// buildButtons lays out the keypad inside the logical screen: five rows of
// four keys and a full-width equals row under them.
func buildButtons() []button {
	innerW := float32(screenW - 2*marginX)
	gridTop := float32(marginTop + displayH + displayGap)
	gridH := float32(screenH-marginBottom) - gridTop

	rows := float32(len(keypad) + 1) // keypad plus the equals row
	btnH := (gridH - (rows-1)*gutter) / rows
	btnW := (innerW - 3*gutter) / 4

	var buttons []button
	for r, row := range keypad {
		for c, cl := range row {
			buttons = append(buttons, button{
				label: cl.label,
				event: cl.event,
				op:    cl.op,
				x:     float32(marginX) + float32(c)*(btnW+gutter),
				y:     gridTop + float32(r)*(btnH+gutter),
				w:     btnW,
				h:     btnH,
			})
		}
	}
	buttons = append(buttons, button{
		label:  "=",
		event:  engine.Equals{},
		accent: true,
		x:      marginX,
		y:      gridTop + float32(len(keypad))*(btnH+gutter),
		w:      innerW,
		h:      btnH,
	})
	return buttons
}

// buttonAt returns the index of the button under (px, py), or -1.
func buttonAt(buttons []button, px, py int) int {
	for i := range buttons {
		if buttons[i].contains(px, py) {
			return i
		}
	}
	return -1
}
