// Package ui is the calculator's front end: an ebiten window with a
// neumorphic keypad, plus a headless expression mode. It maps raw mouse and
// keyboard input to engine events and renders the engine's display string;
// all calculator semantics live in the engine package.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neumo/engine"
	"neumo/internal/buildinfo"
)

// Game drives one calculator. One input event is fully applied before the
// next is read; ebiten's update loop is the only scheduler.
type Game struct {
	eng     *engine.Engine
	buttons []button
	faces   *faces

	display string
	pressed int // index of the button under an active mouse press; -1 otherwise
}

// NewGame builds the front end around an explicitly constructed engine.
func NewGame(eng *engine.Engine) (*Game, error) {
	f, err := newFaces()
	if err != nil {
		return nil, err
	}
	return &Game{
		eng:     eng,
		buttons: buildButtons(),
		faces:   f,
		display: eng.Display(),
		pressed: -1,
	}, nil
}

func (g *Game) Update() error {
	for _, ev := range pollKeys(nil) {
		g.display = g.eng.Apply(ev)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		g.pressed = buttonAt(g.buttons, cx, cy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		if g.pressed >= 0 && g.pressed == buttonAt(g.buttons, cx, cy) {
			g.display = g.eng.Apply(g.buttons[g.pressed].event)
		}
		g.pressed = -1
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBase)

	// Display panel, inset like a carved-out well.
	drawSoftRect(screen, marginX, marginTop, screenW-2*marginX, displayH, colorBase, true)
	drawTextRight(screen, g.display, g.faces.display,
		screenW-marginX-16, marginTop+displayH/2, colorText)

	st := g.eng.Snapshot()
	for i := range g.buttons {
		b := &g.buttons[i]
		active := b.op != engine.OpNone && st.Phase == engine.PhaseOperatorPending && st.Op == b.op
		fill := colorBase
		txt := colorText
		switch {
		case b.accent:
			fill = colorAccent
			txt = colorAccentText
		case b.op != engine.OpNone:
			txt = colorOperator
		}
		if active {
			fill = colorAccent
			txt = colorAccentText
		}
		drawSoftRect(screen, b.x, b.y, b.w, b.h, fill, i == g.pressed || active)
		drawTextCenter(screen, b.label, g.faces.button,
			int(b.x+b.w/2), int(b.y+b.h/2), txt)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// Run opens the calculator window and blocks until it closes.
func Run(scale int) error {
	if scale < 1 {
		scale = 1
	}
	eng := engine.New()
	g, err := NewGame(eng)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle("Neumo (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(screenW*scale, screenH*scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
