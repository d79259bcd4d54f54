package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type faces struct {
	display font.Face
	button  font.Face
}

func newFaces() (*faces, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	display, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    displayFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	button, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    buttonFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &faces{display: display, button: button}, nil
}

// fillRoundedRect fills a rectangle with quarter-circle corners.
func fillRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, w, h-2*r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, clr, true)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// Premultiplied alpha; scale the channels with it.
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 255) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}

// drawSoftRect draws a neumorphic surface: layered translucent shadows
// approximate a blur, with the light source up-left. Pressed surfaces swap
// the shadows to look inset.
func drawSoftRect(dst *ebiten.Image, x, y, w, h float32, fill color.RGBA, pressed bool) {
	dark, light := colorShadowDark, colorShadowLight
	if pressed {
		dark, light = light, dark
	}
	for i := shadowLayers; i >= 1; i-- {
		off := float32(shadowOffset * i / shadowLayers)
		spread := float32(i - 1)
		a := uint8(90 / i)
		fillRoundedRect(dst, x+off-spread, y+off-spread, w+2*spread, h+2*spread, cornerRadius+spread, withAlpha(dark, a))
		fillRoundedRect(dst, x-off-spread, y-off-spread, w+2*spread, h+2*spread, cornerRadius+spread, withAlpha(light, a))
	}
	fillRoundedRect(dst, x, y, w, h, cornerRadius, fill)
}

// drawTextRight draws s right-aligned at x=right, vertically centered on
// centerY.
func drawTextRight(dst *ebiten.Image, s string, face font.Face, right, centerY int, clr color.Color) {
	b := text.BoundString(face, s)
	x := right - b.Max.X
	y := centerY - (b.Min.Y+b.Max.Y)/2
	text.Draw(dst, s, face, x, y, clr)
}

// drawTextCenter draws s centered on (centerX, centerY).
func drawTextCenter(dst *ebiten.Image, s string, face font.Face, centerX, centerY int, clr color.Color) {
	b := text.BoundString(face, s)
	x := centerX - (b.Min.X+b.Max.X)/2
	y := centerY - (b.Min.Y+b.Max.Y)/2
	text.Draw(dst, s, face, x, y, clr)
}
