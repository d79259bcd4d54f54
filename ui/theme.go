package ui

import "image/color"

// Neumorphic palette. The soft-UI look comes from one base tone with a light
// shadow above-left and a dark shadow below-right of every surface; pressed
// surfaces swap the two.
var (
	colorBase        = color.RGBA{R: 0xE0, G: 0xE5, B: 0xEC, A: 0xFF}
	colorShadowDark  = color.RGBA{R: 163, G: 177, B: 198, A: 255}
	colorShadowLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorText        = color.RGBA{R: 0x3A, G: 0x40, B: 0x4C, A: 0xFF}
	colorOperator    = color.RGBA{R: 0x6D, G: 0x5D, B: 0xFC, A: 0xFF}
	colorAccent      = color.RGBA{R: 0x6D, G: 0x5D, B: 0xFC, A: 0xFF}
	colorAccentText  = color.RGBA{R: 0xF4, G: 0xF6, B: 0xFA, A: 0xFF}
)

// Logical screen geometry; the window is this size times the -scale flag.
const (
	screenW = 360
	screenH = 520

	marginX      = 24
	marginTop    = 30
	marginBottom = 24
	gutter       = 16

	displayH   = 80
	displayGap = 20

	cornerRadius = 14
	shadowOffset = 4
	shadowLayers = 3

	displayFontSize = 30
	buttonFontSize  = 20
)
