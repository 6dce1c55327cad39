package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Theme colors
var (
	RgbBackground   = RGB{15, 23, 42}
	RgbPanel        = RGB{30, 41, 59}
	RgbText         = RGB{226, 232, 240}
	RgbMuted        = RGB{100, 116, 139}
	RgbAxis         = RGB{71, 85, 105}
	RgbAccent       = RGB{56, 189, 248}
	RgbSelection    = RGB{250, 204, 21}
	RgbTooltipBg    = RGB{2, 6, 23}
	RgbModeSelectBg = RGB{14, 116, 144}
	RgbModeInspect  = RGB{190, 24, 93}
	RgbAudioMuted   = RGB{220, 38, 38}
	RgbAudioOn      = RGB{22, 163, 74}
)

// ParseHex reads "#rrggbb" or "#rgb"
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style returns a style with c as foreground on the theme background
func (c RGB) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color()).Background(RgbBackground.Color())
}

// On returns a style with fg c over bg
func (c RGB) On(bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color()).Background(bg.Color())
}
