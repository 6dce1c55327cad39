package render

import "github.com/gdamore/tcell/v2"

// Cell is one screen cell. Rune 0 marks the trailing half of a wide rune
type Cell struct {
	Rune  rune
	Style tcell.Style
}
