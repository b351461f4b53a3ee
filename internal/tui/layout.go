package tui

import uv "github.com/charmbracelet/ultraviolet"

// HintsHeight is the height of the hint bar in rows
const HintsHeight = 1

// Layout defines the rectangular regions of the host screen
type Layout struct {
	Area     uv.Rectangle
	Backdrop uv.Rectangle
	Hints    uv.Rectangle
}

// CalculateLayout splits the screen into the backdrop page and, when shown,
// a hint bar along the bottom row.
func CalculateLayout(width, height int, showHints bool) Layout {
	area := uv.Rectangle{
		Max: uv.Position{X: max(width, 0), Y: max(height, 0)},
	}

	if !showHints || area.Dy() <= HintsHeight {
		return Layout{Area: area, Backdrop: area}
	}

	backdrop, hints := uv.SplitVertical(area, uv.Fixed(area.Dy()-HintsHeight))
	return Layout{Area: area, Backdrop: backdrop, Hints: hints}
}
