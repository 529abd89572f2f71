package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop interval used when none is given.
const DefaultTabWidth = 4

// CellMeasurer measures spans in terminal cells using East Asian width
// rules, scaled by cellWidth pixels per cell.
func CellMeasurer(cellWidth float64, tabWidth int) Measurer {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	cond := runewidth.NewCondition()
	return func(span string) float64 {
		cells := 0
		for _, r := range span {
			if r == '\t' {
				cells += tabWidth - cells%tabWidth
				continue
			}
			cells += cond.RuneWidth(r)
		}
		return float64(cells) * cellWidth
	}
}

// GraphemeMeasurer measures spans by grapheme cluster so that combining
// marks, ZWJ sequences and flags count once.
func GraphemeMeasurer(cellWidth float64, tabWidth int) Measurer {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return func(span string) float64 {
		cells := 0
		state := -1
		rest := span
		for len(rest) > 0 {
			var cluster string
			var width int
			cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if cluster == "\t" {
				cells += tabWidth - cells%tabWidth
				continue
			}
			cells += width
		}
		return float64(cells) * cellWidth
	}
}

// FixedMeasurer gives every byte the same width. It is useful for tests
// and ASCII-only hosts.
func FixedMeasurer(byteWidth float64) Measurer {
	return func(span string) float64 {
		return float64(len(span)) * byteWidth
	}
}
