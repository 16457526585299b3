// Package chart renders a finished packing as bar charts for human
// inspection. Renderers consume the bins and the capacity as-is and never
// re-derive packing decisions.
package chart

import (
	"fmt"
	"math"
	"strings"

	"binpack-service/internal/packing"
)

const textBarWidth = 40

// RenderText renders one horizontal bar per bin, segmented per item and
// scaled so a full bar spans the capacity.
func RenderText(bins []*packing.Bin, capacity float64) string {
	var sb strings.Builder

	for i, bin := range bins {
		fmt.Fprintf(&sb, "bin %2d [%s] load %g/%g items %v\n",
			i+1, textBar(bin, capacity), bin.Load(), capacity, bin.Items())
	}

	s := Summarize(bins, capacity)
	fmt.Fprintf(&sb, "%d bins, %d items, total load %g, mean utilization %.1f%%\n",
		s.Bins, s.Items, s.TotalLoad, s.MeanUtilization*100)

	return sb.String()
}

func textBar(bin *packing.Bin, capacity float64) string {
	cells := []byte(strings.Repeat(".", textBarWidth))

	pos := 0
	cum := 0.0
	for idx, weight := range bin.Items() {
		cum += weight
		end := int(math.Round(cum / capacity * textBarWidth))
		if end > textBarWidth {
			end = textBarWidth
		}
		// alternate fill characters so adjacent segments stay visible
		fill := byte('#')
		if idx%2 == 1 {
			fill = '='
		}
		for ; pos < end; pos++ {
			cells[pos] = fill
		}
	}

	return string(cells)
}
