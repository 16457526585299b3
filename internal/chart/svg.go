package chart

import (
	"bytes"
	"fmt"

	"binpack-service/internal/packing"
)

const (
	svgBarWidth  = 48
	svgBarGap    = 24
	svgBarHeight = 240
	svgMargin    = 36
)

var svgPalette = []string{
	"#4e79a7", "#f28e2b", "#59a14f", "#e15759",
	"#76b7b2", "#edc948", "#b07aa1", "#9c755f",
}

// RenderSVG renders one vertical stacked bar per bin. The bar outline spans
// the full capacity; item segments stack from the bottom in placement order.
func RenderSVG(bins []*packing.Bin, capacity float64) []byte {
	width := svgMargin*2 + len(bins)*svgBarWidth
	if len(bins) > 1 {
		width += (len(bins) - 1) * svgBarGap
	}
	height := svgBarHeight + svgMargin*2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="11">`,
		width, height, width, height)
	fmt.Fprintf(&buf, `<text x="%d" y="%d" fill="#333">capacity %g</text>`,
		svgMargin, svgMargin-10, capacity)

	for i, bin := range bins {
		x := svgMargin + i*(svgBarWidth+svgBarGap)

		y := float64(svgMargin + svgBarHeight)
		for j, weight := range bin.Items() {
			h := weight / capacity * svgBarHeight
			y -= h
			fill := svgPalette[j%len(svgPalette)]
			fmt.Fprintf(&buf, `<rect x="%d" y="%.2f" width="%d" height="%.2f" fill="%s" stroke="#ffffff"/>`,
				x, y, svgBarWidth, h, fill)
			if h >= 14 {
				fmt.Fprintf(&buf, `<text x="%d" y="%.2f" fill="#ffffff" text-anchor="middle">%g</text>`,
					x+svgBarWidth/2, y+h/2+4, weight)
			}
		}

		fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#333333"/>`,
			x, svgMargin, svgBarWidth, svgBarHeight)
		fmt.Fprintf(&buf, `<text x="%d" y="%d" fill="#333" text-anchor="middle">bin %d</text>`,
			x+svgBarWidth/2, svgMargin+svgBarHeight+16, i+1)
	}

	buf.WriteString(`</svg>`)
	return buf.Bytes()
}
