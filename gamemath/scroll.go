package gamemath

import "math"

// ScrollView keeps the player box within margin units of every viewport edge.
// Each edge is tested independently and shifted by exactly the overshoot, so
// the player lands on the margin line the same frame it is crossed. View
// coordinates are truncated to integers after any shift for pixel-exact
// rendering; changed reports whether any edge moved.
func ScrollView(viewLeft, viewBottom, viewW, viewH, margin, px, py, pw, ph float64) (left, bottom float64, changed bool) {
	if bound := viewLeft + margin; px < bound {
		viewLeft -= bound - px
		changed = true
	}
	if bound := viewLeft + viewW - margin; px+pw > bound {
		viewLeft += px + pw - bound
		changed = true
	}
	if bound := viewBottom + viewH - margin; py+ph > bound {
		viewBottom += py + ph - bound
		changed = true
	}
	if bound := viewBottom + margin; py < bound {
		viewBottom -= bound - py
		changed = true
	}
	if changed {
		viewLeft = math.Trunc(viewLeft)
		viewBottom = math.Trunc(viewBottom)
	}
	return viewLeft, viewBottom, changed
}
