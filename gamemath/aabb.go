package gamemath

// Overlaps reports whether two axis-aligned boxes intersect. Edges that
// merely touch do not count.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// Touches reports whether box a, displaced by pad units in any one of the
// four axis directions, would overlap box b. This catches resting contact
// (boxes that abut without penetrating) as well as true overlap.
func Touches(ax, ay, aw, ah, bx, by, bw, bh, pad float64) bool {
	return Overlaps(ax-pad, ay, aw, ah, bx, by, bw, bh) ||
		Overlaps(ax+pad, ay, aw, ah, bx, by, bw, bh) ||
		Overlaps(ax, ay-pad, aw, ah, bx, by, bw, bh) ||
		Overlaps(ax, ay+pad, aw, ah, bx, by, bw, bh)
}
