package systems

import "github.com/solarlune/resolv"

// contactOffsets probe in place plus one unit in each axis direction, so
// resting contact (boxes that abut without penetrating) registers as well
// as true overlap.
var contactOffsets = [5][2]float64{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// contact reports the first collision found between obj and any tagged
// object it overlaps or rests against, or nil.
func contact(obj *resolv.Object, tags ...string) *resolv.Collision {
	for _, off := range contactOffsets {
		if check := obj.Check(off[0], off[1], tags...); check != nil {
			return check
		}
	}
	return nil
}
