package shared

// Point is a grid location on a dungeon level.
type Point struct {
	X int
	Y int
}

// Distance approximates the walking distance between two grids: the longer
// axis plus half the shorter one.
func Distance(a, b Point) int {
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	if dy > dx {
		return dy + dx/2
	}
	return dx + dy/2
}
