package dungeon

import (
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// Feature is the terrain on a grid
type Feature int

const (
	FeatFloor Feature = iota
	FeatRubble
	FeatMagma
	FeatQuartz
	FeatGranite
	FeatPermanent
)

var featureNames = map[Feature]string{
	FeatFloor:     "floor",
	FeatRubble:    "rubble",
	FeatMagma:     "magma vein",
	FeatQuartz:    "quartz vein",
	FeatGranite:   "granite wall",
	FeatPermanent: "permanent wall",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsPassable reports whether something can stand on the feature
func (f Feature) IsPassable() bool {
	return f == FeatFloor
}

// Level is one dungeon floor
type Level struct {
	Depth  int
	Width  int
	Height int

	grid     [][]Feature
	monsters map[shared.Point]string
}

// NewLevel creates an open floor surrounded by permanent walls
func NewLevel(depth, width, height int) *Level {
	grid := make([][]Feature, height)
	for y := range grid {
		grid[y] = make([]Feature, width)
		for x := range grid[y] {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				grid[y][x] = FeatPermanent
			}
		}
	}

	return &Level{
		Depth:    depth,
		Width:    width,
		Height:   height,
		grid:     grid,
		monsters: make(map[shared.Point]string),
	}
}

// InBounds reports whether the point lies on the level
func (l *Level) InBounds(p shared.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.Width && p.Y < l.Height
}

// InBoundsFully reports whether the point lies inside the outer wall
func (l *Level) InBoundsFully(p shared.Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < l.Width-1 && p.Y < l.Height-1
}

// Feature returns the terrain at p. Off-level points are permanent rock.
func (l *Level) Feature(p shared.Point) Feature {
	if !l.InBounds(p) {
		return FeatPermanent
	}
	return l.grid[p.Y][p.X]
}

// SetFeature changes the terrain at p
func (l *Level) SetFeature(p shared.Point, f Feature) {
	if l.InBounds(p) {
		l.grid[p.Y][p.X] = f
	}
}

// PlaceMonster records a monster standing at p
func (l *Level) PlaceMonster(id string, p shared.Point) {
	l.monsters[p] = id
}

// RemoveMonster clears whatever monster stood at p
func (l *Level) RemoveMonster(p shared.Point) {
	delete(l.monsters, p)
}

// MonsterAt returns the ID of the monster at p
func (l *Level) MonsterAt(p shared.Point) (string, bool) {
	id, ok := l.monsters[p]
	return id, ok
}

// IsOpen reports whether p is passable floor with no monster on it
func (l *Level) IsOpen(p shared.Point) bool {
	if !l.Feature(p).IsPassable() {
		return false
	}
	_, occupied := l.monsters[p]
	return !occupied
}
