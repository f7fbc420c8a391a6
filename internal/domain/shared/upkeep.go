package shared

// Redraw is a set of display refresh requests raised by game logic.
type Redraw uint32

const (
	RedrawGold Redraw = 1 << iota
	RedrawInven
	RedrawEquip
	RedrawHealth
	RedrawStats
	RedrawExp
	RedrawHP
	RedrawStatus
	RedrawMap
	NoticeCombine
)

// Has reports whether every flag in other is set.
func (r Redraw) Has(other Redraw) bool {
	return r&other == other
}

// IndexLabel is the letter shown beside an inventory or equipment slot
func IndexLabel(index int) rune {
	return rune('a' + index)
}
