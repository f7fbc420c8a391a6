package monster

import "time"

// BlowLore counts how often a blow was seen to take effect
type BlowLore struct {
	Method string `json:"method"`
	Effect string `json:"effect"`
	Times  int    `json:"times"`
}

// Lore is the player's accumulated knowledge of a monster race
type Lore struct {
	RaceID    string      `json:"race_id"`
	Blows     []*BlowLore `json:"blows"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RecordBlow notes that a blow was seen, adding it if new
func (l *Lore) RecordBlow(method, effect string) *BlowLore {
	for _, blow := range l.Blows {
		if blow.Method == method && blow.Effect == effect {
			blow.Times++
			return blow
		}
	}
	blow := &BlowLore{Method: method, Effect: effect, Times: 1}
	l.Blows = append(l.Blows, blow)
	return blow
}

// TimesSeen returns how often a blow was seen
func (l *Lore) TimesSeen(method, effect string) int {
	for _, blow := range l.Blows {
		if blow.Method == method && blow.Effect == effect {
			return blow.Times
		}
	}
	return 0
}

// Clone returns a deep copy
func (l *Lore) Clone() *Lore {
	if l == nil {
		return nil
	}
	out := &Lore{
		RaceID:    l.RaceID,
		UpdatedAt: l.UpdatedAt,
		Blows:     make([]*BlowLore, 0, len(l.Blows)),
	}
	for _, blow := range l.Blows {
		copied := *blow
		out.Blows = append(out.Blows, &copied)
	}
	return out
}
