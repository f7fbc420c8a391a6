package player

import (
	"log"

	"github.com/KirkDiggler/dungeon-melee/internal/domain/conditions"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/objects"
	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
)

// DefaultPackSize is the number of inventory slots a player carries
const DefaultPackSize = 23

// Player is the character being struck in melee
type Player struct {
	ID   string
	Name string

	CharLevel    int
	MaxCharLevel int
	Exp          int
	MaxExp       int
	// ExpFactor is the race and class experience penalty, in percent
	ExpFactor int

	CurrentHitPoints int
	MaxHitPoints     int
	// KilledBy is set when the player dies
	KilledBy string

	// BaseAC is armour that does not come from equipment
	BaseAC      int
	SavingThrow int

	StatCur [5]int
	StatMax [5]int

	Coins        int
	DungeonDepth int

	Traits  map[shared.Trait]bool
	Resists map[shared.Element]int

	Inventory []*objects.Object
	Equipment [SlotCount]*objects.Object

	Pos shared.Point

	// HealthWho is the ID of the monster whose health bar is shown
	HealthWho string

	timed    *conditions.Manager
	redraw   shared.Redraw
	messages shared.Messenger
	dead     bool
}

// Config holds the starting values for a new Player
type Config struct {
	ID          string
	Name        string
	Exp         int
	ExpFactor   int
	HitPoints   int
	SavingThrow int
	Stats       [5]int
	Coins       int
	Depth       int
	PackSize    int
	Messages    shared.Messenger
}

// New creates a player from cfg. Level is derived from experience.
func New(cfg *Config) *Player {
	if cfg == nil {
		cfg = &Config{}
	}

	expFactor := cfg.ExpFactor
	if expFactor <= 0 {
		expFactor = 100
	}
	packSize := cfg.PackSize
	if packSize <= 0 {
		packSize = DefaultPackSize
	}
	messages := cfg.Messages
	if messages == nil {
		messages = shared.Discard
	}

	p := &Player{
		ID:               cfg.ID,
		Name:             cfg.Name,
		Exp:              cfg.Exp,
		MaxExp:           cfg.Exp,
		ExpFactor:        expFactor,
		CurrentHitPoints: cfg.HitPoints,
		MaxHitPoints:     cfg.HitPoints,
		SavingThrow:      cfg.SavingThrow,
		StatCur:          cfg.Stats,
		StatMax:          cfg.Stats,
		Coins:            cfg.Coins,
		DungeonDepth:     cfg.Depth,
		Traits:           make(map[shared.Trait]bool),
		Resists:          make(map[shared.Element]int),
		Inventory:        make([]*objects.Object, packSize),
		timed:            conditions.NewManager(cfg.ID),
		messages:         messages,
	}
	p.CharLevel = LevelFor(p.Exp, p.ExpFactor)
	p.MaxCharLevel = p.CharLevel

	return p
}

// SetMessenger replaces where player messages are sent
func (p *Player) SetMessenger(m shared.Messenger) {
	if m == nil {
		m = shared.Discard
	}
	p.messages = m
}

// Messenger returns where player messages are sent
func (p *Player) Messenger() shared.Messenger {
	return p.messages
}

// Msg sends a message to the player
func (p *Player) Msg(format string, args ...any) {
	p.messages.Msg(format, args...)
}

// TakeHit reduces hit points. The player dies when hit points drop below zero.
func (p *Player) TakeHit(amount int, killer string) {
	if p.dead || amount <= 0 {
		return
	}

	p.CurrentHitPoints -= amount
	p.redraw |= shared.RedrawHP

	if p.CurrentHitPoints < 0 {
		p.dead = true
		p.KilledBy = killer
		p.Msg("You die.")
		log.Printf("[PLAYER] %s killed by %s", p.Name, killer)
	}
}

// IsDead reports whether the player has died
func (p *Player) IsDead() bool {
	return p.dead
}

// Level returns the current character level
func (p *Player) Level() int {
	return p.CharLevel
}

// SaveSkill is the percent chance to shrug off a saving-throw effect
func (p *Player) SaveSkill() int {
	return p.SavingThrow
}

// HasTrait reports whether the player holds a protective trait
func (p *Player) HasTrait(t shared.Trait) bool {
	return p.Traits[t]
}

// GrantTrait gives the player a protective trait
func (p *Player) GrantTrait(t shared.Trait) {
	p.Traits[t] = true
}

// ResistLevel returns the resistance level for an element
func (p *Player) ResistLevel(e shared.Element) int {
	return p.Resists[e]
}

// SetResist sets the resistance level for an element
func (p *Player) SetResist(e shared.Element, level int) {
	p.Resists[e] = level
}

// Gold returns the coins carried
func (p *Player) Gold() int {
	return p.Coins
}

// SpendGold removes coins from the purse, never going below zero
func (p *Player) SpendGold(amount int) {
	p.Coins -= amount
	if p.Coins < 0 {
		p.Coins = 0
	}
}

// Position returns the grid the player stands on
func (p *Player) Position() shared.Point {
	return p.Pos
}

// MoveTo places the player on a new grid
func (p *Player) MoveTo(pt shared.Point) {
	p.Pos = pt
	p.redraw |= shared.RedrawMap
}

// Depth returns the dungeon level the player is on
func (p *Player) Depth() int {
	return p.DungeonDepth
}

// Redraw queues display refresh flags
func (p *Player) Redraw(flags shared.Redraw) {
	p.redraw |= flags
}

// Redraws returns the pending refresh flags
func (p *Player) Redraws() shared.Redraw {
	return p.redraw
}

// ClearRedraws forgets pending refresh flags
func (p *Player) ClearRedraws() {
	p.redraw = 0
}

// TracksHealthOf reports whether the health bar shows the given monster
func (p *Player) TracksHealthOf(monsterID string) bool {
	return p.HealthWho != "" && p.HealthWho == monsterID
}
