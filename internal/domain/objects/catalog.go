package objects

import "github.com/KirkDiggler/dungeon-melee/internal/domain/shared"

// Standard kinds used by fixtures and the simulator
var (
	RationOfFood = &Kind{Key: "ration", Name: "Ration~ of Food", TVal: TValFood}
	SlimeMold    = &Kind{Key: "slime-mold", Name: "Slime Mold~", TVal: TValFood}
	SecondSight  = &Kind{Key: "second-sight", Name: "Mushroom~ of Second Sight", TVal: TValMushroom, Level: 10}

	CureLightWounds = &Kind{Key: "clw", Name: "Potion~ of Cure Light Wounds", TVal: TValPotion,
		Hates: []shared.Element{shared.ElementCold, shared.ElementSound}}
	PhaseDoor = &Kind{Key: "phase-door", Name: "Scroll~ of Phase Door", TVal: TValScroll, Level: 1,
		Hates: []shared.Element{shared.ElementAcid, shared.ElementFire}}
	FlaskOfOil = &Kind{Key: "flask-oil", Name: "Flask~ of Oil", TVal: TValFlask, Level: 1,
		Hates: []shared.Element{shared.ElementCold}}

	WandMagicMissile = &Kind{Key: "wand-mm", Name: "Wand~ of Magic Missile", TVal: TValWand, Level: 3,
		Hates: []shared.Element{shared.ElementElec}}
	WandStinkingCloud = &Kind{Key: "wand-sc", Name: "Wand~ of Stinking Cloud", TVal: TValWand, Level: 5,
		Hates: []shared.Element{shared.ElementElec}}
	RodTreasureLocation = &Kind{Key: "rod-tl", Name: "Rod~ of Treasure Location", TVal: TValRod, Level: 5,
		Hates: []shared.Element{shared.ElementElec}}
	StaffDetectEvil = &Kind{Key: "staff-de", Name: "Staff~ of Detect Evil", TVal: TValStaff, Level: 20,
		Hates: []shared.Element{shared.ElementAcid, shared.ElementFire}}

	Dagger = &Kind{Key: "dagger", Name: "Dagger~", TVal: TValSword,
		Hates: []shared.Element{shared.ElementAcid}}
	SoftLeatherArmour = &Kind{Key: "soft-leather", Name: "Soft Leather Armour~", TVal: TValSoftArmor,
		Hates: []shared.Element{shared.ElementAcid, shared.ElementFire}}
	WoodenTorch = &Kind{Key: "torch", Name: "Wooden Torch~", TVal: TValLight,
		Hates: []shared.Element{shared.ElementFire}}
	Lantern = &Kind{Key: "lantern", Name: "Lantern~", TVal: TValLight, Level: 5}

	Gold = &Kind{Key: "gold", Name: "gold", TVal: TValGold}
)
