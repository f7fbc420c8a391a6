package objects

import "github.com/KirkDiggler/dungeon-melee/internal/uuid"

// Factory creates objects with fresh IDs
type Factory struct {
	ids uuid.Generator
}

// NewFactory creates a Factory that draws IDs from ids
func NewFactory(ids uuid.Generator) *Factory {
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &Factory{ids: ids}
}

// New creates a stack of number objects of the given kind
func (f *Factory) New(kind *Kind, number int) *Object {
	return &Object{
		ID:     f.ids.New(),
		Kind:   kind,
		Number: number,
	}
}

// Assign gives an ID to an object created elsewhere, such as a split stack
func (f *Factory) Assign(obj *Object) *Object {
	if obj != nil && obj.ID == "" {
		obj.ID = f.ids.New()
	}
	return obj
}

// Money turns amount into one or more gold objects, none holding more than
// MaxPval, all tagged with origin and depth.
func (f *Factory) Money(amount int, origin Origin, depth int) []*Object {
	var piles []*Object
	for amount > 0 {
		value := amount
		if value > MaxPval {
			value = MaxPval
		}
		amount -= value

		obj := f.New(Gold, 1)
		obj.Pval = value
		obj.Origin = origin
		obj.OriginDepth = depth
		piles = append(piles, obj)
	}
	return piles
}
