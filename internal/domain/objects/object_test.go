package objects

import (
	"testing"

	"github.com/KirkDiggler/dungeon-melee/internal/domain/shared"
	"github.com/KirkDiggler/dungeon-melee/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_Predicates(t *testing.T) {
	wand := &Object{Kind: WandMagicMissile, Number: 1, Pval: 5}
	food := &Object{Kind: RationOfFood, Number: 3}
	mushroom := &Object{Kind: SecondSight, Number: 1}
	gold := &Object{Kind: Gold, Number: 1, Pval: 40}

	assert.True(t, wand.CanHaveCharges())
	assert.False(t, food.CanHaveCharges())
	assert.True(t, food.IsEdible())
	assert.True(t, mushroom.IsEdible())
	assert.False(t, wand.IsEdible())
	assert.True(t, gold.IsMoney())
	assert.True(t, wand.HatesElement(shared.ElementElec))
	assert.False(t, wand.HatesElement(shared.ElementFire))

	assert.True(t, (&Object{Kind: Dagger}).IsWeapon())
	assert.True(t, (&Object{Kind: SoftLeatherArmour}).IsArmour())
	assert.True(t, (&Object{Kind: RodTreasureLocation}).IsRod())
	assert.False(t, wand.IsWeapon())
	assert.False(t, wand.IsArmour())
	assert.False(t, wand.IsRod())

	artifact := &Object{Kind: Dagger, Number: 1, Artifact: true}
	assert.False(t, artifact.HatesElement(shared.ElementAcid), "artifacts are never destroyed")
}

func TestObject_Split(t *testing.T) {
	t.Run("splits a plain stack", func(t *testing.T) {
		food := &Object{ID: "food-1", Kind: RationOfFood, Number: 3}
		one := food.Split(1)
		require.NotNil(t, one)
		assert.Equal(t, 1, one.Number)
		assert.Equal(t, 2, food.Number)
		assert.Empty(t, one.ID)
	})

	t.Run("shares out charges", func(t *testing.T) {
		wands := &Object{Kind: WandMagicMissile, Number: 2, Pval: 10}
		one := wands.Split(1)
		assert.Equal(t, 5, one.Pval)
		assert.Equal(t, 5, wands.Pval)
	})

	t.Run("caps at stack size", func(t *testing.T) {
		food := &Object{Kind: RationOfFood, Number: 1}
		taken := food.Split(4)
		assert.Equal(t, 1, taken.Number)
		assert.Equal(t, 0, food.Number)
		assert.Nil(t, food.Split(0))
	})
}

func TestObject_Describe(t *testing.T) {
	tests := []struct {
		name string
		obj  *Object
		mode DescMode
		want string
	}{
		{
			name: "single base",
			obj:  &Object{Kind: RationOfFood, Number: 1},
			mode: DescBase,
			want: "Ration of Food",
		},
		{
			name: "stack with prefix",
			obj:  &Object{Kind: RationOfFood, Number: 4},
			mode: DescPrefix | DescBase,
			want: "4 Rations of Food",
		},
		{
			name: "article before vowel",
			obj:  &Object{Kind: &Kind{Name: "Apple~", TVal: TValFood}, Number: 1},
			mode: DescPrefix | DescBase,
			want: "an Apple",
		},
		{
			name: "wand with charges",
			obj:  &Object{Kind: WandMagicMissile, Number: 1, Pval: 7},
			mode: DescFull,
			want: "a Wand of Magic Missile (7 charges)",
		},
		{
			name: "enchanted weapon",
			obj:  &Object{Kind: Dagger, Number: 1, ToH: 3, ToD: 2},
			mode: DescFull,
			want: "a Dagger (+3,+2)",
		},
		{
			name: "artifact",
			obj:  &Object{Kind: Dagger, Number: 1, Artifact: true, ArtifactName: "'Narthanc'"},
			mode: DescFull,
			want: "the Dagger 'Narthanc'",
		},
		{
			name: "money",
			obj:  &Object{Kind: Gold, Number: 1, Pval: 120},
			mode: DescFull,
			want: "120 gold pieces",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.obj.Describe(tt.mode))
		})
	}
}

func TestFactory_Money(t *testing.T) {
	factory := NewFactory(uuid.NewSequenceGenerator("obj"))

	t.Run("single pile", func(t *testing.T) {
		piles := factory.Money(250, OriginStolen, 12)
		require.Len(t, piles, 1)
		assert.Equal(t, 250, piles[0].Pval)
		assert.Equal(t, OriginStolen, piles[0].Origin)
		assert.Equal(t, 12, piles[0].OriginDepth)
		assert.Equal(t, "obj-1", piles[0].ID)
	})

	t.Run("splits large amounts", func(t *testing.T) {
		piles := factory.Money(MaxPval*2+5, OriginStolen, 3)
		require.Len(t, piles, 3)
		total := 0
		for _, pile := range piles {
			assert.LessOrEqual(t, pile.Pval, MaxPval)
			assert.True(t, pile.IsMoney())
			total += pile.Pval
		}
		assert.Equal(t, MaxPval*2+5, total)
	})

	t.Run("nothing for zero", func(t *testing.T) {
		assert.Empty(t, factory.Money(0, OriginStolen, 1))
	})
}

func TestFactory_Assign(t *testing.T) {
	factory := NewFactory(uuid.NewSequenceGenerator("split"))
	obj := factory.Assign(&Object{Kind: RationOfFood, Number: 1})
	assert.Equal(t, "split-1", obj.ID)

	kept := factory.Assign(&Object{ID: "keep", Kind: RationOfFood})
	assert.Equal(t, "keep", kept.ID)
	assert.Nil(t, factory.Assign(nil))
}
