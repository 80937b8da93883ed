package bonus

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/td2calc/internal/data"
	"github.com/udisondev/td2calc/internal/model"
	"github.com/udisondev/td2calc/internal/stat"
)

func TestMain(m *testing.M) {
	data.MustLoadCatalogs()
	os.Exit(m.Run())
}

func newLMGBuild(t *testing.T) *model.Build {
	t.Helper()
	return model.NewBuild(model.DefaultLoadout())
}

func equipMod(t *testing.T, b *model.Build, name string) {
	t.Helper()
	m := data.GetMod(name)
	require.NotNil(t, m, "mod %q", name)
	require.NoError(t, b.Mods.Equip(m))
}

func TestResolve_WeaponCores(t *testing.T) {
	t.Parallel()

	c := Resolve(newLMGBuild(t))

	assert.Equal(t, 12.0, c.Weapon.Get(stat.DTTOOC), "LMG core 2 feeds DTTOOC")
	assert.Equal(t, 9.5, c.Weapon.Get(stat.CHC))
	assert.Zero(t, c.Weapon.Get(stat.AWD), "core 1 is SWD, not a contribution")
	assert.Equal(t, stat.Set{}, c.Mods)
	assert.Equal(t, stat.Set{}, c.Gear)
	assert.Equal(t, stat.Set{}, c.Global)
}

func TestResolve_Core2FollowsCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category data.Category
		stat     stat.Type
		want     float64
	}{
		{data.CategoryAssaultRifle, stat.DTH, 0}, // armor target drops DTH
		{data.CategoryMarksmanRifle, stat.HSD, 111},
		{data.CategoryRifle, stat.CHD, 17},
		{data.CategorySMG, stat.CHC, 21},
		{data.CategoryShotgun, stat.DTA, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()

			w, err := model.NewWeaponLoadout(tt.category)
			require.NoError(t, err)

			c := Resolve(model.NewBuild(w))
			assert.Equal(t, tt.want, c.Weapon.Get(tt.stat))
		})
	}
}

func TestResolve_PistolHasNoCore2Effect(t *testing.T) {
	t.Parallel()

	w, err := model.NewWeaponLoadout(data.CategoryPistol)
	require.NoError(t, err)
	w.SetCoreAttribute2(50)

	c := Resolve(model.NewBuild(w))

	attr := w.Attribute()
	var want stat.Set
	want.Add(attr.Type, attr.Value)
	assert.Equal(t, want, c.Weapon)
}

func TestResolve_Mods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mod  string
		want map[stat.Type]float64
	}{
		{
			name: "positive and signed negative",
			mod:  "Large LMG Box",
			want: map[stat.Type]float64{stat.MagSize: 25, stat.ReloadSpeed: -15},
		},
		{
			name: "weapon handling also counts as reload speed",
			mod:  "Vertical Grip",
			want: map[stat.Type]float64{stat.WeaponHandling: 10, stat.ReloadSpeed: 10},
		},
		{
			name: "negative weapon handling does not touch reload speed",
			mod:  "Bipod",
			want: map[stat.Type]float64{stat.RateOfFire: 5, stat.WeaponHandling: -10},
		},
		{
			name: "unknown stat contributes nothing",
			mod:  "Suppressor 5.56",
			want: map[stat.Type]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := newLMGBuild(t)
			equipMod(t, b, tt.mod)

			var want stat.Set
			for st, v := range tt.want {
				want.Add(st, v)
			}
			assert.Equal(t, want, Resolve(b).Mods)
		})
	}
}

func TestResolve_MaskSlotsAndMod(t *testing.T) {
	t.Parallel()

	mask, err := model.NewMask(data.GetMask("Grupo Sombra Mask"))
	require.NoError(t, err)
	require.NoError(t, mask.SetMod(data.GetGearMod("Crit Chance Mod")))

	b := newLMGBuild(t)
	b.EquipGear(mask)

	c := Resolve(b)
	assert.Equal(t, 15.0, c.Gear.Get(stat.AWD))
	assert.Equal(t, 12.0, c.Gear.Get(stat.CHD))
	assert.Equal(t, 10.0, c.Gear.Get(stat.HSD))
	assert.Equal(t, 6.0, c.Gear.Get(stat.CHC))
	assert.Equal(t, 15.5, c.Get(stat.CHC), "weapon attribute and gear mod add up")
}

func TestResolve_NonDamageGearRollsIgnored(t *testing.T) {
	t.Parallel()

	mask, err := model.NewMask(data.GetMask("Ceska Vyroba Mask"))
	require.NoError(t, err)

	b := newLMGBuild(t)
	b.EquipGear(mask)

	var want stat.Set
	want.Add(stat.CHC, 6)
	assert.Equal(t, want, Resolve(b).Gear)
}

func TestResolve_GlobalModifiers(t *testing.T) {
	t.Parallel()

	b := newLMGBuild(t)
	b.Globals.SetWatchLevel(25)
	b.Globals.SetSeasonalAWD(3)

	c := Resolve(b)
	assert.InDelta(t, 8.0, c.Global.Get(stat.AWD), 1e-9)
}

func TestResolve_ScenarioFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		scenario model.CombatScenario
		wantDTA  float64
		wantDTH  float64
		wantOOC  float64
	}{
		{"armor out of cover", model.CombatScenario{Target: model.TargetArmor}, 12, 0, 0},
		{"health out of cover", model.CombatScenario{Target: model.TargetHealth}, 0, 9.5, 0},
		{"armor in cover", model.CombatScenario{Target: model.TargetArmor, InCover: true}, 12, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Shotgun: core 2 is DTA; attribute rolled as DTH.
			w, err := model.NewWeaponLoadout(data.CategoryShotgun)
			require.NoError(t, err)
			require.NoError(t, w.SetAttribute(stat.DTH))

			b := model.NewBuild(w)
			b.Scenario = tt.scenario

			c := Resolve(b)
			assert.Equal(t, tt.wantDTA, c.Get(stat.DTA))
			assert.Equal(t, tt.wantDTH, c.Get(stat.DTH))
			assert.Equal(t, tt.wantOOC, c.Get(stat.DTTOOC))
		})
	}
}

func TestResolve_CoverClearsOutOfCoverBonus(t *testing.T) {
	t.Parallel()

	b := newLMGBuild(t)
	assert.Equal(t, 12.0, Resolve(b).Get(stat.DTTOOC))

	b.Scenario.InCover = true
	assert.Zero(t, Resolve(b).Get(stat.DTTOOC))
}

func TestContributions_Groups(t *testing.T) {
	t.Parallel()

	b := newLMGBuild(t)
	equipMod(t, b, "Large LMG Box")
	b.Globals.SetSeasonalAWD(5)

	c := Resolve(b)
	assert.Equal(t, 25.0, c.Equipment().Get(stat.MagSize))
	assert.Zero(t, c.Weapon.Get(stat.MagSize))
	assert.Equal(t, 5.0, c.Total().Get(stat.AWD))
}
