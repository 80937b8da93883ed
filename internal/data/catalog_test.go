package data

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/td2calc/internal/stat"
)

func TestMain(m *testing.M) {
	if err := LoadCatalogs(); err != nil {
		panic("load catalogs: " + err.Error())
	}
	os.Exit(m.Run())
}

func TestLoadCatalogs(t *testing.T) {
	t.Parallel()

	assert.Len(t, Categories(), 7)
	assert.NotEmpty(t, Masks())
	assert.NotEmpty(t, GearAttributes())
	assert.NotNil(t, GetWeapon("Stoner LMG"))
}

func TestGetCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		wantType stat.Type
		wantMax  float64
	}{
		{CategoryRifle, stat.CHD, 17},
		{CategoryAssaultRifle, stat.DTH, 21},
		{CategoryMarksmanRifle, stat.HSD, 111},
		{CategoryShotgun, stat.DTA, 12},
		{CategorySMG, stat.CHC, 21},
		{CategoryLMG, stat.DTTOOC, 12},
		{CategoryPistol, stat.None, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()

			def := GetCategory(tt.category)
			require.NotNil(t, def)
			assert.Equal(t, tt.wantType, def.Core2)
			assert.Equal(t, tt.wantMax, def.Core2Max)
		})
	}

	assert.Nil(t, GetCategory("Crossbow"))
}

func TestAvailableAttributesExcludesCore2(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		core2 := GetCategory(c).Core2
		attrs := AvailableAttributes(c)
		for _, a := range attrs {
			assert.NotEqual(t, core2, a.Stat, "category %s offers its own core 2 type", c)
		}
		if core2 == stat.None {
			assert.Len(t, attrs, 10, "pistol keeps every attribute")
		} else {
			assert.Len(t, attrs, 9, "category %s", c)
		}
	}
}

func TestGetAttribute(t *testing.T) {
	t.Parallel()

	chc := GetAttribute(stat.CHC)
	require.NotNil(t, chc)
	assert.Equal(t, 9.5, chc.Max)

	assert.Nil(t, GetAttribute(stat.TWD))
	assert.Nil(t, GetAttribute(stat.None))
}

func TestCompatibleMods(t *testing.T) {
	t.Parallel()

	lmg := GetWeapon("Stoner LMG")
	require.NotNil(t, lmg)

	mags := CompatibleMods(lmg, SlotMagazine)
	names := make([]string, 0, len(mags))
	for _, m := range mags {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"Large LMG Box", "Tactical LMG Box"}, names)

	m700 := GetWeapon("M700 Carbon")
	require.NotNil(t, m700)
	assert.Empty(t, CompatibleMods(m700, SlotMagazine))
	assert.Len(t, CompatibleMods(m700, SlotOptic), 4)

	assert.Nil(t, CompatibleMods(nil, SlotOptic))
}

func TestModUnknownStatDecodesToNone(t *testing.T) {
	t.Parallel()

	m := GetMod("Suppressor 5.56")
	require.NotNil(t, m)
	require.NotNil(t, m.Positive)
	assert.Equal(t, stat.None, m.Positive.Stat)
	assert.Nil(t, m.Negative)
}

func TestGetMask(t *testing.T) {
	t.Parallel()

	mask := GetMask("Coyote's Mask")
	require.NotNil(t, mask)
	assert.Equal(t, QualityExotic, mask.Quality)
	assert.True(t, mask.ModSlot)

	core := GetGearCore(mask.Core)
	require.NotNil(t, core)
	assert.Equal(t, stat.AWD, core.Stat)

	armor := GetGearCore("Armor")
	require.NotNil(t, armor)
	assert.Equal(t, stat.None, armor.Stat)

	assert.Nil(t, GetMask("Unknown Mask"))
}

func TestModSlotIndex(t *testing.T) {
	t.Parallel()

	for i, s := range ModSlots {
		assert.Equal(t, i, s.Index())
	}
	assert.Equal(t, -1, ModSlot("stock").Index())
}

func TestLoadCatalogsFSErrors(t *testing.T) {
	// Not parallel: a successful load would replace the shared tables.
	valid, err := catalogFS.ReadFile("catalog/categories.yaml")
	require.NoError(t, err)

	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{
			name: "missing file",
			fsys: fstest.MapFS{"c/categories.yaml": {Data: valid}},
		},
		{
			name: "duplicate category",
			fsys: fstest.MapFS{"c/categories.yaml": {Data: []byte(
				"categories:\n  - name: LMG\n  - name: LMG\n",
			)}},
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{"c/categories.yaml": {Data: []byte("categories: [\n")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, LoadCatalogsFS(tt.fsys, "c"))
		})
	}

	// The shared tables still hold the full category list.
	assert.Len(t, Categories(), 7)
}
