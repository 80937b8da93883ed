package data

import (
	"fmt"
	"slices"

	"github.com/udisondev/td2calc/internal/stat"
)

// Category is a weapon archetype.
type Category string

const (
	CategoryAssaultRifle  Category = "Assault Rifle"
	CategoryLMG           Category = "LMG"
	CategoryMarksmanRifle Category = "Marksman Rifle"
	CategoryPistol        Category = "Pistol"
	CategoryRifle         Category = "Rifle"
	CategorySMG           Category = "SMG"
	CategoryShotgun       Category = "Shotgun"
)

// CategoryDef describes the fixed core attribute 2 of a weapon category.
// Core2 is stat.None for categories without a second core (Pistol).
type CategoryDef struct {
	Name     Category  `yaml:"name"`
	Core2    stat.Type `yaml:"core_attribute_2"`
	Core2Max float64   `yaml:"core_attribute_2_max"`
}

// AttributeDef is a selectable weapon attribute and its maximum roll.
type AttributeDef struct {
	Stat stat.Type `yaml:"stat"`
	Max  float64   `yaml:"max"`
}

// WeaponDef is a catalog weapon with its base stats and per-slot mount list.
type WeaponDef struct {
	Name         string               `yaml:"name"`
	Category     Category             `yaml:"category"`
	BaseDamage   float64              `yaml:"base_damage"`
	RPM          float64              `yaml:"rpm"`
	MagSize      float64              `yaml:"mag_size"`
	BaseHSD      float64              `yaml:"base_hsd"`
	ReloadTime   float64              `yaml:"reload_time"`
	OptimalRange float64              `yaml:"optimal_range"`
	Mounts       map[ModSlot][]string `yaml:"mounts"`
}

// Accepts reports whether the weapon has a mount of the given kind in slot.
func (w *WeaponDef) Accepts(slot ModSlot, mount string) bool {
	if w == nil {
		return false
	}
	return slices.Contains(w.Mounts[slot], mount)
}

var (
	categoryTable        map[Category]*CategoryDef
	categoryOrder        []Category
	weaponAttributeTable map[stat.Type]*AttributeDef
	weaponAttributeOrder []stat.Type
	weaponTable          map[string]*WeaponDef
	weaponsByCategory    map[Category][]*WeaponDef
)

func loadCategories(raw []byte) error {
	var doc struct {
		Categories []CategoryDef `yaml:"categories"`
	}
	if err := decodeCatalog(raw, &doc); err != nil {
		return err
	}

	table := make(map[Category]*CategoryDef, len(doc.Categories))
	order := make([]Category, 0, len(doc.Categories))
	for i := range doc.Categories {
		def := &doc.Categories[i]
		if _, dup := table[def.Name]; dup {
			return fmt.Errorf("duplicate category %q", def.Name)
		}
		table[def.Name] = def
		order = append(order, def.Name)
	}

	categoryTable = table
	categoryOrder = order
	return nil
}

func loadWeaponAttributes(raw []byte) error {
	var doc struct {
		Attributes []AttributeDef `yaml:"weapon_attributes"`
	}
	if err := decodeCatalog(raw, &doc); err != nil {
		return err
	}

	table := make(map[stat.Type]*AttributeDef, len(doc.Attributes))
	order := make([]stat.Type, 0, len(doc.Attributes))
	for i := range doc.Attributes {
		def := &doc.Attributes[i]
		// Unknown stat names decode to None; such rows can never be selected.
		if !def.Stat.Valid() {
			continue
		}
		if _, dup := table[def.Stat]; dup {
			return fmt.Errorf("duplicate weapon attribute %q", def.Stat)
		}
		table[def.Stat] = def
		order = append(order, def.Stat)
	}

	weaponAttributeTable = table
	weaponAttributeOrder = order
	return nil
}

func loadWeapons(raw []byte) error {
	var doc struct {
		Weapons []WeaponDef `yaml:"weapons"`
	}
	if err := decodeCatalog(raw, &doc); err != nil {
		return err
	}

	table := make(map[string]*WeaponDef, len(doc.Weapons))
	byCategory := make(map[Category][]*WeaponDef)
	for i := range doc.Weapons {
		def := &doc.Weapons[i]
		if _, dup := table[def.Name]; dup {
			return fmt.Errorf("duplicate weapon %q", def.Name)
		}
		table[def.Name] = def
		byCategory[def.Category] = append(byCategory[def.Category], def)
	}

	weaponTable = table
	weaponsByCategory = byCategory
	return nil
}

// GetCategory returns the category definition, nil if unknown.
func GetCategory(c Category) *CategoryDef {
	if categoryTable == nil {
		return nil
	}
	return categoryTable[c]
}

// Categories returns all categories in catalog order.
func Categories() []Category {
	return slices.Clone(categoryOrder)
}

// GetAttribute returns the weapon attribute for t, nil if t is not selectable.
func GetAttribute(t stat.Type) *AttributeDef {
	if weaponAttributeTable == nil {
		return nil
	}
	return weaponAttributeTable[t]
}

// AvailableAttributes returns the attributes selectable for category c.
// The type consumed by the category's core attribute 2 is excluded.
func AvailableAttributes(c Category) []AttributeDef {
	var core2 stat.Type
	if def := GetCategory(c); def != nil {
		core2 = def.Core2
	}

	out := make([]AttributeDef, 0, len(weaponAttributeOrder))
	for _, t := range weaponAttributeOrder {
		if t == core2 {
			continue
		}
		out = append(out, *weaponAttributeTable[t])
	}
	return out
}

// GetWeapon returns a catalog weapon by exact name, nil if unknown.
func GetWeapon(name string) *WeaponDef {
	if weaponTable == nil {
		return nil
	}
	return weaponTable[name]
}

// WeaponsByCategory returns the catalog weapons of category c.
func WeaponsByCategory(c Category) []*WeaponDef {
	if weaponsByCategory == nil {
		return nil
	}
	return weaponsByCategory[c]
}
