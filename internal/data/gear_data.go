package data

import (
	"fmt"
	"slices"

	"github.com/udisondev/td2calc/internal/stat"
)

// Quality is the rarity tier of a gear piece. It decides which slots are locked.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityNamed    Quality = "named"
	QualityExotic   Quality = "exotic"
)

// GearAttributeDef is a gear core or attribute roll. Stat is stat.None for
// rolls the damage engine does not consume (armor, health, ...).
type GearAttributeDef struct {
	Name string    `yaml:"name"`
	Stat stat.Type `yaml:"stat"`
	Max  float64   `yaml:"max"`
}

// GearModDef is a flat bonus slotted into a gear piece.
type GearModDef struct {
	Name  string    `yaml:"name"`
	Stat  stat.Type `yaml:"stat"`
	Value float64   `yaml:"value"`
}

// MaskDef is a mask archetype. Core and attributes reference gear tables by name.
type MaskDef struct {
	Name       string  `yaml:"name"`
	Quality    Quality `yaml:"quality"`
	Core       string  `yaml:"core"`
	Attribute1 string  `yaml:"attribute_1"`
	Attribute2 string  `yaml:"attribute_2"`
	ModSlot    bool    `yaml:"mod_slot"`
}

var (
	gearCoreTable      map[string]*GearAttributeDef
	gearAttributeTable map[string]*GearAttributeDef
	gearAttributeOrder []string
	gearModTable       map[string]*GearModDef
	maskTable          map[string]*MaskDef
	maskOrder          []string
)

func loadGear(raw []byte) error {
	var doc struct {
		Cores      []GearAttributeDef `yaml:"gear_cores"`
		Attributes []GearAttributeDef `yaml:"gear_attributes"`
		Mods       []GearModDef       `yaml:"gear_mods"`
	}
	if err := decodeCatalog(raw, &doc); err != nil {
		return err
	}

	cores, _, err := indexGearAttributes("gear core", doc.Cores)
	if err != nil {
		return err
	}
	attrs, order, err := indexGearAttributes("gear attribute", doc.Attributes)
	if err != nil {
		return err
	}

	mods := make(map[string]*GearModDef, len(doc.Mods))
	for i := range doc.Mods {
		def := &doc.Mods[i]
		if _, dup := mods[def.Name]; dup {
			return fmt.Errorf("duplicate gear mod %q", def.Name)
		}
		mods[def.Name] = def
	}

	gearCoreTable = cores
	gearAttributeTable = attrs
	gearAttributeOrder = order
	gearModTable = mods
	return nil
}

func indexGearAttributes(kind string, defs []GearAttributeDef) (map[string]*GearAttributeDef, []string, error) {
	table := make(map[string]*GearAttributeDef, len(defs))
	order := make([]string, 0, len(defs))
	for i := range defs {
		def := &defs[i]
		if _, dup := table[def.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate %s %q", kind, def.Name)
		}
		table[def.Name] = def
		order = append(order, def.Name)
	}
	return table, order, nil
}

func loadMasks(raw []byte) error {
	var doc struct {
		Masks []MaskDef `yaml:"masks"`
	}
	if err := decodeCatalog(raw, &doc); err != nil {
		return err
	}

	table := make(map[string]*MaskDef, len(doc.Masks))
	order := make([]string, 0, len(doc.Masks))
	for i := range doc.Masks {
		def := &doc.Masks[i]
		if _, dup := table[def.Name]; dup {
			return fmt.Errorf("duplicate mask %q", def.Name)
		}
		switch def.Quality {
		case QualityStandard, QualityNamed, QualityExotic:
		default:
			return fmt.Errorf("mask %q: unknown quality %q", def.Name, def.Quality)
		}
		if GetGearCore(def.Core) == nil {
			return fmt.Errorf("mask %q: unknown core %q", def.Name, def.Core)
		}
		for _, attr := range []string{def.Attribute1, def.Attribute2} {
			if GetGearAttribute(attr) == nil {
				return fmt.Errorf("mask %q: unknown attribute %q", def.Name, attr)
			}
		}
		table[def.Name] = def
		order = append(order, def.Name)
	}

	maskTable = table
	maskOrder = order
	return nil
}

// GetGearCore returns a gear core roll by name, nil if unknown.
func GetGearCore(name string) *GearAttributeDef {
	if gearCoreTable == nil {
		return nil
	}
	return gearCoreTable[name]
}

// GetGearAttribute returns a gear attribute roll by name, nil if unknown.
func GetGearAttribute(name string) *GearAttributeDef {
	if gearAttributeTable == nil {
		return nil
	}
	return gearAttributeTable[name]
}

// GearAttributes returns the gear attribute names in catalog order.
func GearAttributes() []string {
	return slices.Clone(gearAttributeOrder)
}

// GetGearMod returns a gear mod by name, nil if unknown.
func GetGearMod(name string) *GearModDef {
	if gearModTable == nil {
		return nil
	}
	return gearModTable[name]
}

// GetMask returns a mask archetype by name, nil if unknown.
func GetMask(name string) *MaskDef {
	if maskTable == nil {
		return nil
	}
	return maskTable[name]
}

// Masks returns all mask names in catalog order.
func Masks() []string {
	return slices.Clone(maskOrder)
}
