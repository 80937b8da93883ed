package data

import (
	"fmt"

	"github.com/udisondev/td2calc/internal/stat"
)

// ModSlot is one of the four weapon mod slots.
type ModSlot string

const (
	SlotMagazine    ModSlot = "magazine"
	SlotMuzzle      ModSlot = "muzzle"
	SlotOptic       ModSlot = "optic"
	SlotUnderbarrel ModSlot = "underbarrel"
)

// ModSlots lists the weapon mod slots in display order.
var ModSlots = [...]ModSlot{SlotMagazine, SlotMuzzle, SlotOptic, SlotUnderbarrel}

// Index returns the position of s in ModSlots, -1 if s is not a slot.
func (s ModSlot) Index() int {
	for i, slot := range ModSlots {
		if slot == s {
			return i
		}
	}
	return -1
}

// Effect is a single signed stat bonus.
type Effect struct {
	Stat  stat.Type `yaml:"stat"`
	Value float64   `yaml:"value"`
}

// ModDef is a weapon mod. Negative.Value is stored already signed.
type ModDef struct {
	Name     string  `yaml:"name"`
	Slot     ModSlot `yaml:"slot"`
	Mount    string  `yaml:"mount"`
	Positive *Effect `yaml:"positive"`
	Negative *Effect `yaml:"negative"`
}

var (
	modTable   map[string]*ModDef
	modsBySlot map[ModSlot][]*ModDef
)

func loadWeaponMods(raw []byte) error {
	var doc struct {
		Mods []ModDef `yaml:"weapon_mods"`
	}
	if err := decodeCatalog(raw, &doc); err != nil {
		return err
	}

	table := make(map[string]*ModDef, len(doc.Mods))
	bySlot := make(map[ModSlot][]*ModDef, len(ModSlots))
	for i := range doc.Mods {
		def := &doc.Mods[i]
		if def.Slot.Index() < 0 {
			return fmt.Errorf("mod %q: unknown slot %q", def.Name, def.Slot)
		}
		if _, dup := table[def.Name]; dup {
			return fmt.Errorf("duplicate weapon mod %q", def.Name)
		}
		table[def.Name] = def
		bySlot[def.Slot] = append(bySlot[def.Slot], def)
	}

	modTable = table
	modsBySlot = bySlot
	return nil
}

// GetMod returns a weapon mod by exact name, nil if unknown.
func GetMod(name string) *ModDef {
	if modTable == nil {
		return nil
	}
	return modTable[name]
}

// CompatibleMods returns the mods for slot whose mount the weapon accepts.
// A nil weapon yields no mods.
func CompatibleMods(w *WeaponDef, slot ModSlot) []*ModDef {
	if w == nil {
		return nil
	}
	var out []*ModDef
	for _, m := range modsBySlot[slot] {
		if w.Accepts(slot, m.Mount) {
			out = append(out, m)
		}
	}
	return out
}
