package model

import (
	"errors"
	"fmt"

	"github.com/udisondev/td2calc/internal/data"
	"github.com/udisondev/td2calc/internal/stat"
)

var (
	ErrSlotLocked           = errors.New("gear slot is locked")
	ErrNoModSlot            = errors.New("gear piece has no mod slot")
	ErrUnknownGearAttribute = errors.New("unknown gear attribute")
	ErrUnknownMask          = errors.New("unknown mask")
	ErrInvalidGearSlot      = errors.New("invalid gear slot")
)

// GearKind is the body slot a gear piece occupies.
type GearKind string

const (
	GearMask     GearKind = "mask"
	GearChest    GearKind = "chest"
	GearBackpack GearKind = "backpack"
	GearGloves   GearKind = "gloves"
	GearHolster  GearKind = "holster"
	GearKneepads GearKind = "kneepads"
)

// GearSlotIndex addresses one of the three modifier slots of a gear piece.
type GearSlotIndex int

const (
	GearSlotCore GearSlotIndex = iota
	GearSlotAttribute1
	GearSlotAttribute2

	gearSlotCount
)

// GearSlot is a single roll on a gear piece. Stat is stat.None for rolls the
// damage engine does not use.
type GearSlot struct {
	Name   string
	Stat   stat.Type
	Value  float64
	Max    float64
	Locked bool
}

// GearPiece is a mask or other gear piece with core, two attributes and an
// optional gear mod.
type GearPiece struct {
	kind       GearKind
	name       string
	quality    data.Quality
	slots      [gearSlotCount]GearSlot
	hasModSlot bool
	mod        *data.GearModDef
}

// NewMask builds a mask from its catalog archetype.
func NewMask(def *data.MaskDef) (*GearPiece, error) {
	if def == nil {
		return nil, ErrUnknownMask
	}
	return NewGearPiece(GearMask, def.Name, def.Quality, def.Core, def.Attribute1, def.Attribute2, def.ModSlot)
}

// NewGearPiece builds a gear piece with every slot rolled at max. Empty slot
// names leave the slot empty. Quality decides locking: exotic locks all three
// slots, named locks attribute 1, standard locks nothing.
func NewGearPiece(kind GearKind, name string, quality data.Quality, core, attr1, attr2 string, modSlot bool) (*GearPiece, error) {
	g := &GearPiece{
		kind:       kind,
		name:       name,
		quality:    quality,
		hasModSlot: modSlot,
	}

	for i, slotName := range [gearSlotCount]string{core, attr1, attr2} {
		if slotName == "" {
			continue
		}
		if err := g.SetSlot(GearSlotIndex(i), slotName); err != nil {
			return nil, fmt.Errorf("gear %q: %w", name, err)
		}
	}

	switch quality {
	case data.QualityExotic:
		for i := range g.slots {
			g.slots[i].Locked = true
		}
	case data.QualityNamed:
		g.slots[GearSlotAttribute1].Locked = true
	}
	return g, nil
}

func (g *GearPiece) Kind() GearKind { return g.kind }
func (g *GearPiece) Name() string { return g.name }
func (g *GearPiece) Quality() data.Quality { return g.quality }
func (g *GearPiece) HasModSlot() bool { return g.hasModSlot }
func (g *GearPiece) Mod() *data.GearModDef { return g.mod }
func (g *GearPiece) Slots() [3]GearSlot { return g.slots }

// Slot returns the roll at i; the zero GearSlot for an invalid index.
func (g *GearPiece) Slot(i GearSlotIndex) GearSlot {
	if i < 0 || i >= gearSlotCount {
		return GearSlot{}
	}
	return g.slots[i]
}

// SetSlot changes the roll type of slot i and rolls it at max. The core slot
// takes gear cores, attribute slots take gear attributes.
func (g *GearPiece) SetSlot(i GearSlotIndex, name string) error {
	if i < 0 || i >= gearSlotCount {
		return ErrInvalidGearSlot
	}
	if g.slots[i].Locked {
		return ErrSlotLocked
	}

	var def *data.GearAttributeDef
	if i == GearSlotCore {
		def = data.GetGearCore(name)
	} else {
		def = data.GetGearAttribute(name)
	}
	if def == nil {
		return fmt.Errorf("%q: %w", name, ErrUnknownGearAttribute)
	}

	g.slots[i] = GearSlot{Name: def.Name, Stat: def.Stat, Value: def.Max, Max: def.Max}
	return nil
}

// SetSlotValue sets the roll of slot i, clamped to [0, max].
func (g *GearPiece) SetSlotValue(i GearSlotIndex, v float64) error {
	if i < 0 || i >= gearSlotCount {
		return ErrInvalidGearSlot
	}
	if g.slots[i].Locked {
		return ErrSlotLocked
	}
	g.slots[i].Value = clamp(v, 0, g.slots[i].Max)
	return nil
}

// SetMod slots a gear mod. nil clears the slot.
func (g *GearPiece) SetMod(m *data.GearModDef) error {
	if !g.hasModSlot {
		return ErrNoModSlot
	}
	g.mod = m
	return nil
}
