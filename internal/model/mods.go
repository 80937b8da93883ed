package model

import (
	"errors"
	"fmt"

	"github.com/udisondev/td2calc/internal/data"
)

var (
	ErrUnknownMod      = errors.New("unknown weapon mod")
	ErrIncompatibleMod = errors.New("mod does not fit the weapon")
)

// ModSet holds at most one weapon mod per slot. Mods point at read-only
// catalog entries, so copying a ModSet is a full snapshot.
type ModSet struct {
	mods [len(data.ModSlots)]*data.ModDef
}

// Equip puts m in its slot, replacing whatever was there.
func (s *ModSet) Equip(m *data.ModDef) error {
	if m == nil {
		return ErrUnknownMod
	}
	idx := m.Slot.Index()
	if idx < 0 {
		return fmt.Errorf("mod %q: %w", m.Name, ErrUnknownMod)
	}
	s.mods[idx] = m
	return nil
}

// EquipFor equips m only if the weapon has a matching mount in m's slot.
func (s *ModSet) EquipFor(w *data.WeaponDef, m *data.ModDef) error {
	if m == nil {
		return ErrUnknownMod
	}
	if !w.Accepts(m.Slot, m.Mount) {
		return fmt.Errorf("mod %q on %s: %w", m.Name, m.Slot, ErrIncompatibleMod)
	}
	return s.Equip(m)
}

// Unequip empties slot.
func (s *ModSet) Unequip(slot data.ModSlot) {
	if idx := slot.Index(); idx >= 0 {
		s.mods[idx] = nil
	}
}

// Get returns the mod in slot, nil if empty.
func (s *ModSet) Get(slot data.ModSlot) *data.ModDef {
	idx := slot.Index()
	if idx < 0 {
		return nil
	}
	return s.mods[idx]
}

// Equipped returns the equipped mods in slot order.
func (s *ModSet) Equipped() []*data.ModDef {
	out := make([]*data.ModDef, 0, len(s.mods))
	for _, m := range s.mods {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
