package model

import "slices"

// Build is the full input snapshot consumed by the damage engine.
type Build struct {
	Weapon   WeaponLoadout
	Scenario CombatScenario
	Mods     ModSet
	Striker  StrikerState
	Globals  GlobalModifiers

	// BaseTWD is total weapon damage from sources other than the Striker set.
	BaseTWD float64

	gear []GearPiece
}

// NewBuild wraps a weapon loadout with the default scenario and nothing equipped.
func NewBuild(w *WeaponLoadout) *Build {
	return &Build{
		Weapon:   *w,
		Scenario: DefaultScenario(),
	}
}

// EquipGear adds g, replacing any piece of the same kind.
func (b *Build) EquipGear(g *GearPiece) {
	for i := range b.gear {
		if b.gear[i].kind == g.kind {
			b.gear[i] = *g
			return
		}
	}
	b.gear = append(b.gear, *g)
}

// UnequipGear removes the piece of the given kind.
func (b *Build) UnequipGear(kind GearKind) {
	b.gear = slices.DeleteFunc(b.gear, func(g GearPiece) bool {
		return g.kind == kind
	})
}

// Gear returns a copy of the equipped gear pieces.
func (b *Build) Gear() []GearPiece {
	return slices.Clone(b.gear)
}

// Snapshot returns an independent copy of the build.
func (b *Build) Snapshot() Build {
	cp := *b
	cp.gear = slices.Clone(b.gear)
	return cp
}
