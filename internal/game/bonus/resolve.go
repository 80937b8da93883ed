// Package bonus resolves every bonus source of a build into per-stat contributions.
package bonus

import (
	"github.com/udisondev/td2calc/internal/data"
	"github.com/udisondev/td2calc/internal/model"
	"github.com/udisondev/td2calc/internal/stat"
)

// Contributions holds resolved bonuses grouped by origin, before base constants.
//
// The split matters for rate of fire and magazine size: the weapon group forms the
// attribute multiplier, everything else forms the equipment multiplier.
type Contributions struct {
	Weapon stat.Set // core attribute 2 + weapon attribute
	Mods   stat.Set // weapon mods, positive and negative
	Gear   stat.Set // gear/mask slots and gear mods
	Global stat.Set // watch and seasonal bonuses
}

// Equipment returns mods, gear and global contributions summed.
func (c Contributions) Equipment() stat.Set {
	return c.Mods.Merge(c.Gear).Merge(c.Global)
}

// Total returns every contribution summed.
func (c Contributions) Total() stat.Set {
	return c.Weapon.Merge(c.Equipment())
}

// Get returns the total contribution to t.
func (c Contributions) Get(t stat.Type) float64 {
	return c.Total().Get(t)
}

// Resolve computes the contribution of every modifier in b. Modifiers that
// reference unknown stats contribute nothing.
func Resolve(b *model.Build) Contributions {
	var c Contributions

	resolveWeapon(&c.Weapon, &b.Weapon)

	for _, m := range b.Mods.Equipped() {
		resolveMod(&c.Mods, m)
	}

	for _, g := range b.Gear() {
		resolveGear(&c.Gear, &g)
	}

	c.Global.Add(stat.AWD, b.Globals.WatchAWD())
	c.Global.Add(stat.AWD, b.Globals.SeasonalAWD())

	for _, s := range []*stat.Set{&c.Weapon, &c.Mods, &c.Gear, &c.Global} {
		applyScenario(s, b.Scenario)
	}
	return c
}

// resolveWeapon adds core attribute 2 (only to the stat its category fixes)
// and the freely chosen attribute.
func resolveWeapon(s *stat.Set, w *model.WeaponLoadout) {
	s.Add(w.Core2Type(), w.CoreAttribute2())

	attr := w.Attribute()
	s.Add(attr.Type, attr.Value)
}

// resolveMod adds a mod's positive and signed negative effects. A positive
// Weapon Handling effect also counts in full as reload speed.
func resolveMod(s *stat.Set, m *data.ModDef) {
	if p := m.Positive; p != nil {
		s.Add(p.Stat, p.Value)
		if p.Stat == stat.WeaponHandling {
			s.Add(stat.ReloadSpeed, p.Value)
		}
	}
	if n := m.Negative; n != nil {
		s.Add(n.Stat, n.Value)
	}
}

// resolveGear adds every slot roll (locked or not) and the gear mod.
func resolveGear(s *stat.Set, g *model.GearPiece) {
	for _, slot := range g.Slots() {
		s.Add(slot.Stat, slot.Value)
	}
	if mod := g.Mod(); mod != nil {
		s.Add(mod.Stat, mod.Value)
	}
}

// applyScenario drops target-dependent bonuses that do not apply: the unused
// half of DTA/DTH, and DTTOOC when the target is in cover.
func applyScenario(s *stat.Set, sc model.CombatScenario) {
	if sc.Target == model.TargetHealth {
		s.Clear(stat.DTA)
	} else {
		s.Clear(stat.DTH)
	}
	if sc.InCover {
		s.Clear(stat.DTTOOC)
	}
}
