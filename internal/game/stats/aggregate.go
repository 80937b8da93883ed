// Package stats sums resolved contributions and base constants into the
// aggregate stats the damage formula consumes.
package stats

import (
	"math"

	"github.com/udisondev/td2calc/internal/config"
	"github.com/udisondev/td2calc/internal/game/bonus"
	"github.com/udisondev/td2calc/internal/model"
	"github.com/udisondev/td2calc/internal/stat"
)

// Totals are the aggregate stats of a build. Percentages are plain numbers
// (12 means 12%). Derived fresh on every evaluation, never stored.
type Totals struct {
	AWD        float64
	SWD        float64
	TWD        float64
	CHD        float64
	HSD        float64
	CritChance float64
	DTA        float64
	DTH        float64
	DTTOOC     float64

	// Target selects which of DTA/DTH the formula applies.
	Target model.TargetType

	FireRate     float64 // rounds per minute while firing
	MagSize      int
	ReloadSpeed  float64 // percent
	ReloadTime   float64 // seconds
	EffectiveRPM float64 // rounds per minute over a magazine + reload cycle
	OptimalRange float64 // meters
}

// TargetBonus returns DTA against armor, DTH against health.
func (t Totals) TargetBonus() float64 {
	if t.Target == model.TargetHealth {
		return t.DTH
	}
	return t.DTA
}

// Aggregate combines base constants, the build's own values and resolved
// contributions.
//
//	AWD = base + expertise + contributions
//	SWD = core attribute 1
//	TWD = base TWD + Striker stacks × per-stack rate
//	CHC = min(base + contributions, cap)
func Aggregate(cfg config.Calculator, b *model.Build, c bonus.Contributions) Totals {
	w := &b.Weapon
	total := c.Total()
	weapon := c.Weapon
	equipment := c.Equipment()

	t := Totals{
		AWD:    cfg.Base.AWD + w.Expertise() + total.Get(stat.AWD),
		SWD:    w.CoreAttribute1(),
		TWD:    b.BaseTWD + float64(b.Striker.Stacks())*b.Striker.StackRate(),
		CHD:    cfg.Base.CHD + total.Get(stat.CHD),
		HSD:    cfg.Base.HSD + w.BaseHSD() + total.Get(stat.HSD),
		DTA:    total.Get(stat.DTA),
		DTH:    total.Get(stat.DTH),
		DTTOOC: total.Get(stat.DTTOOC),
		Target: b.Scenario.Target,
	}

	// Cap applies to the final sum, never to partial sums.
	t.CritChance = max(0, min(cfg.Base.CHC+total.Get(stat.CHC), cfg.CritChanceCap))

	t.FireRate = w.RPM() *
		percentMultiplier(weapon.Get(stat.RateOfFire)) *
		percentMultiplier(equipment.Get(stat.RateOfFire))

	mag := w.MagSize()*
		percentMultiplier(weapon.Get(stat.MagSize))*
		percentMultiplier(equipment.Get(stat.MagSize)) +
		total.Get(stat.ExtraRounds)
	t.MagSize = int(math.Max(0, math.Round(mag)))

	t.ReloadSpeed = cfg.Base.ReloadSpeed + total.Get(stat.ReloadSpeed)
	if cfg.ReloadSpeedCap > 0 {
		t.ReloadSpeed = min(t.ReloadSpeed, cfg.ReloadSpeedCap)
	}
	// Above 100% reload speed this goes negative; see reload_speed_cap.
	t.ReloadTime = w.ReloadTime() * (1 - t.ReloadSpeed/100)

	t.EffectiveRPM = throughputRPM(float64(t.MagSize), t.FireRate, t.ReloadTime)
	t.OptimalRange = w.OptimalRange() * percentMultiplier(total.Get(stat.OptimalRange))

	return t
}

// throughputRPM averages rounds per minute over one magazine plus one reload.
// Degenerate inputs (empty magazine, no fire rate, zero cycle) yield 0.
func throughputRPM(mag, fireRate, reloadTime float64) float64 {
	if mag <= 0 || fireRate <= 0 {
		return 0
	}
	cycle := mag/fireRate*60 + reloadTime
	if cycle == 0 {
		return 0
	}
	return mag / cycle * 60
}

// percentMultiplier converts an additive percentage into a multiplier.
func percentMultiplier(pct float64) float64 {
	return 1 + pct/100
}
