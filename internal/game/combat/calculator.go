package combat

import (
	"log/slog"

	"github.com/udisondev/td2calc/internal/config"
	"github.com/udisondev/td2calc/internal/game/bonus"
	"github.com/udisondev/td2calc/internal/game/stats"
	"github.com/udisondev/td2calc/internal/model"
)

// Result is the full output of one evaluation. Plain numbers only; formatting
// is up to the caller.
type Result struct {
	BodyDamage         int64
	BodyCritDamage     int64
	HeadshotDamage     int64
	HeadshotCritDamage int64

	DPS          int64
	AvgDamage    float64
	EffectiveRPM float64
	FireRate     float64
	MagSize      int
	ReloadTime   float64
	CritChance   float64

	Stats         stats.Totals
	Contributions bonus.Contributions
}

// Calculator runs resolve → aggregate → damage for a build. It holds only
// read-only configuration and is safe for concurrent use.
type Calculator struct {
	cfg config.Calculator
}

// NewCalculator creates a calculator with the given base constants and caps.
func NewCalculator(cfg config.Calculator) *Calculator {
	return &Calculator{cfg: cfg}
}

// Config returns the calculator configuration.
func (c *Calculator) Config() config.Calculator {
	return c.cfg
}

// Evaluate computes damage and DPS for b. b is copied first and never mutated;
// identical builds always produce identical results.
func (c *Calculator) Evaluate(b *model.Build) Result {
	snap := b.Snapshot()

	contrib := bonus.Resolve(&snap)
	totals := stats.Aggregate(c.cfg, &snap, contrib)
	dps := ComputeDPS(snap.Weapon.BaseDamage(), totals)

	slog.Debug("build evaluated",
		"category", snap.Weapon.Category(),
		"target", snap.Scenario.Target,
		"in_cover", snap.Scenario.InCover,
		"body", dps.Body,
		"dps", dps.DPS)

	return Result{
		BodyDamage:         dps.Body,
		BodyCritDamage:     dps.BodyCrit,
		HeadshotDamage:     dps.Headshot,
		HeadshotCritDamage: dps.HeadshotCrit,
		DPS:                dps.DPS,
		AvgDamage:          dps.AvgDamage,
		EffectiveRPM:       totals.EffectiveRPM,
		FireRate:           totals.FireRate,
		MagSize:            totals.MagSize,
		ReloadTime:         totals.ReloadTime,
		CritChance:         totals.CritChance,
		Stats:              totals,
		Contributions:      contrib,
	}
}

// Damage returns the per-shot damage of hit for b.
func (c *Calculator) Damage(b *model.Build, hit HitType) int64 {
	r := c.Evaluate(b)
	switch hit {
	case HitBodyCrit:
		return r.BodyCritDamage
	case HitHeadshot:
		return r.HeadshotDamage
	case HitHeadshotCrit:
		return r.HeadshotCritDamage
	default:
		return r.BodyDamage
	}
}
