package combat

import (
	"math"

	"github.com/udisondev/td2calc/internal/game/stats"
)

// HitType is one of the four per-shot damage variants.
type HitType uint8

const (
	HitBody HitType = iota
	HitBodyCrit
	HitHeadshot
	HitHeadshotCrit
)

// HitTypes lists every variant in report order.
var HitTypes = [...]HitType{HitBody, HitBodyCrit, HitHeadshot, HitHeadshotCrit}

func (h HitType) IsCrit() bool { return h == HitBodyCrit || h == HitHeadshotCrit }
func (h HitType) IsHeadshot() bool { return h == HitHeadshot || h == HitHeadshotCrit }

func (h HitType) String() string {
	switch h {
	case HitBody:
		return "body"
	case HitBodyCrit:
		return "body_crit"
	case HitHeadshot:
		return "headshot"
	case HitHeadshotCrit:
		return "headshot_crit"
	default:
		return "unknown"
	}
}

// ShotDamage calculates the damage of a single bullet.
// Formula, stage order is fixed:
//
//	base × (1 + (AWD+SWD)/100)
//	     × (1 + TWD/100)
//	     × (1 + CHD/100) | (1 + HSD/100) | (1 + (CHD+HSD)/100)
//	     × (1 + DTA|DTH/100)
//	     × (1 + DTTOOC/100)
//
// A headshot crit gets one pass with CHD+HSD summed, not two multiplications.
// Result is rounded to the nearest integer.
func ShotDamage(baseDamage float64, t stats.Totals, hit HitType) int64 {
	damage := baseDamage * (1 + (t.AWD+t.SWD)/100)

	// TWD layers after AWD/SWD; multiplier is exactly 1 when TWD is 0.
	damage *= 1 + t.TWD/100

	switch {
	case hit.IsCrit() && hit.IsHeadshot():
		damage *= 1 + (t.CHD+t.HSD)/100
	case hit.IsCrit():
		damage *= 1 + t.CHD/100
	case hit.IsHeadshot():
		damage *= 1 + t.HSD/100
	}

	damage *= 1 + t.TargetBonus()/100
	damage *= 1 + t.DTTOOC/100

	return int64(math.Round(damage))
}

// DPSResult holds per-hit damage and sustained body-shot DPS.
type DPSResult struct {
	Body         int64
	BodyCrit     int64
	Headshot     int64
	HeadshotCrit int64

	// AvgDamage is body and body-crit damage weighted by crit chance.
	AvgDamage float64
	DPS       int64
}

// ComputeDPS derives the four hit values and DPS.
// Formula:
//
//	avg = body × (1 − chc/100) + bodyCrit × chc/100
//	DPS = round(avg × effectiveRPM / 60)
//
// Headshots are informational; DPS models sustained body fire only.
func ComputeDPS(baseDamage float64, t stats.Totals) DPSResult {
	r := DPSResult{
		Body:         ShotDamage(baseDamage, t, HitBody),
		BodyCrit:     ShotDamage(baseDamage, t, HitBodyCrit),
		Headshot:     ShotDamage(baseDamage, t, HitHeadshot),
		HeadshotCrit: ShotDamage(baseDamage, t, HitHeadshotCrit),
	}

	chc := t.CritChance / 100
	r.AvgDamage = float64(r.Body)*(1-chc) + float64(r.BodyCrit)*chc
	r.DPS = int64(math.Round(r.AvgDamage * t.EffectiveRPM / 60))
	return r
}
