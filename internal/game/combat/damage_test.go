package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/td2calc/internal/game/stats"
	"github.com/udisondev/td2calc/internal/model"
)

func TestShotDamage(t *testing.T) {
	t.Parallel()

	totals := stats.Totals{
		AWD:    10,
		SWD:    15,
		CHD:    45,
		HSD:    85,
		DTA:    20,
		DTH:    50,
		DTTOOC: 12,
		Target: model.TargetArmor,
	}

	tests := []struct {
		name   string
		base   float64
		totals func(t stats.Totals) stats.Totals
		hit    HitType
		want   int64
	}{
		{"body", 1000, nil, HitBody, 1680},
		{"body crit", 1000, nil, HitBodyCrit, 2436},
		{"headshot", 1000, nil, HitHeadshot, 3108},
		{"headshot crit sums both bonuses", 1000, nil, HitHeadshotCrit, 3864},
		{"health target uses damage to health", 1000, func(t stats.Totals) stats.Totals {
			t.Target = model.TargetHealth
			return t
		}, HitBody, 2100},
		{"total weapon damage layers after additive damage", 1000, func(t stats.Totals) stats.Totals {
			t.TWD = 50
			return t
		}, HitBody, 2520},
		{"zero base", 0, nil, HitHeadshotCrit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := totals
			if tt.totals != nil {
				in = tt.totals(in)
			}
			assert.Equal(t, tt.want, ShotDamage(tt.base, in, tt.hit))
		})
	}
}

func TestComputeDPS(t *testing.T) {
	t.Parallel()

	totals := stats.Totals{
		CHD:          50,
		CritChance:   25,
		EffectiveRPM: 600,
	}

	r := ComputeDPS(1000, totals)
	assert.Equal(t, int64(1000), r.Body)
	assert.Equal(t, int64(1500), r.BodyCrit)
	assert.InDelta(t, 1125.0, r.AvgDamage, 1e-9)
	assert.Equal(t, int64(11250), r.DPS)
}

func TestHitType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hit      HitType
		crit     bool
		headshot bool
		name     string
	}{
		{HitBody, false, false, "body"},
		{HitBodyCrit, true, false, "body_crit"},
		{HitHeadshot, false, true, "headshot"},
		{HitHeadshotCrit, true, true, "headshot_crit"},
		{HitType(9), false, false, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.crit, tt.hit.IsCrit(), tt.name)
		assert.Equal(t, tt.headshot, tt.hit.IsHeadshot(), tt.name)
		assert.Equal(t, tt.name, tt.hit.String())
	}
}

// BenchmarkShotDamage measures a single hit evaluation on precomputed totals.
// Expected: a few ns, no allocations.
func BenchmarkShotDamage(b *testing.B) {
	totals := stats.Totals{AWD: 10, SWD: 15, CHD: 45, HSD: 85, DTTOOC: 12}

	b.ReportAllocs()
	for range b.N {
		_ = ShotDamage(49480, totals, HitHeadshotCrit)
	}
}

// BenchmarkEvaluate measures the full resolve → aggregate → damage pipeline.
func BenchmarkEvaluate(b *testing.B) {
	calc := newTestCalculator()
	build := referenceBuild()
	build.Striker.SetStacks(80)

	b.ReportAllocs()
	for range b.N {
		_ = calc.Evaluate(build)
	}
}
