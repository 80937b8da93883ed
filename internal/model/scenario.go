package model

import "strings"

// TargetType selects which of DTA or DTH applies.
type TargetType string

const (
	TargetArmor  TargetType = "armor"
	TargetHealth TargetType = "health"
)

// ParseTargetType maps free text to a target type. Anything other than
// "health" is treated as armor.
func ParseTargetType(raw string) TargetType {
	if strings.EqualFold(strings.TrimSpace(raw), string(TargetHealth)) {
		return TargetHealth
	}
	return TargetArmor
}

// CombatScenario describes the target being shot.
type CombatScenario struct {
	Target  TargetType
	InCover bool
}

// DefaultScenario is an armored target out of cover.
func DefaultScenario() CombatScenario {
	return CombatScenario{Target: TargetArmor}
}

// Watch and seasonal AWD tuning.
const (
	MaxWatchLevel    = 50
	WatchAWDPerLevel = 0.2
)

// GlobalModifiers are account-wide AWD sources.
type GlobalModifiers struct {
	watchLevel  int
	seasonalAWD float64
}

func (g *GlobalModifiers) WatchLevel() int { return g.watchLevel }
func (g *GlobalModifiers) SeasonalAWD() float64 { return g.seasonalAWD }

// SetWatchLevel stores the watch level clamped to [0, 50].
func (g *GlobalModifiers) SetWatchLevel(level int) {
	g.watchLevel = min(max(level, 0), MaxWatchLevel)
}

// SetSeasonalAWD stores the seasonal AWD bonus, never negative.
func (g *GlobalModifiers) SetSeasonalAWD(v float64) {
	g.seasonalAWD = clampMin(v, 0)
}

// WatchAWD returns the AWD granted by the watch level.
func (g *GlobalModifiers) WatchAWD() float64 {
	return float64(g.watchLevel) * WatchAWDPerLevel
}
