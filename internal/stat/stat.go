// Package stat enumerates the named stats the calculator aggregates and
// provides a fixed-size vector for accumulating contributions to them.
package stat

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Type identifies a stat a bonus source can contribute to.
type Type uint8

const (
	None Type = iota
	AWD       // All Weapon Damage
	SWD       // Specific Weapon Damage
	TWD       // Total Weapon Damage
	CHD       // Critical Hit Damage
	HSD       // Headshot Damage
	CHC       // Critical Hit Chance
	DTA       // Damage To Armor
	DTH       // Damage To Health
	DTTOOC    // Damage To Target Out Of Cover
	RateOfFire
	ReloadSpeed
	MagSize
	ExtraRounds
	WeaponHandling
	OptimalRange

	Count
)

var typeNames = [Count]string{
	None:           "None",
	AWD:            "AWD",
	SWD:            "SWD",
	TWD:            "TWD",
	CHD:            "CHD",
	HSD:            "HSD",
	CHC:            "CHC",
	DTA:            "DTA",
	DTH:            "DTH",
	DTTOOC:         "DTTOOC",
	RateOfFire:     "Rate of Fire",
	ReloadSpeed:    "Reload Speed",
	MagSize:        "Mag Size",
	ExtraRounds:    "Extra Rounds",
	WeaponHandling: "Weapon Handling",
	OptimalRange:   "Optimal Range",
}

// aliases maps lower-cased catalog spellings to a Type.
var aliases = map[string]Type{
	"awd":                           AWD,
	"all weapon damage":             AWD,
	"weapon damage":                 AWD,
	"swd":                           SWD,
	"specific weapon damage":        SWD,
	"twd":                           TWD,
	"total weapon damage":           TWD,
	"chd":                           CHD,
	"crit damage":                   CHD,
	"critical hit damage":           CHD,
	"hsd":                           HSD,
	"headshot damage":               HSD,
	"chc":                           CHC,
	"crit chance":                   CHC,
	"critical hit chance":           CHC,
	"dta":                           DTA,
	"damage to armor":               DTA,
	"dth":                           DTH,
	"damage to health":              DTH,
	"dttooc":                        DTTOOC,
	"damage to target out of cover": DTTOOC,
	"rate of fire":                  RateOfFire,
	"rof":                           RateOfFire,
	"reload speed":                  ReloadSpeed,
	"mag size":                      MagSize,
	"magazine size":                 MagSize,
	"extra rounds":                  ExtraRounds,
	"weapon handling":               WeaponHandling,
	"optimal range":                 OptimalRange,
}

// Parse resolves a catalog stat name. Unknown names (and "None") return None, false.
func Parse(name string) (Type, bool) {
	t, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// Valid reports whether t is a real stat (not None and in range).
func (t Type) Valid() bool {
	return t > None && t < Count
}

func (t Type) String() string {
	if t >= Count {
		return "Unknown"
	}
	return typeNames[t]
}

// UnmarshalYAML decodes a stat name. Unrecognized names decode to None so that
// a catalog entry with an unknown stat contributes nothing instead of failing the load.
func (t *Type) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, _ := Parse(name)
	*t = parsed
	return nil
}

// MarshalYAML encodes the canonical stat name.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Set holds one accumulated value per stat type.
type Set [Count]float64

// Add accumulates v into t. Invalid types are ignored.
func (s *Set) Add(t Type, v float64) {
	if !t.Valid() {
		return
	}
	s[t] += v
}

// Get returns the value accumulated for t, 0 for invalid types.
func (s Set) Get(t Type) float64 {
	if !t.Valid() {
		return 0
	}
	return s[t]
}

// Clear zeroes t.
func (s *Set) Clear(t Type) {
	if !t.Valid() {
		return
	}
	s[t] = 0
}

// Merge returns the element-wise sum of s and o.
func (s Set) Merge(o Set) Set {
	for i := range s {
		s[i] += o[i]
	}
	return s
}
