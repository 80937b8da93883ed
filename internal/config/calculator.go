package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BaseStats are the flat bonuses every build starts from (SHD levels, watch CHD).
type BaseStats struct {
	AWD         float64 `yaml:"awd"`
	HSD         float64 `yaml:"hsd"`
	CHC         float64 `yaml:"chc"`
	CHD         float64 `yaml:"chd"`          // 25 base + 20 from the watch
	ReloadSpeed float64 `yaml:"reload_speed"` // percent
}

// Calculator holds all configuration for the damage calculator.
type Calculator struct {
	Base BaseStats `yaml:"base"`

	// Crit chance is capped after every source is summed.
	CritChanceCap float64 `yaml:"crit_chance_cap"`

	// ReloadSpeedCap bounds total reload speed percent. 0 leaves it unbounded,
	// so totals above 100 yield a negative reload time.
	ReloadSpeedCap float64 `yaml:"reload_speed_cap"`
}

// DefaultCalculator returns Calculator config with the stock base constants.
func DefaultCalculator() Calculator {
	return Calculator{
		Base: BaseStats{
			AWD:         10,
			HSD:         20,
			CHC:         10,
			CHD:         45,
			ReloadSpeed: 10,
		},
		CritChanceCap:  60,
		ReloadSpeedCap: 0,
	}
}

// LoadCalculator loads calculator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadCalculator(path string) (Calculator, error) {
	cfg := DefaultCalculator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects configurations the engine cannot interpret.
func (c Calculator) Validate() error {
	if c.CritChanceCap < 0 || c.CritChanceCap > 100 {
		return fmt.Errorf("crit_chance_cap %v out of range [0, 100]", c.CritChanceCap)
	}
	if c.ReloadSpeedCap < 0 {
		return fmt.Errorf("reload_speed_cap %v must not be negative", c.ReloadSpeedCap)
	}
	return nil
}
