package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/td2calc/internal/data"
	"github.com/udisondev/td2calc/internal/model"
	"github.com/udisondev/td2calc/internal/stat"
)

var errNoBuilds = errors.New("build file has no builds")

// buildFile is the on-disk list of builds to evaluate.
type buildFile struct {
	Builds []buildSpec `yaml:"builds"`
}

// buildSpec describes one build by catalog names. With neither weapon nor
// category the reference LMG loadout is used.
type buildSpec struct {
	Name      string `yaml:"name"`
	Weapon    string `yaml:"weapon"`
	Category  string `yaml:"category"`
	Attribute string `yaml:"attribute"`

	// Fields are raw numeric loadout inputs keyed by model.Field. Invalid
	// numbers become 0, unknown keys are logged and skipped.
	Fields map[string]string `yaml:"fields"`

	Mods []string  `yaml:"mods"`
	Mask *gearSpec `yaml:"mask"`

	Target  string `yaml:"target"`
	InCover bool   `yaml:"in_cover"`

	Striker     strikerSpec `yaml:"striker"`
	WatchLevel  int         `yaml:"watch_level"`
	SeasonalAWD float64     `yaml:"seasonal_awd"`
	BaseTWD     float64     `yaml:"base_twd"`
}

type gearSpec struct {
	Name string `yaml:"name"`
	Mod  string `yaml:"mod"`
}

type strikerSpec struct {
	Stacks   int  `yaml:"stacks"`
	Chest    bool `yaml:"chest"`
	Backpack bool `yaml:"backpack"`
}

// loadBuildFile reads and decodes a build file.
func loadBuildFile(path string) ([]buildSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading build file: %w", err)
	}
	return parseBuildFile(raw)
}

func parseBuildFile(raw []byte) ([]buildSpec, error) {
	var f buildFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing build file: %w", err)
	}
	if len(f.Builds) == 0 {
		return nil, errNoBuilds
	}
	for i := range f.Builds {
		if f.Builds[i].Name == "" {
			f.Builds[i].Name = fmt.Sprintf("build #%d", i+1)
		}
	}
	return f.Builds, nil
}

// toBuild resolves catalog names into a model build.
func (s *buildSpec) toBuild() (*model.Build, error) {
	w, weapon, err := s.loadout()
	if err != nil {
		return nil, err
	}

	if s.Attribute != "" {
		t, ok := stat.Parse(s.Attribute)
		if !ok {
			return nil, fmt.Errorf("attribute %q: %w", s.Attribute, model.ErrUnknownAttribute)
		}
		if err := w.SetAttribute(t); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", s.Attribute, err)
		}
	}

	keys := make([]string, 0, len(s.Fields))
	for k := range s.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !w.SetField(model.Field(k), s.Fields[k]) {
			slog.Warn("unknown loadout field ignored", "build", s.Name, "field", k)
		}
	}

	b := model.NewBuild(w)

	for _, name := range s.Mods {
		m := data.GetMod(name)
		if m == nil {
			return nil, fmt.Errorf("mod %q: %w", name, model.ErrUnknownMod)
		}
		if weapon != nil {
			err = b.Mods.EquipFor(weapon, m)
		} else {
			err = b.Mods.Equip(m)
		}
		if err != nil {
			return nil, err
		}
	}

	if s.Mask != nil {
		mask, err := model.NewMask(data.GetMask(s.Mask.Name))
		if err != nil {
			return nil, fmt.Errorf("mask %q: %w", s.Mask.Name, err)
		}
		if s.Mask.Mod != "" {
			mod := data.GetGearMod(s.Mask.Mod)
			if mod == nil {
				return nil, fmt.Errorf("gear mod %q: %w", s.Mask.Mod, model.ErrUnknownGearAttribute)
			}
			if err := mask.SetMod(mod); err != nil {
				return nil, fmt.Errorf("mask %q: %w", s.Mask.Name, err)
			}
		}
		b.EquipGear(mask)
	}

	b.Scenario = model.CombatScenario{
		Target:  model.ParseTargetType(s.Target),
		InCover: s.InCover,
	}

	b.Striker.SetChest(s.Striker.Chest)
	b.Striker.SetBackpack(s.Striker.Backpack)
	b.Striker.SetStacks(s.Striker.Stacks)

	b.Globals.SetWatchLevel(s.WatchLevel)
	b.Globals.SetSeasonalAWD(s.SeasonalAWD)
	b.BaseTWD = max(s.BaseTWD, 0)

	return b, nil
}

// loadout picks the starting weapon loadout. The catalog weapon is returned
// too when one was named, for mod compatibility checks.
func (s *buildSpec) loadout() (*model.WeaponLoadout, *data.WeaponDef, error) {
	switch {
	case s.Weapon != "":
		def := data.GetWeapon(s.Weapon)
		if def == nil {
			return nil, nil, fmt.Errorf("weapon %q: %w", s.Weapon, model.ErrUnknownWeapon)
		}
		w, err := model.LoadoutFromWeapon(def)
		if err != nil {
			return nil, nil, err
		}
		return w, def, nil
	case s.Category != "":
		w, err := model.NewWeaponLoadout(data.Category(s.Category))
		if err != nil {
			return nil, nil, fmt.Errorf("category %q: %w", s.Category, err)
		}
		return w, nil, nil
	default:
		return model.DefaultLoadout(), nil, nil
	}
}
