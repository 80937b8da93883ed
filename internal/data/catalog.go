package data

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// LoadCatalogs parses every embedded catalog and builds the lookup tables.
// Вызывается один раз при старте (cmd/dpscalc) или в TestMain.
func LoadCatalogs() error {
	return LoadCatalogsFS(catalogFS, "catalog")
}

// LoadCatalogsFS loads catalogs from an arbitrary filesystem rooted at dir.
// The directory must contain the same file set as the embedded catalog.
func LoadCatalogsFS(fsys fs.FS, dir string) error {
	loaders := []struct {
		file string
		load func([]byte) error
	}{
		{"categories.yaml", loadCategories},
		{"weapon_attributes.yaml", loadWeaponAttributes},
		{"weapons.yaml", loadWeapons},
		{"weapon_mods.yaml", loadWeaponMods},
		{"gear.yaml", loadGear},
		{"masks.yaml", loadMasks},
	}

	for _, l := range loaders {
		raw, err := fs.ReadFile(fsys, dir+"/"+l.file)
		if err != nil {
			return fmt.Errorf("reading catalog %s: %w", l.file, err)
		}
		if err := l.load(raw); err != nil {
			return fmt.Errorf("loading catalog %s: %w", l.file, err)
		}
	}

	slog.Info("loaded catalogs",
		"categories", len(categoryTable),
		"weapon_attributes", len(weaponAttributeTable),
		"weapons", len(weaponTable),
		"weapon_mods", len(modTable),
		"gear_attributes", len(gearAttributeTable),
		"gear_mods", len(gearModTable),
		"masks", len(maskTable))
	return nil
}

// decodeCatalog unmarshals raw YAML into out, reporting the file on failure.
func decodeCatalog(raw []byte, out any) error {
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}
