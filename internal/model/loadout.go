package model

import (
	"errors"

	"github.com/udisondev/td2calc/internal/data"
	"github.com/udisondev/td2calc/internal/stat"
)

// Loadout bounds. Values outside are clamped on assignment.
const (
	MaxExpertise      = 30
	MaxCoreAttribute1 = 15
	MaxMagSize        = 1000
	MaxBaseHSD        = 150
	MaxReloadTime     = 10

	defaultAttributeType = stat.CHC
)

var (
	ErrUnknownCategory  = errors.New("unknown weapon category")
	ErrUnknownWeapon    = errors.New("unknown weapon")
	ErrUnknownAttribute = errors.New("unknown weapon attribute")
	ErrAttributeTaken   = errors.New("attribute type already used by core attribute 2")
)

// Attribute is the freely chosen weapon attribute.
type Attribute struct {
	Type  stat.Type
	Value float64
}

// WeaponLoadout is the weapon half of a build. All setters clamp to the
// documented bounds; the zero value is not usable, build one with
// NewWeaponLoadout, DefaultLoadout or LoadoutFromWeapon.
type WeaponLoadout struct {
	category     data.Category
	baseDamage   float64
	rpm          float64
	magSize      float64
	baseHSD      float64
	reloadTime   float64
	optimalRange float64
	expertise    float64
	core1        float64
	core2        float64
	attribute    Attribute
}

// NewWeaponLoadout returns an empty loadout of category c with core attribute 2
// and the weapon attribute at their maximum rolls.
func NewWeaponLoadout(c data.Category) (*WeaponLoadout, error) {
	w := &WeaponLoadout{}
	if err := w.SetCategory(c); err != nil {
		return nil, err
	}
	return w, nil
}

// DefaultLoadout returns the reference LMG loadout.
func DefaultLoadout() *WeaponLoadout {
	w := &WeaponLoadout{
		category:     data.CategoryLMG,
		baseDamage:   49480,
		rpm:          750,
		magSize:      200,
		baseHSD:      65,
		reloadTime:   3.63,
		optimalRange: 35,
		core1:        MaxCoreAttribute1,
		core2:        12,
		attribute:    Attribute{Type: stat.CHC, Value: 9.5},
	}
	return w
}

// LoadoutFromWeapon seeds a loadout with the base stats of a catalog weapon.
func LoadoutFromWeapon(def *data.WeaponDef) (*WeaponLoadout, error) {
	if def == nil {
		return nil, ErrUnknownWeapon
	}
	w, err := NewWeaponLoadout(def.Category)
	if err != nil {
		return nil, err
	}
	w.SetBaseDamage(def.BaseDamage)
	w.SetRPM(def.RPM)
	w.SetMagSize(def.MagSize)
	w.SetBaseHSD(def.BaseHSD)
	w.SetReloadTime(def.ReloadTime)
	w.SetOptimalRange(def.OptimalRange)
	w.SetCoreAttribute1(MaxCoreAttribute1)
	return w, nil
}

func (w *WeaponLoadout) Category() data.Category { return w.category }
func (w *WeaponLoadout) BaseDamage() float64 { return w.baseDamage }
func (w *WeaponLoadout) RPM() float64 { return w.rpm }
func (w *WeaponLoadout) MagSize() float64 { return w.magSize }
func (w *WeaponLoadout) BaseHSD() float64 { return w.baseHSD }
func (w *WeaponLoadout) ReloadTime() float64 { return w.reloadTime }
func (w *WeaponLoadout) OptimalRange() float64 { return w.optimalRange }
func (w *WeaponLoadout) Expertise() float64 { return w.expertise }
func (w *WeaponLoadout) CoreAttribute1() float64 { return w.core1 }
func (w *WeaponLoadout) CoreAttribute2() float64 { return w.core2 }
func (w *WeaponLoadout) Attribute() Attribute { return w.attribute }

// Core2Type returns the stat fixed to core attribute 2 by the category.
// stat.None when the category has no second core.
func (w *WeaponLoadout) Core2Type() stat.Type {
	if def := data.GetCategory(w.category); def != nil {
		return def.Core2
	}
	return stat.None
}

// Core2Max returns the maximum core attribute 2 roll for the category.
func (w *WeaponLoadout) Core2Max() float64 {
	if def := data.GetCategory(w.category); def != nil {
		return def.Core2Max
	}
	return 0
}

// SetCategory switches the weapon category. Core attribute 2 resets to the new
// category's maximum and the weapon attribute resets to its default.
func (w *WeaponLoadout) SetCategory(c data.Category) error {
	def := data.GetCategory(c)
	if def == nil {
		return ErrUnknownCategory
	}
	w.category = c
	w.core2 = def.Core2Max
	w.attribute = defaultAttribute(c)
	return nil
}

// defaultAttribute is CHC at max roll, or the first available attribute when
// the category's core attribute 2 already consumes CHC.
func defaultAttribute(c data.Category) Attribute {
	available := data.AvailableAttributes(c)
	for _, a := range available {
		if a.Stat == defaultAttributeType {
			return Attribute{Type: a.Stat, Value: a.Max}
		}
	}
	if len(available) > 0 {
		return Attribute{Type: available[0].Stat, Value: available[0].Max}
	}
	return Attribute{}
}

func (w *WeaponLoadout) SetBaseDamage(v float64) { w.baseDamage = clampMin(v, 0) }
func (w *WeaponLoadout) SetRPM(v float64) { w.rpm = clampMin(v, 0) }
func (w *WeaponLoadout) SetMagSize(v float64) { w.magSize = clamp(v, 0, MaxMagSize) }
func (w *WeaponLoadout) SetBaseHSD(v float64) { w.baseHSD = clamp(v, 0, MaxBaseHSD) }
func (w *WeaponLoadout) SetReloadTime(v float64) { w.reloadTime = clamp(v, 0, MaxReloadTime) }
func (w *WeaponLoadout) SetOptimalRange(v float64) { w.optimalRange = clampMin(v, 0) }
func (w *WeaponLoadout) SetExpertise(v float64) { w.expertise = clamp(v, 0, MaxExpertise) }

// SetCoreAttribute1 sets the specific weapon damage core (0..15).
func (w *WeaponLoadout) SetCoreAttribute1(v float64) {
	w.core1 = clamp(v, 0, MaxCoreAttribute1)
}

// SetCoreAttribute2 sets the category core value, bounded by the category max.
// Pistols have a max of 0, so the value is always 0.
func (w *WeaponLoadout) SetCoreAttribute2(v float64) {
	w.core2 = clamp(v, 0, w.Core2Max())
}

// SetAttribute selects the weapon attribute type and rolls it at max.
func (w *WeaponLoadout) SetAttribute(t stat.Type) error {
	def := data.GetAttribute(t)
	if def == nil {
		return ErrUnknownAttribute
	}
	if t == w.Core2Type() {
		return ErrAttributeTaken
	}
	w.attribute = Attribute{Type: t, Value: def.Max}
	return nil
}

// SetAttributeValue sets the weapon attribute roll, bounded by its max.
func (w *WeaponLoadout) SetAttributeValue(v float64) {
	var hi float64
	if def := data.GetAttribute(w.attribute.Type); def != nil {
		hi = def.Max
	}
	w.attribute.Value = clamp(v, 0, hi)
}

// Field names a free-form numeric loadout input.
type Field string

const (
	FieldBaseDamage     Field = "baseDamage"
	FieldRPM            Field = "rpm"
	FieldMagSize        Field = "magSize"
	FieldBaseHSD        Field = "baseHSD"
	FieldReloadTime     Field = "reloadTime"
	FieldOptimalRange   Field = "optimalRange"
	FieldExpertise      Field = "expertise"
	FieldCoreAttribute1 Field = "coreAttribute1"
	FieldCoreAttribute2 Field = "coreAttribute2"
	FieldAttributeValue Field = "attributeValue"
)

// SetField assigns raw text to a numeric field. Unparseable text becomes 0,
// unknown fields are ignored. Reports whether the field was recognized.
func (w *WeaponLoadout) SetField(f Field, raw string) bool {
	v := ParseNumber(raw)
	switch f {
	case FieldBaseDamage:
		w.SetBaseDamage(v)
	case FieldRPM:
		w.SetRPM(v)
	case FieldMagSize:
		w.SetMagSize(v)
	case FieldBaseHSD:
		w.SetBaseHSD(v)
	case FieldReloadTime:
		w.SetReloadTime(v)
	case FieldOptimalRange:
		w.SetOptimalRange(v)
	case FieldExpertise:
		w.SetExpertise(v)
	case FieldCoreAttribute1:
		w.SetCoreAttribute1(v)
	case FieldCoreAttribute2:
		w.SetCoreAttribute2(v)
	case FieldAttributeValue:
		w.SetAttributeValue(v)
	default:
		return false
	}
	return true
}
