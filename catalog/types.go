// SPDX-License-Identifier: MIT

package catalog

// Kind selects how a module is corrected.
type Kind string

const (
	KindCorrector Kind = "corrector"
	KindDosing    Kind = "dosing"
	KindRefill    Kind = "refill"
)

// Chemical is one tracked species of a module.
type Chemical struct {
	ID     string  `toml:"id" yaml:"id" validate:"required"`
	Name   string  `toml:"name" yaml:"name"`
	Unit   string  `toml:"unit" yaml:"unit"`
	Target float64 `toml:"target" yaml:"target" validate:"gte=0"`

	// Makeup is the concentration of this chemical in the module's makeup
	// solution. Only corrector modules use it.
	Makeup float64 `toml:"makeup" yaml:"makeup" validate:"gte=0"`
}

// Module is one tank of the plant.
type Module struct {
	Name      string     `toml:"name" yaml:"name" validate:"required"`
	Type      Kind       `toml:"type" yaml:"type" validate:"oneof=corrector dosing refill"`
	Capacity  float64    `toml:"capacity" yaml:"capacity" validate:"gt=0"`
	Chemicals []Chemical `toml:"chemical" yaml:"chemicals" validate:"min=1,unique=ID,dive"`
}

// Catalog is the set of modules of a plant.
type Catalog struct {
	Modules []Module `toml:"module" yaml:"modules" validate:"min=1,unique=Name,dive"`
}

// Reading is one measurement of a module.
type Reading struct {
	Module         string             `toml:"module" yaml:"module" validate:"required"`
	Volume         float64            `toml:"volume" yaml:"volume" validate:"gte=0"`
	Concentrations map[string]float64 `toml:"concentrations" yaml:"concentrations" validate:"dive,gte=0"`
}

// Readings is a batch of measurements, typically one per module.
type Readings struct {
	Readings []Reading `toml:"reading" yaml:"readings" validate:"dive"`
}

// Module returns the module called name.
func (c *Catalog) Module(name string) (Module, bool) {
	for _, m := range c.Modules {
		if m.Name == name {
			return m, true
		}
	}

	return Module{}, false
}
