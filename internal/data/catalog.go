package data

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/brimhollow/herotrack/internal/model"
)

//go:embed injuries.yml madnesses.yml mutations.yml hero_classes.yml
var files embed.FS

// AfflictionTemplate is one entry of an injury/madness/mutation chart.
// Mutation entries never set Permanent.
type AfflictionTemplate struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Roll        int             `yaml:"roll"`
	Modifiers   model.Modifiers `yaml:"modifiers"`
	Permanent   bool            `yaml:"permanent"`
}

// HeroClassTemplate holds the base attribute block copied onto a newly
// created hero of that class.
type HeroClassTemplate struct {
	Health        int `yaml:"health"`
	Sanity        int `yaml:"sanity"`
	Agility       int `yaml:"agility"`
	Cunning       int `yaml:"cunning"`
	Spirit        int `yaml:"spirit"`
	Strength      int `yaml:"strength"`
	Lore          int `yaml:"lore"`
	Luck          int `yaml:"luck"`
	Initiative    int `yaml:"initiative"`
	Combat        int `yaml:"combat"`
	MaxGrit       int `yaml:"max_grit"`
	CorruptResist int `yaml:"corrupt_resist"`
	RangeToHit    int `yaml:"range_to_hit"`
	MeleeToHit    int `yaml:"melee_to_hit"`
	Defense       int `yaml:"defense"`
	Willpower     int `yaml:"willpower"`
}

// Catalog is the static reference data: named injury/madness/mutation
// charts and hero class attribute blocks. Loaded once at process start,
// never mutated afterwards.
type Catalog struct {
	injuries  map[string]AfflictionTemplate
	madnesses map[string]AfflictionTemplate
	mutations map[string]AfflictionTemplate
	classes   map[string]HeroClassTemplate
}

// Load parses the embedded reference tables into an immutable catalogue.
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := loadYAML("injuries.yml", &c.injuries); err != nil {
		return nil, err
	}
	if err := loadYAML("madnesses.yml", &c.madnesses); err != nil {
		return nil, err
	}
	if err := loadYAML("mutations.yml", &c.mutations); err != nil {
		return nil, err
	}
	if err := loadYAML("hero_classes.yml", &c.classes); err != nil {
		return nil, err
	}

	return c, nil
}

func loadYAML(name string, out any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading embedded %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Injury returns the chart entry for key, nil when unknown.
func (c *Catalog) Injury(key string) *AfflictionTemplate {
	return templateFor(c.injuries, key)
}

// Madness returns the chart entry for key, nil when unknown.
func (c *Catalog) Madness(key string) *AfflictionTemplate {
	return templateFor(c.madnesses, key)
}

// Mutation returns the chart entry for key, nil when unknown.
func (c *Catalog) Mutation(key string) *AfflictionTemplate {
	return templateFor(c.mutations, key)
}

func templateFor(table map[string]AfflictionTemplate, key string) *AfflictionTemplate {
	tmpl, ok := table[key]
	if !ok {
		return nil
	}
	tmpl.Modifiers = tmpl.Modifiers.Clone()
	return &tmpl
}

// BuildInjury instantiates an unsaved injury from the chart. Returns nil
// when key is unknown.
func (c *Catalog) BuildInjury(key string) *model.Injury {
	tmpl := c.Injury(key)
	if tmpl == nil {
		return nil
	}
	inj := model.NewInjury(tmpl.Name)
	inj.ChartKey = key
	inj.Description = tmpl.Description
	inj.Roll = tmpl.Roll
	inj.Modifiers = tmpl.Modifiers.Clone()
	inj.Permanent = tmpl.Permanent
	return inj
}

// BuildMadness instantiates an unsaved madness from the chart. Returns nil
// when key is unknown.
func (c *Catalog) BuildMadness(key string) *model.Madness {
	tmpl := c.Madness(key)
	if tmpl == nil {
		return nil
	}
	m := model.NewMadness(tmpl.Name)
	m.ChartKey = key
	m.Description = tmpl.Description
	m.Roll = tmpl.Roll
	m.Modifiers = tmpl.Modifiers.Clone()
	m.Permanent = tmpl.Permanent
	return m
}

// BuildMutation instantiates an unsaved mutation from the chart. Returns
// nil when key is unknown.
func (c *Catalog) BuildMutation(key string) *model.Mutation {
	tmpl := c.Mutation(key)
	if tmpl == nil {
		return nil
	}
	m := model.NewMutation(tmpl.Name)
	m.ChartKey = key
	m.Description = tmpl.Description
	m.Roll = tmpl.Roll
	m.Modifiers = tmpl.Modifiers.Clone()
	return m
}

// HeroClass returns the attribute block for a class name, nil when unknown.
func (c *Catalog) HeroClass(name string) *HeroClassTemplate {
	tmpl, ok := c.classes[name]
	if !ok {
		return nil
	}
	return &tmpl
}

// ApplyHeroClass copies the class base attributes onto h and records the
// class name. Reports whether the class was known; an unknown class leaves
// h untouched.
func (c *Catalog) ApplyHeroClass(h *model.Hero, name string) bool {
	tmpl := c.HeroClass(name)
	if tmpl == nil {
		return false
	}
	h.HeroClass = name
	h.Health = tmpl.Health
	h.Sanity = tmpl.Sanity
	h.Agility = tmpl.Agility
	h.Cunning = tmpl.Cunning
	h.Spirit = tmpl.Spirit
	h.Strength = tmpl.Strength
	h.Lore = tmpl.Lore
	h.Luck = tmpl.Luck
	h.Initiative = tmpl.Initiative
	h.Combat = tmpl.Combat
	h.MaxGrit = tmpl.MaxGrit
	h.CorruptResist = tmpl.CorruptResist
	h.RangeToHit = tmpl.RangeToHit
	h.MeleeToHit = tmpl.MeleeToHit
	h.Defense = tmpl.Defense
	h.Willpower = tmpl.Willpower
	return true
}

// InjuryKeys returns the chart keys in sorted order, for pickers.
func (c *Catalog) InjuryKeys() []string { return sortedKeys(c.injuries) }

// MadnessKeys returns the chart keys in sorted order, for pickers.
func (c *Catalog) MadnessKeys() []string { return sortedKeys(c.madnesses) }

// MutationKeys returns the chart keys in sorted order, for pickers.
func (c *Catalog) MutationKeys() []string { return sortedKeys(c.mutations) }

// HeroClassNames returns the known class names in sorted order.
func (c *Catalog) HeroClassNames() []string { return sortedKeys(c.classes) }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
