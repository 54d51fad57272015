package sheet

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slate/internal/style"
)

// Document is a stylesheet: a named set of reusable style presets.
type Document struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Presets     []Preset `yaml:"presets" validate:"required,min=1,dive"`
}

// Settings holds compilation parameters.
type Settings struct {
	Parallel int `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=64"`
}

// Preset is a named list of style rules. A preset may extend other presets,
// whose tokens come first.
type Preset struct {
	ID          string   `yaml:"id" validate:"required,preset_id"`
	Description string   `yaml:"description,omitempty"`
	Element     string   `yaml:"element,omitempty" validate:"omitempty,alphanum,lowercase"`
	Extends     []string `yaml:"extends,omitempty" validate:"omitempty,dive,preset_id"`
	Rules       []Rule   `yaml:"styles,omitempty" validate:"omitempty,dive"`
}

// Rule is one descriptor applied under zero or more modifiers.
type Rule struct {
	Aspect     string           `yaml:"aspect" validate:"required,aspect"`
	Modifiers  []string         `yaml:"modifiers,omitempty" validate:"omitempty,dive,modifier"`
	Block      bool             `yaml:"block,omitempty"`
	Descriptor style.Descriptor `yaml:"-" validate:"-"`
}

// UnmarshalYAML decodes the aspect-specific fields of a rule into its typed
// descriptor.
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	var base struct {
		Aspect    string   `yaml:"aspect"`
		Modifiers []string `yaml:"modifiers"`
		Block     bool     `yaml:"block"`
	}
	if err := value.Decode(&base); err != nil {
		return err
	}

	r.Aspect = base.Aspect
	r.Modifiers = append([]string(nil), base.Modifiers...)
	r.Block = base.Block
	r.Descriptor = nil

	aspect, ok := style.ParseAspect(base.Aspect)
	if !ok {
		// left for validation to report
		return nil
	}

	desc, err := descriptorDecoders[aspect](value)
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", value.Line, base.Aspect, err)
	}
	r.Descriptor = desc
	return nil
}

// Mods resolves the rule's modifier names in their written order. Unknown
// names are skipped; validation rejects them beforehand.
func (r Rule) Mods() []style.Modifier {
	mods := make([]style.Modifier, 0, len(r.Modifiers))
	for _, name := range r.Modifiers {
		if m, ok := style.ParseModifier(name); ok {
			mods = append(mods, m)
		}
	}
	return mods
}

// Lookup returns the preset with the given id.
func (d *Document) Lookup(id string) (*Preset, bool) {
	for i := range d.Presets {
		if d.Presets[i].ID == id {
			return &d.Presets[i], true
		}
	}
	return nil, false
}
