package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/iomap"
	"github.com/gogpu/iomap/ir"
)

// Config is a declarative pipeline-layout description, usually loaded
// from YAML:
//
//	group: 0
//	max_per_group: 16
//	base:
//	  texture: 8
//	  sampler: 12
//	bindings:
//	  uShadowMap: {group: 1, binding: 0}
//
// Zero values mean: group 0, no slot cap, all bases 0, auto-numbering on.
type Config struct {
	// Group is the descriptor set for variables without an explicit one.
	Group uint32 `yaml:"group"`

	// MaxPerGroup caps binding slots per group; 0 means no cap.
	MaxPerGroup uint32 `yaml:"max_per_group"`

	// AutoBind disables auto-numbering when set to false.
	AutoBind *bool `yaml:"auto_bind"`

	// Base maps resource class names to the first auto-numbered slot.
	Base map[string]uint32 `yaml:"base"`

	// Bindings overrides individual variables by name, as if the numbers
	// had been written explicitly in source.
	Bindings map[string]Override `yaml:"bindings"`
}

// Override pins a named variable's group and/or binding.
type Override struct {
	Group   *uint32 `yaml:"group"`
	Binding *uint32 `yaml:"binding"`
}

// Parse decodes and validates a YAML layout config.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("layout: parsing config: %w", err)
	}
	for name := range c.Base {
		if _, ok := classByName(name); !ok {
			return nil, fmt.Errorf("layout: unknown resource class %q", name)
		}
	}
	return &c, nil
}

// Load reads and parses a YAML layout config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return Parse(data)
}

// Resolver builds the binding policy the config describes: a
// DefaultResolver honoring the per-name overrides.
func (c *Config) Resolver() iomap.Resolver {
	def := &DefaultResolver{
		Group:       c.Group,
		MaxPerGroup: c.MaxPerGroup,
		AutoBind:    c.AutoBind == nil || *c.AutoBind,
	}
	if len(c.Base) > 0 {
		def.Base = make(map[ResourceClass]uint32, len(c.Base))
		for name, slot := range c.Base {
			if class, ok := classByName(name); ok {
				def.Base[class] = slot
			}
		}
	}
	if len(c.Bindings) == 0 {
		return def
	}
	return &overrideResolver{def: def, overrides: c.Bindings}
}

func classByName(name string) (ResourceClass, bool) {
	for _, c := range []ResourceClass{ClassBuffer, ClassTexture, ClassImage, ClassSampler} {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// overrideResolver substitutes configured numbers into the layout a
// variable appears to carry, then delegates to the default policy. The
// effect is the same as if the numbers had been explicit in source.
type overrideResolver struct {
	def       *DefaultResolver
	overrides map[string]Override
}

func (o *overrideResolver) withOverride(name string, ty iomap.VarType) iomap.VarType {
	ov, ok := o.overrides[name]
	if !ok {
		return ty
	}
	if ov.Group != nil {
		g := *ov.Group
		ty.Layout.Group = &g
	}
	if ov.Binding != nil {
		b := *ov.Binding
		ty.Layout.Binding = &b
	}
	return ty
}

func (o *overrideResolver) ValidateBinding(stage ir.ShaderStage, name string, ty iomap.VarType, live bool) bool {
	return o.def.ValidateBinding(stage, name, o.withOverride(name, ty), live)
}

func (o *overrideResolver) ResolveBinding(stage ir.ShaderStage, name string, ty iomap.VarType, live bool) (uint32, bool) {
	return o.def.ResolveBinding(stage, name, o.withOverride(name, ty), live)
}

func (o *overrideResolver) ResolveSet(stage ir.ShaderStage, name string, ty iomap.VarType, live bool) (uint32, bool) {
	return o.def.ResolveSet(stage, name, o.withOverride(name, ty), live)
}
