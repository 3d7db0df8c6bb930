package layout

import (
	"github.com/gogpu/iomap"
	"github.com/gogpu/iomap/ir"
)

// ResourceClass groups resource variables for slot numbering purposes.
// Classes let auto-numbering start from different base slots per kind of
// resource, the way APIs with typed register files expect.
type ResourceClass uint8

const (
	ClassBuffer ResourceClass = iota
	ClassTexture
	ClassImage
	ClassSampler
)

// String returns the class name used in layout configs.
func (c ResourceClass) String() string {
	switch c {
	case ClassBuffer:
		return "buffer"
	case ClassTexture:
		return "texture"
	case ClassImage:
		return "image"
	case ClassSampler:
		return "sampler"
	default:
		return "unknown"
	}
}

// ClassOf classifies a resource variable by its type.
func ClassOf(ty iomap.VarType) ResourceClass {
	switch t := ty.Inner.(type) {
	case ir.ImageType:
		if t.Class == ir.ImageClassStorage {
			return ClassImage
		}
		return ClassTexture
	case ir.SamplerType:
		return ClassSampler
	default:
		return ClassBuffer
	}
}

// DefaultResolver is a ready-made binding policy:
//
//   - explicit qualifiers are kept as written and their slots reserved;
//   - live variables without an explicit binding are auto-numbered into
//     the lowest free slot of their group, starting at the per-class base;
//   - dead variables without an explicit binding are left unbound.
//
// The resolver keeps its used-slot sets across calls, so one instance
// shared across the stages of a pipeline keeps their assignments
// collision-free. It is not safe for concurrent use.
type DefaultResolver struct {
	// Group is the descriptor set used when none is written in source.
	Group uint32

	// Base is the first slot auto-numbering tries per resource class.
	// Missing classes start at 0.
	Base map[ResourceClass]uint32

	// MaxPerGroup caps binding slots per group. Explicit bindings at or
	// above the cap fail validation; 0 means no cap.
	MaxPerGroup uint32

	// AutoBind enables auto-numbering of live unbound variables.
	AutoBind bool

	used map[uint32]map[uint32]bool // group -> occupied slots
}

// NewDefaultResolver returns a DefaultResolver with auto-numbering
// enabled, group 0, and no slot cap.
func NewDefaultResolver() *DefaultResolver {
	return &DefaultResolver{AutoBind: true}
}

// ValidateBinding implements iomap.Resolver. Only explicitly requested
// slots can be invalid; everything else is acceptable.
func (r *DefaultResolver) ValidateBinding(_ ir.ShaderStage, _ string, ty iomap.VarType, _ bool) bool {
	if r.MaxPerGroup > 0 && ty.Layout.HasBinding() && *ty.Layout.Binding >= r.MaxPerGroup {
		return false
	}
	return true
}

// ResolveBinding implements iomap.Resolver.
func (r *DefaultResolver) ResolveBinding(_ ir.ShaderStage, _ string, ty iomap.VarType, live bool) (uint32, bool) {
	group := r.groupFor(ty)
	if ty.Layout.HasBinding() {
		r.reserve(group, *ty.Layout.Binding)
		return *ty.Layout.Binding, true
	}
	if !live || !r.AutoBind {
		return 0, false
	}
	slot := r.Base[ClassOf(ty)]
	for r.taken(group, slot) {
		slot++
	}
	if r.MaxPerGroup > 0 && slot >= r.MaxPerGroup {
		// Group is full; leave the variable unbound rather than assign
		// past the cap.
		return 0, false
	}
	r.reserve(group, slot)
	return slot, true
}

// ResolveSet implements iomap.Resolver.
func (r *DefaultResolver) ResolveSet(_ ir.ShaderStage, _ string, ty iomap.VarType, live bool) (uint32, bool) {
	if ty.Layout.HasGroup() {
		return *ty.Layout.Group, true
	}
	if live && r.AutoBind {
		return r.Group, true
	}
	return 0, false
}

func (r *DefaultResolver) groupFor(ty iomap.VarType) uint32 {
	if ty.Layout.HasGroup() {
		return *ty.Layout.Group
	}
	return r.Group
}

func (r *DefaultResolver) reserve(group, slot uint32) {
	if r.used == nil {
		r.used = make(map[uint32]map[uint32]bool)
	}
	if r.used[group] == nil {
		r.used[group] = make(map[uint32]bool)
	}
	r.used[group][slot] = true
}

func (r *DefaultResolver) taken(group, slot uint32) bool {
	return r.used[group][slot]
}
