package iomap

import (
	"github.com/gogpu/iomap/ir"
)

// VarType describes a resource variable as a Resolver sees it: the inner
// type together with the address space and the explicit layout qualifiers
// from the declaration.
type VarType struct {
	Inner  ir.TypeInner
	Space  ir.AddressSpace
	Layout ir.ResourceLayout
}

// Resolver validates and supplies binding numbers for resource variables.
// It is implemented by the caller and may keep state across calls, for
// example to avoid slot collisions across variables or across stages of
// one pipeline; such coordination is entirely the resolver's business.
//
// The resolve methods return false when the variable should keep its
// existing qualifier unchanged.
type Resolver interface {
	// ValidateBinding reports whether the variable's binding request is
	// acceptable. Returning false fails the whole stage.
	ValidateBinding(stage ir.ShaderStage, name string, ty VarType, live bool) bool

	// ResolveBinding returns the final binding slot for the variable.
	ResolveBinding(stage ir.ShaderStage, name string, ty VarType, live bool) (uint32, bool)

	// ResolveSet returns the final descriptor set for the variable.
	ResolveSet(stage ir.ShaderStage, name string, ty VarType, live bool) (uint32, bool)
}

// DiagnosticSink receives textual diagnostics from the pass.
type DiagnosticSink interface {
	Message(msg string)
}

// SinkFunc adapts a function to the DiagnosticSink interface.
type SinkFunc func(msg string)

// Message implements DiagnosticSink.
func (f SinkFunc) Message(msg string) { f(msg) }

// resolveAll drives the resolver over the ordered entries. Every entry is
// visited even after a failure, so the sink receives one "invalid binding"
// message per violation rather than just the first. It reports whether
// the whole stage validated.
func resolveAll(stage ir.ShaderStage, m *ir.Module, ordered []*VarEntry, sink DiagnosticSink, resolver Resolver) bool {
	ok := true
	for _, ent := range ordered {
		ty := VarType{
			Inner:  m.Types[ent.Var.Type].Inner,
			Space:  ent.Var.Space,
			Layout: ent.Var.Layout,
		}
		if !resolver.ValidateBinding(stage, ent.Var.Name, ty, ent.Live) {
			if sink != nil {
				sink.Message("invalid binding: " + ent.Var.Name)
			}
			ok = false
			continue
		}
		if b, resolved := resolver.ResolveBinding(stage, ent.Var.Name, ty, ent.Live); resolved {
			ent.NewBinding = &b
		}
		if g, resolved := resolver.ResolveSet(stage, ent.Var.Name, ty, ent.Live); resolved {
			ent.NewGroup = &g
		}
	}
	return ok
}
