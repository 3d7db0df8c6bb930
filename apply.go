package iomap

import (
	"github.com/gogpu/iomap/ir"
)

// apply writes resolved numbers back onto the module's resource globals.
// Every declaration is visited, dead code included, so that unused
// declarations stay consistent with the rest of the program. An entry
// whose result is unresolved leaves the corresponding qualifier exactly
// as it was; it is never cleared or defaulted.
//
// Registry lookups here are pure reads; apply runs only after the whole
// stage has validated.
func apply(m *ir.Module, reg *Registry) {
	for i := range m.GlobalVariables {
		v := &m.GlobalVariables[i]
		if !v.Space.IsResource() {
			continue
		}
		ent := reg.lookup(ir.GlobalVariableHandle(i))
		if ent == nil {
			// Unreachable for discovered variables: the all-code gather
			// pass is exhaustive. Left untouched regardless.
			continue
		}
		if ent.NewBinding != nil {
			b := *ent.NewBinding
			v.Layout.Binding = &b
		}
		if ent.NewGroup != nil {
			g := *ent.NewGroup
			v.Layout.Group = &g
		}
	}
}
