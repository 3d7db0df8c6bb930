package iomap

import (
	"github.com/gogpu/iomap/ir"
)

// gather populates the registry with every resource variable in the
// module, in two passes:
//
//  1. all code, live or dead, inserting entries with Live=false;
//  2. only code reachable from the entry point, inserting new entries
//     with Live=true or promoting existing ones.
//
// A variable referenced only from dead code is still registered, just
// left with Live=false.
func gather(m *ir.Module, reg *Registry) error {
	ir.WalkFunctions(m, func(_ ir.FunctionHandle, g ir.GlobalVariableHandle) {
		reg.add(g, &m.GlobalVariables[g], false)
	})

	return ir.WalkLive(m, func(_ ir.FunctionHandle, g ir.GlobalVariableHandle) {
		reg.add(g, &m.GlobalVariables[g], true)
	})
}
