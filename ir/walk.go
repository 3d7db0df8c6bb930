package ir

import (
	"fmt"
)

// ResourceVisitor receives each use of a resource-class global variable
// found during a traversal. The same variable may be reported more than
// once; visitors are expected to be idempotent per handle.
type ResourceVisitor func(fn FunctionHandle, global GlobalVariableHandle)

// WalkFunctions visits every function in the module, reachable from an
// entry point or not, and reports each resource global it uses.
func WalkFunctions(m *Module, visit ResourceVisitor) {
	for fn := range m.Functions {
		walkFunction(m, FunctionHandle(fn), visit)
	}
}

// WalkLive visits only the functions transitively reachable from the
// module's entry point, and reports each resource global they use.
// Each function is visited at most once.
//
// WalkLive requires exactly one entry point; callers are expected to have
// checked EntryPointCount and IsRecursive beforehand.
func WalkLive(m *Module, visit ResourceVisitor) error {
	if len(m.EntryPoints) != 1 {
		return fmt.Errorf("ir: module has %d entry points, want 1", len(m.EntryPoints))
	}

	seen := make(map[FunctionHandle]bool)
	worklist := []FunctionHandle{m.EntryPoints[0].Function}

	for len(worklist) > 0 {
		fn := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if seen[fn] {
			continue
		}
		seen[fn] = true

		walkFunction(m, fn, visit)
		for _, callee := range Callees(m, fn) {
			if !seen[callee] {
				worklist = append(worklist, callee)
			}
		}
	}
	return nil
}

// walkFunction is the dispatch core shared by both traversal strategies.
// A function uses a global iff its expression arena references it.
func walkFunction(m *Module, fn FunctionHandle, visit ResourceVisitor) {
	f := &m.Functions[fn]
	for i := range f.Expressions {
		g, ok := f.Expressions[i].Kind.(ExprGlobalVariable)
		if !ok {
			continue
		}
		if m.GlobalVariables[g.Variable].Space.IsResource() {
			visit(fn, g.Variable)
		}
	}
}
