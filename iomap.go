// Package iomap assigns binding slots and descriptor sets to the resource
// variables of one shader stage.
//
// The algorithm for one stage:
//
//  1. Traverse all code, live and dead, to register every resource
//     variable and its explicitly provided qualifiers.
//
//  2. Traverse just the code reachable from the entry point to mark which
//     of those variables are live.
//
//  3. Hand each variable to a caller-supplied Resolver, explicit
//     qualifiers first, so auto-numbering can steer around slots that
//     were requested by name.
//
//  4. If every variable validated, write the resolved numbers back onto
//     the IR. A single failure suppresses all writes for the stage.
//
// What numbers are good is the Resolver's decision, not this package's;
// see the layout package for ready-made policies.
package iomap

import (
	"github.com/gogpu/iomap/ir"
)

// AddStage resolves bindings for one compilation stage.
//
// With a nil resolver there is nothing to resolve against and AddStage
// succeeds without touching the module. A malformed program (more or
// fewer than one entry point, or a recursive call graph) fails before any
// traversal. Otherwise the module's qualifiers are updated in place iff
// every variable validates, and the aggregate result is returned; on
// failure the sink has received one message per invalid variable and the
// module is unmodified.
func AddStage(stage ir.ShaderStage, m *ir.Module, sink DiagnosticSink, resolver Resolver) bool {
	if resolver == nil {
		return true
	}

	if ir.EntryPointCount(m) != 1 || ir.IsRecursive(m) {
		return false
	}

	var reg Registry
	if err := gather(m, &reg); err != nil {
		return false
	}

	ordered := resolutionOrder(&reg)
	if !resolveAll(stage, m, ordered, sink, resolver) {
		return false
	}

	apply(m, &reg)
	return true
}
