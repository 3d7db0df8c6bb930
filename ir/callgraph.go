package ir

// Callees returns the functions directly called from fn's body, in first
// call order, without duplicates.
func Callees(m *Module, fn FunctionHandle) []FunctionHandle {
	var out []FunctionHandle
	seen := make(map[FunctionHandle]bool)

	var visitBlock func(b Block)
	visitBlock = func(b Block) {
		for i := range b {
			switch s := b[i].Kind.(type) {
			case StmtCall:
				if !seen[s.Function] {
					seen[s.Function] = true
					out = append(out, s.Function)
				}
			case StmtBlock:
				visitBlock(s.Block)
			case StmtIf:
				visitBlock(s.Accept)
				visitBlock(s.Reject)
			case StmtLoop:
				visitBlock(s.Body)
				visitBlock(s.Continuing)
			}
		}
	}
	visitBlock(m.Functions[fn].Body)
	return out
}

// EntryPointCount returns the number of entry points in the module.
func EntryPointCount(m *Module) int {
	return len(m.EntryPoints)
}

// IsRecursive reports whether the module's call graph contains a cycle,
// starting from any function (not only the entry point). Recursion makes
// reachability from the entry point ill-defined for a bounded analysis.
func IsRecursive(m *Module) bool {
	const (
		white = iota // unvisited
		gray         // on the current DFS path
		black        // fully explored
	)
	color := make([]uint8, len(m.Functions))

	var visit func(fn FunctionHandle) bool
	visit = func(fn FunctionHandle) bool {
		color[fn] = gray
		for _, callee := range Callees(m, fn) {
			switch color[callee] {
			case gray:
				return true
			case white:
				if visit(callee) {
					return true
				}
			}
		}
		color[fn] = black
		return false
	}

	for fn := range m.Functions {
		if color[fn] == white && visit(FunctionHandle(fn)) {
			return true
		}
	}
	return false
}
