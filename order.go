package iomap

import (
	"sort"

	"github.com/gogpu/iomap/ir"
)

// resolutionOrder returns the registry's entries in the sequence the
// resolver must see them. The registry itself stays in ID order; this
// order exists only to sequence resolution.
//
// Entries with explicit qualifiers go first so the policy can reserve
// their exact slots before it auto-numbers the unspecified ones:
//
//  1. explicit binding and explicit set
//  2. explicit binding only
//  3. explicit set only
//  4. neither
//
// Ties break by ascending ID, making the order total and deterministic.
func resolutionOrder(reg *Registry) []*VarEntry {
	out := make([]*VarEntry, reg.Len())
	for i := range out {
		out[i] = reg.At(i)
	}
	sort.Slice(out, func(i, j int) bool { return lessByPriority(out[i], out[j]) })
	return out
}

func lessByPriority(a, b *VarEntry) bool {
	at, bt := layoutTier(a.Var.Layout), layoutTier(b.Var.Layout)
	if at != bt {
		return at < bt
	}
	return a.ID < b.ID
}

func layoutTier(l ir.ResourceLayout) int {
	switch {
	case l.HasBinding() && l.HasGroup():
		return 0
	case l.HasBinding():
		return 1
	case l.HasGroup():
		return 2
	default:
		return 3
	}
}
