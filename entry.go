package iomap

import (
	"sort"

	"github.com/gogpu/iomap/ir"
)

// VarEntry records one discovered resource variable for the duration of a
// stage's resolution. The entry references the module's declaration; it
// never owns IR nodes.
type VarEntry struct {
	// ID is the variable's stable identity across the whole program.
	ID ir.GlobalVariableHandle

	// Var is the declaration in the module's arena.
	Var *ir.GlobalVariable

	// Live is true once the variable has been seen on a call path from
	// the entry point. It is only ever promoted, never reset.
	Live bool

	// NewBinding and NewGroup hold the resolver's results.
	// nil means unresolved: the existing qualifier is left untouched.
	NewBinding *uint32
	NewGroup   *uint32
}

// Registry is an ordered, deduplicated collection of VarEntry keyed by ID.
// It is created fresh per stage, populated by the two gather passes,
// enriched by resolution, read by the applier, then discarded.
type Registry struct {
	entries []VarEntry
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// At returns the i-th entry in ascending ID order.
func (r *Registry) At(i int) *VarEntry { return &r.entries[i] }

// search returns the insertion index for id and whether an entry with
// that id already exists.
func (r *Registry) search(id ir.GlobalVariableHandle) (int, bool) {
	i := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].ID >= id
	})
	return i, i < len(r.entries) && r.entries[i].ID == id
}

// lookup returns the entry for id, or nil if not present.
func (r *Registry) lookup(id ir.GlobalVariableHandle) *VarEntry {
	if i, ok := r.search(id); ok {
		return &r.entries[i]
	}
	return nil
}

// add inserts an entry for id, or, if one exists, promotes its liveness.
// Duplicate adds within a pass are idempotent.
func (r *Registry) add(id ir.GlobalVariableHandle, v *ir.GlobalVariable, live bool) {
	i, ok := r.search(id)
	if ok {
		if live {
			r.entries[i].Live = true
		}
		return
	}
	r.entries = append(r.entries, VarEntry{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = VarEntry{ID: id, Var: v, Live: live}
}
