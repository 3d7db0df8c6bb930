// Package ir defines the shader intermediate representation consumed by
// the binding resolution pass.
//
// The IR is organized around a Module that holds arenas of types, global
// variables, functions, and entry points, referenced by handle. It is a
// deliberately small surface: enough structure for a front end to record
// which resource variables exist, what layout qualifiers they carry, and
// which functions use them, plus the call-graph shape that reachability
// analysis needs.
//
// # Traversals
//
// Two traversal strategies share one dispatch core:
//
//   - WalkFunctions visits every function, reachable or not.
//   - WalkLive visits only functions transitively called from the single
//     entry point, using a worklist.
//
// Both report uses of resource-class globals to a ResourceVisitor.
// Callees, EntryPointCount, and IsRecursive expose the call-graph
// introspection that passes use as preconditions.
//
// # References
//
// The handle/arena design follows naga:
// https://github.com/gfx-rs/naga
package ir
