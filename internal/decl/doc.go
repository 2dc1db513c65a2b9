// Package decl provides the in-memory declaration model that the correction
// engine rewrites.
//
// A Package owns Files; Files own top-level Classes, Functions, Properties and
// TypeAliases; Classes own nested members recursively. Every declaration gets a
// stable ID at construction, which the engine uses for its bookkeeping.
//
// # Names
//
// Named declarations carry two names:
//   - OriginalName is fixed at construction and is what every correction rule
//     matches against.
//   - Name is the current, mutable identifier.
//
// Renames go through a tri-state lock (unset, locked, reopened). A locked
// declaration rejects renames until it is explicitly reopened with a reason;
// every accepted rename is kept in an audit trail.
//
// # Type references
//
// TypeName values are references, not declarations. Package.Link resolves each
// reference to the class it names (by original name), so a class rename is
// reflected everywhere the class is referenced.
package decl
