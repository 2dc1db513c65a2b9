// Package engine runs the correction passes over a declaration package.
//
// An Environment owns the bookkeeping for a single run: the enum,
// non-class-member, unnamed-class and standard passes run in that order,
// followed by a fixed sequence of global fixups and optional pruning to the
// dependency closure of a root set. The engine is single-threaded and not
// reentrant.
package engine
