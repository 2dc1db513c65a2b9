// Package rules holds the correction configuration: immutable rule records for
// classes, functions, properties and members, the four configuration sections,
// and the builders used to compose them.
//
// All records merge right-biased: a scalar set on the right-hand side wins,
// collections are unioned. Rules always match against a declaration's original
// name, so a rule stays applicable after earlier passes renamed its target.
package rules
