// Package scope provides lazy views over declarations for targeted, one-off
// corrections: lookup by current name, bulk application of rules to members,
// and name corrections that are staged on a scope and applied explicitly.
//
// Unlike the broadcast rules in package rules, which match by original name,
// every Find* lookup here uses the declaration's current name.
package scope
