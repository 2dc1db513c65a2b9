// Package diagnostic provides structured errors, warnings and infos for a
// correction run and for configuration validation.
//
// Key capabilities:
//   - Rule mismatch reports (broadcast rules that matched nothing)
//   - Deleted, pruned and de-duplicated class reports
//   - Name collision fixes and unresolved placeholder warnings
//   - Configuration validation errors with near-miss suggestions
package diagnostic
