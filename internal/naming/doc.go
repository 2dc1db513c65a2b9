// Package naming provides identifier tokenization and the casing rules used by
// the correction passes.
//
// Key functions:
//   - TopLevel: type-name casing ("my_vector" -> "MyVector")
//   - MemberLevel: member casing ("GetActorName" -> "getActorName")
//   - JoinNames: builds a composite type name from name segments
//   - Levenshtein / Suggest: near-miss suggestions for rule diagnostics
package naming
