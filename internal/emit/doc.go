// Package emit renders corrected declaration files as Kotlin/JS external
// declarations.
//
// Rendering uses text/template. Identifiers that are keywords or not plain
// identifiers are escaped with backticks; the finalizer later removes the
// escapes that are not needed.
package emit
