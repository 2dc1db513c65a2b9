// Package source reads declaration documents into a decl.Package.
//
// Each YAML document describes one logical file: its classes, file-level
// functions, properties and type aliases. Documents are read concurrently and
// assembled in file-name order once every read has finished.
package source
