// Package finalize post-processes emitted declaration text and writes the
// result to disk.
//
// Finalizing a file replaces its imports with a curated per-file list,
// removes backtick escapes around identifiers that are not keywords, strips
// known unwanted substrings and drops configured lines. Output files are
// named through a file-name table keyed by logical file name.
package finalize
