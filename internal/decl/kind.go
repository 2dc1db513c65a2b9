package decl

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the syntactic unit a declaration represents.
type Kind int

const (
	KindUnknown Kind = iota
	KindPackage
	KindFile
	KindClass
	KindFunction
	KindProperty
	KindParameter
	KindTypeAlias
)
