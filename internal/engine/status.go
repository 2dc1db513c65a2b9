package engine

//go:generate go tool stringer -type=Status -trimprefix=Status -output=status_string.go

// Status is the per-declaration state of a run.
type Status int

const (
	// StatusPending declarations are still open to every pass.
	StatusPending Status = iota
	// StatusIgnored declarations are duplicates scheduled for removal.
	StatusIgnored
	// StatusFinalized declarations are skipped by later passes.
	StatusFinalized
)
