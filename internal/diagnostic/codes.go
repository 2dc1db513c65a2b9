package diagnostic

// Codes reported by the correction engine.
const (
	CodeRuleMismatch            = "rule_mismatch"
	CodeClassDeleted            = "class_deleted"
	CodeClassPruned             = "class_pruned"
	CodeDuplicateIgnored        = "duplicate_ignored"
	CodeSharedNameDisambiguated = "shared_name_disambiguated"
	CodePropertyCollisionFixed  = "property_collision_fixed"
	CodeUnresolvedPlaceholder   = "unresolved_placeholder"
)

// Codes reported by configuration validation.
const (
	CodeEmptyName         = "empty_name"
	CodeConflictingRename = "conflicting_rename"
	CodeDeleteAndRename   = "delete_and_rename"
	CodeUnknownTarget     = "unknown_target"
)
