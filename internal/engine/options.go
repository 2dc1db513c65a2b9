package engine

import (
	"log/slog"

	"declaration-corrector/internal/scope"
)

// Options controls a run. DefaultOptions returns the values used for the
// Unreal Engine declaration set.
type Options struct {
	// Logger receives rule mismatches and pass progress. Nil means slog.Default().
	Logger *slog.Logger

	// RequiredClasses are the roots of the dependency closure.
	RequiredClasses []string
	// IncludeAllClasses disables pruning.
	IncludeAllClasses bool
	// IncludeAllEnums adds every enum class to the closure roots.
	IncludeAllEnums bool
	// MinimalRoots are always part of the closure roots.
	MinimalRoots []string

	// PlaceholderPrefix marks classes synthesized for anonymous types.
	PlaceholderPrefix string
	// PlaceholderFallback replaces PlaceholderPrefix when no name can be derived.
	PlaceholderFallback string
	// ProviderSuffix is appended to names derived for single-property
	// placeholder classes.
	ProviderSuffix string
	// GenericMemberNames are property names that carry no meaning of their
	// own; a placeholder class holding one is named after the property type.
	GenericMemberNames []string
	// IgnoredTypeSegments are type-name segments left out of derived names.
	IgnoredTypeSegments []string

	// MediaSourceSupertype marks classes whose functions lose type variables
	// and override modifiers.
	MediaSourceSupertype string
	// MediaSourceClasses are handled the same way after all passes.
	MediaSourceClasses []string
	// InputEventSupertype marks classes whose clone function must override.
	InputEventSupertype string
	// CloneFunction is the function name forced to override on input events.
	CloneFunction string

	// ParameterRenames are applied to every parameter before casing.
	ParameterRenames map[string]string
	// DefaultPackage is assigned to resolved type references without one.
	DefaultPackage string
	// RetargetedPackages are replaced by DefaultPackage on resolved references.
	RetargetedPackages []string

	// BooleanType and BooleanPrefix resolve property-name collisions.
	BooleanType   string
	BooleanPrefix string
	// RootProperty names the file-level property left open by the
	// non-class-member pass.
	RootProperty string

	// Adjustments run against the named classes (current name) after the
	// fixups and before pruning.
	Adjustments map[string]func(*scope.Class)
}

// DefaultOptions returns the options for the Unreal Engine declaration set.
func DefaultOptions() Options {
	return Options{
		Logger:               slog.Default(),
		MinimalRoots:         []string{"UObject", "KotlinObject"},
		IncludeAllEnums:      true,
		PlaceholderPrefix:    "T$",
		PlaceholderFallback:  "Object",
		ProviderSuffix:       "Provider",
		GenericMemberNames:   []string{"value", "Value", "$"},
		IgnoredTypeSegments:  []string{"kotlin", "js"},
		MediaSourceSupertype: "MediaSource",
		MediaSourceClasses:   []string{"PlatformMediaSource", "BaseMediaSource"},
		InputEventSupertype:  "InputEvent",
		CloneFunction:        "clone",
		ParameterRenames:     map[string]string{"fn": "function"},
		DefaultPackage:       "ue",
		RetargetedPackages:   []string{"tsstdlib"},
		BooleanType:          "Boolean",
		BooleanPrefix:        "is",
		RootProperty:         "Root",
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}

	return o.Logger
}
