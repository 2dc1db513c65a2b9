// Package config loads correction configurations, remote baselines and run
// settings.
//
// Correction documents are YAML with the sections enumCorrections,
// nonClassMemberCorrections, standardCorrections and unnamedClasses. Decoding
// is strict: unknown keys are rejected at load time.
package config
