package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"declaration-corrector/internal/rules"
)

// SettingsName is the base name of the optional run settings file.
const SettingsName = "declfix"

// Settings are the options of a correction run.
type Settings struct {
	Input             string
	Output            string
	Config            string
	Baseline          string
	RequiredClasses   []string
	IncludeAllClasses bool
	IncludeAllEnums   bool
	DefaultPackage    string
	Workers           int
	// Adjustments are member rules for classes picked by their final name,
	// applied after every correction pass. Only the settings file sets them.
	Adjustments []rules.ClassCorrection
}

// Setting keys, shared by the settings file, environment and flags.
const (
	KeyInput             = "input"
	KeyOutput            = "output"
	KeyConfig            = "config"
	KeyBaseline          = "baseline"
	KeyRequiredClasses   = "required-classes"
	KeyIncludeAllClasses = "include-all-classes"
	KeyIncludeAllEnums   = "include-all-enums"
	KeyDefaultPackage    = "default-package"
	KeyWorkers           = "workers"
	KeyAdjustments       = "adjustments"
)

// LoadSettings reads declfix.yml from dir when present, then environment
// variables prefixed DECLFIX_. bind may register command-line flags on the
// viper instance before values are read.
func LoadSettings(dir string, bind func(*viper.Viper) error) (*Settings, error) {
	v := viper.New()
	v.SetConfigName(SettingsName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("DECLFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyOutput, "out")
	v.SetDefault(KeyIncludeAllEnums, true)
	v.SetDefault(KeyDefaultPackage, "ue")
	v.SetDefault(KeyWorkers, 4)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s.yml: %w", SettingsName, err)
		}
	}

	if bind != nil {
		if err := bind(v); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	s := &Settings{
		Input:             v.GetString(KeyInput),
		Output:            v.GetString(KeyOutput),
		Config:            v.GetString(KeyConfig),
		Baseline:          v.GetString(KeyBaseline),
		RequiredClasses:   v.GetStringSlice(KeyRequiredClasses),
		IncludeAllClasses: v.GetBool(KeyIncludeAllClasses),
		IncludeAllEnums:   v.GetBool(KeyIncludeAllEnums),
		DefaultPackage:    v.GetString(KeyDefaultPackage),
		Workers:           v.GetInt(KeyWorkers),
	}

	if err := v.UnmarshalKey(KeyAdjustments, &s.Adjustments); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", KeyAdjustments, err)
	}

	for i, a := range s.Adjustments {
		if a.Name == "" {
			return nil, fmt.Errorf("adjustment %d has no class name", i)
		}
	}

	if s.Workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", s.Workers)
	}

	return s, nil
}
