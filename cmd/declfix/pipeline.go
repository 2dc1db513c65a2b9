package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"declaration-corrector/internal/config"
	"declaration-corrector/internal/decl"
	"declaration-corrector/internal/diagnostic"
	"declaration-corrector/internal/emit"
	"declaration-corrector/internal/engine"
	"declaration-corrector/internal/finalize"
	"declaration-corrector/internal/output"
	"declaration-corrector/internal/rules"
	"declaration-corrector/internal/scope"
	"declaration-corrector/internal/source"
)

// Baseline aliases accepted by --baseline.
const (
	baselineDefault = "default"
	baselineEmpty   = "empty"
)

// pipeline wires loading, correction, emission and writing for one run.
type pipeline struct {
	settings  *config.Settings
	baselines *config.Baselines
	logger    *slog.Logger
	out       *output.Printer
}

func newPipeline(s *config.Settings, logger *slog.Logger, out *output.Printer) (*pipeline, error) {
	baselines, err := config.NewBaselines(nil, 0)
	if err != nil {
		return nil, err
	}

	return &pipeline{settings: s, baselines: baselines, logger: logger, out: out}, nil
}

func baselineLocation(name string) string {
	switch name {
	case baselineDefault:
		return config.DefaultBaselineURL
	case baselineEmpty:
		return config.EmptyBaselineURL
	default:
		return name
	}
}

// configuration loads the configured document and layers it over the
// baseline when one is set.
func (p *pipeline) configuration(ctx context.Context) (rules.Configuration, error) {
	var cfg rules.Configuration

	if p.settings.Config != "" {
		loaded, err := config.LoadFile(p.settings.Config)
		if err != nil {
			return rules.Configuration{}, err
		}

		cfg = loaded
		p.out.Verbose("loaded configuration " + p.settings.Config)
	}

	if p.settings.Baseline == "" {
		return cfg, nil
	}

	location := baselineLocation(p.settings.Baseline)

	resolved, err := p.baselines.Resolve(ctx, cfg, location)
	if err != nil {
		return rules.Configuration{}, err
	}

	p.out.Verbose("resolved over baseline " + location)

	return resolved, nil
}

// validate reports configuration problems and fails on errors.
func (p *pipeline) validate(cfg rules.Configuration) (*diagnostic.Diagnostics, error) {
	diags := rules.Validate(cfg)
	if diags.HasErrors() {
		return diags, fmt.Errorf("invalid configuration: %w", diags.Error())
	}

	return diags, nil
}

func (p *pipeline) declarations(ctx context.Context) (*decl.Package, error) {
	if p.settings.Input == "" {
		return nil, errors.New("no input directory set")
	}

	return source.Load(ctx, p.settings.Input, p.settings.DefaultPackage, p.settings.Workers, p.logger)
}

func (p *pipeline) options() engine.Options {
	opts := engine.DefaultOptions()
	opts.Logger = p.logger
	opts.RequiredClasses = p.settings.RequiredClasses
	opts.IncludeAllClasses = p.settings.IncludeAllClasses
	opts.IncludeAllEnums = p.settings.IncludeAllEnums

	if p.settings.DefaultPackage != "" {
		opts.DefaultPackage = p.settings.DefaultPackage
	}

	if len(p.settings.Adjustments) > 0 {
		opts.Adjustments = adjustments(p.settings.Adjustments)
	}

	return opts
}

// adjustments turns the settings rules into scope adjustments. Rules for the
// same class are merged in order.
func adjustments(list []rules.ClassCorrection) map[string]func(*scope.Class) {
	byClass := make(map[string]rules.ClassCorrection, len(list))
	for _, r := range list {
		if prev, ok := byClass[r.Name]; ok {
			r = prev.Merge(r)
		}

		byClass[r.Name] = r
	}

	out := make(map[string]func(*scope.Class), len(byClass))
	for name, r := range byClass {
		out[name] = func(s *scope.Class) {
			for _, m := range r.Members {
				s.OnMembers(m, nil)
			}

			for _, f := range r.Functions {
				s.OnFunctions(f, nil)
			}

			for _, pr := range r.Properties {
				s.OnProperties(pr, nil)
			}
		}
	}

	return out
}

// run corrects the input declarations and writes the finalized files.
func (p *pipeline) run(ctx context.Context) (*engine.Report, []finalize.File, error) {
	cfg, err := p.configuration(ctx)
	if err != nil {
		return nil, nil, err
	}

	diags, err := p.validate(cfg)
	if err != nil {
		p.out.Diagnostics(diags)
		return nil, nil, err
	}

	pkg, err := p.declarations(ctx)
	if err != nil {
		return nil, nil, err
	}

	report := engine.New(pkg, cfg, p.options()).Process()
	report.Diagnostics.Merge(*diags)

	outputs, err := emit.Package(pkg)
	if err != nil {
		return report, nil, err
	}

	files, err := finalize.Default().Write(outputs, p.settings.Output)
	if err != nil {
		return report, nil, err
	}

	return report, files, nil
}

// check validates the configuration and, when an input directory is set,
// reports class rules that match no declaration.
func (p *pipeline) check(ctx context.Context) (rules.Configuration, *diagnostic.Diagnostics, error) {
	cfg, err := p.configuration(ctx)
	if err != nil {
		return rules.Configuration{}, nil, err
	}

	diags := rules.Validate(cfg)

	if p.settings.Input != "" {
		pkg, err := p.declarations(ctx)
		if err != nil {
			return cfg, diags, err
		}

		classes := pkg.AllClasses()
		names := make([]string, len(classes))

		for i, c := range classes {
			names[i] = c.OriginalName()
		}

		targets := rules.CheckTargets(cfg, names)
		if unknown := targets.ByCode(diagnostic.CodeUnknownTarget); len(unknown) > 0 {
			p.out.Warn(fmt.Sprintf("%d class rules name no declaration in %s", len(unknown), p.settings.Input))
		}

		diags.Merge(*targets)
	}

	return cfg, diags, nil
}
