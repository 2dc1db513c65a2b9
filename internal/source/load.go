package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"declaration-corrector/internal/decl"
)

// Parse decodes a declaration document. Unknown keys are rejected. A document
// without a name takes fallback as its name.
func Parse(r io.Reader, fallback string) (Document, error) {
	var d Document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("failed to parse declarations: %w", err)
	}

	if d.Name == "" {
		d.Name = fallback
	}

	return d, nil
}

// LoadFile reads one declaration document. The file name without extension
// is the fallback logical name.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read declarations %s: %w", path, err)
	}

	d, err := Parse(bytes.NewReader(data), strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Files returns the declaration documents in dir, sorted by name.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list declarations in %s: %w", dir, err)
	}

	var out []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		switch filepath.Ext(e.Name()) {
		case ".yml", ".yaml":
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(out)

	return out, nil
}

// Load reads every declaration document in dir with at most workers reads in
// flight and links the result into one package named name. Documents without
// a package declare name as their package. The first failure cancels the
// remaining reads.
func Load(ctx context.Context, dir, name string, workers int, logger *slog.Logger) (*decl.Package, error) {
	if logger == nil {
		logger = slog.Default()
	}

	paths, err := Files(dir)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			d, err := LoadFile(path)
			if err != nil {
				return err
			}

			docs[i] = d

			logger.Debug("declarations read",
				slog.String("file", d.Name),
				slog.Int("classes", len(d.Classes)))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make([]*decl.File, len(docs))
	for i, d := range docs {
		if d.Package == "" {
			d.Package = name
		}

		files[i] = d.File()
	}

	logger.Info("declarations loaded", slog.String("dir", dir), slog.Int("files", len(files)))

	return decl.NewPackage(name, files...), nil
}
