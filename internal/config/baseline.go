package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"declaration-corrector/internal/rules"
)

// Published baseline documents.
const (
	DefaultBaselineURL = "https://raw.githubusercontent.com/IvanEOD/declaration-generation/main/src/main/resources/defaultUnrealKtConfiguration.yml"
	EmptyBaselineURL   = "https://raw.githubusercontent.com/IvanEOD/declaration-generation/main/src/main/resources/emptyUnrealKtConfiguration.yml"
)

const defaultCacheSize = 16

// Baselines fetches baseline documents by location and keeps the parsed
// result for the life of the value. A location is an http(s) URL, a file://
// URL or a plain path.
type Baselines struct {
	client *http.Client
	cache  *lru.Cache[string, rules.Configuration]
}

// NewBaselines creates a baseline store. A nil client uses a client with a
// 30 second timeout; a non-positive size uses a small default.
func NewBaselines(client *http.Client, size int) (*Baselines, error) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	if size <= 0 {
		size = defaultCacheSize
	}

	cache, err := lru.New[string, rules.Configuration](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create baseline cache: %w", err)
	}

	return &Baselines{client: client, cache: cache}, nil
}

// Default returns the published default baseline.
func (b *Baselines) Default(ctx context.Context) (rules.Configuration, error) {
	return b.Fetch(ctx, DefaultBaselineURL)
}

// Empty returns the published empty baseline.
func (b *Baselines) Empty(ctx context.Context) (rules.Configuration, error) {
	return b.Fetch(ctx, EmptyBaselineURL)
}

// Fetch returns the baseline at location, loading it on first use.
func (b *Baselines) Fetch(ctx context.Context, location string) (rules.Configuration, error) {
	if cfg, ok := b.cache.Get(location); ok {
		return cfg, nil
	}

	data, err := b.read(ctx, location)
	if err != nil {
		return rules.Configuration{}, err
	}

	cfg, err := Parse(data)
	if err != nil {
		return rules.Configuration{}, fmt.Errorf("baseline %s: %w", location, err)
	}

	b.cache.Add(location, cfg)

	return cfg, nil
}

// Resolve layers cfg over the baseline at location.
func (b *Baselines) Resolve(ctx context.Context, cfg rules.Configuration, location string) (rules.Configuration, error) {
	base, err := b.Fetch(ctx, location)
	if err != nil {
		return rules.Configuration{}, err
	}

	return rules.Resolve(cfg, base), nil
}

func (b *Baselines) read(ctx context.Context, location string) ([]byte, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		path := strings.TrimPrefix(location, "file://")

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read baseline %s: %w", path, err)
		}

		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create baseline request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch baseline %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch baseline %s: unexpected status %s", location, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline %s: %w", location, err)
	}

	return data, nil
}
