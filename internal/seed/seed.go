// Package seed reads term seed files and writes them into a repository.
//
// A seed file is a YAML document listing raw terms:
//
//	terms:
//	  - name: News
//	    slug: news
//	    taxonomy: category
//	    count: 4
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"terms/pkg/domain"
	"terms/pkg/logger"
	"terms/pkg/storage"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type file struct {
	Terms []domain.RawTerm `yaml:"terms"`
}

// Parse decodes a seed document. Every term needs a name and a taxonomy;
// a missing slug is derived from the name.
func Parse(data []byte) ([]domain.RawTerm, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not decode seed file: %w", err)
	}

	for i := range f.Terms {
		raw := &f.Terms[i]
		if raw.Name == "" || raw.Taxonomy == "" {
			return nil, fmt.Errorf("term %d: name and taxonomy are required", i)
		}
		if raw.Slug == "" {
			raw.Slug = Slugify(raw.Name)
		}
	}

	return f.Terms, nil
}

// Load reads and parses the seed file at path.
func Load(path string) ([]domain.RawTerm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read seed file: %w", err)
	}

	return Parse(data)
}

// Import stores terms in a single transaction and returns them as stored.
func Import(ctx context.Context, strg storage.Storage, terms []domain.RawTerm) ([]domain.RawTerm, error) {
	var stored []domain.RawTerm
	err := strg.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		stored, err = tx.StoreTerms(ctx, terms...)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not import terms: %w", err)
	}
	logger.Info(ctx, "imported terms", zap.Int("count", len(stored)))

	return stored, nil
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	return strings.Join(fields, "-")
}
