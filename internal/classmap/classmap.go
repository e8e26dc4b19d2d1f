// Package classmap loads the taxonomy class map from a YAML file and keeps a
// resolver.Registry in sync with it.
//
// The file maps taxonomy names to constructor kinds:
//
//	taxonomies:
//	  category: category
//	  post_tag: tag
//	  genre: term
package classmap

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"terms/pkg/domain"
	"terms/pkg/resolver"

	"gopkg.in/yaml.v3"
)

// Kinds lists the constructors a class map file may refer to.
var Kinds = map[string]domain.Constructor{ //nolint: gochecknoglobals
	"term":     domain.NewTerm,
	"category": domain.NewCategory,
	"tag":      domain.NewTag,
}

type file struct {
	Taxonomies map[string]string `yaml:"taxonomies"`
}

// Parse decodes a class map document.
func Parse(data []byte) (resolver.ClassMap, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not decode class map: %w", err)
	}

	out := make(resolver.ClassMap, len(f.Taxonomies))
	for taxonomy, kind := range f.Taxonomies {
		construct, ok := Kinds[strings.ToLower(strings.TrimSpace(kind))]
		if !ok {
			return nil, fmt.Errorf("unknown kind %q for taxonomy %q, expected one of %v",
				kind, taxonomy, knownKinds())
		}
		out[taxonomy] = resolver.Fixed{New: construct}
	}

	return out, nil
}

// Load reads and parses the class map file at path.
func Load(path string) (resolver.ClassMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read class map file: %w", err)
	}

	return Parse(data)
}

func knownKinds() []string {
	out := make([]string, 0, len(Kinds))
	for kind := range Kinds {
		out = append(out, kind)
	}
	slices.Sort(out)

	return out
}
