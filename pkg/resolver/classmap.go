package resolver

import (
	"maps"
	"slices"
	"sync"

	"terms/pkg/domain"
)

// DefaultConstructor builds terms of taxonomies the class map does not cover.
var DefaultConstructor domain.Constructor = domain.NewTerm //nolint: gochecknoglobals

// ClassEntry selects the constructor for a taxonomy. It is either Fixed or a
// Selector.
type ClassEntry interface {
	constructor(raw *domain.RawTerm) domain.Constructor
}

// Fixed always uses New.
type Fixed struct {
	New domain.Constructor
}

func (f Fixed) constructor(*domain.RawTerm) domain.Constructor { return f.New }

// Selector picks the constructor from the record. Returning nil falls back to
// DefaultConstructor.
type Selector func(raw *domain.RawTerm) domain.Constructor

func (s Selector) constructor(raw *domain.RawTerm) domain.Constructor {
	if s == nil {
		return nil
	}

	return s(raw)
}

// ClassMap maps taxonomy names to entries.
type ClassMap map[string]ClassEntry

// DefaultClassMap returns a fresh map of the built-in entries.
func DefaultClassMap() ClassMap {
	return ClassMap{
		domain.TaxonomyTag:      Fixed{New: domain.NewTerm},
		domain.TaxonomyCategory: Fixed{New: domain.NewTerm},
	}
}

// Constructor returns the constructor for raw's taxonomy, or
// DefaultConstructor when the map has none.
func (m ClassMap) Constructor(raw *domain.RawTerm) domain.Constructor {
	if entry := m[raw.Taxonomy]; entry != nil {
		if c := entry.constructor(raw); c != nil {
			return c
		}
	}

	return DefaultConstructor
}

// ClassMapProvider is the extension point hosts use to choose constructors.
// ClassMap receives the built-in entries and returns the map to use; it is
// called for every record built.
type ClassMapProvider interface {
	ClassMap(defaults ClassMap) ClassMap
}

// ClassMapFunc adapts a function to ClassMapProvider.
type ClassMapFunc func(defaults ClassMap) ClassMap

func (f ClassMapFunc) ClassMap(defaults ClassMap) ClassMap { return f(defaults) }

// StaticClassMap overrides the defaults with a fixed set of entries.
type StaticClassMap ClassMap

func (s StaticClassMap) ClassMap(defaults ClassMap) ClassMap {
	out := maps.Clone(defaults)
	if out == nil {
		out = ClassMap{}
	}
	maps.Copy(out, s)

	return out
}

// Registry is a ClassMapProvider that can be reconfigured at runtime.
// The zero value is an empty registry ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries ClassMap
}

// NewRegistry creates a registry holding entries on top of the defaults.
func NewRegistry(entries ClassMap) *Registry {
	r := &Registry{entries: ClassMap{}}
	maps.Copy(r.entries, entries)

	return r
}

// Set registers entry for taxonomy.
func (r *Registry) Set(taxonomy string, entry ClassEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = ClassMap{}
	}
	r.entries[taxonomy] = entry
}

// Delete removes the entry for taxonomy, restoring the default.
func (r *Registry) Delete(taxonomy string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, taxonomy)
}

// Replace swaps every entry at once.
func (r *Registry) Replace(entries ClassMap) {
	next := ClassMap{}
	maps.Copy(next, entries)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = next
}

// Taxonomies lists the taxonomies with a registered entry, sorted.
func (r *Registry) Taxonomies() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.entries))
}

func (r *Registry) ClassMap(defaults ClassMap) ClassMap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return StaticClassMap(r.entries).ClassMap(defaults)
}
