// Package mode defines the behavioral mode registry and the hand-off
// collaboration matrix between modes.
package mode

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Mode is a named behavioral profile selectable by an agent host.
type Mode struct {
	Slug        string `yaml:"slug" json:"slug"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	// Handoffs maps a target mode slug to the named conditions under
	// which the session should be handed to that mode.
	Handoffs map[string][]string `yaml:"handoffs,omitempty" json:"handoffs,omitempty"`
}

// Registry holds an ordered set of modes indexed by slug.
type Registry struct {
	modes  []Mode
	bySlug map[string]int
}

// NewRegistry creates a registry from the given modes, preserving order.
// Later modes with a duplicate slug replace earlier ones.
func NewRegistry(modes ...Mode) *Registry {
	r := &Registry{bySlug: make(map[string]int)}
	for _, m := range modes {
		r.put(m)
	}
	return r
}

// put inserts or replaces a mode.
func (r *Registry) put(m Mode) {
	if i, ok := r.bySlug[m.Slug]; ok {
		r.modes[i] = m
		return
	}
	r.bySlug[m.Slug] = len(r.modes)
	r.modes = append(r.modes, m)
}

// Modes returns the modes in registration order.
func (r *Registry) Modes() []Mode {
	modes := make([]Mode, len(r.modes))
	copy(modes, r.modes)
	return modes
}

// Get returns the mode with the given slug.
func (r *Registry) Get(slug string) (Mode, bool) {
	i, ok := r.bySlug[strings.ToLower(slug)]
	if !ok {
		return Mode{}, false
	}
	return r.modes[i], true
}

// Slugs returns all registered slugs in registration order.
func (r *Registry) Slugs() []string {
	slugs := make([]string, len(r.modes))
	for i, m := range r.modes {
		slugs[i] = m.Slug
	}
	return slugs
}

// Merge applies overlay modes on top of the registry: a mode with an
// existing slug replaces the built-in, a new slug is appended.
func (r *Registry) Merge(overlay []Mode) {
	for _, m := range overlay {
		r.put(m)
	}
}

// HandoffConditions returns the named conditions for a directed
// hand-off pair. Both slugs must exist; an empty condition list for a
// valid pair is not an error.
func (r *Registry) HandoffConditions(from, to string) ([]string, error) {
	source, ok := r.Get(from)
	if !ok {
		return nil, fmt.Errorf("unknown mode: %s", from)
	}
	if _, ok := r.Get(to); !ok {
		return nil, fmt.Errorf("unknown mode: %s", to)
	}
	conditions := make([]string, len(source.Handoffs[strings.ToLower(to)]))
	copy(conditions, source.Handoffs[strings.ToLower(to)])
	return conditions, nil
}

// ValidationError reports registry validation failures.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid mode registry: " + strings.Join(e.Problems, "; ")
}

// Validate checks the registry invariants:
//   - every mode has a non-empty slug, name, and description
//   - slugs are unique (guaranteed structurally) and lowercase
//   - every hand-off target slug exists in the registry
func (r *Registry) Validate() error {
	var problems []string
	for _, m := range r.modes {
		if m.Slug == "" {
			problems = append(problems, "mode with empty slug")
			continue
		}
		if m.Slug != strings.ToLower(m.Slug) {
			problems = append(problems, fmt.Sprintf("slug %q must be lowercase", m.Slug))
		}
		if m.Name == "" {
			problems = append(problems, fmt.Sprintf("mode %s: empty name", m.Slug))
		}
		if m.Description == "" {
			problems = append(problems, fmt.Sprintf("mode %s: empty description", m.Slug))
		}

		targets := make([]string, 0, len(m.Handoffs))
		for target := range m.Handoffs {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		for _, target := range targets {
			if _, ok := r.bySlug[target]; !ok {
				problems = append(problems, fmt.Sprintf("mode %s: hand-off target %q not in registry", m.Slug, target))
			}
			for _, condition := range m.Handoffs[target] {
				if strings.TrimSpace(condition) == "" {
					problems = append(problems, fmt.Sprintf("mode %s: empty hand-off condition for target %q", m.Slug, target))
				}
			}
		}
	}
	if len(r.modes) == 0 {
		problems = append(problems, "no modes registered")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// AsValidationError checks if err is a ValidationError and extracts it.
func AsValidationError(err error, target **ValidationError) bool {
	return errors.As(err, target)
}
