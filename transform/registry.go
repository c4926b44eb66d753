package transform

import "fmt"

// Registry is an ordered collection of transforms. Lookups return the first
// transform whose trigger matches, in registration order.
//
// A registry is safe for concurrent reads once construction is complete; it
// is never mutated by the engine.
type Registry struct {
	transforms []Transform
}

// NewRegistry creates a registry holding the given transforms.
func NewRegistry(transforms ...Transform) (*Registry, error) {
	r := &Registry{}
	for _, t := range transforms {
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends a transform to the registry.
func (r *Registry) Add(t Transform) error {
	if err := t.validate(); err != nil {
		return fmt.Errorf("transform %q: %w", t.Name, err)
	}
	r.transforms = append(r.transforms, t)
	return nil
}

// Len returns the number of registered transforms.
func (r *Registry) Len() int {
	return len(r.transforms)
}

// Find returns the first transform satisfying the predicate.
func (r *Registry) Find(predicate func(Transform) bool) (Transform, bool) {
	for _, t := range r.transforms {
		if predicate(t) {
			return t, true
		}
	}
	return Transform{}, false
}

// MatchPrefix returns the first prefix transform whose prefix equals the
// given token.
func (r *Registry) MatchPrefix(token string) (Transform, bool) {
	return r.Find(func(t Transform) bool {
		return t.Kind == KindPrefix && t.Prefix == token
	})
}

// MatchEnter returns the first enter transform whose pattern matches the
// given plain text.
func (r *Registry) MatchEnter(text string) (Transform, bool) {
	return r.Find(func(t Transform) bool {
		return t.Kind == KindEnter && t.Pattern.MatchString(text)
	})
}
