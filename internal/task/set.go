package task

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Set is a set of task slugs. Storage order is irrelevant but iteration and
// serialization are always lexicographic, so output and persisted documents
// stay deterministic.
type Set struct {
	members map[string]struct{}
}

// NewSet returns a Set containing the given slugs.
func NewSet(slugs ...string) *Set {
	s := &Set{members: make(map[string]struct{}, len(slugs))}
	s.Extend(slugs)
	return s
}

// Add inserts slug into the set.
func (s *Set) Add(slug string) {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	s.members[slug] = struct{}{}
}

// Extend inserts every slug in slugs.
func (s *Set) Extend(slugs []string) {
	for _, slug := range slugs {
		s.Add(slug)
	}
}

// Remove deletes slug from the set. Removing an absent slug is a no-op.
func (s *Set) Remove(slug string) {
	delete(s.members, slug)
}

// Contains reports whether slug is in the set.
func (s *Set) Contains(slug string) bool {
	_, ok := s.members[slug]
	return ok
}

// Len returns the number of slugs in the set.
func (s *Set) Len() int {
	return len(s.members)
}

// Clear removes every slug.
func (s *Set) Clear() {
	s.members = nil
}

// Slugs returns the members in lexicographic order.
func (s *Set) Slugs() []string {
	out := make([]string, 0, len(s.members))
	for slug := range s.members {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// MarshalYAML implements yaml.Marshaler, emitting a sorted sequence.
func (s *Set) MarshalYAML() (any, error) {
	return s.Slugs(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting a sequence of slugs.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var slugs []string
	if err := node.Decode(&slugs); err != nil {
		return err
	}
	s.members = make(map[string]struct{}, len(slugs))
	s.Extend(slugs)
	return nil
}
