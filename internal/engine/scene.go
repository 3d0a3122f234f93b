package engine

import (
	"fmt"
	"sort"
)

// Scene owns the objects of one editing session, keyed by their unique names.
type Scene struct {
	Name    string
	objects map[string]*Object
	order   []string
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:    name,
		objects: make(map[string]*Object),
	}
}

// Add registers an object under its name. Names are unique keys; adding a
// duplicate is an error so callers cannot silently orphan an object.
func (s *Scene) Add(obj *Object) error {
	if _, exists := s.objects[obj.Name]; exists {
		return fmt.Errorf("scene %q already contains object %q", s.Name, obj.Name)
	}
	s.objects[obj.Name] = obj
	s.order = append(s.order, obj.Name)
	return nil
}

// Remove drops an object by name. Removing an unknown name is a no-op.
func (s *Scene) Remove(name string) {
	if _, exists := s.objects[name]; !exists {
		return
	}
	delete(s.objects, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Find returns the object with the given name, or nil.
func (s *Scene) Find(name string) *Object {
	return s.objects[name]
}

// Names returns all object names in insertion order.
func (s *Scene) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// SortedNames returns all object names sorted lexically.
func (s *Scene) SortedNames() []string {
	out := s.Names()
	sort.Strings(out)
	return out
}

func (s *Scene) Len() int {
	return len(s.objects)
}
