package animation

import (
	"sort"

	"vis3d/internal/engine"
)

// Manager holds the attached animators and steps them each tick. Objects can
// carry several animators (a spin plus a bob, say); they run in attach order.
type Manager struct {
	entries map[string]*entry
}

type entry struct {
	obj       *engine.Object
	animators []Animator
}

func NewManager() *Manager {
	return &Manager{entries: make(map[string]*entry)}
}

// Attach binds an animator to an object. Position-driving animators claim the
// script driver tag; attaching one to a physics-driven object is an error.
func (m *Manager) Attach(obj *engine.Object, a Animator) error {
	if a.DrivesPosition() {
		if err := obj.ClaimDriver(engine.DriverScript); err != nil {
			return err
		}
	}
	ent, exists := m.entries[obj.Name]
	if !exists {
		ent = &entry{obj: obj}
		m.entries[obj.Name] = ent
	}
	ent.animators = append(ent.animators, a)
	return nil
}

// Detach removes all animators from the named object and releases the driver
// tag. Unknown names are a no-op.
func (m *Manager) Detach(name string) {
	ent, exists := m.entries[name]
	if !exists {
		return
	}
	ent.obj.ReleaseDriver(engine.DriverScript)
	delete(m.entries, name)
}

// Count returns the number of objects with animators attached.
func (m *Manager) Count() int {
	return len(m.entries)
}

// Update advances every attached animator by dt seconds, objects in name
// order so repeated runs step identically.
func (m *Manager) Update(dt float32) {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ent := m.entries[name]
		for _, a := range ent.animators {
			a.Update(ent.obj, dt)
		}
	}
}
