// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"slices"

	"github.com/gogpu/swr"
)

// Factory creates a scene bound to dev.
type Factory func(dev *swr.Device) Scene

// Manager holds named scene factories in registration order and the
// currently active scene.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	factories map[string]Factory
	order     []string

	// index of the current scene in order, -1 before the first switch
	index   int
	current Scene
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		factories: make(map[string]Factory),
		index:     -1,
	}
}

// Register adds a scene factory. Registering a name that already exists
// replaces the factory and keeps its position.
func (m *Manager) Register(name string, f Factory) {
	if _, ok := m.factories[name]; !ok {
		m.order = append(m.order, name)
	}
	m.factories[name] = f
}

// Names returns the registered scene names in registration order.
func (m *Manager) Names() []string {
	return slices.Clone(m.order)
}

// SetCurrent creates the named scene with dev and makes it current. It
// reports false if the name is unknown or the factory returns nil, leaving
// the previous scene current. The new scene is not initialized.
func (m *Manager) SetCurrent(name string, dev *swr.Device) bool {
	f, ok := m.factories[name]
	if !ok {
		return false
	}
	sc := f(dev)
	if sc == nil {
		return false
	}
	m.index = slices.Index(m.order, name)
	m.current = sc
	swr.Logger().Info("scene: switched", "name", name)
	return true
}

// Current returns the current scene, or nil.
func (m *Manager) Current() Scene {
	return m.current
}

// CurrentName returns the name of the current scene, or "".
func (m *Manager) CurrentName() string {
	if m.index < 0 || m.current == nil {
		return ""
	}
	return m.order[m.index]
}

// SwitchNext makes the scene after the current one current, wrapping
// around. With no current scene it selects the first.
func (m *Manager) SwitchNext(dev *swr.Device) bool {
	return m.switchBy(1, dev)
}

// SwitchPrev makes the scene before the current one current, wrapping
// around. With no current scene it selects the first.
func (m *Manager) SwitchPrev(dev *swr.Device) bool {
	return m.switchBy(-1, dev)
}

func (m *Manager) switchBy(step int, dev *swr.Device) bool {
	n := len(m.order)
	if n == 0 {
		return false
	}
	next := 0
	if m.index >= 0 {
		next = ((m.index+step)%n + n) % n
	}
	return m.SetCurrent(m.order[next], dev)
}

// RegisterBuiltin registers the Triangle and Cube scenes.
func RegisterBuiltin(m *Manager) {
	m.Register(TriangleName, func(dev *swr.Device) Scene { return NewTriangle(dev) })
	m.Register(CubeName, func(dev *swr.Device) Scene { return NewCube(dev) })
}
