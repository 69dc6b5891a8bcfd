// Package scene keeps the latest presentational snapshot of every panel so
// renderers can draw the canvas without touching the interaction core.
package scene

import (
	"context"
	"sync"

	"github.com/bnema/cardboard/internal/domain/entity"
)

// Scene records panel events and the canvas transform.
// It is safe for concurrent use.
type Scene struct {
	mu        sync.RWMutex
	order     []entity.PanelID
	panels    map[entity.PanelID]entity.PanelEvent
	transform entity.CanvasTransform
	version   uint64
	events    map[entity.PanelEventKind]int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		panels:    make(map[entity.PanelID]entity.PanelEvent),
		transform: entity.DefaultTransform(),
		events:    make(map[entity.PanelEventKind]int),
	}
}

// PanelChanged stores the snapshot carried by ev.
func (s *Scene) PanelChanged(_ context.Context, ev entity.PanelEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++
	s.events[ev.Kind]++

	if ev.Kind == entity.PanelDestroyed {
		delete(s.panels, ev.PanelID)
		for i, id := range s.order {
			if id == ev.PanelID {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	if _, ok := s.panels[ev.PanelID]; !ok {
		s.order = append(s.order, ev.PanelID)
	}
	s.panels[ev.PanelID] = ev
}

// TransformChanged stores the canvas transform.
func (s *Scene) TransformChanged(_ context.Context, t entity.CanvasTransform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version++
	s.transform = t
}

// SetTransform seeds the transform without counting a change.
func (s *Scene) SetTransform(t entity.CanvasTransform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transform = t
}

// Panels returns the visible panels bottom to top.
func (s *Scene) Panels() []entity.PanelEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.PanelEvent, 0, len(s.order))
	for _, id := range s.order {
		if ev := s.panels[id]; ev.Visible {
			out = append(out, ev)
		}
	}
	return out
}

// Panel returns the latest snapshot of one panel.
func (s *Scene) Panel(id entity.PanelID) (entity.PanelEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ev, ok := s.panels[id]
	return ev, ok
}

// Transform returns the latest canvas transform.
func (s *Scene) Transform() entity.CanvasTransform {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transform
}

// Version increases on every recorded change.
func (s *Scene) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// EventCount returns how many events of kind were recorded.
func (s *Scene) EventCount(kind entity.PanelEventKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.events[kind]
}
