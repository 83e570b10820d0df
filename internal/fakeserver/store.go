package fakeserver

import (
	"errors"
	"sync"

	"github.com/garrettladley/dino/internal/client/character"
)

var ErrNotFound = errors.New("patient not found")

// Store holds one character status per patient.
type Store struct {
	mu       sync.RWMutex
	statuses map[string]character.Status
}

func NewStore() *Store {
	return &Store{statuses: make(map[string]character.Status)}
}

// NewSeededStore returns a store with a demo patient so the TUI has
// something to show out of the box.
func NewSeededStore(patientID string) *Store {
	s := NewStore()
	s.Put(patientID, character.Status{XP: 30, Energia: 15, Felicidade: 20, Alimentacao: 10, Forca: 5})
	return s
}

func (s *Store) Put(patientID string, status character.Status) {
	s.mu.Lock()
	s.statuses[patientID] = status
	s.mu.Unlock()
}

func (s *Store) Get(patientID string) (character.Status, error) {
	s.mu.RLock()
	status, ok := s.statuses[patientID]
	s.mu.RUnlock()
	if !ok {
		return character.Status{}, ErrNotFound
	}
	return status, nil
}

// Bump advances every known character one step, wrapping each attribute at
// its normalization ceiling, so repeated fetches show movement.
func (s *Store) Bump() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range s.statuses {
		st.XP = wrap(st.XP+5, 100)
		st.Energia = wrap(st.Energia+1, 20)
		st.Felicidade = wrap(st.Felicidade+1, 20)
		st.Alimentacao = wrap(st.Alimentacao+1, 20)
		st.Forca = wrap(st.Forca+1, 20)
		s.statuses[id] = st
	}
}

func wrap(v, ceiling float64) float64 {
	if v > ceiling {
		return v - ceiling
	}
	return v
}
