package session

import (
	"fmt"
	"sync"

	"github.com/hupe1980/chainctx/core"
)

// InMemoryStore is a volatile TranscriptStore implementation storing
// transcripts in a process local map. It is safe for concurrent access. Each
// returned transcript is cloned to prevent external mutation of internal
// state.
type InMemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string]*core.Transcript
}

// NewInMemoryStore constructs an empty in-memory transcript store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{transcripts: make(map[string]*core.Transcript)}
}

// Get returns an existing transcript (clone) or creates a new one lazily.
func (s *InMemoryStore) Get(id string) (*core.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tr, ok := s.transcripts[id]; ok {
		return tr.Clone(), nil
	}
	return s.createLocked(id).Clone(), nil
}

// Create forces the creation (or overwriting) of a transcript with the given id.
func (s *InMemoryStore) Create(id string) (*core.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(id).Clone(), nil
}

// AppendResponse records a producer's output on an existing or newly created
// transcript and returns the stored response with its assigned chain index.
func (s *InMemoryStore) AppendResponse(id string, producerID, text string) (core.AgentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tr, ok := s.transcripts[id]
	if !ok {
		tr = s.createLocked(id)
	}
	return tr.Append(producerID, text), nil
}

// Delete removes a transcript; absent ids are an error so callers notice
// typos in run identifiers.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transcripts[id]; !ok {
		return fmt.Errorf("transcript %s not found", id)
	}
	delete(s.transcripts, id)
	return nil
}

// createLocked allocates and stores a new transcript; caller must already
// hold the write lock.
func (s *InMemoryStore) createLocked(id string) *core.Transcript {
	tr := core.NewTranscript(id)
	s.transcripts[id] = tr
	return tr
}
