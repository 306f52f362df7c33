package core

import (
	"sync"
	"time"
)

// Transcript is the ordered response history of one chain run. It is safe
// for concurrent access.
//
// Contract:
//   - Append assigns the next chain index and updates the Updated timestamp
//   - History returns a defensive copy to avoid external mutation
//   - Clone performs a deep copy for safe divergence.
type Transcript struct {
	ID        string            `json:"id"`
	Responses []AgentResponse   `json:"responses"`
	Created   time.Time         `json:"created"`
	Updated   time.Time         `json:"updated"`
	Metadata  map[string]string `json:"metadata"`
	mu        sync.RWMutex
}

// NewTranscript creates an empty transcript with the given run ID.
func NewTranscript(id string) *Transcript {
	now := time.Now()
	return &Transcript{ID: id, Responses: []AgentResponse{}, Created: now, Updated: now, Metadata: map[string]string{}}
}

// Append records a producer's output as the next response in chain order and
// returns the stored response with its assigned index.
func (t *Transcript) Append(producerID, text string) AgentResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	resp := AgentResponse{Index: len(t.Responses), ProducerID: producerID, Text: text}
	t.Responses = append(t.Responses, resp)
	t.Updated = time.Now()
	return resp
}

// History returns a defensive copy of the ordered response list.
func (t *Transcript) History() []AgentResponse {
	t.mu.RLock()
	defer t.mu.RUnlock()
	responses := make([]AgentResponse, len(t.Responses))
	copy(responses, t.Responses)
	return responses
}

// Len returns the number of recorded responses.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.Responses)
}

// Clone returns a deep copy of the transcript safe for independent mutation.
func (t *Transcript) Clone() *Transcript {
	t.mu.RLock()
	defer t.mu.RUnlock()
	clone := &Transcript{ID: t.ID, Responses: make([]AgentResponse, len(t.Responses)), Created: t.Created, Updated: t.Updated, Metadata: make(map[string]string, len(t.Metadata))}
	copy(clone.Responses, t.Responses)
	for k, v := range t.Metadata {
		clone.Metadata[k] = v
	}
	return clone
}

// TranscriptStore persists transcripts across chain invocations.
type TranscriptStore interface {
	Create(id string) (*Transcript, error)
	Get(id string) (*Transcript, error)
	AppendResponse(id string, producerID, text string) (AgentResponse, error)
}
