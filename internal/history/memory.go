package history

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/abhishek622/careercraft/pkg/model"
)

// MemoryStore keeps the serialized list in process memory under a slot key.
type MemoryStore struct {
	mu    sync.Mutex
	key   string
	slots map[string][]byte
}

func NewMemoryStore(key string) *MemoryStore {
	return &MemoryStore{key: key, slots: make(map[string][]byte)}
}

func (s *MemoryStore) Prepend(_ context.Context, rec model.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(prepend(decodeList(s.slots[s.key]), rec))
	if err != nil {
		return err
	}
	s.slots[s.key] = b
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]model.HistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeList(s.slots[s.key]), nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, s.key)
	return nil
}
