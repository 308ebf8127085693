package directory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// ResidentStore keeps the barangay resident records maintained by BHWs.
type ResidentStore struct {
	mu      sync.RWMutex
	records []models.ResidentRecord
}

func NewResidentStore(seed []models.ResidentRecord) *ResidentStore {
	s := &ResidentStore{records: make([]models.ResidentRecord, len(seed))}
	copy(s.records, seed)
	return s
}

// All returns every resident record in insertion order.
func (s *ResidentStore) All() []models.ResidentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ResidentRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Add registers a new resident record and assigns it an id.
func (s *ResidentStore) Add(r models.ResidentRecord) models.ResidentRecord {
	r.ID = uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return r
}

// Delete removes a resident record.
func (s *ResidentStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
