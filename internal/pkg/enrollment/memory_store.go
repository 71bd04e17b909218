package enrollment

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/securebank/securebank-api/internal/pkg/catalog"
)

// MemoryStore is the transient Store used when the database is unavailable.
// It is constructed once at startup and injected into the service; all
// access goes through the mutex since requests hit it concurrently.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	order   []string
}

// NewMemoryStore creates an empty transient enrollment store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// FindPlan resolves plans from the static catalog; the transient store
// exists precisely for the case where the database cannot be asked.
func (s *MemoryStore) FindPlan(id uint) (*catalog.Plan, error) {
	plan, ok := catalog.FallbackPlan(id)
	if !ok {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *MemoryStore) InsertEnrollment(rec *Record) error {
	rec.EnrollmentID = uuid.NewString()
	rec.EnrollmentDate = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.EnrollmentID] = *rec
	s.order = append(s.order, rec.EnrollmentID)
	return nil
}

func (s *MemoryStore) FindEnrollment(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) ListByEmail(email string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []Record{}
	for _, id := range s.order {
		if rec := s.records[id]; rec.Email == email {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

func (s *MemoryStore) ListAll() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		records = append(records, s.records[id])
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
