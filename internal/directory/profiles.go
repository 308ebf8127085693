package directory

import (
	"sync"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// ProfileStore holds the public doctor listings shown to patients.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles []models.DoctorProfile
}

func NewProfileStore(seed []models.DoctorProfile) *ProfileStore {
	s := &ProfileStore{profiles: make([]models.DoctorProfile, len(seed))}
	copy(s.profiles, seed)
	return s
}

// All returns every doctor profile.
func (s *ProfileStore) All() []models.DoctorProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DoctorProfile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// FindByUserID returns the profile backed by the given doctor account.
func (s *ProfileStore) FindByUserID(userID string) (models.DoctorProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.UserID == userID {
			return p, true
		}
	}
	return models.DoctorProfile{}, false
}

// SetAvailability updates a doctor's listed availability
// ("Available" or "On Leave").
func (s *ProfileStore) SetAvailability(profileID, availability string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.profiles {
		if s.profiles[i].ID == profileID {
			s.profiles[i].Availability = availability
			return nil
		}
	}
	return ErrNotFound
}
