package chat

import (
	"sync"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// Store holds the patient-doctor message threads, keyed by conversation id.
// Threads are append-only; a stored message never changes except for its
// read flags, which only ever flip from false to true.
type Store struct {
	mu      sync.RWMutex
	threads map[string][]models.PatientDoctorChatMessage
}

func NewStore() *Store {
	return &Store{threads: make(map[string][]models.PatientDoctorChatMessage)}
}

// Append adds a message to the end of a thread, creating the thread if it
// does not exist yet. Insertion order is chronological order.
func (s *Store) Append(conversationID string, msg models.PatientDoctorChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[conversationID] = append(s.threads[conversationID], msg)
}

// History returns a copy of the thread, oldest first. A missing thread
// yields an empty slice.
func (s *Store) History(conversationID string) []models.PatientDoctorChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	thread := s.threads[conversationID]
	out := make([]models.PatientDoctorChatMessage, len(thread))
	copy(out, thread)
	return out
}

// MarkReadByDoctor flips ReadByDoctor on every unread patient-authored
// message in the thread. Idempotent; a no-op for unknown conversation ids.
// Doctor-authored messages and patient read flags are never touched.
func (s *Store) MarkReadByDoctor(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	thread, ok := s.threads[conversationID]
	if !ok {
		return
	}
	for i := range thread {
		if thread[i].Sender == models.SenderPatient && !thread[i].ReadByDoctor {
			thread[i].ReadByDoctor = true
		}
	}
}

// MarkReadByPatient is the mirror operation for the patient side of a thread.
func (s *Store) MarkReadByPatient(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	thread, ok := s.threads[conversationID]
	if !ok {
		return
	}
	for i := range thread {
		if thread[i].Sender == models.SenderDoctor && !thread[i].ReadByPatient {
			thread[i].ReadByPatient = true
		}
	}
}

// Snapshot copies every thread, for persistence and for the inbox
// aggregator, which recomputes its view from scratch on every read.
func (s *Store) Snapshot() map[string][]models.PatientDoctorChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]models.PatientDoctorChatMessage, len(s.threads))
	for id, thread := range s.threads {
		cp := make([]models.PatientDoctorChatMessage, len(thread))
		copy(cp, thread)
		out[id] = cp
	}
	return out
}

// Restore replaces all threads with a previously taken snapshot.
func (s *Store) Restore(threads map[string][]models.PatientDoctorChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads = make(map[string][]models.PatientDoctorChatMessage, len(threads))
	for id, thread := range threads {
		cp := make([]models.PatientDoctorChatMessage, len(thread))
		copy(cp, thread)
		s.threads[id] = cp
	}
}
