// Package consult holds consultations and prescriptions: created by the
// triage flow, reviewed by doctors, remitted by pharmacies, exported by the
// RHU dashboard.
package consult

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/EvarJr/EBotikaApp/internal/config"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

var ErrNotFound = errors.New("consult: record not found")

// Store keeps consultations and prescriptions in memory, newest appended
// last.
type Store struct {
	mu            sync.RWMutex
	consultations []models.Consultation
	prescriptions []models.Prescription
}

func NewStore(consultations []models.Consultation, prescriptions []models.Prescription) *Store {
	s := &Store{
		consultations: make([]models.Consultation, len(consultations)),
		prescriptions: make([]models.Prescription, len(prescriptions)),
	}
	copy(s.consultations, consultations)
	copy(s.prescriptions, prescriptions)
	return s
}

// Consultations returns all consultations in insertion order.
func (s *Store) Consultations() []models.Consultation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Consultation, len(s.consultations))
	copy(out, s.consultations)
	return out
}

// ConsultationsForPatient filters consultations by patient id.
func (s *Store) ConsultationsForPatient(patientID string) []models.Consultation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Consultation
	for _, c := range s.consultations {
		if c.Patient.ID == patientID {
			out = append(out, c)
		}
	}
	return out
}

// PendingQueue returns the consultations awaiting doctor review, most
// urgent first. Ties keep insertion order.
func (s *Store) PendingQueue() []models.Consultation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Consultation
	for _, c := range s.consultations {
		if c.Status == models.ConsultationPendingDoctor {
			out = append(out, c)
		}
	}
	rank := func(c models.Consultation) int {
		if c.AISummary == nil {
			return 0
		}
		return config.UrgencyRank[c.AISummary.UrgencyLevel]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i]) > rank(out[j])
	})
	return out
}

// AddConsultation stores a completed triage session and assigns an id if
// one is missing.
func (s *Store) AddConsultation(c models.Consultation) models.Consultation {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consultations = append(s.consultations, c)
	return c
}

// UpdateConsultationStatus moves a consultation along the triage flow and
// optionally records doctor notes.
func (s *Store) UpdateConsultationStatus(id string, status models.ConsultationStatus, doctorNotes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.consultations {
		if s.consultations[i].ID == id {
			s.consultations[i].Status = status
			if doctorNotes != "" {
				s.consultations[i].DoctorNotes = doctorNotes
			}
			return nil
		}
	}
	return ErrNotFound
}

// Prescriptions returns all prescriptions in insertion order.
func (s *Store) Prescriptions() []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Prescription, len(s.prescriptions))
	copy(out, s.prescriptions)
	return out
}

// PrescriptionsForPatient filters prescriptions by patient id.
func (s *Store) PrescriptionsForPatient(patientID string) []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Prescription
	for _, p := range s.prescriptions {
		if p.Patient.ID == patientID {
			out = append(out, p)
		}
	}
	return out
}

// FindPrescription looks a prescription up by id, as the pharmacy scan does.
func (s *Store) FindPrescription(id string) (models.Prescription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.prescriptions {
		if p.ID == id {
			return p, true
		}
	}
	return models.Prescription{}, false
}

// AddPrescription stores a new prescription and assigns an id if missing.
func (s *Store) AddPrescription(p models.Prescription) models.Prescription {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prescriptions = append(s.prescriptions, p)
	return p
}

// PrescriptionUpdate carries the fields a doctor or pharmacist may change
// after issuance. Nil fields are left untouched.
type PrescriptionUpdate struct {
	Medicine    *string
	Dosage      *string
	DoctorName  *string
	DoctorNotes *string
	Status      *models.PrescriptionStatus
}

// UpdatePrescription applies a partial update.
func (s *Store) UpdatePrescription(id string, upd PrescriptionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.prescriptions {
		if s.prescriptions[i].ID != id {
			continue
		}
		p := &s.prescriptions[i]
		if upd.Medicine != nil {
			p.Medicine = *upd.Medicine
		}
		if upd.Dosage != nil {
			p.Dosage = *upd.Dosage
		}
		if upd.DoctorName != nil {
			p.DoctorName = *upd.DoctorName
		}
		if upd.DoctorNotes != nil {
			p.DoctorNotes = *upd.DoctorNotes
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		return nil
	}
	return ErrNotFound
}
