package chat

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

var (
	// ErrUnknownUser is returned when a sender or recipient id cannot be
	// resolved in the directory.
	ErrUnknownUser = errors.New("chat: unknown user")
	// ErrWrongRole is returned when the sender's role does not match the
	// operation (e.g. a pharmacist calling the patient send path).
	ErrWrongRole = errors.New("chat: sender role not allowed for this operation")
	// ErrEmptyMessage is returned for whitespace-only or empty content.
	ErrEmptyMessage = errors.New("chat: empty message content")
)

// BlockedError reports a send rejected by the access gate. It carries how
// long the patient has to wait for a fresh window, so the caller can show
// it instead of silently dropping the message.
type BlockedError struct {
	RetryAfter time.Duration
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("chat: access window closed, new window in %s", e.RetryAfter)
}

// Service ties the conversation resolver, the access gate and the thread
// store behind the send/read operations the handlers call.
type Service struct {
	Users   UserFinder
	Gate    *Gate
	Threads *Store

	now func() time.Time
}

func NewService(users UserFinder, gate *Gate, threads *Store) *Service {
	return &Service{Users: users, Gate: gate, Threads: threads, now: time.Now}
}

// SendPatientMessage appends a patient-originated message to the thread
// with the given doctor. Non-premium patients go through the access gate;
// a closed window returns *BlockedError and appends nothing.
func (s *Service) SendPatientMessage(patientID, doctorID, content string) (models.PatientDoctorChatMessage, error) {
	patient, ok := s.Users.FindByID(patientID)
	if !ok {
		return models.PatientDoctorChatMessage{}, ErrUnknownUser
	}
	if patient.Role != models.RolePatient {
		return models.PatientDoctorChatMessage{}, ErrWrongRole
	}

	conversationID := Resolve(patientID, doctorID)

	if !patient.IsPremium {
		if d := s.Gate.Evaluate(conversationID); !d.Allowed {
			return models.PatientDoctorChatMessage{}, &BlockedError{RetryAfter: d.RetryAfter}
		}
	}

	msg := models.PatientDoctorChatMessage{
		ID:            uuid.New().String(),
		Sender:        models.SenderPatient,
		Content:       content,
		Timestamp:     s.now(),
		ReadByPatient: true,
		ReadByDoctor:  false,
	}
	s.Threads.Append(conversationID, msg)
	return msg, nil
}

// SendDoctorMessage appends a doctor-originated message. Doctor sends are
// never gated.
func (s *Service) SendDoctorMessage(doctorID, patientID, content string) (models.PatientDoctorChatMessage, error) {
	doctor, ok := s.Users.FindByID(doctorID)
	if !ok {
		return models.PatientDoctorChatMessage{}, ErrUnknownUser
	}
	if doctor.Role != models.RoleDoctor {
		return models.PatientDoctorChatMessage{}, ErrWrongRole
	}

	conversationID := Resolve(doctorID, patientID)
	msg := models.PatientDoctorChatMessage{
		ID:            uuid.New().String(),
		Sender:        models.SenderDoctor,
		Content:       content,
		Timestamp:     s.now(),
		ReadByPatient: false,
		ReadByDoctor:  true,
	}
	s.Threads.Append(conversationID, msg)
	return msg, nil
}

// History returns the thread between the two participants, oldest first.
func (s *Service) History(idA, idB string) []models.PatientDoctorChatMessage {
	return s.Threads.History(Resolve(idA, idB))
}
