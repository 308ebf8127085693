package models

import "time"

// ChatSender tags who authored a patient-doctor chat message.
type ChatSender string

const (
	SenderPatient ChatSender = "patient"
	SenderDoctor  ChatSender = "doctor"
)

// PatientDoctorChatMessage is one entry in a patient-doctor thread.
// Messages are append-only: after creation only the two read flags may
// change, and only from false to true.
type PatientDoctorChatMessage struct {
	ID     string     `json:"id"`
	Sender ChatSender `json:"sender"`
	// Content is plain text, or a translation key for seeded demo threads.
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	ReadByPatient bool      `json:"read_by_patient"`
	ReadByDoctor  bool      `json:"read_by_doctor"`
}

// PrivateChatMessage is a message between two professionals (doctor,
// pharmacy, admin, BHW). Private chats are not subject to the access window.
type PrivateChatMessage struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

// TriageMessage is one turn of the AI symptom-check conversation.
type TriageMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"` // "user" or "ai"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// AISummary is the structured result the triage assistant emits at the end
// of a symptom-check conversation.
type AISummary struct {
	DiagnosisSuggestion string `json:"diagnosis_suggestion"`
	UrgencyLevel        string `json:"urgency_level"` // Low, Medium, High, Critical
	Recommendation      string `json:"recommendation"`
}
