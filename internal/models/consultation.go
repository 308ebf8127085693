package models

// ConsultationStatus tracks where a consultation sits in the triage flow.
type ConsultationStatus string

const (
	ConsultationAITriage      ConsultationStatus = "AI Triage"
	ConsultationPendingDoctor ConsultationStatus = "Pending Doctor"
	ConsultationCompleted     ConsultationStatus = "Completed"
)

// Consultation is a symptom-check session, optionally escalated to a doctor.
type Consultation struct {
	ID          string             `json:"id"`
	Patient     User               `json:"patient"`
	Date        string             `json:"date"`
	Symptoms    []string           `json:"symptoms"`
	AISummary   *AISummary         `json:"ai_summary,omitempty"`
	DoctorNotes string             `json:"doctor_notes,omitempty"`
	Status      ConsultationStatus `json:"status"`
	ChatHistory []TriageMessage    `json:"chat_history,omitempty"`
}

// PrescriptionStatus tracks a prescription from doctor review to pharmacy
// remittance.
type PrescriptionStatus string

const (
	PrescriptionPending  PrescriptionStatus = "Pending"
	PrescriptionApproved PrescriptionStatus = "Approved"
	PrescriptionRemitted PrescriptionStatus = "Remitted"
	PrescriptionDenied   PrescriptionStatus = "Denied"
)

// Prescription is issued (or denied) by a doctor after reviewing a
// consultation, and later remitted by a pharmacy against a QR voucher.
type Prescription struct {
	ID             string             `json:"id"`
	ConsultationID string             `json:"consultation_id"`
	Patient        User               `json:"patient"`
	Medicine       string             `json:"medicine,omitempty"`
	Dosage         string             `json:"dosage,omitempty"`
	AISummary      *AISummary         `json:"ai_summary,omitempty"`
	DateIssued     string             `json:"date_issued"`
	DoctorName     string             `json:"doctor_name"`
	DoctorNotes    string             `json:"doctor_notes,omitempty"`
	Status         PrescriptionStatus `json:"status"`
}

// Medicine is an entry of the pharmacy formulary.
type Medicine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ForumPost is an announcement on the shared professionals board.
type ForumPost struct {
	ID        string `json:"id"`
	Author    User   `json:"author"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}
