package consult

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// ExportFilename is the download name the RHU dashboard uses.
const ExportFilename = "ebotika_consultations_export.csv"

var exportHeader = []string{
	"Consultation ID", "Patient Name", "Date", "Symptoms",
	"AI Diagnosis", "Urgency", "Recommendation", "Status",
	"Medicine", "Dosage",
}

// WriteConsultationsCSV writes the RHU consultation export. Each row joins
// the consultation with its prescription outcome, when one exists.
func (s *Store) WriteConsultationsCSV(w io.Writer) error {
	consultations := s.Consultations()
	prescriptions := s.Prescriptions()

	byConsultation := make(map[string]models.Prescription, len(prescriptions))
	for _, p := range prescriptions {
		byConsultation[p.ConsultationID] = p
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, c := range consultations {
		var diagnosis, urgency, recommendation string
		if c.AISummary != nil {
			diagnosis = c.AISummary.DiagnosisSuggestion
			urgency = c.AISummary.UrgencyLevel
			recommendation = c.AISummary.Recommendation
		}

		var medicine, dosage string
		if p, ok := byConsultation[c.ID]; ok {
			switch p.Status {
			case models.PrescriptionApproved, models.PrescriptionRemitted:
				medicine, dosage = p.Medicine, p.Dosage
			case models.PrescriptionPending:
				medicine = "Pending Doctor Review"
			case models.PrescriptionDenied:
				medicine = "Prescription Denied"
			}
		}

		row := []string{
			c.ID,
			c.Patient.Name,
			c.Date,
			strings.Join(c.Symptoms, "; "),
			diagnosis,
			urgency,
			recommendation,
			string(c.Status),
			medicine,
			dosage,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
