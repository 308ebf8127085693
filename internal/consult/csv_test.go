package consult_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EvarJr/EBotikaApp/internal/consult"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

func exportFixture() *consult.Store {
	patient := models.User{ID: "p1", Name: "Juan, dela Cruz", Role: models.RolePatient}
	consultations := []models.Consultation{
		{
			ID: "c1", Patient: patient, Date: "2024-07-28",
			Symptoms: []string{"Fever", "Headache"},
			AISummary: &models.AISummary{
				DiagnosisSuggestion: "Possible Viral Infection",
				UrgencyLevel:        "Medium",
				Recommendation:      "Monitor symptoms.",
			},
			Status: models.ConsultationPendingDoctor,
		},
		{ID: "c2", Patient: patient, Date: "2024-07-27", Symptoms: []string{"Cough"},
			Status: models.ConsultationCompleted},
		{ID: "c3", Patient: patient, Date: "2024-07-26", Symptoms: []string{"Rash"},
			Status: models.ConsultationCompleted},
	}
	prescriptions := []models.Prescription{
		{ID: "rx1", ConsultationID: "c2", Patient: patient, Medicine: "Paracetamol 500mg",
			Dosage: "1 tablet every 6 hours", Status: models.PrescriptionApproved},
		{ID: "rx2", ConsultationID: "c1", Patient: patient, Status: models.PrescriptionPending},
		{ID: "rx3", ConsultationID: "c3", Patient: patient, Status: models.PrescriptionDenied},
	}
	return consult.NewStore(consultations, prescriptions)
}

func TestWriteConsultationsCSV(t *testing.T) {
	store := exportFixture()

	var buf bytes.Buffer
	require.NoError(t, store.WriteConsultationsCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per consultation")

	assert.Equal(t, "Consultation ID", rows[0][0])
	assert.Equal(t, "Dosage", rows[0][9])

	// c1 has a pending prescription: medicine column carries the marker.
	assert.Equal(t, []string{
		"c1", "Juan, dela Cruz", "2024-07-28", "Fever; Headache",
		"Possible Viral Infection", "Medium", "Monitor symptoms.",
		"Pending Doctor", "Pending Doctor Review", "",
	}, rows[1])

	// c2's approved prescription exports medicine and dosage.
	assert.Equal(t, "Paracetamol 500mg", rows[2][8])
	assert.Equal(t, "1 tablet every 6 hours", rows[2][9])

	// c3 was denied.
	assert.Equal(t, "Prescription Denied", rows[3][8])
	// No AI summary on c2/c3: empty cells, not a crash.
	assert.Equal(t, "", rows[2][4])
}

func TestStoreStatusTransitions(t *testing.T) {
	store := exportFixture()

	require.NoError(t, store.UpdateConsultationStatus("c1", models.ConsultationCompleted, "Agreed with AI."))
	got := store.Consultations()[0]
	assert.Equal(t, models.ConsultationCompleted, got.Status)
	assert.Equal(t, "Agreed with AI.", got.DoctorNotes)

	assert.ErrorIs(t, store.UpdateConsultationStatus("missing", models.ConsultationCompleted, ""),
		consult.ErrNotFound)

	remitted := models.PrescriptionRemitted
	require.NoError(t, store.UpdatePrescription("rx1", consult.PrescriptionUpdate{Status: &remitted}))
	p, ok := store.FindPrescription("rx1")
	require.True(t, ok)
	assert.Equal(t, models.PrescriptionRemitted, p.Status)
	assert.Equal(t, "Paracetamol 500mg", p.Medicine, "partial update must not clear other fields")
}

func TestStorePatientFilters(t *testing.T) {
	store := exportFixture()
	other := models.User{ID: "p2", Name: "Anna", Role: models.RolePatient}
	store.AddConsultation(models.Consultation{Patient: other, Date: "2024-08-01", Status: models.ConsultationAITriage})

	assert.Len(t, store.ConsultationsForPatient("p1"), 3)
	assert.Len(t, store.ConsultationsForPatient("p2"), 1)
	assert.Len(t, store.PrescriptionsForPatient("p2"), 0)
}

func TestPendingQueueOrdersByUrgency(t *testing.T) {
	patient := models.User{ID: "p1", Name: "Juan dela Cruz", Role: models.RolePatient}
	store := consult.NewStore([]models.Consultation{
		{ID: "low", Patient: patient, Status: models.ConsultationPendingDoctor,
			AISummary: &models.AISummary{UrgencyLevel: "Low"}},
		{ID: "done", Patient: patient, Status: models.ConsultationCompleted,
			AISummary: &models.AISummary{UrgencyLevel: "High"}},
		{ID: "high", Patient: patient, Status: models.ConsultationPendingDoctor,
			AISummary: &models.AISummary{UrgencyLevel: "High"}},
		{ID: "nosummary", Patient: patient, Status: models.ConsultationPendingDoctor},
		{ID: "medium", Patient: patient, Status: models.ConsultationPendingDoctor,
			AISummary: &models.AISummary{UrgencyLevel: "Medium"}},
	}, nil)

	queue := store.PendingQueue()
	ids := make([]string, len(queue))
	for i, c := range queue {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"high", "medium", "low", "nosummary"}, ids)
}
