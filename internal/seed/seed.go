// Package seed provides the demo dataset the application boots with.
// There is no real backend; these records stand in for one.
package seed

import (
	"time"

	"github.com/EvarJr/EBotikaApp/internal/chat"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

// Users returns the built-in demo accounts. All of them log in with the
// password "password".
func Users() []models.User {
	return []models.User{
		{ID: "p1", Name: "Juan dela Cruz", Email: "patient@ebotika.ph", Password: "password", Role: models.RolePatient,
			ContactNumber: "09123456789", Address: "123 Rizal Ave, Brgy. Poblacion, Manila",
			AvatarURL: "https://picsum.photos/id/237/200/200", Status: models.StatusActive},
		{ID: "p2", Name: "Anna Reyes", Email: "anna@ebotika.ph", Password: "password", Role: models.RolePatient,
			ContactNumber: "09987654321", Address: "456 Bonifacio St, Brgy. Estancia, Cebu",
			AvatarURL: "https://picsum.photos/id/338/200/200", Status: models.StatusBanned,
			Reports: []models.Report{{
				DoctorID:   "d1",
				DoctorName: "Dr. Maria Dela Cruz",
				Reason:     "Abusive language during chat consultation.",
				Date:       "2024-07-28",
			}}},
		{ID: "p3", Name: "Pedro Penduko", Email: "pedro@ebotika.ph", Password: "password", Role: models.RolePatient,
			ContactNumber: "09178765432", Address: "789 Mabini Blvd, Davao",
			AvatarURL: "https://picsum.photos/id/433/200/200", Status: models.StatusActive},
		{ID: "d1", Name: "Dr. Maria Dela Cruz", Email: "doctor@ebotika.ph", Password: "password", Role: models.RoleDoctor,
			AvatarURL: "https://picsum.photos/id/1027/200/200", IsOnline: true, Status: models.StatusActive},
		{ID: "d2", Name: "Dr. Jose Rizal", Email: "doctor2@ebotika.ph", Password: "password", Role: models.RoleDoctor,
			AvatarURL: "https://picsum.photos/id/1005/200/200", Status: models.StatusActive},
		{ID: "d3", Name: "Dr. Gabriela Silang", Email: "doctor3@ebotika.ph", Password: "password", Role: models.RoleDoctor,
			AvatarURL: "https://picsum.photos/id/1011/200/200", IsOnline: true, Status: models.StatusActive},
		{ID: "ph1", Name: "Botika Pharmacist", Email: "pharmacy@ebotika.ph", Password: "password", Role: models.RolePharmacy,
			AvatarURL: "https://picsum.photos/id/10/200/200", Status: models.StatusActive},
		{ID: "a1", Name: "RHU Admin", Email: "admin@ebotika.ph", Password: "password", Role: models.RoleAdmin,
			AvatarURL: "https://picsum.photos/id/20/200/200", IsOnline: true, Status: models.StatusActive},
		{ID: "bhw1", Name: "BHW Maria Clara", Email: "bhw@ebotika.ph", Password: "password", Role: models.RoleBHW,
			AvatarURL: "https://picsum.photos/id/30/200/200", IsOnline: true, Status: models.StatusActive},
	}
}

func Residents() []models.ResidentRecord {
	return []models.ResidentRecord{
		{ID: "res-1", Name: "Juan dela Cruz", ContactNumber: "09123456789", Address: "123 Rizal Ave, Brgy. Poblacion, Manila"},
		{ID: "res-2", Name: "Anna Reyes", ContactNumber: "09987654321", Address: "456 Bonifacio St, Brgy. Estancia, Cebu"},
		{ID: "res-3", Name: "Pedro Penduko", ContactNumber: "09178765432", Address: "789 Mabini Blvd, Davao"},
	}
}

func DoctorProfiles() []models.DoctorProfile {
	return []models.DoctorProfile{
		{ID: "1", UserID: "d1", Name: "Dr. Maria Dela Cruz", Specialty: "specialty_gp",
			AvatarURL: "https://picsum.photos/id/1027/200/200", Availability: "Available"},
		{ID: "2", UserID: "d2", Name: "Dr. Jose Rizal", Specialty: "specialty_pedia",
			AvatarURL: "https://picsum.photos/id/1005/200/200", Availability: "Available"},
		{ID: "3", UserID: "d3", Name: "Dr. Gabriela Silang", Specialty: "specialty_cardio",
			AvatarURL: "https://picsum.photos/id/1011/200/200", Availability: "On Leave"},
	}
}

func Medicines() []models.Medicine {
	return []models.Medicine{
		{ID: "med1", Name: "Paracetamol 500mg Tablet"},
		{ID: "med2", Name: "Amoxicillin 250mg Capsule"},
		{ID: "med3", Name: "Salbutamol Nebule"},
		{ID: "med4", Name: "Loratadine 10mg Tablet"},
		{ID: "med5", Name: "Mefenamic Acid 500mg"},
		{ID: "med6", Name: "Carbocisteine 500mg"},
	}
}

func Consultations() []models.Consultation {
	users := Users()
	patient1, patient2 := users[0], users[1]
	return []models.Consultation{
		{
			ID:       "c1",
			Patient:  patient1,
			Date:     "2024-07-28",
			Symptoms: []string{"Fever", "Headache"},
			AISummary: &models.AISummary{
				DiagnosisSuggestion: "Possible Viral Infection",
				UrgencyLevel:        "Medium",
				Recommendation:      "Monitor symptoms and consult a doctor if they worsen.",
			},
			Status: models.ConsultationPendingDoctor,
			ChatHistory: []models.TriageMessage{
				{ID: "ch1", Sender: "user", Text: "I have a fever and a headache.", Timestamp: mustTime("2024-07-28T10:00:00Z")},
				{ID: "ch2", Sender: "ai", Text: "Okay, I understand. Can you tell me more about the symptoms? For example, when did they start?", Timestamp: mustTime("2024-07-28T10:00:30Z")},
				{ID: "ch3", Sender: "user", Text: "They started this morning. I also feel a bit weak.", Timestamp: mustTime("2024-07-28T10:01:00Z")},
				{ID: "ch4", Sender: "ai", Text: "Thank you for that information. Are you experiencing any other symptoms, like a fever or body aches?", Timestamp: mustTime("2024-07-28T10:01:30Z")},
			},
		},
		{
			ID:       "c2",
			Patient:  patient2,
			Date:     "2024-07-27",
			Symptoms: []string{"Cough"},
			AISummary: &models.AISummary{
				DiagnosisSuggestion: "Common Cold",
				UrgencyLevel:        "Low",
				Recommendation:      "Rest and stay hydrated.",
			},
			Status:      models.ConsultationCompleted,
			DoctorNotes: "Agreed with AI. Prescribed paracetamol.",
		},
	}
}

func Prescriptions() []models.Prescription {
	users := Users()
	patient1, patient2 := users[0], users[1]
	return []models.Prescription{
		{ID: "rx1", ConsultationID: "c-approved", Patient: patient1, Medicine: "Paracetamol 500mg",
			Dosage: "1 tablet every 6 hours", DateIssued: "2024-07-28", DoctorName: "Dr. Maria Dela Cruz",
			Status: models.PrescriptionApproved},
		{ID: "rx2", ConsultationID: "c2", Patient: patient2, Medicine: "Amoxicillin 250mg",
			Dosage: "1 capsule every 8 hours for 7 days", DateIssued: "2024-07-25", DoctorName: "Dr. Jose Rizal",
			Status: models.PrescriptionRemitted},
		{ID: "rx3", ConsultationID: "c1", Patient: patient1, DateIssued: "2024-07-29", DoctorName: "Pending Review",
			Status: models.PrescriptionPending, AISummary: &models.AISummary{
				DiagnosisSuggestion: "Possible Viral Infection",
				UrgencyLevel:        "Medium",
				Recommendation:      "Monitor symptoms and consult a doctor if they worsen.",
			}},
		{ID: "rx4", ConsultationID: "c-denied", Patient: patient1, DateIssued: "2024-07-30", DoctorName: "Dr. Maria Dela Cruz",
			Status: models.PrescriptionDenied, AISummary: &models.AISummary{
				DiagnosisSuggestion: "Allergic Rhinitis",
				UrgencyLevel:        "Low",
				Recommendation:      "Take antihistamines.",
			},
			DoctorNotes: "Inappropriate suggestion. Patient needs prescription-strength medication."},
	}
}

func ForumPosts() []models.ForumPost {
	users := Users()
	admin, doctor, pharmacist := users[7], users[3], users[6]
	return []models.ForumPost{
		{ID: "fp1", Author: admin, Timestamp: "2024-08-01 09:15 AM",
			Content: "Good morning everyone. Just a reminder about the upcoming health seminar on Saturday. Please encourage your patients to attend."},
		{ID: "fp2", Author: doctor, Timestamp: "2024-08-01 09:30 AM",
			Content: "Noted. We are seeing an increase in flu-like symptoms this week. Has anyone else observed this?"},
		{ID: "fp3", Author: pharmacist, Timestamp: "2024-08-01 09:35 AM",
			Content: "Yes, we've had a run on paracetamol and cough syrup. We have just restocked."},
	}
}

// PatientDoctorThreads returns the seeded demo chats. Message content uses
// translation keys so it renders in the viewer's language.
func PatientDoctorThreads() map[string][]models.PatientDoctorChatMessage {
	return map[string][]models.PatientDoctorChatMessage{
		chat.Resolve("p1", "d1"): {
			{ID: "pdc1", Sender: models.SenderPatient, Content: "doctor_chat_mock_patient_1",
				Timestamp: mustTime("2024-08-03T11:00:00Z"), ReadByPatient: true},
			{ID: "pdc2", Sender: models.SenderDoctor, Content: "doctor_chat_mock_doctor_1",
				Timestamp: mustTime("2024-08-03T11:01:00Z"), ReadByDoctor: true},
		},
		chat.Resolve("p1", "d2"): {
			{ID: "pdc3", Sender: models.SenderPatient, Content: "doctor_chat_mock_patient_2",
				Timestamp: mustTime("2024-08-02T17:30:00Z"), ReadByPatient: true},
		},
	}
}

// PrivateThreads returns the seeded professional-to-professional chats.
func PrivateThreads() map[string][]models.PrivateChatMessage {
	return map[string][]models.PrivateChatMessage{
		chat.Resolve("d1", "ph1"): {
			{ID: "pm1", SenderID: "d1", RecipientID: "ph1",
				Content: "Hi, just checking if you have stock of Amoxicillin 500mg.", Timestamp: mustTime("2024-08-02T10:00:00Z")},
			{ID: "pm2", SenderID: "ph1", RecipientID: "d1",
				Content: "Yes, we have plenty. Is this for a new prescription?", Timestamp: mustTime("2024-08-02T10:01:00Z")},
		},
		chat.Resolve("a1", "d1"): {
			{ID: "pm3", SenderID: "a1", RecipientID: "d1",
				Content: "Dr. Dela Cruz, can you please send over the weekly report by EOD?", Timestamp: mustTime("2024-08-02T11:30:00Z")},
		},
	}
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
