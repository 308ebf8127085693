package models

// Role identifies what part of the application a user belongs to.
type Role string

const (
	RolePatient         Role = "patient"
	RoleGuest           Role = "guest"
	RoleDoctor          Role = "doctor"
	RolePharmacy        Role = "pharmacy"
	RoleAdmin           Role = "admin"
	RoleBHW             Role = "bhw"
	RoleUnauthenticated Role = "unauthenticated"
)

// UserStatus is the moderation state of an account.
type UserStatus string

const (
	StatusActive UserStatus = "active"
	StatusBanned UserStatus = "banned"
)

// Report is a moderation report filed by a doctor against a patient.
type Report struct {
	DoctorID   string `json:"doctor_id"`
	DoctorName string `json:"doctor_name"`
	Reason     string `json:"reason"`
	Date       string `json:"date"`
}

// User represents any identity known to the application: patients, guests,
// and the professional roles (doctor, pharmacy, admin, BHW).
type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          Role       `json:"role"`
	Password      string     `json:"-"`
	AvatarURL     string     `json:"avatar_url,omitempty"`
	ContactNumber string     `json:"contact_number,omitempty"`
	// Address is free text; the doctor inbox derives a barangay token from it.
	Address    string     `json:"address,omitempty"`
	ValidIDURL string     `json:"valid_id_url,omitempty"`
	IsOnline   bool       `json:"is_online"`
	Status     UserStatus `json:"status"`
	Reports    []Report   `json:"reports,omitempty"`
	// IsPremium exempts a patient from the chat access window.
	IsPremium bool `json:"is_premium"`
}

// ResidentRecord is a barangay resident entry maintained by a BHW.
type ResidentRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
	ValidIDURL    string `json:"valid_id_url,omitempty"`
}

// DoctorProfile is the public listing of a doctor shown to patients.
type DoctorProfile struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	// Specialty is a translation key (e.g. "specialty_gp"), resolved per language.
	Specialty    string `json:"specialty"`
	AvatarURL    string `json:"avatar_url"`
	Availability string `json:"availability"` // "Available" or "On Leave"
}
