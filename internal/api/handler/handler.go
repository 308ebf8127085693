// Package handler wires the application services to the HTTP API.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/EvarJr/EBotikaApp/internal/chat"
	"github.com/EvarJr/EBotikaApp/internal/community"
	"github.com/EvarJr/EBotikaApp/internal/consult"
	"github.com/EvarJr/EBotikaApp/internal/directory"
	"github.com/EvarJr/EBotikaApp/internal/localization"
	"github.com/EvarJr/EBotikaApp/internal/qr"
	"github.com/EvarJr/EBotikaApp/internal/storage"
	"github.com/EvarJr/EBotikaApp/internal/triage"
)

// Handler carries every service the HTTP routes need.
type Handler struct {
	Users     *directory.Directory
	Residents *directory.ResidentStore
	Profiles  *directory.ProfileStore
	Chat      *chat.Service
	Inbox     *chat.Inbox
	Private   *chat.PrivateStore
	Forum     *community.Forum
	Consults  *consult.Store
	Triage    *triage.Responder
	Store     *storage.Service
	Localizer *localization.Localizer
	QR        *qr.Client
	JWTSecret []byte
}

// RegisterRoutes mounts the API. Everything except login/register is behind
// the (mock) token middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/login", h.Login)
	r.POST("/api/register", h.Register)
	r.POST("/api/guest", h.GuestSession)

	auth := r.Group("/api", h.RequireToken())
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.PATCH("/me", h.UpdateProfile)

		auth.GET("/doctors", h.ListDoctors)
		auth.PATCH("/doctors/:id/availability", h.SetDoctorAvailability)

		auth.POST("/chat/doctor/:doctorId", h.SendPatientMessage)
		auth.POST("/chat/patient/:patientId", h.SendDoctorMessage)
		auth.GET("/chat/thread/:otherId", h.ChatThread)
		auth.GET("/chat/inbox", h.DoctorInbox)
		auth.POST("/chat/inbox/:conversationId/read", h.MarkConversationRead)

		auth.POST("/private-chat/:recipientId", h.SendPrivateMessage)
		auth.GET("/private-chat/:recipientId", h.PrivateThread)

		auth.GET("/forum", h.ListForumPosts)
		auth.POST("/forum", h.AddForumPost)

		auth.GET("/consultations", h.ListConsultations)
		auth.POST("/consultations", h.AddConsultation)
		auth.PATCH("/consultations/:id/status", h.UpdateConsultationStatus)
		auth.GET("/consultations/export", h.ExportConsultationsCSV)

		auth.GET("/prescriptions", h.ListPrescriptions)
		auth.POST("/prescriptions", h.AddPrescription)
		auth.PATCH("/prescriptions/:id", h.UpdatePrescription)
		auth.GET("/prescriptions/:id/qr", h.PrescriptionQR)

		auth.GET("/admin/users", h.ListUsers)
		auth.POST("/admin/users", h.AddProfessional)
		auth.PATCH("/admin/users/:id/status", h.UpdateUserStatus)
		auth.POST("/admin/users/:id/premium", h.UpgradeToPremium)
		auth.POST("/admin/users/:id/reports", h.AddReport)
		auth.DELETE("/admin/users/:id", h.DeleteUser)

		auth.GET("/residents", h.ListResidents)
		auth.POST("/residents", h.AddResident)
		auth.DELETE("/residents/:id", h.DeleteResident)
	}

	r.GET("/ws/triage", h.TriageStream)
}
