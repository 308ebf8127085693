package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EvarJr/EBotikaApp/internal/chat"
	"github.com/EvarJr/EBotikaApp/internal/localization"
)

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SendPatientMessage sends a message from the authenticated patient to a
// doctor. A non-premium patient outside their access window gets 403 with
// the retry delay instead of a silent drop.
func (h *Handler) SendPatientMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": chat.ErrEmptyMessage.Error()})
		return
	}

	msg, err := h.Chat.SendPatientMessage(h.callerID(c), c.Param("doctorId"), content)
	if err != nil {
		var blocked *chat.BlockedError
		if errors.As(err, &blocked) {
			lang := localization.Code(c.Query("lang"))
			c.JSON(http.StatusForbidden, gin.H{
				"error":               "chat_locked",
				"retry_after_seconds": int(blocked.RetryAfter.Seconds()),
				"message": h.Localizer.Format(lang, "chat_locked_message", map[string]string{
					"retry": blocked.RetryAfter.Round(time.Second).String(),
				}),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// SendDoctorMessage sends a message from the authenticated doctor to a
// patient. Never gated.
func (h *Handler) SendDoctorMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": chat.ErrEmptyMessage.Error()})
		return
	}

	msg, err := h.Chat.SendDoctorMessage(h.callerID(c), c.Param("patientId"), content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ChatThread returns the caller's thread with the other participant,
// seeded translation keys resolved into the requested language.
func (h *Handler) ChatThread(c *gin.Context) {
	lang := localization.Code(c.Query("lang"))
	thread := h.Chat.History(h.callerID(c), c.Param("otherId"))
	for i := range thread {
		if strings.HasPrefix(thread[i].Content, "doctor_chat_mock") {
			thread[i].Content = h.Localizer.GetString(lang, thread[i].Content)
		}
	}
	c.JSON(http.StatusOK, thread)
}

// DoctorInbox returns the caller's conversations sorted by recency and
// grouped by barangay.
func (h *Handler) DoctorInbox(c *gin.Context) {
	doctorID := h.callerID(c)
	c.JSON(http.StatusOK, gin.H{
		"conversations": h.Inbox.ConversationsFor(doctorID),
		"grouped":       h.Inbox.GroupedByBarangay(doctorID),
	})
}

// MarkConversationRead flips the doctor-read flag on every unread patient
// message in the conversation. Safe to repeat; unknown ids are a no-op.
func (h *Handler) MarkConversationRead(c *gin.Context) {
	h.Chat.Threads.MarkReadByDoctor(c.Param("conversationId"))
	c.Status(http.StatusNoContent)
}

// SendPrivateMessage posts to a professional-to-professional conversation.
func (h *Handler) SendPrivateMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": chat.ErrEmptyMessage.Error()})
		return
	}
	msg := h.Private.Send(h.callerID(c), c.Param("recipientId"), content)
	c.JSON(http.StatusCreated, msg)
}

// PrivateThread returns the caller's private conversation with a colleague.
func (h *Handler) PrivateThread(c *gin.Context) {
	c.JSON(http.StatusOK, h.Private.History(h.callerID(c), c.Param("recipientId")))
}
