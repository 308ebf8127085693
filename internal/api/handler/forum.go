package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EvarJr/EBotikaApp/internal/localization"
	"github.com/EvarJr/EBotikaApp/internal/models"
)

// ListForumPosts returns the professionals board, oldest first.
func (h *Handler) ListForumPosts(c *gin.Context) {
	if !h.requireRole(c, models.RoleDoctor, models.RolePharmacy, models.RoleAdmin, models.RoleBHW) {
		return
	}
	c.JSON(http.StatusOK, h.Forum.Posts())
}

type forumPostRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddForumPost publishes an announcement by the caller.
func (h *Handler) AddForumPost(c *gin.Context) {
	if !h.requireRole(c, models.RoleDoctor, models.RolePharmacy, models.RoleAdmin, models.RoleBHW) {
		return
	}
	var req forumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	author, _ := h.Users.FindByID(h.callerID(c))
	c.JSON(http.StatusCreated, h.Forum.AddPost(author, req.Content))
}

// ListDoctors returns the doctor profiles with specialties localized.
func (h *Handler) ListDoctors(c *gin.Context) {
	lang := localization.Code(c.Query("lang"))
	profiles := h.Profiles.All()
	out := make([]gin.H, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, gin.H{
			"id":           p.ID,
			"user_id":      p.UserID,
			"name":         p.Name,
			"specialty":    h.Localizer.GetString(lang, p.Specialty),
			"avatar_url":   p.AvatarURL,
			"availability": p.Availability,
		})
	}
	c.JSON(http.StatusOK, out)
}

type availabilityRequest struct {
	Availability string `json:"availability" binding:"required"`
}

// SetDoctorAvailability updates the caller's listed availability.
func (h *Handler) SetDoctorAvailability(c *gin.Context) {
	if !h.requireRole(c, models.RoleDoctor, models.RoleAdmin) {
		return
	}
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	availability := strings.TrimSpace(req.Availability)
	if availability != "Available" && availability != "On Leave" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "availability must be Available or On Leave"})
		return
	}
	if err := h.Profiles.SetAvailability(c.Param("id"), availability); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
