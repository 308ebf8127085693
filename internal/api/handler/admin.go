package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

// requireRole aborts unless the caller holds one of the given roles.
func (h *Handler) requireRole(c *gin.Context, roles ...models.Role) bool {
	caller, ok := h.Users.FindByID(h.callerID(c))
	if ok {
		for _, r := range roles {
			if caller.Role == r {
				return true
			}
		}
	}
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	return false
}

// ListUsers returns every account, for the RHU dashboard.
func (h *Handler) ListUsers(c *gin.Context) {
	if !h.requireRole(c, models.RoleAdmin) {
		return
	}
	c.JSON(http.StatusOK, h.Users.All())
}

type addProfessionalRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

// AddProfessional creates a doctor/pharmacy/BHW account from the RHU
// dashboard.
func (h *Handler) AddProfessional(c *gin.Context) {
	if !h.requireRole(c, models.RoleAdmin) {
		return
	}
	var req addProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Role {
	case models.RoleDoctor, models.RolePharmacy, models.RoleBHW, models.RoleAdmin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be a professional role"})
		return
	}

	user, err := h.Users.AddProfessional(models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

type statusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

// UpdateUserStatus bans or unbans an account.
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	if !h.requireRole(c, models.RoleAdmin) {
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != models.StatusActive && req.Status != models.StatusBanned {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or banned"})
		return
	}
	if err := h.Users.UpdateStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// UpgradeToPremium flags a patient as premium, lifting the chat access
// window for good.
func (h *Handler) UpgradeToPremium(c *gin.Context) {
	if !h.requireRole(c, models.RoleAdmin) {
		return
	}
	if err := h.Users.UpgradeToPremium(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// AddReport files a doctor's moderation report against a patient.
func (h *Handler) AddReport(c *gin.Context) {
	if !h.requireRole(c, models.RoleDoctor, models.RoleAdmin) {
		return
	}
	var report models.Report
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Users.AddReport(c.Param("id"), report); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteUser permanently removes an account.
func (h *Handler) DeleteUser(c *gin.Context) {
	if !h.requireRole(c, models.RoleAdmin) {
		return
	}
	if err := h.Users.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListResidents returns the barangay resident records.
func (h *Handler) ListResidents(c *gin.Context) {
	if !h.requireRole(c, models.RoleBHW, models.RoleAdmin) {
		return
	}
	c.JSON(http.StatusOK, h.Residents.All())
}

// AddResident registers a resident record from the BHW dashboard.
func (h *Handler) AddResident(c *gin.Context) {
	if !h.requireRole(c, models.RoleBHW, models.RoleAdmin) {
		return
	}
	var record models.ResidentRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Residents.Add(record))
}

// DeleteResident removes a resident record.
func (h *Handler) DeleteResident(c *gin.Context) {
	if !h.requireRole(c, models.RoleBHW, models.RoleAdmin) {
		return
	}
	if err := h.Residents.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
