package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EvarJr/EBotikaApp/internal/consult"
	"github.com/EvarJr/EBotikaApp/internal/models"
	"github.com/EvarJr/EBotikaApp/internal/qr"
)

// ListConsultations returns all consultations for professional roles, or
// just the caller's own for patients. ?pending=true narrows the list to the
// doctor review queue, most urgent first.
func (h *Handler) ListConsultations(c *gin.Context) {
	caller, ok := h.Users.FindByID(h.callerID(c))
	if ok && caller.Role == models.RolePatient {
		c.JSON(http.StatusOK, h.Consults.ConsultationsForPatient(caller.ID))
		return
	}
	if c.Query("pending") == "true" {
		c.JSON(http.StatusOK, h.Consults.PendingQueue())
		return
	}
	c.JSON(http.StatusOK, h.Consults.Consultations())
}

// AddConsultation stores a completed triage session.
func (h *Handler) AddConsultation(c *gin.Context) {
	var consultation models.Consultation
	if err := c.ShouldBindJSON(&consultation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Consults.AddConsultation(consultation))
}

type consultationStatusRequest struct {
	Status      models.ConsultationStatus `json:"status" binding:"required"`
	DoctorNotes string                    `json:"doctor_notes"`
}

// UpdateConsultationStatus moves a consultation along the triage flow.
func (h *Handler) UpdateConsultationStatus(c *gin.Context) {
	var req consultationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Consults.UpdateConsultationStatus(c.Param("id"), req.Status, req.DoctorNotes); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportConsultationsCSV streams the RHU consultation export.
func (h *Handler) ExportConsultationsCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", consult.ExportFilename))
	if err := h.Consults.WriteConsultationsCSV(c.Writer); err != nil {
		c.Error(err)
	}
}

// ListPrescriptions returns all prescriptions for professional roles, or
// just the caller's own for patients.
func (h *Handler) ListPrescriptions(c *gin.Context) {
	caller, ok := h.Users.FindByID(h.callerID(c))
	if ok && caller.Role == models.RolePatient {
		c.JSON(http.StatusOK, h.Consults.PrescriptionsForPatient(caller.ID))
		return
	}
	c.JSON(http.StatusOK, h.Consults.Prescriptions())
}

// AddPrescription stores a prescription issued from a consultation review.
func (h *Handler) AddPrescription(c *gin.Context) {
	var p models.Prescription
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.Consults.AddPrescription(p))
}

type prescriptionUpdateRequest struct {
	Medicine    *string                    `json:"medicine"`
	Dosage      *string                    `json:"dosage"`
	DoctorName  *string                    `json:"doctor_name"`
	DoctorNotes *string                    `json:"doctor_notes"`
	Status      *models.PrescriptionStatus `json:"status"`
}

// UpdatePrescription applies a partial update, e.g. the pharmacy marking a
// scanned prescription as remitted.
func (h *Handler) UpdatePrescription(c *gin.Context) {
	var req prescriptionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.Consults.UpdatePrescription(c.Param("id"), consult.PrescriptionUpdate{
		Medicine:    req.Medicine,
		Dosage:      req.Dosage,
		DoctorName:  req.DoctorName,
		DoctorNotes: req.DoctorNotes,
		Status:      req.Status,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// PrescriptionQR proxies the rendered voucher PNG from the external QR
// service.
func (h *Handler) PrescriptionQR(c *gin.Context) {
	p, ok := h.Consults.FindPrescription(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": consult.ErrNotFound.Error()})
		return
	}

	size := 200
	if s, err := strconv.Atoi(c.Query("size")); err == nil && s > 0 {
		size = s
	}

	img, err := h.QR.FetchImage(c.Request.Context(), qr.VoucherPayload{
		PrescriptionID: p.ID,
		PatientID:      p.Patient.ID,
		Medicine:       p.Medicine,
	}, size)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}
