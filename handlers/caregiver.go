package handlers

import (
	"net/http"

	caregiverRepo "shebacare/database/repository/caregiver"
	"shebacare/utils"

	"github.com/gin-gonic/gin"
)

// CaregiverHandler serves caregiver lookup endpoints.
type CaregiverHandler struct {
	Repo caregiverRepo.CaregiverRepository
}

// NewCaregiverHandler creates a caregiver handler.
func NewCaregiverHandler(repo caregiverRepo.CaregiverRepository) *CaregiverHandler {
	return &CaregiverHandler{Repo: repo}
}

// ListCaregiversHandler returns all caregiver records, unscored.
func (h *CaregiverHandler) ListCaregiversHandler(c *gin.Context) {
	caregivers, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list caregivers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"caregivers": caregivers,
		"count":      len(caregivers),
	})
}

// GetCaregiverByIDHandler returns a single caregiver record.
func (h *CaregiverHandler) GetCaregiverByIDHandler(c *gin.Context) {
	id := c.Param("id")
	caregiver, err := h.Repo.GetByID(id)
	if err != nil || caregiver == nil {
		utils.JSONError(c, http.StatusNotFound, "caregiver not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"caregiver": caregiver,
	})
}
