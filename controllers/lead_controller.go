package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/utils"
)

type LeadController struct {
	DB *gorm.DB
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{DB: db}
}

type leadPayload struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Project      string `json:"project"`
	Message      string `json:"message"`
	DocumentType string `json:"documentType"`
}

// Public: POST /api/download-leads
func (lc *LeadController) Create(c *gin.Context) {
	var payload leadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	fullName := strings.TrimSpace(payload.FullName)
	phone := strings.TrimSpace(payload.Phone)
	email := strings.TrimSpace(payload.Email)
	project := strings.TrimSpace(payload.Project)
	if fullName == "" || phone == "" || email == "" || project == "" {
		utils.JSONError(c, http.StatusBadRequest, "Full name, phone, email and project are required")
		return
	}
	if payload.DocumentType != models.DocumentTypeBrochure && payload.DocumentType != models.DocumentTypeFloorPlan {
		utils.JSONError(c, http.StatusBadRequest, "Invalid document type")
		return
	}

	lead := models.DownloadLead{
		FullName:     fullName,
		Phone:        phone,
		Email:        email,
		Project:      project,
		Message:      strings.TrimSpace(payload.Message),
		DocumentType: payload.DocumentType,
	}
	if err := lc.DB.Create(&lead).Error; err != nil {
		log.Printf("create lead: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit")
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// Admin: GET /api/admin/download-leads
func (lc *LeadController) List(c *gin.Context) {
	var leads []models.DownloadLead
	if err := lc.DB.Order("created_at DESC").Find(&leads).Error; err != nil {
		log.Printf("list leads: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list download leads")
		return
	}
	c.JSON(http.StatusOK, leads)
}

type leadUpdatePayload struct {
	Contacted *bool `json:"contacted"`
}

// Admin: PATCH /api/admin/download-leads/:id — contacted flag only
func (lc *LeadController) Update(c *gin.Context) {
	var lead models.DownloadLead
	if err := lc.DB.First(&lead, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Lead not found")
			return
		}
		log.Printf("get lead: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	var payload leadUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Contacted != nil {
		if err := lc.DB.Model(&lead).Update("contacted", *payload.Contacted).Error; err != nil {
			log.Printf("update lead: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update lead")
			return
		}
	}
	c.JSON(http.StatusOK, lead)
}

// Admin: DELETE /api/admin/download-leads/:id
func (lc *LeadController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Lead not found")
		return
	}
	result := lc.DB.Delete(&models.DownloadLead{}, id)
	if result.Error != nil {
		log.Printf("delete lead %d: %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete lead")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Lead not found")
		return
	}
	c.Status(http.StatusNoContent)
}
