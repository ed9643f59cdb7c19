package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/utils"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// Get returns the singleton contact row, creating it with the site defaults
// on first access.
func (cc *ContactController) Get(c *gin.Context) {
	var contact models.Contact
	err := cc.DB.First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		contact = models.DefaultContact()
		err = cc.DB.Create(&contact).Error
	}
	if err != nil {
		log.Printf("get contact: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

type contactPayload struct {
	PhoneDisplay *string `json:"phoneDisplay"`
	PhoneTel     *string `json:"phoneTel"`
	Email        *string `json:"email"`
	WhatsappText *string `json:"whatsappText"`
}

func (cc *ContactController) Update(c *gin.Context) {
	var payload contactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var contact models.Contact
	err := cc.DB.First(&contact).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("get contact: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	if payload.PhoneDisplay != nil {
		contact.PhoneDisplay = strings.TrimSpace(*payload.PhoneDisplay)
	}
	if payload.PhoneTel != nil {
		// tel: links must not contain spaces
		contact.PhoneTel = strings.ReplaceAll(*payload.PhoneTel, " ", "")
	}
	if payload.Email != nil {
		contact.Email = strings.TrimSpace(*payload.Email)
	}
	if payload.WhatsappText != nil {
		contact.WhatsappText = strings.TrimSpace(*payload.WhatsappText)
	}

	if err := cc.DB.Save(&contact).Error; err != nil {
		log.Printf("update contact: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}
