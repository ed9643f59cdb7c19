package controllers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/utils"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

type locationBuckets struct {
	Buy     []string `json:"buy"`
	Rent    []string `json:"rent"`
	OffPlan []string `json:"offPlan"`
}

func (lc *LocationController) buckets() (*locationBuckets, error) {
	var rows []models.LocationList
	if err := lc.DB.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := &locationBuckets{Buy: []string{}, Rent: []string{}, OffPlan: []string{}}
	for _, row := range rows {
		switch row.Purpose {
		case models.PurposeRent:
			out.Rent = append(out.Rent, row.Name)
		case models.PurposeOffPlan:
			out.OffPlan = append(out.OffPlan, row.Name)
		default:
			out.Buy = append(out.Buy, row.Name)
		}
	}
	return out, nil
}

func (lc *LocationController) List(c *gin.Context) {
	buckets, err := lc.buckets()
	if err != nil {
		log.Printf("list locations: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list locations")
		return
	}
	c.JSON(http.StatusOK, buckets)
}

type locationPayload struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

func (lc *LocationController) Add(c *gin.Context) {
	var payload locationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Name is required")
		return
	}
	purpose := utils.NormalizePurpose(payload.Purpose)

	var count int64
	if err := lc.DB.Model(&models.LocationList{}).
		Where("name = ? AND purpose = ?", name, purpose).
		Count(&count).Error; err != nil {
		log.Printf("check location: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add location")
		return
	}
	if count > 0 {
		utils.JSONError(c, http.StatusBadRequest, "Location already exists for this purpose")
		return
	}

	if err := lc.DB.Create(&models.LocationList{Name: name, Purpose: purpose}).Error; err != nil {
		log.Printf("create location: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add location")
		return
	}

	buckets, err := lc.buckets()
	if err != nil {
		log.Printf("list locations: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add location")
		return
	}
	c.JSON(http.StatusCreated, buckets)
}

func (lc *LocationController) Delete(c *gin.Context) {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		name = c.Param("name")
	}
	purpose := utils.NormalizePurpose(c.Query("purpose"))

	result := lc.DB.Where("name = ? AND purpose = ?", name, purpose).Delete(&models.LocationList{})
	if result.Error != nil {
		log.Printf("delete location %s: %v", name, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove location")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Location not found")
		return
	}
	c.Status(http.StatusNoContent)
}
