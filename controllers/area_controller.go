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

type AreaController struct {
	DB *gorm.DB
}

func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db}
}

type areaPayload struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Subtitle *string `json:"subtitle"`
	Lat      any     `json:"lat"`
	Lng      any     `json:"lng"`
}

func coordValue(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return fallback
}

func (ac *AreaController) List(c *gin.Context) {
	var areas []models.Area
	if err := ac.DB.Order("id ASC").Find(&areas).Error; err != nil {
		log.Printf("list areas: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list areas")
		return
	}
	views := make([]models.AreaView, 0, len(areas))
	for _, a := range areas {
		views = append(views, a.View())
	}
	c.JSON(http.StatusOK, views)
}

func (ac *AreaController) Create(c *gin.Context) {
	var payload areaPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	name := ""
	if payload.Name != nil {
		name = strings.TrimSpace(*payload.Name)
	}
	id := strings.TrimSpace(payload.ID)
	if id == "" {
		id = utils.Slugify(name)
	}
	if id == "" {
		id = "area"
	}

	area := models.Area{
		ID:        id,
		Name:      name,
		CenterLat: coordValue(payload.Lat, utils.DefaultLat),
		CenterLng: coordValue(payload.Lng, utils.DefaultLng),
	}
	if payload.Subtitle != nil {
		area.Subtitle = strings.TrimSpace(*payload.Subtitle)
	}

	if err := ac.DB.Create(&area).Error; err != nil {
		log.Printf("create area: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create area")
		return
	}
	c.JSON(http.StatusCreated, area.View())
}

func (ac *AreaController) Update(c *gin.Context) {
	var area models.Area
	if err := ac.DB.First(&area, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Area not found")
			return
		}
		log.Printf("get area: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update area")
		return
	}

	var payload areaPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Name != nil {
		if name := strings.TrimSpace(*payload.Name); name != "" {
			area.Name = name
		}
	}
	if payload.Subtitle != nil {
		area.Subtitle = strings.TrimSpace(*payload.Subtitle)
	}
	if payload.Lat != nil {
		area.CenterLat = coordValue(payload.Lat, area.CenterLat)
	}
	if payload.Lng != nil {
		area.CenterLng = coordValue(payload.Lng, area.CenterLng)
	}

	if err := ac.DB.Save(&area).Error; err != nil {
		log.Printf("update area: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update area")
		return
	}
	c.JSON(http.StatusOK, area.View())
}

func (ac *AreaController) Delete(c *gin.Context) {
	result := ac.DB.Delete(&models.Area{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		log.Printf("delete area %s: %v", c.Param("id"), result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete area")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Area not found")
		return
	}
	c.Status(http.StatusNoContent)
}
