package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/utils"
)

type FeaturedController struct {
	DB *gorm.DB
}

func NewFeaturedController(db *gorm.DB) *FeaturedController {
	return &FeaturedController{DB: db}
}

func (fc *FeaturedController) ids() ([]uint, error) {
	var rows []models.FeaturedProperty
	if err := fc.DB.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PropertyID)
	}
	return ids, nil
}

// List returns the ordered property id list.
func (fc *FeaturedController) List(c *gin.Context) {
	ids, err := fc.ids()
	if err != nil {
		log.Printf("list featured: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list featured")
		return
	}
	c.JSON(http.StatusOK, ids)
}

type featuredPayload struct {
	IDs []uint `json:"ids"`
}

// Set replaces the whole featured set with the given ordered id list in one
// transaction.
func (fc *FeaturedController) Set(c *gin.Context) {
	var payload featuredPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := fc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.FeaturedProperty{}).Error; err != nil {
			return err
		}
		for i, id := range payload.IDs {
			if err := tx.Create(&models.FeaturedProperty{PropertyID: id, SortOrder: i}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("set featured: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to set featured")
		return
	}

	ids, err := fc.ids()
	if err != nil {
		log.Printf("list featured: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to set featured")
		return
	}
	c.JSON(http.StatusOK, ids)
}
