package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nextprime-backend/services"
	"nextprime-backend/utils"
)

// PublicController serves the unauthenticated site API.
type PublicController struct {
	Site       *services.SiteService
	Properties *services.PropertyService
}

func NewPublicController(site *services.SiteService, properties *services.PropertyService) *PublicController {
	return &PublicController{Site: site, Properties: properties}
}

// GET /api/site-data
func (pc *PublicController) SiteData(c *gin.Context) {
	data, err := pc.Site.GetSiteData()
	if err != nil {
		log.Printf("site data: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get site data")
		return
	}
	c.JSON(http.StatusOK, data)
}

// GET /api/properties
func (pc *PublicController) ListProperties(c *gin.Context) {
	list, err := pc.Properties.List()
	if err != nil {
		log.Printf("list properties: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list properties")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/properties/:id — numeric id or slug
func (pc *PublicController) GetProperty(c *gin.Context) {
	property, err := pc.Properties.GetByIDOrSlug(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Property not found")
			return
		}
		log.Printf("get property %s: %v", c.Param("id"), err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get property")
		return
	}
	c.JSON(http.StatusOK, property)
}

// GET /api/featured-properties
func (pc *PublicController) FeaturedProperties(c *gin.Context) {
	properties, err := pc.Site.FeaturedProperties()
	if err != nil {
		log.Printf("featured properties: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get featured properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}
