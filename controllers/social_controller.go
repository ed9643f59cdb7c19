package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/utils"
)

type SocialController struct {
	DB *gorm.DB
}

func NewSocialController(db *gorm.DB) *SocialController {
	return &SocialController{DB: db}
}

func (sc *SocialController) views() ([]models.SocialLinkView, error) {
	var links []models.SocialLink
	if err := sc.DB.Order("sort_order ASC, id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	out := make([]models.SocialLinkView, 0, len(links))
	for _, link := range links {
		out = append(out, link.View())
	}
	return out, nil
}

func (sc *SocialController) List(c *gin.Context) {
	views, err := sc.views()
	if err != nil {
		log.Printf("list social links: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list social links")
		return
	}
	c.JSON(http.StatusOK, views)
}

type socialPayload struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

// Update upserts one link by name and returns the full list.
func (sc *SocialController) Update(c *gin.Context) {
	var payload socialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		name = "Facebook"
	}
	href := strings.TrimSpace(payload.Href)
	icon := strings.TrimSpace(payload.Icon)
	if icon == "" {
		icon = strings.ToLower(name)
	}

	var link models.SocialLink
	err := sc.DB.Where("name = ?", name).First(&link).Error
	switch {
	case err == nil:
		link.Href = href
		link.Icon = icon
		err = sc.DB.Save(&link).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		link = models.SocialLink{Name: name, Href: href, Icon: icon}
		err = sc.DB.Create(&link).Error
	}
	if err != nil {
		log.Printf("update social link: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update social link")
		return
	}

	views, err := sc.views()
	if err != nil {
		log.Printf("list social links: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update social link")
		return
	}
	c.JSON(http.StatusOK, views)
}

func (sc *SocialController) Delete(c *gin.Context) {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		name = c.Param("name")
	}
	result := sc.DB.Where("name = ?", name).Delete(&models.SocialLink{})
	if result.Error != nil {
		log.Printf("delete social link %s: %v", name, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove social link")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Social link not found")
		return
	}
	c.Status(http.StatusNoContent)
}
