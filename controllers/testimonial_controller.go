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

type TestimonialController struct {
	DB *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db}
}

// Initials derives up to two uppercase initials from a name,
// e.g. "Sarah Al Maktoum" -> "SA".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

type testimonialPayload struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Location *string `json:"location"`
	Quote    *string `json:"quote"`
	Rating   *int    `json:"rating"`
}

func (tc *TestimonialController) List(c *gin.Context) {
	var list []models.Testimonial
	if err := tc.DB.Order("id ASC").Find(&list).Error; err != nil {
		log.Printf("list testimonials: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list testimonials")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (tc *TestimonialController) GetOne(c *gin.Context) {
	var testimonial models.Testimonial
	if err := tc.DB.First(&testimonial, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		log.Printf("get testimonial: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (tc *TestimonialController) Create(c *gin.Context) {
	var payload testimonialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	testimonial := models.Testimonial{Rating: 5}
	if payload.Name != nil {
		testimonial.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Role != nil {
		testimonial.Role = strings.TrimSpace(*payload.Role)
	}
	if payload.Location != nil {
		testimonial.Location = strings.TrimSpace(*payload.Location)
	}
	if payload.Quote != nil {
		testimonial.Quote = strings.TrimSpace(*payload.Quote)
	}
	if payload.Rating != nil && *payload.Rating > 0 {
		testimonial.Rating = *payload.Rating
	}
	testimonial.Initials = Initials(testimonial.Name)

	if err := tc.DB.Create(&testimonial).Error; err != nil {
		log.Printf("create testimonial: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

func (tc *TestimonialController) Update(c *gin.Context) {
	var testimonial models.Testimonial
	if err := tc.DB.First(&testimonial, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		log.Printf("get testimonial: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	var payload testimonialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Name != nil {
		testimonial.Name = strings.TrimSpace(*payload.Name)
		testimonial.Initials = Initials(testimonial.Name)
	}
	if payload.Role != nil {
		testimonial.Role = strings.TrimSpace(*payload.Role)
	}
	if payload.Location != nil {
		testimonial.Location = strings.TrimSpace(*payload.Location)
	}
	if payload.Quote != nil {
		testimonial.Quote = strings.TrimSpace(*payload.Quote)
	}
	if payload.Rating != nil && *payload.Rating > 0 {
		testimonial.Rating = *payload.Rating
	}

	if err := tc.DB.Save(&testimonial).Error; err != nil {
		log.Printf("update testimonial: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (tc *TestimonialController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
		return
	}
	result := tc.DB.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		log.Printf("delete testimonial %d: %v", id, result.Error)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
		return
	}
	c.Status(http.StatusNoContent)
}
