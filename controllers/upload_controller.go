package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"nextprime-backend/services"
	"nextprime-backend/utils"
)

type UploadController struct {
	Media *services.MediaService
}

func NewUploadController(media *services.MediaService) *UploadController {
	return &UploadController{Media: media}
}

// POST /api/admin/upload/image — single multipart image field
func (uc *UploadController) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if !imageMimePattern.MatchString(fh.Header.Get("Content-Type")) {
		utils.JSONError(c, http.StatusBadRequest, "Only images (jpeg, png, gif, webp) are allowed")
		return
	}

	folder := c.PostForm("folder")
	url, publicID, err := uc.Media.UploadImage(c.Request.Context(), fh, folder)
	if err != nil {
		log.Printf("image upload: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "publicId": publicID})
}
