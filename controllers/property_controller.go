package controllers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/services"
	"nextprime-backend/utils"
)

const maxGalleryFiles = 10

var imageMimePattern = regexp.MustCompile(`^image/(jpeg|jpg|png|gif|webp)$`)

type PropertyController struct {
	Service *services.PropertyService
	Media   *services.MediaService
}

func NewPropertyController(service *services.PropertyService, media *services.MediaService) *PropertyController {
	return &PropertyController{Service: service, Media: media}
}

// ----------------------------------------------------
// Admin: GET /api/admin/properties
// ----------------------------------------------------

func (pc *PropertyController) List(c *gin.Context) {
	list, err := pc.Service.List()
	if err != nil {
		log.Printf("list properties: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list properties")
		return
	}
	c.JSON(http.StatusOK, list)
}

// ----------------------------------------------------
// Admin: GET /api/admin/properties/:id
// ----------------------------------------------------

func (pc *PropertyController) GetOne(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}
	property, err := pc.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Property not found")
			return
		}
		log.Printf("get property %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get property")
		return
	}
	c.JSON(http.StatusOK, property)
}

// finalizeCreateMedia settles the stored hero and gallery for a new listing.
// A listing created with no media at all gets the placeholder as its hero,
// which then also leads the gallery.
func finalizeCreateMedia(hero string, uploaded, photoURLs []string) (string, []string) {
	if hero == "" {
		hero = models.PlaceholderImage
	}
	return hero, utils.AssembleMediaList(hero, uploaded, photoURLs)
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// validateFiles enforces the upload contract before anything is stored:
// image and photos parts must be images, floorPlanFile and brochureFile must
// be PDFs, singles at most one, gallery at most ten.
func validateFiles(c *gin.Context) error {
	check := func(field string, max int, pdf bool) error {
		files := formFiles(c, field)
		if len(files) > max {
			return fmt.Errorf("too many %s files (max %d)", field, max)
		}
		for _, fh := range files {
			mimeType := fh.Header.Get("Content-Type")
			if pdf {
				if mimeType != "application/pdf" {
					return fmt.Errorf("%s must be a PDF", field)
				}
			} else if !imageMimePattern.MatchString(mimeType) {
				return fmt.Errorf("%s must be an image (jpeg, png, gif, webp)", field)
			}
		}
		return nil
	}
	if err := check("image", 1, false); err != nil {
		return err
	}
	if err := check("photos", maxGalleryFiles, false); err != nil {
		return err
	}
	if err := check("floorPlanFile", 1, true); err != nil {
		return err
	}
	return check("brochureFile", 1, true)
}

// ----------------------------------------------------
// Admin: POST /api/admin/properties (multipart)
// ----------------------------------------------------

func (pc *PropertyController) Create(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		utils.JSONError(c, http.StatusBadRequest, "Title is required")
		return
	}
	if err := validateFiles(c); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	get := c.GetPostForm

	imageURL := strings.TrimSpace(c.PostForm("image"))
	photoURLs := utils.ParseStringList(c.PostForm("photos"))

	if files := formFiles(c, "image"); len(files) > 0 {
		url, _, err := pc.Media.UploadImage(ctx, files[0], "nextprime/properties")
		if err != nil {
			log.Printf("hero upload failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create property")
			return
		}
		imageURL = url
	}
	uploadedGallery, err := pc.Media.UploadImages(ctx, formFiles(c, "photos"), "nextprime/properties")
	if err != nil {
		log.Printf("gallery upload failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create property")
		return
	}
	imageURL, photos := finalizeCreateMedia(imageURL, uploadedGallery, photoURLs)

	floorPlanURL := strings.TrimSpace(c.PostForm("floorPlanFile"))
	if files := formFiles(c, "floorPlanFile"); len(files) > 0 {
		floorPlanURL, err = pc.Media.SaveDocument(files[0], "floor-plan")
		if err != nil {
			log.Printf("floor plan save failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create property")
			return
		}
	}
	brochureURL := strings.TrimSpace(c.PostForm("brochureFile"))
	if files := formFiles(c, "brochureFile"); len(files) > 0 {
		brochureURL, err = pc.Media.SaveDocument(files[0], "brochure")
		if err != nil {
			log.Printf("brochure save failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create property")
			return
		}
	}

	residenceOptions, _ := utils.ParseJSONField[[]models.ResidenceOption](c.PostForm("residenceOptions"))
	features, _ := utils.ParseJSONField[map[string][]string](c.PostForm("features"))
	floorPlans, _ := utils.ParseJSONField[[]models.FloorPlan](c.PostForm("floorPlans"))
	overview, _ := utils.ParseOverview(get)

	propertyType := strings.TrimSpace(c.PostForm("type"))
	if propertyType == "" {
		propertyType = "Villa"
	}

	property := models.Property{
		Title:            title,
		Description:      c.PostForm("description"),
		Image:            imageURL,
		Photos:           datatypes.NewJSONSlice(photos),
		Video:            strings.TrimSpace(c.PostForm("video")),
		FloorPlanFile:    floorPlanURL,
		BrochureFile:     brochureURL,
		Location:         strings.TrimSpace(c.PostForm("location")),
		Price:            utils.ParsePrice(c.PostForm("price")),
		PriceDisplay:     strings.TrimSpace(c.PostForm("priceDisplay")),
		Type:             propertyType,
		Purpose:          utils.NormalizePurpose(c.PostForm("purpose")),
		Bedrooms:         strings.TrimSpace(c.PostForm("bedrooms")),
		Bathrooms:        strings.TrimSpace(c.PostForm("bathrooms")),
		Address:          datatypes.NewJSONType(utils.ParseAddress(get, c.PostForm("location"))),
		Overview:         datatypes.NewJSONType(overview),
		ResidenceOptions: datatypes.NewJSONSlice(residenceOptions),
		Highlights:       datatypes.NewJSONSlice(utils.ParseStringList(c.PostForm("highlights"))),
		Features:         datatypes.NewJSONType(features),
		FloorPlans:       datatypes.NewJSONSlice(floorPlans),
		Agent:            datatypes.NewJSONType(utils.ParseAgent(get)),
	}

	if err := pc.Service.Create(&property); err != nil {
		log.Printf("create property: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create property")
		return
	}
	c.JSON(http.StatusCreated, property)
}

// ----------------------------------------------------
// Admin: PUT /api/admin/properties/:id (multipart)
// ----------------------------------------------------

func (pc *PropertyController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}
	property, err := pc.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Property not found")
			return
		}
		log.Printf("get property %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update property")
		return
	}
	if err := validateFiles(c); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	get := c.GetPostForm

	// snapshot before mutation; the reconciler diffs against this
	oldMedia := utils.AssembleMediaList(property.Image, property.Photos)

	titleChanged := false
	if v, ok := get("title"); ok {
		if t := strings.TrimSpace(v); t != "" && t != property.Title {
			property.Title = t
			titleChanged = true
		}
	}
	if v, ok := get("description"); ok {
		property.Description = v
	}
	if v, ok := get("location"); ok {
		property.Location = strings.TrimSpace(v)
	}
	if v, ok := get("price"); ok && strings.TrimSpace(v) != "" {
		property.Price = utils.ParsePrice(v)
	}
	if v, ok := get("priceDisplay"); ok {
		property.PriceDisplay = strings.TrimSpace(v)
	}
	if v, ok := get("type"); ok && strings.TrimSpace(v) != "" {
		property.Type = strings.TrimSpace(v)
	}
	if v, ok := get("purpose"); ok {
		property.Purpose = utils.NormalizePurpose(v)
	}
	if v, ok := get("video"); ok {
		property.Video = strings.TrimSpace(v)
	}
	if v, ok := get("bedrooms"); ok && strings.TrimSpace(v) != "" {
		property.Bedrooms = strings.TrimSpace(v)
	}
	if v, ok := get("bathrooms"); ok && strings.TrimSpace(v) != "" {
		property.Bathrooms = strings.TrimSpace(v)
	}

	photoURLs := utils.ParseStringList(c.PostForm("photos"))
	imageURL := strings.TrimSpace(c.PostForm("image"))
	if imageURL == "" {
		if len(photoURLs) > 0 {
			imageURL = photoURLs[0]
		} else {
			imageURL = property.Image
		}
	}
	if files := formFiles(c, "image"); len(files) > 0 {
		url, _, err := pc.Media.UploadImage(ctx, files[0], "nextprime/properties")
		if err != nil {
			log.Printf("hero upload failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update property")
			return
		}
		imageURL = url
	}
	uploadedGallery, err := pc.Media.UploadImages(ctx, formFiles(c, "photos"), "nextprime/properties")
	if err != nil {
		log.Printf("gallery upload failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update property")
		return
	}
	photos := utils.AssembleMediaList(imageURL, uploadedGallery, photoURLs)
	property.Image = imageURL
	property.Photos = datatypes.NewJSONSlice(photos)

	// documents: an uploaded file replaces (and deletes) the old local copy;
	// an explicitly emptied field deletes it without a successor
	if files := formFiles(c, "floorPlanFile"); len(files) > 0 {
		pc.Media.DeleteLocalByURL(property.FloorPlanFile)
		property.FloorPlanFile, err = pc.Media.SaveDocument(files[0], "floor-plan")
		if err != nil {
			log.Printf("floor plan save failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update property")
			return
		}
	} else if v, ok := get("floorPlanFile"); ok {
		newVal := strings.TrimSpace(v)
		if newVal == "" && property.FloorPlanFile != "" {
			pc.Media.DeleteLocalByURL(property.FloorPlanFile)
		}
		property.FloorPlanFile = newVal
	}
	if files := formFiles(c, "brochureFile"); len(files) > 0 {
		pc.Media.DeleteLocalByURL(property.BrochureFile)
		property.BrochureFile, err = pc.Media.SaveDocument(files[0], "brochure")
		if err != nil {
			log.Printf("brochure save failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update property")
			return
		}
	} else if v, ok := get("brochureFile"); ok {
		newVal := strings.TrimSpace(v)
		if newVal == "" && property.BrochureFile != "" {
			pc.Media.DeleteLocalByURL(property.BrochureFile)
		}
		property.BrochureFile = newVal
	}

	property.Address = datatypes.NewJSONType(utils.ParseAddress(get, property.Location))

	if overview, present := utils.ParseOverview(get); present {
		merged := property.Overview.Data().Merge(overview)
		property.Overview = datatypes.NewJSONType(merged)
	}
	if _, ok := get("residenceOptions"); ok {
		residenceOptions, _ := utils.ParseJSONField[[]models.ResidenceOption](c.PostForm("residenceOptions"))
		property.ResidenceOptions = datatypes.NewJSONSlice(residenceOptions)
	}
	if _, ok := get("highlights"); ok {
		property.Highlights = datatypes.NewJSONSlice(utils.ParseStringList(c.PostForm("highlights")))
	}
	if _, ok := get("features"); ok {
		features, _ := utils.ParseJSONField[map[string][]string](c.PostForm("features"))
		property.Features = datatypes.NewJSONType(features)
	}
	if _, ok := get("floorPlans"); ok {
		floorPlans, _ := utils.ParseJSONField[[]models.FloorPlan](c.PostForm("floorPlans"))
		property.FloorPlans = datatypes.NewJSONSlice(floorPlans)
	}
	if _, hasAgent := get("agent"); hasAgent {
		property.Agent = datatypes.NewJSONType(utils.ParseAgent(get))
	} else if _, hasPhone := get("agentPhone"); hasPhone {
		property.Agent = datatypes.NewJSONType(utils.ParseAgent(get))
	}

	if err := pc.Service.Save(ctx, property, oldMedia, titleChanged); err != nil {
		log.Printf("update property %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update property")
		return
	}
	c.JSON(http.StatusOK, property)
}

// ----------------------------------------------------
// Admin: DELETE /api/admin/properties/:id
// ----------------------------------------------------

func (pc *PropertyController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Property not found")
		return
	}
	property, err := pc.Service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Property not found")
			return
		}
		log.Printf("get property %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	if err := pc.Service.Delete(c.Request.Context(), property); err != nil {
		log.Printf("delete property %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	c.Status(http.StatusNoContent)
}
