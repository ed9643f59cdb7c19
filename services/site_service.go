package services

import (
	"gorm.io/gorm"

	"nextprime-backend/models"
)

type SiteService struct {
	DB *gorm.DB
}

func NewSiteService(db *gorm.DB) *SiteService {
	return &SiteService{DB: db}
}

// SiteData is the aggregate payload the public frontend boots from.
type SiteData struct {
	Properties          []models.Property       `json:"properties"`
	Testimonials        []models.Testimonial    `json:"testimonials"`
	Areas               []models.AreaView       `json:"areas"`
	LocationsBuy        []string                `json:"locationsBuy"`
	LocationsRent       []string                `json:"locationsRent"`
	LocationsOffPlan    []string                `json:"locationsOffPlan"`
	Contact             models.Contact          `json:"contact"`
	SocialLinks         []models.SocialLinkView `json:"socialLinks"`
	FeaturedPropertyIDs []uint                  `json:"featuredPropertyIds"`
}

func (s *SiteService) GetSiteData() (*SiteData, error) {
	data := &SiteData{
		Testimonials:        []models.Testimonial{},
		Areas:               []models.AreaView{},
		LocationsBuy:        []string{},
		LocationsRent:       []string{},
		LocationsOffPlan:    []string{},
		SocialLinks:         []models.SocialLinkView{},
		FeaturedPropertyIDs: []uint{},
	}

	if err := s.DB.Order("id ASC").Find(&data.Properties).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Order("id ASC").Find(&data.Testimonials).Error; err != nil {
		return nil, err
	}

	var areas []models.Area
	if err := s.DB.Order("id ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	for _, a := range areas {
		data.Areas = append(data.Areas, a.View())
	}

	var locations []models.LocationList
	if err := s.DB.Order("sort_order ASC, id ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	for _, l := range locations {
		switch l.Purpose {
		case models.PurposeRent:
			data.LocationsRent = append(data.LocationsRent, l.Name)
		case models.PurposeOffPlan:
			data.LocationsOffPlan = append(data.LocationsOffPlan, l.Name)
		default:
			data.LocationsBuy = append(data.LocationsBuy, l.Name)
		}
	}

	var contact models.Contact
	if err := s.DB.First(&contact).Error; err != nil {
		contact = models.DefaultContact()
	}
	data.Contact = contact

	var socials []models.SocialLink
	if err := s.DB.Order("sort_order ASC, id ASC").Find(&socials).Error; err != nil {
		return nil, err
	}
	for _, link := range socials {
		data.SocialLinks = append(data.SocialLinks, link.View())
	}

	var featured []models.FeaturedProperty
	if err := s.DB.Order("sort_order ASC, id ASC").Find(&featured).Error; err != nil {
		return nil, err
	}
	for _, f := range featured {
		data.FeaturedPropertyIDs = append(data.FeaturedPropertyIDs, f.PropertyID)
	}

	return data, nil
}

// FeaturedProperties returns the full rows of the featured set in order.
func (s *SiteService) FeaturedProperties() ([]models.Property, error) {
	var featured []models.FeaturedProperty
	if err := s.DB.Preload("Property").Order("sort_order ASC, id ASC").Find(&featured).Error; err != nil {
		return nil, err
	}
	properties := make([]models.Property, 0, len(featured))
	for _, f := range featured {
		if f.Property.ID != 0 {
			properties = append(properties, f.Property)
		}
	}
	return properties, nil
}
