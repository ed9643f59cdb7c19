package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"nextprime-backend/models"
	"nextprime-backend/utils"
)

// maxSlugAttempts bounds the insert-retry loop when concurrent creates race
// on the same base slug.
const maxSlugAttempts = 5

var numericID = regexp.MustCompile(`^\d+$`)

type PropertyService struct {
	DB    *gorm.DB
	Media *MediaService
}

func NewPropertyService(db *gorm.DB, media *MediaService) *PropertyService {
	return &PropertyService{DB: db, Media: media}
}

func (s *PropertyService) List() ([]models.Property, error) {
	var list []models.Property
	err := s.DB.Order("id ASC").Find(&list).Error
	return list, err
}

func (s *PropertyService) GetByID(id uint) (*models.Property, error) {
	var p models.Property
	if err := s.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByIDOrSlug resolves a route parameter that is either a numeric id or a
// slug. Legacy rows fetched by id that never got a slug are assigned one on
// first touch so their public URL stabilizes.
func (s *PropertyService) GetByIDOrSlug(param string) (*models.Property, error) {
	var p models.Property
	if numericID.MatchString(param) {
		if err := s.DB.Where("id = ?", param).First(&p).Error; err != nil {
			return nil, err
		}
		if p.Slug == "" {
			if err := s.assignSlug(&p, true); err != nil {
				log.Printf("lazy slug assignment failed for property %d: %v", p.ID, err)
			}
		}
		return &p, nil
	}
	if err := s.DB.Where("slug = ?", param).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UniqueSlugFor derives a collision-free slug from title, skipping the
// record under update when excludeID is non-zero.
func (s *PropertyService) UniqueSlugFor(title string, excludeID uint) (string, error) {
	return utils.UniqueSlug(utils.Slugify(title), func(slug string) (bool, error) {
		q := s.DB.Model(&models.Property{}).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

// Create persists a new listing. The probe-then-insert slug check is racy,
// so the unique index is the real guard: a duplicate-key insert re-runs the
// probe with a fresh view of the table instead of failing the request.
func (s *PropertyService) Create(p *models.Property) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := s.UniqueSlugFor(p.Title, 0)
		if err != nil {
			return err
		}
		p.Slug = slug
		err = s.DB.Create(p).Error
		if err == nil {
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
	}
	return fmt.Errorf("could not allocate a unique slug for %q", p.Title)
}

// Save writes an updated listing. The slug is reassigned only when the
// title changed in this request or the row predates slugs; otherwise public
// URLs stay stable. oldMedia is the pre-update hero+gallery set; anything it
// holds that the record no longer references is cleaned up after the write.
func (s *PropertyService) Save(ctx context.Context, p *models.Property, oldMedia []string, titleChanged bool) error {
	if titleChanged || p.Slug == "" {
		return s.saveWithSlug(ctx, p, oldMedia)
	}
	if err := s.DB.Save(p).Error; err != nil {
		return err
	}
	s.Media.CleanupRemoved(ctx, oldMedia, p.Photos)
	return nil
}

func (s *PropertyService) saveWithSlug(ctx context.Context, p *models.Property, oldMedia []string) error {
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		slug, err := s.UniqueSlugFor(p.Title, p.ID)
		if err != nil {
			return err
		}
		p.Slug = slug
		err = s.DB.Save(p).Error
		if err == nil {
			s.Media.CleanupRemoved(ctx, oldMedia, p.Photos)
			return nil
		}
		if !isDuplicateKey(err) {
			return err
		}
	}
	return fmt.Errorf("could not allocate a unique slug for %q", p.Title)
}

func (s *PropertyService) assignSlug(p *models.Property, persist bool) error {
	slug, err := s.UniqueSlugFor(p.Title, p.ID)
	if err != nil {
		return err
	}
	p.Slug = slug
	if persist {
		return s.DB.Model(p).Update("slug", slug).Error
	}
	return nil
}

// Delete removes every referenced media asset — provider-hosted hero and
// gallery URLs plus locally stored documents — and then the row itself.
// Media failures are logged only; the row is removed regardless.
func (s *PropertyService) Delete(ctx context.Context, p *models.Property) error {
	oldMedia := utils.AssembleMediaList(p.Image, p.Photos)
	s.Media.CleanupRemoved(ctx, oldMedia, nil)
	s.Media.DeleteLocalByURL(p.FloorPlanFile)
	s.Media.DeleteLocalByURL(p.BrochureFile)
	return s.DB.Delete(&models.Property{}, p.ID).Error
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
