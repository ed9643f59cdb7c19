package models

import "time"

// FeaturedProperty pins a property onto the homepage carousel. The full set
// is replaced in one transaction whenever the admin reorders it.
type FeaturedProperty struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"uniqueIndex;not null" json:"propertyId"`
	SortOrder  int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Property Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FeaturedProperty) TableName() string { return "featured_properties" }
