package models

import "time"

// LocationList holds the location names offered per purpose bucket.
// One name may appear once per purpose.
type LocationList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_location_name_purpose" json:"name"`
	Purpose   string    `gorm:"size:20;not null;default:buy;uniqueIndex:idx_location_name_purpose" json:"purpose"`
	SortOrder int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LocationList) TableName() string { return "location_list" }
