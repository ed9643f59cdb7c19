package models

import "time"

type Testimonial struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Role      string    `gorm:"size:255" json:"role"`
	Location  string    `gorm:"size:255" json:"location"`
	Quote     string    `gorm:"type:text;not null" json:"quote"`
	Rating    int       `gorm:"default:5" json:"rating"`
	Initials  string    `gorm:"size:10" json:"initials"` // derived from name, e.g. "SA"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Testimonial) TableName() string { return "testimonials" }
