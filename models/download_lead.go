package models

import "time"

const (
	DocumentTypeBrochure  = "brochure"
	DocumentTypeFloorPlan = "floor-plan"
)

type DownloadLead struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FullName     string    `gorm:"size:255;not null" json:"fullName"`
	Phone        string    `gorm:"size:50;not null" json:"phone"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	Project      string    `gorm:"size:255;not null" json:"project"` // property/project name
	Message      string    `gorm:"type:text" json:"message"`
	DocumentType string    `gorm:"size:20;not null" json:"documentType"`
	Contacted    bool      `gorm:"default:false" json:"contacted"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DownloadLead) TableName() string { return "download_leads" }
