package models

import "time"

// Contact is a singleton row holding the site's contact details.
type Contact struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PhoneDisplay string    `gorm:"size:50" json:"phoneDisplay"` // display format, e.g. +971 52 778 0718
	PhoneTel     string    `gorm:"size:50" json:"phoneTel"`     // for tel: links, no spaces
	Email        string    `gorm:"size:255" json:"email"`
	WhatsappText string    `gorm:"type:text" json:"whatsappText"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Contact) TableName() string { return "contact" }

// DefaultContact is used when no contact row exists yet.
func DefaultContact() Contact {
	return Contact{
		PhoneDisplay: "+971 52 778 0718",
		PhoneTel:     "+971527780718",
		Email:        "contact@nextprimerealestate.com",
		WhatsappText: "Hi Next Prime, I'm interested in your Dubai properties.",
	}
}
