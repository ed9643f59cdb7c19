package models

import "time"

type SocialLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Href      string    `gorm:"size:500" json:"href"`
	Icon      string    `gorm:"size:50" json:"icon"` // e.g. facebook, instagram
	SortOrder int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SocialLink) TableName() string { return "social_links" }

type SocialLinkView struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

func (s SocialLink) View() SocialLinkView {
	return SocialLinkView{Name: s.Name, Href: s.Href, Icon: s.Icon}
}
