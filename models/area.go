package models

import "time"

// Area is a map region shown on the homepage. The primary key is a slug,
// e.g. "dubai-marina".
type Area struct {
	ID        string    `gorm:"primaryKey;size:100" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Subtitle  string    `gorm:"size:255" json:"subtitle"`
	CenterLat float64   `gorm:"type:decimal(10,6);not null" json:"centerLat"`
	CenterLng float64   `gorm:"type:decimal(10,6);not null" json:"centerLng"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Area) TableName() string { return "areas" }

// AreaView is the API shape: center as a [lat, lng] tuple.
type AreaView struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Subtitle string     `json:"subtitle"`
	Center   [2]float64 `json:"center"`
}

func (a Area) View() AreaView {
	return AreaView{
		ID:       a.ID,
		Name:     a.Name,
		Subtitle: a.Subtitle,
		Center:   [2]float64{a.CenterLat, a.CenterLng},
	}
}
