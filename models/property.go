package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	PurposeBuy     = "buy"
	PurposeRent    = "rent"
	PurposeOffPlan = "off-plan"
)

// PlaceholderImage is served by the frontend when a listing has no media.
const PlaceholderImage = "/logo-icon.PNG"

// FlexValue is a JSON value that may be a number or descriptive text,
// e.g. yearBuilt 2024 vs "Under Construction".
type FlexValue struct {
	Number *float64
	Text   string
}

func FlexNumber(n float64) *FlexValue { return &FlexValue{Number: &n} }
func FlexText(s string) *FlexValue    { return &FlexValue{Text: s} }

func (v FlexValue) MarshalJSON() ([]byte, error) {
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	return json.Marshal(v.Text)
}

func (v *FlexValue) UnmarshalJSON(data []byte) error {
	*v = FlexValue{}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Number = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = s
	}
	// anything else (null, object) is treated as absent
	return nil
}

type Address struct {
	Line1   string  `json:"line1"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Overview struct {
	AreaSqft              *float64   `json:"areaSqft,omitempty"`
	AreaText              string     `json:"areaText,omitempty"`
	Status                string     `json:"status,omitempty"`
	YearBuilt             *FlexValue `json:"yearBuilt,omitempty"`
	Garages               *FlexValue `json:"garages,omitempty"`
	BuildingConfiguration string     `json:"buildingConfiguration,omitempty"`
	ProjectType           string     `json:"projectType,omitempty"`
}

func (o Overview) IsEmpty() bool {
	return o.AreaSqft == nil && o.AreaText == "" && o.Status == "" &&
		o.YearBuilt == nil && o.Garages == nil &&
		o.BuildingConfiguration == "" && o.ProjectType == ""
}

// Merge returns a copy of o where every field set on in overwrites the
// stored value. Untouched keys keep their stored value.
func (o Overview) Merge(in Overview) Overview {
	out := o
	if in.AreaSqft != nil {
		out.AreaSqft = in.AreaSqft
	}
	if in.AreaText != "" {
		out.AreaText = in.AreaText
	}
	if in.Status != "" {
		out.Status = in.Status
	}
	if in.YearBuilt != nil {
		out.YearBuilt = in.YearBuilt
	}
	if in.Garages != nil {
		out.Garages = in.Garages
	}
	if in.BuildingConfiguration != "" {
		out.BuildingConfiguration = in.BuildingConfiguration
	}
	if in.ProjectType != "" {
		out.ProjectType = in.ProjectType
	}
	return out
}

type ResidenceOption struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

type FloorPlan struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

type Agent struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type Property struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Slug        string `gorm:"size:255;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description"`

	Image         string                      `gorm:"size:500" json:"image"`
	Photos        datatypes.JSONSlice[string] `json:"photos"`
	Video         string                      `gorm:"size:500" json:"video"`
	FloorPlanFile string                      `gorm:"size:500" json:"floorPlanFile"`
	BrochureFile  string                      `gorm:"size:500" json:"brochureFile"`

	Location     string  `gorm:"size:255" json:"location"`
	Price        float64 `gorm:"type:decimal(14,2);default:0" json:"price"`
	PriceDisplay string  `gorm:"size:100" json:"priceDisplay"`
	Type         string  `gorm:"size:50;default:Villa" json:"type"`
	Purpose      string  `gorm:"size:20;default:buy" json:"purpose"`

	// kept as free text so values like "Studio – 1 – 2 – 3" survive
	Bedrooms  string `gorm:"size:100" json:"bedrooms"`
	Bathrooms string `gorm:"size:100" json:"bathrooms"`

	Address          datatypes.JSONType[Address]             `json:"address"`
	Overview         datatypes.JSONType[Overview]            `json:"overview"`
	ResidenceOptions datatypes.JSONSlice[ResidenceOption]    `json:"residenceOptions"`
	Highlights       datatypes.JSONSlice[string]             `json:"highlights"`
	Features         datatypes.JSONType[map[string][]string] `json:"features"`
	FloorPlans       datatypes.JSONSlice[FloorPlan]          `json:"floorPlans"`
	Agent            datatypes.JSONType[*Agent]              `json:"agent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Property) TableName() string { return "properties" }
