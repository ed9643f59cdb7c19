package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"nextprime-backend/models"
)

// Fallbacks for listings submitted without address details.
const (
	DefaultCity    = "Dubai"
	DefaultCountry = "UAE"
	DefaultLat     = 25.2
	DefaultLng     = 55.3
)

// ParsePrice parses a non-negative price. Empty, non-numeric or negative
// input yields 0 rather than an error.
func ParsePrice(v string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(n) || n < 0 {
		return 0
	}
	return n
}

func parseFlex(v string, min, max float64) *models.FlexValue {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && n == math.Trunc(n) && n >= min && n <= max {
		return models.FlexNumber(n)
	}
	return models.FlexText(s)
}

// ParseYearBuilt keeps plausible years numeric and everything else
// ("Under Construction", "1–2") verbatim as text.
func ParseYearBuilt(v string) *models.FlexValue { return parseFlex(v, 1000, 2100) }

// ParseGarages accepts non-negative integers, otherwise keeps the text.
func ParseGarages(v string) *models.FlexValue { return parseFlex(v, 0, math.MaxFloat64) }

// normalizeFlex re-applies the numeric-range policy to a value decoded from
// JSON, so an out-of-range number degrades to its text form.
func normalizeFlex(fv *models.FlexValue, min, max float64) *models.FlexValue {
	if fv == nil {
		return nil
	}
	if fv.Number != nil {
		return parseFlex(strconv.FormatFloat(*fv.Number, 'f', -1, 64), min, max)
	}
	if fv.Text == "" {
		return nil
	}
	return parseFlex(fv.Text, min, max)
}

// ParseStringList accepts a JSON array of strings or, failing that,
// newline-separated entries. Only strings survive; blanks are dropped.
func ParseStringList(v string) []string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	var raw []any
	if err := json.Unmarshal([]byte(trimmed), &raw); err == nil {
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	var out []string
	for _, line := range strings.Split(trimmed, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseJSONField decodes an optional JSON-encoded form value. Malformed or
// empty input reports ok=false and leaves the zero value; optional metadata
// must never fail the request.
func ParseJSONField[T any](v string) (T, bool) {
	var out T
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return out, false
	}
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// ParseAddress builds the structured address with per-field fallbacks:
// line1 falls back to the flat location field, then to the default city;
// coordinates fall back to the default Dubai coordinate. It never fails.
func ParseAddress(get func(key string) (string, bool), location string) models.Address {
	str := func(key, fallback string) string {
		if v, ok := get(key); ok {
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		}
		return fallback
	}
	coord := func(key string, fallback float64) float64 {
		if v, ok := get(key); ok {
			if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && n != 0 {
				return n
			}
		}
		return fallback
	}

	line1 := str("addressLine1", "")
	if line1 == "" {
		line1 = strings.TrimSpace(location)
	}
	if line1 == "" {
		line1 = DefaultCity
	}
	return models.Address{
		Line1:   line1,
		City:    str("addressCity", DefaultCity),
		Country: str("addressCountry", DefaultCountry),
		Lat:     coord("addressLat", DefaultLat),
		Lng:     coord("addressLng", DefaultLng),
	}
}

// ParseOverview reads the overview either as one JSON-encoded "overview"
// value or from discrete overview* form fields. The second return reports
// whether any overview input was present at all, which gates the
// merge-on-update behavior.
func ParseOverview(get func(key string) (string, bool)) (models.Overview, bool) {
	if raw, ok := get("overview"); ok && strings.TrimSpace(raw) != "" {
		if o, decoded := ParseJSONField[models.Overview](raw); decoded {
			o.AreaText = strings.TrimSpace(o.AreaText)
			o.Status = strings.TrimSpace(o.Status)
			o.BuildingConfiguration = strings.TrimSpace(o.BuildingConfiguration)
			o.ProjectType = strings.TrimSpace(o.ProjectType)
			o.YearBuilt = normalizeFlex(o.YearBuilt, 1000, 2100)
			o.Garages = normalizeFlex(o.Garages, 0, math.MaxFloat64)
			return o, true
		}
		return models.Overview{}, true
	}

	var o models.Overview
	present := false
	if v, ok := get("overviewAreaSqft"); ok {
		present = true
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			o.AreaSqft = &n
		}
	}
	if v, ok := get("overviewAreaText"); ok {
		present = true
		o.AreaText = strings.TrimSpace(v)
	}
	if v, ok := get("overviewStatus"); ok {
		present = true
		o.Status = strings.TrimSpace(v)
	}
	if v, ok := get("overviewYearBuilt"); ok {
		present = true
		o.YearBuilt = ParseYearBuilt(v)
	}
	if v, ok := get("overviewGarages"); ok {
		present = true
		o.Garages = ParseGarages(v)
	}
	if v, ok := get("overviewBuildingConfiguration"); ok {
		present = true
		o.BuildingConfiguration = strings.TrimSpace(v)
	}
	if v, ok := get("overviewProjectType"); ok {
		present = true
		o.ProjectType = strings.TrimSpace(v)
	}
	return o, present
}

// ParseAgent accepts a JSON agent object or discrete agent* fields. A phone
// number is the minimum for an agent to exist.
func ParseAgent(get func(key string) (string, bool)) *models.Agent {
	if raw, ok := get("agent"); ok && strings.TrimSpace(raw) != "" {
		if a, decoded := ParseJSONField[models.Agent](raw); decoded && a.Phone != "" {
			return &a
		}
	}
	if phone, ok := get("agentPhone"); ok && strings.TrimSpace(phone) != "" {
		a := models.Agent{Phone: strings.TrimSpace(phone)}
		if v, ok := get("agentName"); ok {
			a.Name = strings.TrimSpace(v)
		}
		if v, ok := get("agentEmail"); ok {
			a.Email = strings.TrimSpace(v)
		}
		return &a
	}
	return nil
}

// NormalizePurpose maps anything outside the known buckets to "buy".
func NormalizePurpose(v string) string {
	switch strings.TrimSpace(v) {
	case models.PurposeRent:
		return models.PurposeRent
	case models.PurposeOffPlan:
		return models.PurposeOffPlan
	default:
		return models.PurposeBuy
	}
}

// AssembleMediaList builds the gallery: hero first, then the remaining URLs
// in order, de-duplicated (first occurrence wins) with blanks dropped.
func AssembleMediaList(hero string, groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	add(hero)
	for _, group := range groups {
		for _, u := range group {
			add(u)
		}
	}
	return out
}
