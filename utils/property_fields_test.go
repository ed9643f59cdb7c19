package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextprime-backend/models"
)

func mapGetter(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 1500000.0, ParsePrice("1500000"))
	assert.Equal(t, 2500000.5, ParsePrice(" 2500000.5 "))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice("on request"))
	assert.Equal(t, 0.0, ParsePrice("-5"))
}

func TestParseYearBuilt(t *testing.T) {
	fv := ParseYearBuilt("2024")
	require.NotNil(t, fv)
	require.NotNil(t, fv.Number)
	assert.Equal(t, 2024.0, *fv.Number)

	fv = ParseYearBuilt("Under Construction")
	require.NotNil(t, fv)
	assert.Nil(t, fv.Number)
	assert.Equal(t, "Under Construction", fv.Text)

	// out of plausible range stays text
	fv = ParseYearBuilt("50")
	require.NotNil(t, fv)
	assert.Equal(t, "50", fv.Text)

	assert.Nil(t, ParseYearBuilt("  "))
}

func TestParseGarages(t *testing.T) {
	fv := ParseGarages("2")
	require.NotNil(t, fv)
	require.NotNil(t, fv.Number)
	assert.Equal(t, 2.0, *fv.Number)

	fv = ParseGarages("1–2")
	require.NotNil(t, fv)
	assert.Equal(t, "1–2", fv.Text)

	fv = ParseGarages("-1")
	require.NotNil(t, fv)
	assert.Equal(t, "-1", fv.Text)
}

func TestParseStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseStringList(`["a","b"]`))
	// non-strings are filtered out of JSON arrays
	assert.Equal(t, []string{"a", "b"}, ParseStringList(`["a", 1, "b", null]`))
	// not JSON: newline separated
	assert.Equal(t, []string{"one", "two"}, ParseStringList("one\n two \n\n"))
	assert.Nil(t, ParseStringList(""))
	assert.Nil(t, ParseStringList("   "))
}

func TestParseJSONField(t *testing.T) {
	features, ok := ParseJSONField[map[string][]string](`{"Interior":["Pool","Gym"]}`)
	require.True(t, ok)
	assert.Equal(t, []string{"Pool", "Gym"}, features["Interior"])

	_, ok = ParseJSONField[map[string][]string](`{broken`)
	assert.False(t, ok)

	_, ok = ParseJSONField[[]models.FloorPlan]("")
	assert.False(t, ok)

	plans, ok := ParseJSONField[[]models.FloorPlan](`[{"id":"a","title":"Type A","image":"/a.png"}]`)
	require.True(t, ok)
	require.Len(t, plans, 1)
	assert.Equal(t, "Type A", plans[0].Title)
}

func TestParseAddressFallbacks(t *testing.T) {
	// nothing provided: flat location wins for line1, defaults elsewhere
	addr := ParseAddress(mapGetter(map[string]string{}), "Palm Jumeirah")
	assert.Equal(t, "Palm Jumeirah", addr.Line1)
	assert.Equal(t, DefaultCity, addr.City)
	assert.Equal(t, DefaultCountry, addr.Country)
	assert.Equal(t, DefaultLat, addr.Lat)
	assert.Equal(t, DefaultLng, addr.Lng)

	// nothing at all: fixed default city
	addr = ParseAddress(mapGetter(map[string]string{}), "")
	assert.Equal(t, DefaultCity, addr.Line1)

	addr = ParseAddress(mapGetter(map[string]string{
		"addressLine1": " 1 Marina Walk ",
		"addressCity":  "Dubai Marina",
		"addressLat":   "25.08",
		"addressLng":   "not a number",
	}), "ignored")
	assert.Equal(t, "1 Marina Walk", addr.Line1)
	assert.Equal(t, "Dubai Marina", addr.City)
	assert.Equal(t, 25.08, addr.Lat)
	assert.Equal(t, DefaultLng, addr.Lng)
}

func TestParseOverviewJSON(t *testing.T) {
	o, present := ParseOverview(mapGetter(map[string]string{
		"overview": `{"areaSqft":120,"status":"Ready","yearBuilt":"Under Construction","garages":2}`,
	}))
	require.True(t, present)
	require.NotNil(t, o.AreaSqft)
	assert.Equal(t, 120.0, *o.AreaSqft)
	assert.Equal(t, "Ready", o.Status)
	require.NotNil(t, o.YearBuilt)
	assert.Equal(t, "Under Construction", o.YearBuilt.Text)
	require.NotNil(t, o.Garages)
	require.NotNil(t, o.Garages.Number)
	assert.Equal(t, 2.0, *o.Garages.Number)
}

func TestParseOverviewJSONTrimsStrings(t *testing.T) {
	o, present := ParseOverview(mapGetter(map[string]string{
		"overview": `{"status":"  Ready  ","areaText":" 120 sqm ","projectType":" Residential "}`,
	}))
	require.True(t, present)
	assert.Equal(t, "Ready", o.Status)
	assert.Equal(t, "120 sqm", o.AreaText)
	assert.Equal(t, "Residential", o.ProjectType)
}

func TestParseOverviewMalformedJSON(t *testing.T) {
	// malformed optional metadata degrades to empty, never errors
	o, present := ParseOverview(mapGetter(map[string]string{"overview": `{nope`}))
	assert.True(t, present)
	assert.True(t, o.IsEmpty())
}

func TestParseOverviewDiscreteFields(t *testing.T) {
	o, present := ParseOverview(mapGetter(map[string]string{
		"overviewAreaSqft":  "250",
		"overviewYearBuilt": "2024",
	}))
	require.True(t, present)
	require.NotNil(t, o.AreaSqft)
	assert.Equal(t, 250.0, *o.AreaSqft)
	require.NotNil(t, o.YearBuilt)
	require.NotNil(t, o.YearBuilt.Number)
	assert.Equal(t, 2024.0, *o.YearBuilt.Number)

	_, present = ParseOverview(mapGetter(map[string]string{"title": "x"}))
	assert.False(t, present)
}

func TestOverviewMergeKeepsUntouchedKeys(t *testing.T) {
	stored := models.Overview{Status: "Ready"}
	area := 120.0
	merged := stored.Merge(models.Overview{AreaSqft: &area})

	assert.Equal(t, "Ready", merged.Status)
	require.NotNil(t, merged.AreaSqft)
	assert.Equal(t, 120.0, *merged.AreaSqft)
}

func TestParseAgent(t *testing.T) {
	agent := ParseAgent(mapGetter(map[string]string{
		"agent": `{"name":"Sara","phone":"+971500000000"}`,
	}))
	require.NotNil(t, agent)
	assert.Equal(t, "Sara", agent.Name)

	// discrete fields need at least a phone
	assert.Nil(t, ParseAgent(mapGetter(map[string]string{"agentName": "Sara"})))

	agent = ParseAgent(mapGetter(map[string]string{"agentPhone": " +971500000000 "}))
	require.NotNil(t, agent)
	assert.Equal(t, "+971500000000", agent.Phone)
}

func TestNormalizePurpose(t *testing.T) {
	assert.Equal(t, models.PurposeBuy, NormalizePurpose(""))
	assert.Equal(t, models.PurposeBuy, NormalizePurpose("sell"))
	assert.Equal(t, models.PurposeRent, NormalizePurpose("rent"))
	assert.Equal(t, models.PurposeOffPlan, NormalizePurpose("off-plan"))
}

func TestAssembleMediaList(t *testing.T) {
	photos := AssembleMediaList("hero.jpg",
		[]string{"a.jpg", "hero.jpg"},
		[]string{"b.jpg", "a.jpg", ""},
	)
	assert.Equal(t, []string{"hero.jpg", "a.jpg", "b.jpg"}, photos)

	// no media at all still yields the hero
	assert.Equal(t, []string{"hero.jpg"}, AssembleMediaList("hero.jpg"))
	assert.Empty(t, AssembleMediaList(""))
}
