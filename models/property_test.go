package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexValueJSON(t *testing.T) {
	out, err := json.Marshal(FlexNumber(2024))
	require.NoError(t, err)
	assert.Equal(t, "2024", string(out))

	out, err = json.Marshal(FlexText("Under Construction"))
	require.NoError(t, err)
	assert.Equal(t, `"Under Construction"`, string(out))

	var fv FlexValue
	require.NoError(t, json.Unmarshal([]byte("1994"), &fv))
	require.NotNil(t, fv.Number)
	assert.Equal(t, 1994.0, *fv.Number)

	require.NoError(t, json.Unmarshal([]byte(`"1–2"`), &fv))
	assert.Nil(t, fv.Number)
	assert.Equal(t, "1–2", fv.Text)
}

func TestOverviewJSONRoundTrip(t *testing.T) {
	area := 120.5
	o := Overview{
		AreaSqft:  &area,
		Status:    "Ready",
		YearBuilt: FlexText("Under Construction"),
		Garages:   FlexNumber(2),
	}

	out, err := json.Marshal(o)
	require.NoError(t, err)

	var back Overview
	require.NoError(t, json.Unmarshal(out, &back))
	require.NotNil(t, back.AreaSqft)
	assert.Equal(t, 120.5, *back.AreaSqft)
	assert.Equal(t, "Ready", back.Status)
	require.NotNil(t, back.YearBuilt)
	assert.Equal(t, "Under Construction", back.YearBuilt.Text)
	require.NotNil(t, back.Garages)
	require.NotNil(t, back.Garages.Number)
	assert.Equal(t, 2.0, *back.Garages.Number)
}

func TestOverviewMerge(t *testing.T) {
	area := 120.0
	stored := Overview{Status: "Ready", ProjectType: "Residential"}
	merged := stored.Merge(Overview{AreaSqft: &area, Status: "Off-Plan"})

	require.NotNil(t, merged.AreaSqft)
	assert.Equal(t, 120.0, *merged.AreaSqft)
	assert.Equal(t, "Off-Plan", merged.Status)
	assert.Equal(t, "Residential", merged.ProjectType)
}

func TestOverviewIsEmpty(t *testing.T) {
	assert.True(t, Overview{}.IsEmpty())
	assert.False(t, Overview{Status: "Ready"}.IsEmpty())
}
