//go:build unit

package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Default_UsesToday(t *testing.T) {
	params, err := NewParamsBuilder().Build()
	require.NoError(t, err)

	require.NotNil(t, params.Date)
	assert.Equal(t, Today(), *params.Date)
	assert.Nil(t, params.StartDate)
	assert.Nil(t, params.EndDate)
	assert.Nil(t, params.Count)
	assert.False(t, params.Thumbs)
}

func TestBuild_LastModeWins(t *testing.T) {
	d := NewDate(2024, time.December, 12)
	params, err := NewParamsBuilder().Date(d).Count(5).Build()
	require.NoError(t, err)

	require.NotNil(t, params.Count)
	assert.Equal(t, uint8(5), *params.Count)
	assert.Nil(t, params.Date)
}

func TestBuild_CountAfterRange(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.January, 31)
	params, err := NewParamsBuilder().DateRange(start, end).Count(3).Build()
	require.NoError(t, err)

	require.NotNil(t, params.Count)
	assert.Nil(t, params.StartDate)
	assert.Nil(t, params.EndDate)
}

func TestBuild_SingleDate(t *testing.T) {
	d := NewDate(2024, time.December, 12)
	params, err := NewParamsBuilder().Date(d).Build()
	require.NoError(t, err)

	require.NotNil(t, params.Date)
	assert.Equal(t, d, *params.Date)
	assert.Nil(t, params.StartDate)
	assert.Nil(t, params.EndDate)
	assert.Nil(t, params.Count)
}

func TestBuild_DateBounds(t *testing.T) {
	_, err := NewParamsBuilder().Date(NewDate(1995, time.June, 15)).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Date must be between")

	_, err = NewParamsBuilder().Date(NewDate(1995, time.June, 16)).Build()
	assert.NoError(t, err)

	_, err = NewParamsBuilder().Date(Today()).Build()
	assert.NoError(t, err)

	tomorrow := Today()
	tomorrow.Time = tomorrow.Time.AddDate(0, 0, 1)
	_, err = NewParamsBuilder().Date(tomorrow).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuild_RangeOrdering(t *testing.T) {
	start := NewDate(2024, time.December, 31)
	end := NewDate(2024, time.January, 1)
	_, err := NewParamsBuilder().DateRange(start, end).Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Start date cannot be greater than end date")
}

func TestBuild_RangeSameDay(t *testing.T) {
	d := NewDate(2024, time.June, 15)
	params, err := NewParamsBuilder().DateRange(d, d).Build()
	require.NoError(t, err)

	require.NotNil(t, params.StartDate)
	require.NotNil(t, params.EndDate)
	assert.Equal(t, d, *params.StartDate)
	assert.Equal(t, d, *params.EndDate)
}

func TestBuild_ValidRange(t *testing.T) {
	params, err := NewParamsBuilder().
		DateRange(NewDate(2024, time.January, 1), NewDate(2024, time.December, 31)).
		Build()
	require.NoError(t, err)
	assert.Nil(t, params.Date)
	assert.Nil(t, params.Count)
}

func TestBuild_Thumbs(t *testing.T) {
	params, err := NewParamsBuilder().Thumbs(true).Build()
	require.NoError(t, err)
	assert.True(t, params.Thumbs)
}

func TestValues_SingleDate(t *testing.T) {
	params, err := NewParamsBuilder().Date(NewDate(2024, time.December, 12)).Build()
	require.NoError(t, err)

	v := params.Values()
	assert.Equal(t, "2024-12-12", v.Get("date"))
	assert.Equal(t, "false", v.Get("thumbs"))
	assert.False(t, v.Has("start_date"))
	assert.False(t, v.Has("end_date"))
	assert.False(t, v.Has("count"))
}

func TestValues_Range(t *testing.T) {
	params, err := NewParamsBuilder().
		DateRange(NewDate(2024, time.January, 1), NewDate(2024, time.January, 31)).
		Build()
	require.NoError(t, err)

	v := params.Values()
	assert.Equal(t, "2024-01-01", v.Get("start_date"))
	assert.Equal(t, "2024-01-31", v.Get("end_date"))
	assert.False(t, v.Has("date"))
}

func TestValues_Count(t *testing.T) {
	params, err := NewParamsBuilder().Count(10).Thumbs(true).Build()
	require.NoError(t, err)

	v := params.Values()
	assert.Equal(t, "10", v.Get("count"))
	assert.Equal(t, "true", v.Get("thumbs"))
}

func TestParams_JSONRoundTrip(t *testing.T) {
	original, err := NewParamsBuilder().
		Date(NewDate(2024, time.June, 15)).
		Thumbs(true).
		Build()
	require.NoError(t, err)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ApodParams
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestParams_JSONDateFormat(t *testing.T) {
	params, err := NewParamsBuilder().Date(NewDate(2024, time.December, 12)).Build()
	require.NoError(t, err)

	data, err := json.Marshal(params)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "2024-12-12", raw["date"])
	assert.NotContains(t, raw, "count")
	assert.NotContains(t, raw, "start_date")
}
