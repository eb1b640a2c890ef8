package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "08:00", s.WorkStartTime)
	assert.Equal(t, "17:45", s.WorkEndTime)
	assert.Equal(t, 15, s.LateThresholdMinutes)
	assert.Equal(t, 9.0, s.MinHoursFullDay)
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, MinutesOfDay("00:00"))
	assert.Equal(t, 480, MinutesOfDay("08:00"))
	assert.Equal(t, 1065, MinutesOfDay("17:45"))
	assert.Equal(t, 1439, MinutesOfDay("23:59"))
	assert.Equal(t, 0, MinutesOfDay("garbage"))
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	valid := "09:00"
	invalid := "9:00"
	negative := -1

	req := UpdateSettingsRequest{WorkStartTime: &valid}
	assert.NoError(t, req.Validate())

	req = UpdateSettingsRequest{WorkStartTime: &invalid}
	assert.Error(t, req.Validate())

	req = UpdateSettingsRequest{LateThresholdMinutes: &negative}
	assert.Error(t, req.Validate())

	minHours := -0.5
	req = UpdateSettingsRequest{MinHoursFullDay: &minHours}
	assert.Error(t, req.Validate())

	// All fields nil is a valid no-op update.
	req = UpdateSettingsRequest{}
	assert.NoError(t, req.Validate())
}

func TestUpdateSettingsRequest_Apply(t *testing.T) {
	current := Default()

	start := "09:00"
	threshold := 30
	req := UpdateSettingsRequest{
		WorkStartTime:        &start,
		LateThresholdMinutes: &threshold,
	}

	updated := req.Apply(current)
	assert.Equal(t, "09:00", updated.WorkStartTime)
	assert.Equal(t, 30, updated.LateThresholdMinutes)

	// Untouched fields keep their current values.
	assert.Equal(t, current.WorkEndTime, updated.WorkEndTime)
	assert.Equal(t, current.MinHoursFullDay, updated.MinHoursFullDay)

	// The input is not mutated.
	require.Equal(t, Default(), current)
}
