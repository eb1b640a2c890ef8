package settings

import (
	"github.com/punchlog/punchlog-backend-go/internal/pkg/validator"
)

// UpdateSettingsRequest applies a partial update; nil fields keep their
// current value.
type UpdateSettingsRequest struct {
	WorkStartTime        *string  `json:"work_start_time,omitempty"`
	WorkEndTime          *string  `json:"work_end_time,omitempty"`
	LateThresholdMinutes *int     `json:"late_threshold_minutes,omitempty"`
	MinHoursFullDay      *float64 `json:"min_hours_full_day,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkStartTime != nil && !validator.IsValidClockTime(*r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:mm format",
		})
	}

	if r.WorkEndTime != nil && !validator.IsValidClockTime(*r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be in HH:mm format",
		})
	}

	if r.LateThresholdMinutes != nil && *r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_minutes",
			Message: "late_threshold_minutes must not be negative",
		})
	}

	if r.MinHoursFullDay != nil && *r.MinHoursFullDay < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "min_hours_full_day",
			Message: "min_hours_full_day must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the request into the current settings.
func (r *UpdateSettingsRequest) Apply(current WorkSettings) WorkSettings {
	updated := current
	if r.WorkStartTime != nil {
		updated.WorkStartTime = *r.WorkStartTime
	}
	if r.WorkEndTime != nil {
		updated.WorkEndTime = *r.WorkEndTime
	}
	if r.LateThresholdMinutes != nil {
		updated.LateThresholdMinutes = *r.LateThresholdMinutes
	}
	if r.MinHoursFullDay != nil {
		updated.MinHoursFullDay = *r.MinHoursFullDay
	}
	return updated
}
