package attendance

import (
	"context"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/attendance"
	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
)

type AttendanceServiceImpl struct {
	biometric.LogRepository
	settings.SettingsRepository
}

func NewAttendanceService(logRepo biometric.LogRepository, settingsRepo settings.SettingsRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		LogRepository:      logRepo,
		SettingsRepository: settingsRepo,
	}
}

// timePtrToClock safely formats a *time.Time as HH:MM:SS.
func timePtrToClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	events, err := s.LogRepository.ListAll(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	workSettings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records := attendance.DeriveDaily(events, filter.EmployeeNo)
	records = filterByDate(records, filter)

	responses := make([]attendance.DailyAttendanceResponse, 0, len(records))
	for _, record := range records {
		breaks := make([]attendance.BreakResponse, 0, len(record.Breaks))
		for _, b := range record.Breaks {
			breaks = append(breaks, attendance.BreakResponse{
				Start:           b.Start.Format("15:04:05"),
				End:             b.End.Format("15:04:05"),
				DurationMinutes: b.DurationMinutes,
			})
		}

		responses = append(responses, attendance.DailyAttendanceResponse{
			Date:         record.Date.Format("2006-01-02"),
			EmployeeNo:   record.EmployeeNo,
			EmployeeName: record.EmployeeName,
			ClockIn:      timePtrToClock(record.ClockIn),
			ClockOut:     timePtrToClock(record.ClockOut),
			TotalHours:   record.TotalHours,
			IsLate:       attendance.IsLate(record, workSettings),
			IsFullDay:    attendance.IsFullDay(record, workSettings),
			Breaks:       breaks,
			Logs:         record.Logs,
		})
	}

	return attendance.ListAttendanceResponse{
		TotalCount: len(responses),
		Records:    responses,
	}, nil
}

func filterByDate(records []attendance.DailyAttendance, filter attendance.AttendanceFilter) []attendance.DailyAttendance {
	if filter.Date == nil && filter.StartDate == nil && filter.EndDate == nil {
		return records
	}

	kept := make([]attendance.DailyAttendance, 0, len(records))
	for _, record := range records {
		date := record.Date.Format("2006-01-02")
		if filter.Date != nil && *filter.Date != "" && date != *filter.Date {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" && date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && *filter.EndDate != "" && date > *filter.EndDate {
			continue
		}
		kept = append(kept, record)
	}
	return kept
}
