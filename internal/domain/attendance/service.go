package attendance

import "context"

// AttendanceService derives daily attendance records from the stored event
// list.
type AttendanceService interface {
	// List derives attendance records, optionally filtered by employee
	// number and date or date range, most recent day first.
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
