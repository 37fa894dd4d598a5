package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance already recorded for this employee and date")
)
