package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusInterval represents one continuous period an employee held one
// status. An open interval has a NULL end_time; at most one interval per
// employee may be open at any time.
type StatusInterval struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	EmployeeID int64      `json:"employee_id" db:"employee_id"`
	StatusID   int        `json:"status_id" db:"status_id"`
	StartTime  time.Time  `json:"start_time" db:"start_time"`
	EndTime    NullTime   `json:"end_time" db:"end_time"`
	Note       NullString `json:"note,omitempty" db:"note"`
}

// IsOpen reports whether the interval is still running
func (si *StatusInterval) IsOpen() bool {
	return !si.EndTime.Valid
}

// AgentStatusEntry is the live status-board projection: one row per
// employee, carrying the current status (or Offline) and a duration in
// seconds that is live (now - start) while the interval is open.
type AgentStatusEntry struct {
	EmployeeID int64  `json:"employee_id" db:"employee_id"`
	Name       string `json:"name" db:"name"`
	StatusName string `json:"status_name" db:"status_name"`
	ColorCode  string `json:"color_code" db:"color_code"`
	Duration   int64  `json:"duration" db:"duration"`
	StartDate  string `json:"start_date" db:"start_date"`
	Team       string `json:"team" db:"team"`
}

// DailyStatusEntry is one interval of a daily timeline. Duration and
// EndTime are NULL while the interval is open; StatusName is NULL when the
// catalog row has been removed out from under the interval (LEFT JOIN,
// preserved from the original projection).
type DailyStatusEntry struct {
	EmployeeID int64      `json:"employee_id" db:"employee_id"`
	Name       string     `json:"name" db:"name"`
	Team       string     `json:"team" db:"team"`
	StatusName NullString `json:"status_name" db:"status_name"`
	StartTime  time.Time  `json:"start_time" db:"start_time"`
	EndTime    NullTime   `json:"end_time" db:"end_time"`
	Email      string     `json:"email,omitempty" db:"email"`
	Duration   NullInt64  `json:"duration" db:"duration"`
}

// ReportEntry is one closed interval of the exportable team report.
// Start and end are time-of-day strings; open intervals never appear.
type ReportEntry struct {
	EmployeeID int64  `json:"employee_id" db:"employee_id"`
	Name       string `json:"name" db:"name"`
	StatusName string `json:"status_name" db:"status_name"`
	ColorCode  string `json:"color_code" db:"color_code"`
	Team       string `json:"team" db:"team"`
	StartTime  string `json:"start_time" db:"start_time"`
	EndTime    string `json:"end_time" db:"end_time"`
	Duration   int64  `json:"duration" db:"duration"`
	Date       string `json:"date" db:"date"`
}
