package models

// Status is one entry of the read-only status catalog
type Status struct {
	StatusID   int    `json:"status_id" db:"status_id"`
	StatusName string `json:"status_name" db:"status_name"`
	ColorCode  string `json:"color_code" db:"color_code"`
}

// Offline is derived, never stored: an employee whose latest interval is
// closed (or who has no intervals) is reported as Offline.
const (
	OfflineStatusName = "Offline"
	OfflineColorCode  = "#808080"
)

// Well-known status names used by the activity endpoints.
const (
	StatusAvailable = "Available"
	StatusIdle      = "Idle"
)
