package models

import "time"

// Employee represents an employee account
type Employee struct {
	EmployeeID   int64     `json:"employee_id" db:"employee_id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Team         string    `json:"team" db:"team"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never expose in JSON
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// FullName returns the concatenated display name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// RosterEntry is the roster projection returned by the employee listing
type RosterEntry struct {
	EmployeeID int64  `json:"employee_id" db:"employee_id"`
	Name       string `json:"name" db:"name"`
	Team       string `json:"team" db:"team"`
}
