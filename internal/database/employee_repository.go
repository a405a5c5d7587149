package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
	"github.com/lib/pq"
)

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	db DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db DB) *EmployeeRepository {
	return &EmployeeRepository{
		db: db,
	}
}

// CreateEmployee inserts a new employee record. The password must already
// be hashed by the caller. Returns models.ErrDuplicateEmail when the email
// is taken.
func (r *EmployeeRepository) CreateEmployee(firstName, lastName, email, team, passwordHash string, isAdmin bool) (*models.Employee, error) {
	employee := &models.Employee{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Team:         team,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	query := `
		INSERT INTO employees (
			first_name, last_name, email, team,
			password_hash, is_admin, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING employee_id
	`

	err := r.db.QueryRow(
		query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Team,
		employee.PasswordHash,
		employee.IsAdmin,
		employee.CreatedAt,
		employee.UpdatedAt,
	).Scan(&employee.EmployeeID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// GetEmployeeByEmail retrieves an employee by email
func (r *EmployeeRepository) GetEmployeeByEmail(email string) (*models.Employee, error) {
	var employee models.Employee

	query := `
		SELECT employee_id, first_name, last_name, email, team,
		       password_hash, is_admin, created_at, updated_at
		FROM employees
		WHERE email = $1
	`

	err := r.db.Get(&employee, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return &employee, nil
}

// GetEmployeeByID retrieves an employee by ID
func (r *EmployeeRepository) GetEmployeeByID(id int64) (*models.Employee, error) {
	var employee models.Employee

	query := `
		SELECT employee_id, first_name, last_name, email, team,
		       password_hash, is_admin, created_at, updated_at
		FROM employees
		WHERE employee_id = $1
	`

	err := r.db.Get(&employee, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return &employee, nil
}

// ListEmployees returns the roster projection: id, display name, team
func (r *EmployeeRepository) ListEmployees() ([]models.RosterEntry, error) {
	var entries []models.RosterEntry

	query := `
		SELECT employee_id,
		       first_name || ' ' || last_name AS name,
		       team
		FROM employees
		ORDER BY employee_id
	`

	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return entries, nil
}

// UpdateTeam reassigns an employee to a new team
func (r *EmployeeRepository) UpdateTeam(id int64, team string) error {
	query := `
		UPDATE employees
		SET team = $1,
		    updated_at = $2
		WHERE employee_id = $3
	`

	result, err := r.db.Exec(query, team, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrEmployeeNotFound
	}

	return nil
}

// UpdatePassword overwrites the stored password hash for an email
func (r *EmployeeRepository) UpdatePassword(email, passwordHash string) error {
	query := `
		UPDATE employees
		SET password_hash = $1,
		    updated_at = $2
		WHERE email = $3
	`

	result, err := r.db.Exec(query, passwordHash, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrEmployeeNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (class 23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
