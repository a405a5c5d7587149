package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
)

// StatusRepository provides read access to the status catalog. The catalog
// is reference data seeded by migration; nothing writes to it at runtime.
type StatusRepository struct {
	db DB
}

// NewStatusRepository creates a new status repository
func NewStatusRepository(db DB) *StatusRepository {
	return &StatusRepository{
		db: db,
	}
}

// GetStatusByName resolves a status name to its catalog row
func (r *StatusRepository) GetStatusByName(name string) (*models.Status, error) {
	var status models.Status

	query := `
		SELECT status_id, status_name, color_code
		FROM statuses
		WHERE status_name = $1
	`

	err := r.db.Get(&status, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrStatusNotFound
		}
		return nil, fmt.Errorf("failed to get status by name: %w", err)
	}

	return &status, nil
}

// ListStatuses returns the full status catalog
func (r *StatusRepository) ListStatuses() ([]models.Status, error) {
	var statuses []models.Status

	query := `
		SELECT status_id, status_name, color_code
		FROM statuses
		ORDER BY status_id
	`

	err := r.db.Select(&statuses, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	return statuses, nil
}
