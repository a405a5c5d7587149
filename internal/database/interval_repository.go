package database

import (
	"fmt"
	"time"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
	"github.com/google/uuid"
)

// IntervalRepository owns the agent_status rows: the time intervals that
// record which status an employee held and when. An open interval (NULL
// end_time) marks the employee's current status; the schema carries a
// partial unique index on (employee_id) WHERE end_time IS NULL, so even a
// racing writer cannot leave two intervals open for one employee.
type IntervalRepository struct {
	db DB
}

// NewIntervalRepository creates a new interval repository
func NewIntervalRepository(db DB) *IntervalRepository {
	return &IntervalRepository{
		db: db,
	}
}

// ChangeStatus atomically closes whatever interval is open for the employee
// and opens a new one for the given status. Both statements run in one
// transaction: a crash mid-transition re-raises the whole transition rather
// than leaving the employee silently offline.
func (r *IntervalRepository) ChangeStatus(employeeID int64, statusID int, note string) (*models.StatusInterval, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	closeQuery := `
		UPDATE agent_status
		SET end_time = $1
		WHERE employee_id = $2
		  AND end_time IS NULL
	`

	now := time.Now()
	if _, err := tx.Exec(closeQuery, now, employeeID); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to close open interval: %w", err)
	}

	interval := &models.StatusInterval{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StatusID:   statusID,
		StartTime:  now,
	}
	if note != "" {
		interval.Note.Valid = true
		interval.Note.String = note
	}

	openQuery := `
		INSERT INTO agent_status (id, employee_id, status_id, start_time, end_time, note)
		VALUES ($1, $2, $3, $4, NULL, $5)
	`

	if _, err := tx.Exec(openQuery, interval.ID, interval.EmployeeID, interval.StatusID, interval.StartTime, interval.Note); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to open interval: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}

	return interval, nil
}

// CloseByStatus sets end_time on the open interval matching the employee
// and status. Returns models.ErrIntervalNotFound when nothing is open for
// that status.
func (r *IntervalRepository) CloseByStatus(employeeID int64, statusID int) error {
	query := `
		UPDATE agent_status
		SET end_time = $1
		WHERE employee_id = $2
		  AND status_id = $3
		  AND end_time IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), employeeID, statusID)
	if err != nil {
		return fmt.Errorf("failed to close interval: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrIntervalNotFound
	}

	return nil
}

// CloseOpen closes the employee's open interval regardless of status
// (clock-out). Returns models.ErrIntervalNotFound when nothing is open.
func (r *IntervalRepository) CloseOpen(employeeID int64) error {
	query := `
		UPDATE agent_status
		SET end_time = $1
		WHERE employee_id = $2
		  AND end_time IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), employeeID)
	if err != nil {
		return fmt.Errorf("failed to close interval: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrIntervalNotFound
	}

	return nil
}

// CurrentStatuses returns one row per employee with intervals, projected
// from the latest interval by start_time: the live status while it is open,
// Offline (grey, closed duration) once it has ended.
func (r *IntervalRepository) CurrentStatuses() ([]models.AgentStatusEntry, error) {
	var entries []models.AgentStatusEntry

	query := `
		SELECT e.employee_id,
		       e.first_name || ' ' || e.last_name AS name,
		       CASE WHEN a.end_time IS NULL THEN s.status_name ELSE 'Offline' END AS status_name,
		       CASE WHEN a.end_time IS NULL THEN s.color_code ELSE '#808080' END AS color_code,
		       CASE WHEN a.end_time IS NULL
		            THEN EXTRACT(EPOCH FROM (NOW() - a.start_time))::bigint
		            ELSE EXTRACT(EPOCH FROM (a.end_time - a.start_time))::bigint
		       END AS duration,
		       TO_CHAR(a.start_time, 'YYYY-MM-DD') AS start_date,
		       e.team
		FROM agent_status a
		JOIN employees e ON e.employee_id = a.employee_id
		JOIN statuses s ON s.status_id = a.status_id
		WHERE a.start_time = (
			SELECT MAX(start_time)
			FROM agent_status
			WHERE employee_id = a.employee_id
		)
		ORDER BY e.employee_id
	`

	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agent statuses: %w", err)
	}

	return entries, nil
}

// DailyHistoryAll returns every interval starting on the given date across
// all employees, ordered by employee then start time ascending.
func (r *IntervalRepository) DailyHistoryAll(date string) ([]models.DailyStatusEntry, error) {
	var entries []models.DailyStatusEntry

	query := `
		SELECT a.employee_id,
		       e.first_name || ' ' || e.last_name AS name,
		       e.team,
		       s.status_name,
		       a.start_time,
		       a.end_time,
		       EXTRACT(EPOCH FROM (a.end_time - a.start_time))::bigint AS duration
		FROM agent_status a
		JOIN employees e ON e.employee_id = a.employee_id
		LEFT JOIN statuses s ON s.status_id = a.status_id
		WHERE a.start_time::date = $1::date
		ORDER BY a.employee_id, a.start_time ASC
	`

	err := r.db.Select(&entries, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee statuses: %w", err)
	}

	return entries, nil
}

// DailyHistoryByEmail returns one employee's intervals for the given date,
// ordered by start time descending (the single-employee timeline view
// renders newest first).
func (r *IntervalRepository) DailyHistoryByEmail(date, email string) ([]models.DailyStatusEntry, error) {
	var entries []models.DailyStatusEntry

	query := `
		SELECT a.employee_id,
		       e.first_name || ' ' || e.last_name AS name,
		       e.team,
		       s.status_name,
		       a.start_time,
		       a.end_time,
		       e.email AS email,
		       EXTRACT(EPOCH FROM (a.end_time - a.start_time))::bigint AS duration
		FROM agent_status a
		JOIN employees e ON e.employee_id = a.employee_id
		LEFT JOIN statuses s ON s.status_id = a.status_id
		WHERE a.start_time::date = $1::date
		  AND e.email = $2
		ORDER BY a.start_time DESC
	`

	err := r.db.Select(&entries, query, date, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employee statuses: %w", err)
	}

	return entries, nil
}

// TeamReport returns the closed intervals for the given date, optionally
// filtered by team. Open intervals never appear in the report.
func (r *IntervalRepository) TeamReport(date, team string) ([]models.ReportEntry, error) {
	var entries []models.ReportEntry

	query := `
		SELECT e.employee_id,
		       e.first_name || ' ' || e.last_name AS name,
		       s.status_name,
		       s.color_code,
		       e.team,
		       TO_CHAR(a.start_time, 'HH24:MI:SS') AS start_time,
		       TO_CHAR(a.end_time, 'HH24:MI:SS') AS end_time,
		       EXTRACT(EPOCH FROM (a.end_time - a.start_time))::bigint AS duration,
		       TO_CHAR(a.start_time, 'YYYY-MM-DD') AS date
		FROM agent_status a
		JOIN employees e ON e.employee_id = a.employee_id
		JOIN statuses s ON s.status_id = a.status_id
		WHERE a.start_time::date = $1::date
		  AND a.end_time IS NOT NULL
	`

	args := []interface{}{date}
	if team != "" {
		query += ` AND e.team = $2`
		args = append(args, team)
	}
	query += ` ORDER BY e.employee_id, a.start_time ASC`

	err := r.db.Select(&entries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report data: %w", err)
	}

	return entries, nil
}
