package services

import (
	"time"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/database"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/metrics"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/models"
	"github.com/sirupsen/logrus"
)

// LedgerService is the single interval-management component. Every
// endpoint that touches status intervals, web or mobile, goes through it,
// so open/close semantics are decided exactly once:
//
//   - a status change always closes the open interval and opens the new
//     one in a single transaction
//   - a close that matches nothing reports models.ErrIntervalNotFound,
//     never a silent no-op
//   - an unknown status name reports models.ErrStatusNotFound
type LedgerService struct {
	intervals *database.IntervalRepository
	statuses  *database.StatusRepository
	logger    *logrus.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(intervals *database.IntervalRepository, statuses *database.StatusRepository, logger *logrus.Logger) *LedgerService {
	return &LedgerService{
		intervals: intervals,
		statuses:  statuses,
		logger:    logger,
	}
}

// ChangeStatus transitions an employee into the named status. The previous
// open interval, if any, is closed at the same instant the new one starts.
func (s *LedgerService) ChangeStatus(employeeID int64, statusName, note string) (*models.StatusInterval, error) {
	status, err := s.statuses.GetStatusByName(statusName)
	if err != nil {
		return nil, err
	}

	interval, err := s.intervals.ChangeStatus(employeeID, status.StatusID, note)
	if err != nil {
		return nil, err
	}

	metrics.RecordStatusChange(status.StatusName)
	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"status":      status.StatusName,
		"interval_id": interval.ID,
	}).Info("Status changed")

	return interval, nil
}

// Close ends the open interval matching the named status
func (s *LedgerService) Close(employeeID int64, statusName string) error {
	status, err := s.statuses.GetStatusByName(statusName)
	if err != nil {
		return err
	}

	if err := s.intervals.CloseByStatus(employeeID, status.StatusID); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"status":      status.StatusName,
	}).Info("Status interval closed")

	return nil
}

// ClockOut ends whatever interval is open for the employee
func (s *LedgerService) ClockOut(employeeID int64) error {
	if err := s.intervals.CloseOpen(employeeID); err != nil {
		return err
	}

	s.logger.WithField("employee_id", employeeID).Info("Employee clocked out")
	return nil
}

// CurrentStatuses returns the live status-board projection
func (s *LedgerService) CurrentStatuses() ([]models.AgentStatusEntry, error) {
	return s.intervals.CurrentStatuses()
}

// DailyHistory returns the timeline for a date. An empty email selects all
// employees (ascending by employee and start time); a non-empty email
// selects that employee's intervals newest first. An empty date defaults
// to today.
func (s *LedgerService) DailyHistory(date, email string) ([]models.DailyStatusEntry, error) {
	date = defaultToToday(date)
	if email == "" {
		return s.intervals.DailyHistoryAll(date)
	}
	return s.intervals.DailyHistoryByEmail(date, email)
}

// TeamReport returns the closed intervals for a date, optionally filtered
// by team. An empty date defaults to today.
func (s *LedgerService) TeamReport(date, team string) ([]models.ReportEntry, error) {
	return s.intervals.TeamReport(defaultToToday(date), team)
}

func defaultToToday(date string) string {
	if date == "" {
		return time.Now().Format("2006-01-02")
	}
	return date
}
