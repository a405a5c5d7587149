package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SummaryService runs the nightly report summary job: shortly after
// midnight it logs the previous day's closed time per team. The job only
// reads the ledger; intervals are never closed by a timer.
type SummaryService struct {
	cron   *cron.Cron
	ledger *LedgerService
	logger *logrus.Logger
}

// NewSummaryService creates a new summary service
func NewSummaryService(ledger *LedgerService, logger *logrus.Logger) *SummaryService {
	c := cron.New(cron.WithSeconds())

	return &SummaryService{
		cron:   c,
		ledger: ledger,
		logger: logger,
	}
}

// Start registers and starts the nightly job
func (s *SummaryService) Start() error {
	// Five minutes past midnight, every day
	_, err := s.cron.AddFunc("0 5 0 * * *", s.RunDailySummaryNow)
	if err != nil {
		return fmt.Errorf("failed to schedule daily summary: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Summary service started")
	return nil
}

// Stop stops the cron scheduler
func (s *SummaryService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Summary service stopped")
}

// RunDailySummaryNow aggregates and logs yesterday's closed time per team.
// Exposed so the job can be triggered manually.
func (s *SummaryService) RunDailySummaryNow() {
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	entries, err := s.ledger.TeamReport(date, "")
	if err != nil {
		s.logger.WithError(err).Error("Daily summary failed")
		return
	}

	seconds := make(map[string]int64)
	intervals := make(map[string]int)
	for _, entry := range entries {
		seconds[entry.Team] += entry.Duration
		intervals[entry.Team]++
	}

	for team, total := range seconds {
		s.logger.WithFields(logrus.Fields{
			"date":          date,
			"team":          team,
			"closed_sec":    total,
			"interval_rows": intervals[team],
		}).Info("Daily team summary")
	}

	if len(seconds) == 0 {
		s.logger.WithField("date", date).Info("Daily team summary: no closed intervals")
	}
}
