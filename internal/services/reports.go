package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"alpha-x/internal/database"
	"alpha-x/internal/insight"
	"alpha-x/internal/utils"
)

// NotificationSender delivers assembled reports to the notification channel.
type NotificationSender interface {
	SendMessage(text string) error
	SendReport(report string) error
}

type ReportService struct {
	repository *database.Repository
	sender     NotificationSender
	now        func() time.Time
}

func NewReportService(repo *database.Repository) *ReportService {
	return &ReportService{
		repository: repo,
		now:        time.Now,
	}
}

// WeeklyReport builds the report for the Monday-Sunday week weeksAgo weeks
// back, with the focus-area suffix appended. When the current week has no
// entries yet it falls back to the most recent 7 entries.
func (rs *ReportService) WeeklyReport(weeksAgo int) (string, error) {
	start, end := utils.WeekWindow(rs.now(), weeksAgo)

	batch, err := rs.repository.GetEntriesBetween(start, end)
	if err != nil {
		return "", fmt.Errorf("fetching weekly entries: %w", err)
	}
	log.Printf("📅 Week window: %s, %d entries", utils.FormatDateRange(start, end), len(batch))

	if len(batch) == 0 && weeksAgo == 0 {
		batch, err = rs.repository.GetLastEntries(7)
		if err != nil {
			return "", fmt.Errorf("fetching recent entries: %w", err)
		}
		if len(batch) > 0 {
			log.Printf("ℹ️ Week window empty, using last %d entries", len(batch))
		}
	}

	analyzer := insight.NewAnalyzer(batch)
	report := analyzer.GenerateWeeklyReport()

	if areas := analyzer.FocusAreas(); len(areas) > 0 {
		var suffix strings.Builder
		suffix.WriteString("\n\n🎯 Focus Areas for Next Week:")
		for i, area := range areas {
			suffix.WriteString(fmt.Sprintf("\n   %d. %s", i+1, area))
		}
		report += suffix.String()
	}

	return report, nil
}

// MonthlyReport builds the detailed report over the trailing 30 days,
// falling back to the last 30 entries when the window is empty.
func (rs *ReportService) MonthlyReport() (string, error) {
	start, end := utils.MonthWindow(rs.now())

	batch, err := rs.repository.GetEntriesBetween(start, end)
	if err != nil {
		return "", fmt.Errorf("fetching monthly entries: %w", err)
	}
	log.Printf("📅 Month window: %s, %d entries", utils.FormatDateRange(start, end), len(batch))

	if len(batch) == 0 {
		batch, err = rs.repository.GetLastEntries(30)
		if err != nil {
			return "", fmt.Errorf("fetching recent entries: %w", err)
		}
		if len(batch) > 0 {
			log.Printf("ℹ️ Month window empty, using last %d entries", len(batch))
		}
	}

	return insight.NewAnalyzer(batch).GenerateMonthlyReport(), nil
}

// Deliver hands the report to the notification sink. Retry policy, if any,
// belongs to the caller.
func (rs *ReportService) Deliver(report string) error {
	if rs.sender == nil {
		return fmt.Errorf("no notification sender configured")
	}
	return rs.sender.SendReport(report)
}

// SendWeekly generates and delivers the weekly report in one step, used by
// the scheduler and bot commands.
func (rs *ReportService) SendWeekly(weeksAgo int) error {
	report, err := rs.WeeklyReport(weeksAgo)
	if err != nil {
		return err
	}
	return rs.Deliver(report)
}

// SendMonthly generates and delivers the monthly report in one step.
func (rs *ReportService) SendMonthly() error {
	report, err := rs.MonthlyReport()
	if err != nil {
		return err
	}
	return rs.Deliver(report)
}
