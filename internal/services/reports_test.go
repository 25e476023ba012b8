package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpha-x/internal/database"
	"alpha-x/internal/insight"
)

type fakeSender struct {
	messages []string
	reports  []string
	err      error
}

func (f *fakeSender) SendMessage(text string) error {
	f.messages = append(f.messages, text)
	return f.err
}

func (f *fakeSender) SendReport(report string) error {
	f.reports = append(f.reports, report)
	return f.err
}

func testManager(t *testing.T) *ServiceManager {
	t.Helper()
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewServiceManager(db)
}

func seedWeek(t *testing.T, sm *ServiceManager, start time.Time, days int) {
	t.Helper()
	for i := 0; i < days; i++ {
		rec := insight.DailyRecord{
			Timestamp: start.AddDate(0, 0, i),
			Coding:    insight.Yes,
			Protein:   insight.ProteinMet,
			Workout:   insight.Yes,
			Sleep:     "7 hrs",
			Marriage:  insight.MarriageGood,
		}
		require.NoError(t, sm.repository.SaveEntry(rec))
	}
}

func TestWeeklyReport_CurrentWeek(t *testing.T) {
	sm := testManager(t)
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	seedWeek(t, sm, monday, 7)

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}

	report, err := sm.Report.WeeklyReport(0)
	require.NoError(t, err)

	assert.Contains(t, report, "📊 Weekly Report (Jan 05-Jan 11, 2026)")
	assert.Contains(t, report, "CAREER")
	assert.Contains(t, report, "HEALTH & FITNESS")
	assert.Contains(t, report, "MARRIAGE")
}

func TestWeeklyReport_WeeksAgo(t *testing.T) {
	sm := testManager(t)
	prevMonday := time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC)
	seedWeek(t, sm, prevMonday, 7)

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}

	report, err := sm.Report.WeeklyReport(1)
	require.NoError(t, err)
	assert.Contains(t, report, "📊 Weekly Report (Dec 29-Jan 04, 2026)")

	// The current week has no entries, but past windows never fall back.
	report, err = sm.Report.WeeklyReport(2)
	require.NoError(t, err)
	assert.Contains(t, report, insight.NoWeeklyData)
}

func TestWeeklyReport_FallsBackToRecentEntries(t *testing.T) {
	sm := testManager(t)
	// Entries live two weeks before "now"; the current window is empty.
	seedWeek(t, sm, time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC), 5)

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}

	report, err := sm.Report.WeeklyReport(0)
	require.NoError(t, err)
	assert.Contains(t, report, "📊 Weekly Report")
	assert.NotContains(t, report, insight.NoWeeklyData)
}

func TestWeeklyReport_AppendsFocusAreas(t *testing.T) {
	sm := testManager(t)
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	// A rough week: every scored category lands under the focus bar.
	for i := 0; i < 7; i++ {
		rec := insight.DailyRecord{
			Timestamp: monday.AddDate(0, 0, i),
			Coding:    insight.No,
			Protein:   insight.ProteinMissed,
			Workout:   insight.No,
			Sleep:     "5 hrs",
			Marriage:  insight.MarriageNotGood,
		}
		require.NoError(t, sm.repository.SaveEntry(rec))
	}

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}

	report, err := sm.Report.WeeklyReport(0)
	require.NoError(t, err)
	assert.Contains(t, report, "🎯 Focus Areas for Next Week:")
	assert.Contains(t, report, "1. ")
}

func TestWeeklyReport_EmptyDatabase(t *testing.T) {
	sm := testManager(t)
	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}

	report, err := sm.Report.WeeklyReport(0)
	require.NoError(t, err)
	assert.Equal(t, insight.NoWeeklyData, report)
}

func TestMonthlyReport(t *testing.T) {
	sm := testManager(t)
	seedWeek(t, sm, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 10)

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	}

	report, err := sm.Report.MonthlyReport()
	require.NoError(t, err)
	assert.Contains(t, report, "📊 Monthly Performance Report")
	assert.Contains(t, report, "📈 Days Tracked: 10/30")
}

func TestMonthlyReport_FallsBackToRecentEntries(t *testing.T) {
	sm := testManager(t)
	seedWeek(t, sm, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), 7)

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	}

	report, err := sm.Report.MonthlyReport()
	require.NoError(t, err)
	assert.NotContains(t, report, insight.NoMonthlyData)
	assert.Contains(t, report, "📈 Days Tracked: 7/30")
}

func TestDeliver_RequiresSender(t *testing.T) {
	sm := testManager(t)

	err := sm.Report.Deliver("report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no notification sender")
}

func TestSendWeekly_DeliversThroughSender(t *testing.T) {
	sm := testManager(t)
	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	seedWeek(t, sm, monday, 7)

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}

	sender := &fakeSender{}
	sm.SetNotificationSender(sender)

	require.NoError(t, sm.Report.SendWeekly(0))
	require.Len(t, sender.reports, 1)
	assert.Contains(t, sender.reports[0], "📊 Weekly Report")
}

func TestSendMonthly_DeliversThroughSender(t *testing.T) {
	sm := testManager(t)
	seedWeek(t, sm, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), 7)

	sm.Report.now = func() time.Time {
		return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	}

	sender := &fakeSender{}
	sm.SetNotificationSender(sender)

	require.NoError(t, sm.Report.SendMonthly())
	require.Len(t, sender.reports, 1)
	assert.Contains(t, sender.reports[0], "📊 Monthly Performance Report")
}
