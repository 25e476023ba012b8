package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleWeek mirrors a realistic fully-tracked week:
// career 90, health 90, marriage 60, aggregate 80.
func sampleWeek() Batch {
	sleeps := []string{"7 hrs", "6 hrs", "7 hrs", "8 hrs", "6 hrs", "7 hrs", "6 hrs"}
	marriages := []Label{
		MarriageGood, MarriageOkayish, MarriageGood, MarriageOkayish,
		MarriageGood, MarriageGood, MarriageOkayish,
	}
	codings := []Label{Yes, Yes, No, Yes, Yes, Yes, No}

	return batchOf(7, func(i int, r *DailyRecord) {
		r.Coding = codings[i]
		if i < 4 {
			r.Focus = FocusSharp
		} else {
			r.Focus = FocusMultitask
		}
		if i < 5 {
			r.CareerFocus = CareerGoalMet
		}
		r.Protein = proteinDays(i, 6)
		r.Workout = yesNo(i, 5)
		r.Sleep = sleeps[i]
		r.Sunshine = yesNo(i, 6)
		r.Marriage = marriages[i]
		if i < 5 {
			r.Happiness = HappyYes
		} else {
			r.Happiness = HappyNeutral
		}
	})
}

func TestGenerateWeeklyReport_FullWeek(t *testing.T) {
	report := NewAnalyzer(sampleWeek()).GenerateWeeklyReport()

	assert.Contains(t, report, "📊 Weekly Report (Jan 05-Jan 11, 2026)")
	assert.Contains(t, report, "🎯 CAREER GROWTH")
	assert.Contains(t, report, "💪 HEALTH & FITNESS")
	assert.Contains(t, report, "❤️ MARRIAGE")
	assert.Contains(t, report, "📈 OVERALL PERFORMANCE")
	assert.Contains(t, report, "Coded 5/7 days - Good!")
	assert.Contains(t, report, "🎉 Excellent week overall!")
	assert.Contains(t, report, "📋 Currently tracking: 3 goal(s)")
}

func TestGenerateWeeklyReport_EmptyBatch(t *testing.T) {
	report := NewAnalyzer(nil).GenerateWeeklyReport()

	assert.Equal(t, NoWeeklyData, report)
	assert.NotContains(t, report, "CAREER")
}

func TestGenerateWeeklyReport_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer(sampleWeek())

	first := analyzer.GenerateWeeklyReport()
	second := analyzer.GenerateWeeklyReport()
	assert.Equal(t, first, second)
}

func TestGenerateWeeklyReport_NoScoredCategories(t *testing.T) {
	// Only the narrative field is tracked: no aggregate, no closing line.
	batch := batchOf(7, func(i int, r *DailyRecord) {
		r.Performance = PerfBetter
	})

	report := NewAnalyzer(batch).GenerateWeeklyReport()
	assert.NotContains(t, report, "week overall")
	assert.NotContains(t, report, "Good week")
	assert.NotContains(t, report, "Tough week")

	// Each category block still appears with its informational note, and
	// every block with at least one insight counts toward the summary.
	assert.Contains(t, report, "🎯 CAREER GROWTH")
	assert.Contains(t, report, "ℹ️ No career tracking data")
	assert.Contains(t, report, "💪 HEALTH & FITNESS")
	assert.Contains(t, report, "ℹ️ No health/fitness tracking data")
	assert.Contains(t, report, "❤️ MARRIAGE")
	assert.Contains(t, report, "ℹ️ Not tracking marriage/relationship data")
	assert.Contains(t, report, "📋 Currently tracking: 3 goal(s)")
}

func TestGenerateWeeklyReport_ToughWeekClosing(t *testing.T) {
	batch := batchOf(7, func(i int, r *DailyRecord) {
		r.Coding = yesNo(i, 2)
		r.Marriage = MarriageNotGood
	})

	// Career 10 (+15 if focus tracked, it is not), marriage 30: mean 20.
	report := NewAnalyzer(batch).GenerateWeeklyReport()
	assert.Contains(t, report, "⚠️ Tough week")
}

func TestGenerateWeeklyReport_HeaderWithoutTimestamps(t *testing.T) {
	batch := Batch{{Coding: Yes}, {Coding: Yes}}

	report := NewAnalyzer(batch).GenerateWeeklyReport()
	lines := strings.Split(report, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "📊 Weekly Report", lines[0])
}

func TestFocusAreas_PriorityOrderAndBar(t *testing.T) {
	batch := batchOf(7, func(i int, r *DailyRecord) {
		r.Coding = yesNo(i, 2)          // career 10
		r.Protein = proteinDays(i, 2)   // health 5
		r.Marriage = MarriageNotGood    // marriage 30
	})

	areas := NewAnalyzer(batch).FocusAreas()
	require.Len(t, areas, 3)
	assert.Contains(t, areas[0], "Career")
	assert.Contains(t, areas[1], "Health")
	assert.Contains(t, areas[2], "Marriage")
}

func TestFocusAreas_HighScoresExcluded(t *testing.T) {
	batch := batchOf(7, func(i int, r *DailyRecord) {
		r.Coding = Yes
		r.Focus = FocusSharp
		r.CareerFocus = CareerGoalMet // career 100
		r.Marriage = MarriageGood     // marriage 100
		r.Protein = proteinDays(i, 2) // health 5
	})

	areas := NewAnalyzer(batch).FocusAreas()
	require.Len(t, areas, 1)
	assert.Contains(t, areas[0], "Health")
}

func TestFocusAreas_EmptyBatch(t *testing.T) {
	assert.Empty(t, NewAnalyzer(nil).FocusAreas())
}
