package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeOverall_PerformanceTrend(t *testing.T) {
	improving := batchOf(7, func(i int, r *DailyRecord) {
		if i < 4 {
			r.Performance = PerfBetter
		} else {
			r.Performance = PerfWorse
		}
	})
	overall := NewAnalyzer(improving).AnalyzeOverall()
	require.Len(t, overall.Insights, 1)
	assert.Contains(t, overall.Insights[0].Message, "Better than yesterday on 4/7")

	declining := batchOf(7, func(i int, r *DailyRecord) {
		if i < 3 {
			r.Performance = PerfBetter
		} else {
			r.Performance = PerfWorse
		}
	})
	overall = NewAnalyzer(declining).AnalyzeOverall()
	require.Len(t, overall.Insights, 1)
	assert.Contains(t, overall.Insights[0].Message, "4 worse days")
}

func TestAnalyzeOverall_HappinessBranches(t *testing.T) {
	tests := []struct {
		happyDays int
		contains  string
	}{
		{5, "Great!"},
		{3, "Keep going!"},
		{1, "Only 1/7 days"},
	}

	for _, tt := range tests {
		batch := batchOf(7, func(i int, r *DailyRecord) {
			if i < tt.happyDays {
				r.Happiness = HappyYes
			} else {
				r.Happiness = HappyNeutral
			}
		})

		overall := NewAnalyzer(batch).AnalyzeOverall()
		require.Len(t, overall.Insights, 1)
		assert.Contains(t, overall.Insights[0].Message, tt.contains)
	}
}

func TestAnalyzeOverall_DayOverviewBothFire(t *testing.T) {
	batch := batchOf(7, func(i int, r *DailyRecord) {
		if i < 4 {
			r.DayOverview = DayHardEnjoyed
		} else {
			r.DayOverview = DayProcrastinate
		}
	})

	overall := NewAnalyzer(batch).AnalyzeOverall()
	require.Len(t, overall.Insights, 2)
	assert.Contains(t, overall.Insights[0].Message, "This Week's Win")
	assert.Contains(t, overall.Insights[1].Message, "Procrastinated 3 days")
}

func TestAnalyzeOverall_NeverScores(t *testing.T) {
	batch := batchOf(7, func(i int, r *DailyRecord) {
		r.Performance = PerfBetter
		r.Happiness = HappyYes
		r.DayOverview = DayHardEnjoyed
	})

	overall := NewAnalyzer(batch).AnalyzeOverall()
	assert.Equal(t, 0, overall.Score)
	assert.False(t, overall.HasData)
}
