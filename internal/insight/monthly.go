package insight

import (
	"fmt"
	"strings"
)

// NoMonthlyData is the fixed monthly report body for an empty batch.
const NoMonthlyData = "❌ No data available for monthly analysis"

// trendMinDays gates week-over-week trends: with fewer rows than one week
// the first/last split is meaningless and trends are omitted entirely.
const trendMinDays = 7

// Trend is a week-over-week delta for one metric: label count in the first
// seven rows vs the last seven rows of the sorted batch.
type Trend struct {
	Start  int
	End    int
	Change int
}

// Trends computes week-over-week deltas for coding, protein and workout.
// Returns nil for batches shorter than trendMinDays.
func (a *Analyzer) Trends() map[string]Trend {
	if len(a.batch) < trendMinDays {
		return nil
	}

	sorted := a.batch.sortedByTimestamp()
	first := sorted[:trendMinDays]
	last := sorted[len(sorted)-trendMinDays:]

	trends := map[string]Trend{}
	if a.batch.tracked(codingOf) {
		trends["coding"] = trendBetween(first, last, codingOf, Yes)
	}
	if a.batch.tracked(proteinOf) {
		trends["protein"] = trendBetween(first, last, proteinOf, ProteinMet)
	}
	if a.batch.tracked(workoutOf) {
		trends["workout"] = trendBetween(first, last, workoutOf, Yes)
	}
	return trends
}

func trendBetween(first, last Batch, get func(DailyRecord) Label, want Label) Trend {
	start := first.count(get, want)
	end := last.count(get, want)
	return Trend{Start: start, End: end, Change: end - start}
}

// GenerateMonthlyReport assembles the detailed monthly report: per-metric
// percentage lines, trend arrows, achievement and improvement blocks and a
// monthly closing line.
func (a *Analyzer) GenerateMonthlyReport() string {
	if len(a.batch) == 0 {
		return NoMonthlyData
	}

	n := len(a.batch)
	divider := strings.Repeat("═", 60)
	rule := strings.Repeat("-", 60)

	lines := []string{"📊 Monthly Performance Report"}
	if start, end, ok := a.batch.DateRange(); ok {
		lines = append(lines, fmt.Sprintf("📅 %s - %s",
			start.Format("Jan 02"), end.Format("Jan 02, 2006")))
	}
	lines = append(lines,
		fmt.Sprintf("📈 Days Tracked: %d/30", n),
		"",
		divider,
		"",
	)

	career := a.AnalyzeCareer()
	health := a.AnalyzeHealth()
	marriage := a.AnalyzeMarriage()
	trends := a.Trends()

	// Career growth.
	if career.HasData {
		lines = append(lines, "🎯 CAREER GROWTH (Priority #1)", rule)
	}
	if a.batch.tracked(codingOf) {
		codingYes := a.batch.count(codingOf, Yes)
		rate := float64(codingYes) / float64(n) * 100

		switch {
		case rate >= 85:
			lines = append(lines, fmt.Sprintf("✅ Coding: %d/%d days (%.0f%%) - Outstanding!", codingYes, n, rate))
		case rate >= 70:
			lines = append(lines, fmt.Sprintf("✅ Coding: %d/%d days (%.0f%%) - Good consistency", codingYes, n, rate))
		default:
			lines = append(lines, fmt.Sprintf("⚠️ Coding: %d/%d days (%.0f%%) - Needs improvement", codingYes, n, rate))
		}

		if t, ok := trends["coding"]; ok {
			switch {
			case t.Change > 0:
				lines = append(lines, fmt.Sprintf("📈 Trend: +%d days from start to end of month (Improving!)", t.Change))
			case t.Change < 0:
				lines = append(lines, fmt.Sprintf("📉 Trend: %d days from start to end of month (Declining)", t.Change))
			default:
				lines = append(lines, "➡️ Trend: Stable throughout the month")
			}
		}
	}
	if a.batch.tracked(focusOf) {
		sharpDays := a.batch.count(focusOf, FocusSharp)
		multitaskDays := a.batch.count(focusOf, FocusMultitask)
		sharpRate := float64(sharpDays) / float64(n) * 100

		lines = append(lines, fmt.Sprintf("🎯 Focus: %d days sharp (%.0f%%), %d days multi-tasking",
			sharpDays, sharpRate, multitaskDays))
		if sharpDays >= multitaskDays {
			lines = append(lines, "💪 Focus quality trending positive!")
		} else {
			lines = append(lines, "⚠️ Focus needs work - try time-blocking")
		}
	}
	if a.batch.tracked(careerFocusOf) {
		goalDays := a.batch.count(careerFocusOf, CareerGoalMet)
		lazyDays := a.batch.count(careerFocusOf, CareerLazy)
		lines = append(lines, fmt.Sprintf("🏆 Goals: Achieved on %d days, %d lazy days", goalDays, lazyDays))
	}
	if career.HasData {
		lines = append(lines, "")
	}

	// Health & fitness.
	if health.HasData {
		lines = append(lines, "💪 HEALTH & FITNESS (Priority #2)", rule)
	}
	if a.batch.tracked(proteinOf) {
		proteinMet := a.batch.count(proteinOf, ProteinMet)
		rate := float64(proteinMet) / float64(n) * 100
		lines = append(lines, fmt.Sprintf("🍗 Protein: %d/%d days (%.0f%%) met 100g target", proteinMet, n, rate))

		if t, ok := trends["protein"]; ok && t.Change > 0 {
			lines = append(lines, fmt.Sprintf("📈 Improved by %d days from start to end!", t.Change))
		}
	}
	if a.batch.tracked(workoutOf) {
		workoutDays := a.batch.count(workoutOf, Yes)
		rate := float64(workoutDays) / float64(n) * 100
		lines = append(lines, fmt.Sprintf("🏋️ Workouts: %d/%d days (%.0f%%)", workoutDays, n, rate))

		if t, ok := trends["workout"]; ok {
			if t.Change > 0 {
				lines = append(lines, fmt.Sprintf("📈 Workout frequency increased by %d days!", t.Change))
			} else if t.Change < 0 {
				lines = append(lines, fmt.Sprintf("📉 Workout frequency decreased by %d days", -t.Change))
			}
		}
	}
	if hours := a.batch.sleepHours(); len(hours) > 0 {
		sum, ideal := 0, 0
		for _, h := range hours {
			sum += h
			if h >= 7 && h <= 8 {
				ideal++
			}
		}
		avg := float64(sum) / float64(len(hours))
		lines = append(lines, fmt.Sprintf("😴 Sleep: Avg %.1f hrs/night, %d nights in ideal range (7-8 hrs)", avg, ideal))
		if avg < 7 {
			lines = append(lines, "⚠️ Sleep deficit detected - prioritize recovery!")
		}
	}
	if a.batch.tracked(sunshineOf) {
		sunshineDays := a.batch.count(sunshineOf, Yes)
		rate := float64(sunshineDays) / float64(n) * 100
		lines = append(lines, fmt.Sprintf("☀️ Sunshine: %d/%d days (%.0f%%)", sunshineDays, n, rate))
	}
	if health.HasData {
		lines = append(lines, "")
	}

	// Marriage.
	if marriage.HasData {
		lines = append(lines, "❤️ MARRIAGE (Priority #3)", rule)

		goodDays := a.batch.count(marriageOf, MarriageGood)
		okayishDays := a.batch.count(marriageOf, MarriageOkayish)
		notGoodDays := a.batch.count(marriageOf, MarriageNotGood)
		goodRate := float64(goodDays) / float64(n) * 100

		lines = append(lines, fmt.Sprintf("💑 Good: %d days (%.0f%%), Okayish: %d, Not good: %d",
			goodDays, goodRate, okayishDays, notGoodDays))
		switch {
		case goodRate >= 70:
			lines = append(lines, "💝 Strong relationship focus this month!")
		case goodRate >= 50:
			lines = append(lines, "💛 Moderate focus - room for improvement")
		default:
			lines = append(lines, "⚠️ Relationship needs more attention")
		}
		lines = append(lines, "")
	}

	// Overall performance.
	lines = append(lines, "📈 OVERALL MONTHLY PERFORMANCE", rule)
	if a.batch.tracked(happinessOf) {
		happy := a.batch.count(happinessOf, HappyYes)
		happyRate := float64(happy) / float64(n) * 100

		lines = append(lines, fmt.Sprintf("😊 Happy Days: %d/%d (%.0f%%)", happy, n, happyRate))
		switch {
		case happyRate >= 70:
			lines = append(lines, "🎉 Great month overall!")
		case happyRate >= 50:
			lines = append(lines, "👍 Decent month, keep pushing!")
		default:
			lines = append(lines, "💪 Tough month, but you're tracking and improving!")
		}
	}
	if a.batch.tracked(performanceOf) {
		better := a.batch.count(performanceOf, PerfBetter)
		worse := a.batch.count(performanceOf, PerfWorse)
		betterRate := float64(better) / float64(n) * 100
		lines = append(lines, fmt.Sprintf("📊 Better Days: %d (%.0f%%), Worse: %d", better, betterRate, worse))
	}
	if a.batch.tracked(dayOverviewOf) {
		hardEnjoyed := a.batch.count(dayOverviewOf, DayHardEnjoyed)
		procrastinated := a.batch.count(dayOverviewOf, DayProcrastinate)
		burnedOut := a.batch.count(dayOverviewOf, DayHardBurnedOut)
		lines = append(lines, fmt.Sprintf("💼 Work Quality: %d days enjoyed, %d procrastinated, %d burned out",
			hardEnjoyed, procrastinated, burnedOut))
	}

	lines = append(lines, "", divider, "", "🎯 KEY MONTHLY INSIGHTS", "")

	// Top achievements.
	var achievements []string
	if a.batch.tracked(proteinOf) && float64(a.batch.count(proteinOf, ProteinMet))/float64(n) >= 0.8 {
		achievements = append(achievements, "🏆 Protein target - consistently hit 100g!")
	}
	if a.batch.tracked(workoutOf) && float64(a.batch.count(workoutOf, Yes))/float64(n) >= 0.7 {
		achievements = append(achievements, "🏆 Workout consistency - excellent dedication!")
	}
	if a.batch.tracked(codingOf) && float64(a.batch.count(codingOf, Yes))/float64(n) >= 0.8 {
		achievements = append(achievements, "🏆 Coding discipline - great consistency!")
	}
	if len(achievements) > 0 {
		lines = append(lines, "✨ Top Achievements:")
		for _, achievement := range achievements {
			lines = append(lines, "   "+achievement)
		}
		lines = append(lines, "")
	}

	// Areas for improvement.
	var improvements []string
	if hours := a.batch.sleepHours(); len(hours) > 0 {
		sum := 0
		for _, h := range hours {
			sum += h
		}
		if float64(sum)/float64(len(hours)) < 7 {
			improvements = append(improvements, "😴 Sleep - aim for 7-8 hours consistently")
		}
	}
	if a.batch.tracked(focusOf) &&
		a.batch.count(focusOf, FocusMultitask) > a.batch.count(focusOf, FocusSharp) {
		improvements = append(improvements, "🎯 Focus - reduce multi-tasking, use time-blocking")
	}
	if len(improvements) > 0 {
		lines = append(lines, "💡 Focus Areas for Next Month:")
		for _, improvement := range improvements {
			lines = append(lines, "   "+improvement)
		}
		lines = append(lines, "")
	}

	// Aggregate over tracked categories only.
	totalScore := 0.0
	tracked := 0
	for _, section := range []Analysis{career, health, marriage} {
		if section.HasData {
			totalScore += float64(section.Score)
			tracked++
		}
	}
	if tracked > 0 {
		totalScore /= float64(tracked)
	}

	lines = append(lines, fmt.Sprintf("📋 Tracking %d goal area(s) this month", tracked), "")

	switch {
	case totalScore >= 70:
		lines = append(lines, "🎉 EXCELLENT MONTH! Keep up the momentum!")
	case totalScore >= 50:
		lines = append(lines, "👍 SOLID MONTH! Small tweaks will make it great!")
	default:
		lines = append(lines, "💪 CHALLENGING MONTH! Every day is a new start!")
	}

	lines = append(lines, "", "🚀 Next Month Goal: Build on strengths, improve weak areas!")

	return strings.Join(lines, "\n")
}
