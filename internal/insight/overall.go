package insight

import "fmt"

// AnalyzeOverall builds the narrative-only mood/productivity section. It
// carries no score and never counts toward the aggregate.
func (a *Analyzer) AnalyzeOverall() Analysis {
	out := Analysis{
		Title:   "📈 OVERALL PERFORMANCE",
		Metrics: map[string]string{},
	}

	n := len(a.batch)
	if n == 0 {
		return out
	}

	if a.batch.tracked(performanceOf) {
		better := a.batch.count(performanceOf, PerfBetter)
		worse := a.batch.count(performanceOf, PerfWorse)

		if better >= worse {
			out.addInsight(fmt.Sprintf("Week Trend: Better than yesterday on %d/%d days 🎉", better, n), "")
		} else {
			out.addInsight(fmt.Sprintf("Week Trend: %d worse days - Let's turn this around", worse), "")
		}
	}

	if a.batch.tracked(happinessOf) {
		happy := a.batch.count(happinessOf, HappyYes)
		out.Metrics["happy_days"] = fmt.Sprintf("%d/%d days", happy, n)

		switch {
		case happy >= 5:
			out.addInsight(fmt.Sprintf("Happy Days: %d/%d days - Great! 😊", happy, n), "")
		case happy >= 3:
			out.addInsight(fmt.Sprintf("Happy Days: %d/%d days - Keep going! 💪", happy, n), "")
		default:
			out.addInsight(fmt.Sprintf("Happy Days: Only %d/%d days", happy, n),
				"💡 Remember: Progress > Perfection")
		}
	}

	if a.batch.tracked(dayOverviewOf) {
		hardEnjoyed := a.batch.count(dayOverviewOf, DayHardEnjoyed)
		procrastinated := a.batch.count(dayOverviewOf, DayProcrastinate)

		// Not mutually exclusive: both can fire in the same week.
		if hardEnjoyed >= 4 {
			out.addInsight(fmt.Sprintf("🌟 This Week's Win: Did hard work & enjoyed it %d days!", hardEnjoyed), "")
		}
		if procrastinated >= 3 {
			out.addInsight(fmt.Sprintf("⚠️ Procrastinated %d days - Break tasks smaller", procrastinated), "")
		}
	}

	return out
}
