package insight

import "fmt"

// AnalyzeCareer scores career growth (priority #1): coding consistency,
// focus quality and daily career goals. Each sub-rule fires independently;
// the category score is their sum, max 100.
func (a *Analyzer) AnalyzeCareer() Analysis {
	out := Analysis{
		Priority: 1,
		Title:    "🎯 CAREER GROWTH",
		Metrics:  map[string]string{},
	}

	n := len(a.batch)
	if n == 0 {
		return out
	}

	if a.batch.tracked(codingOf) {
		out.HasData = true
		codingYes := a.batch.count(codingOf, Yes)
		rate := float64(codingYes) / float64(n)
		out.Metrics["coding_days"] = fmt.Sprintf("%d/%d days", codingYes, n)

		t := pickTier(codingTiers, rate)
		out.addInsight(fmt.Sprintf(t.insight, codingYes, n), t.tip)
		out.Score += t.score
	}

	if a.batch.tracked(focusOf) {
		out.HasData = true
		sharpDays := a.batch.count(focusOf, FocusSharp)
		multitaskDays := a.batch.count(focusOf, FocusMultitask)
		out.Metrics["focus"] = fmt.Sprintf("%d days sharp, %d days multi-tasking", sharpDays, multitaskDays)

		if sharpDays >= multitaskDays {
			out.addInsight(fmt.Sprintf("✅ Focus: %d days razor sharp - Great!", sharpDays), "")
			out.Score += 35
		} else {
			out.addInsight(
				fmt.Sprintf("⚠️ Focus: %d days multi-tasking - Need improvement", multitaskDays),
				"💡 Tip: Try Pomodoro technique (25 min focus + 5 min break)",
			)
			out.Score += 15
		}
	}

	if a.batch.tracked(careerFocusOf) {
		out.HasData = true
		goodDays := a.batch.count(careerFocusOf, CareerGoalMet)
		lazyDays := a.batch.count(careerFocusOf, CareerLazy)

		// Middle ground (a few good days, few lazy days) adds nothing.
		if goodDays >= 5 {
			out.addInsight(fmt.Sprintf("✅ Achieved daily goals %d days - Fantastic!", goodDays), "")
			out.Score += 30
		} else if lazyDays >= 3 {
			out.addInsight(
				fmt.Sprintf("⚠️ %d lazy days - Let's fix this!", lazyDays),
				"💡 Tip: Break goals into smaller tasks",
			)
			out.Score += 10
		}
	}

	if !out.HasData {
		out.addInsight("ℹ️ No career tracking data found in your tracker", "")
	}

	return out
}
