package insight

import "fmt"

// AnalyzeHealth scores health & fitness (priority #2): protein, workout,
// sleep and sunshine. Sub-scores are additive, max 100.
func (a *Analyzer) AnalyzeHealth() Analysis {
	out := Analysis{
		Priority: 2,
		Title:    "💪 HEALTH & FITNESS",
		Metrics:  map[string]string{},
	}

	n := len(a.batch)
	if n == 0 {
		return out
	}

	if a.batch.tracked(proteinOf) {
		out.HasData = true
		proteinMet := a.batch.count(proteinOf, ProteinMet)
		rate := float64(proteinMet) / float64(n)
		out.Metrics["protein"] = fmt.Sprintf("%d/%d days", proteinMet, n)

		t := pickTier(proteinTiers, rate)
		out.addInsight(fmt.Sprintf(t.insight, proteinMet, n), t.tip)
		out.Score += t.score
	}

	if a.batch.tracked(workoutOf) {
		out.HasData = true
		workoutDays := a.batch.count(workoutOf, Yes)
		rate := float64(workoutDays) / float64(n)
		out.Metrics["workout"] = fmt.Sprintf("%d/%d days", workoutDays, n)

		t := pickTier(workoutTiers, rate)
		out.addInsight(fmt.Sprintf(t.insight, workoutDays, n), t.tip)
		out.Score += t.score
	}

	if a.batch.sleepTracked() {
		out.HasData = true
		// Rows without a parseable hour count are excluded from the average;
		// with zero parseable rows the rule is skipped entirely.
		if hours := a.batch.sleepHours(); len(hours) > 0 {
			sum := 0
			for _, h := range hours {
				sum += h
			}
			avg := float64(sum) / float64(len(hours))
			out.Metrics["avg_sleep"] = fmt.Sprintf("%.1f hrs", avg)

			t := pickTier(sleepTiers, avg)
			out.addInsight(fmt.Sprintf(t.insight, avg), t.tip)
			out.Score += t.score
		}
	}

	if a.batch.tracked(sunshineOf) {
		out.HasData = true
		sunshineDays := a.batch.count(sunshineOf, Yes)

		// Only the positive branch scores here.
		if sunshineDays >= 5 {
			out.addInsight(fmt.Sprintf("✅ Sunshine: %d/%d days - Good!", sunshineDays, n), "")
			out.Score += 25
		} else {
			out.addInsight(
				fmt.Sprintf("⚠️ Sunshine: %d/%d days", sunshineDays, n),
				"💡 Tip: Morning sun boosts vitamin D & mood",
			)
		}
	}

	if !out.HasData {
		out.addInsight("ℹ️ No health/fitness tracking data found in your tracker", "")
	}

	return out
}
