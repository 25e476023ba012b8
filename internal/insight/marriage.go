package insight

import "fmt"

// AnalyzeMarriage scores the relationship goal (priority #3). Unlike career
// and health the score is one of three absolute tiers (100/60/30) picked by
// the good-day rate; when the field is absent the score stays 0.
func (a *Analyzer) AnalyzeMarriage() Analysis {
	out := Analysis{
		Priority: 3,
		Title:    "❤️ MARRIAGE",
		Metrics:  map[string]string{},
	}

	n := len(a.batch)
	if n == 0 || !a.batch.tracked(marriageOf) {
		out.addInsight("ℹ️ Not tracking marriage/relationship data", "")
		return out
	}

	out.HasData = true

	goodDays := a.batch.count(marriageOf, MarriageGood)
	okayishDays := a.batch.count(marriageOf, MarriageOkayish)
	notGoodDays := a.batch.count(marriageOf, MarriageNotGood)
	out.Metrics["status"] = fmt.Sprintf("Good: %d, Okayish: %d, Not good: %d",
		goodDays, okayishDays, notGoodDays)

	goodRate := float64(goodDays) / float64(n)
	t := pickTier(marriageTiers, goodRate)

	var message string
	switch t.score {
	case 100:
		message = fmt.Sprintf(t.insight, goodDays, n)
	case 60:
		message = fmt.Sprintf(t.insight, goodDays, okayishDays)
	default:
		message = fmt.Sprintf(t.insight, notGoodDays)
	}

	out.addInsight(message, t.tip)
	out.Score = t.score

	return out
}
