package insight

// scoreTier is one bracket of a rate or average rule. Tiers are evaluated in
// order; the first whose bounds contain the value supplies the sub-score and
// the insight text. A zero max means unbounded above. A zero-valued final
// tier acts as the catch-all.
type scoreTier struct {
	min     float64
	max     float64
	score   int
	insight string // fmt template, args depend on the rule
	tip     string // pre-rendered tip line, empty when the tier has none
}

func pickTier(tiers []scoreTier, v float64) scoreTier {
	for _, t := range tiers {
		if v >= t.min && (t.max == 0 || v <= t.max) {
			return t
		}
	}
	return scoreTier{}
}

// Career: coding rate over the batch.
var codingTiers = []scoreTier{
	{min: 0.85, score: 35, insight: "✅ Coded %d/%d days - Excellent!"},
	{min: 0.70, score: 25, insight: "✅ Coded %d/%d days - Good!"},
	{score: 10, insight: "⚠️ Only coded %d/%d days - Need more consistency"},
}

// Health: protein target rate.
var proteinTiers = []scoreTier{
	{min: 0.85, score: 25, insight: "✅ Protein: %d/%d days >= 100g - Excellent!"},
	{min: 0.60, score: 15, insight: "✅ Protein: %d/%d days >= 100g - Good!"},
	{score: 5, insight: "⚠️ Protein: Only %d/%d days >= 100g",
		tip: "💡 Tip: Prep protein-rich meals in advance"},
}

// Health: workout rate.
var workoutTiers = []scoreTier{
	{min: 0.70, score: 25, insight: "✅ Workout: %d/%d days - Great consistency!"},
	{min: 0.50, score: 15, insight: "⚠️ Workout: %d/%d days - Could be better"},
	{score: 5, insight: "⚠️ Workout: Only %d/%d days",
		tip: "💡 Tip: Start with 20-min daily workouts"},
}

// Health: average sleep hours. The top tier is a closed band.
var sleepTiers = []scoreTier{
	{min: 7, max: 9, score: 25, insight: "✅ Sleep: Avg %.1f hrs - Perfect!"},
	{min: 6, score: 15, insight: "⚠️ Sleep: Avg %.1f hrs (Target: 7-8 hrs)",
		tip: "💡 Tip: Sleep earlier for better recovery"},
	{score: 5, insight: "⚠️ Sleep: Avg %.1f hrs - Too low!",
		tip: "💡 Tip: Prioritize sleep - it affects everything"},
}

// Marriage: good-day rate. Unlike the tables above these scores are absolute
// tiers, not additive contributions.
var marriageTiers = []scoreTier{
	{min: 0.70, score: 100, insight: "✅ Strong relationship focus: %d/%d good days"},
	{min: 0.40, score: 60, insight: "⚠️ Moderate performance: %d good, %d okayish days",
		tip: "💡 Tip: Schedule quality time together"},
	{score: 30, insight: "⚠️ Needs attention: %d not good days",
		tip: "💡 Tip: Have an open conversation about expectations"},
}
