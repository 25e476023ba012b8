package insight

import (
	"fmt"
	"strings"
)

// NoWeeklyData is the fixed report body for an empty batch: no analyzer runs,
// no section headers are emitted.
const NoWeeklyData = "❌ No data available for this week"

// GenerateWeeklyReport assembles the full weekly report: header with date
// range, one titled block per category that has data (or at least one
// insight), the overall narrative block, a closing line from the aggregate
// score and a tracking summary.
func (a *Analyzer) GenerateWeeklyReport() string {
	if len(a.batch) == 0 {
		return NoWeeklyData
	}

	var lines []string
	if start, end, ok := a.batch.DateRange(); ok {
		lines = append(lines, fmt.Sprintf("📊 Weekly Report (%s-%s)",
			start.Format("Jan 02"), end.Format("Jan 02, 2006")))
	} else {
		lines = append(lines, "📊 Weekly Report")
	}
	lines = append(lines, "")

	career := a.AnalyzeCareer()
	health := a.AnalyzeHealth()
	marriage := a.AnalyzeMarriage()
	overall := a.AnalyzeOverall()

	trackedGoals := 0
	var trackedScores []int
	for _, section := range []Analysis{career, health, marriage} {
		if section.HasData || len(section.Insights) > 0 {
			trackedGoals++
			lines = append(lines, section.Title)
			lines = appendInsightLines(lines, section.Insights)
			lines = append(lines, "")
		}
		if section.HasData {
			trackedScores = append(trackedScores, section.Score)
		}
	}

	lines = append(lines, overall.Title)
	lines = appendInsightLines(lines, overall.Insights)
	lines = append(lines, "")

	// Aggregate only over categories that actually had data.
	if len(trackedScores) > 0 {
		sum := 0
		for _, s := range trackedScores {
			sum += s
		}
		totalScore := float64(sum) / float64(len(trackedScores))

		switch {
		case totalScore >= 70:
			lines = append(lines, "🎉 Excellent week overall! Keep it up! 💪")
		case totalScore >= 50:
			lines = append(lines, "👍 Good week! Room for improvement 💪")
		default:
			lines = append(lines, "⚠️ Tough week. Focus on one thing at a time 💪")
		}
	}

	if trackedGoals > 0 {
		lines = append(lines, "", fmt.Sprintf("📋 Currently tracking: %d goal(s)", trackedGoals))
	}

	return strings.Join(lines, "\n")
}

func appendInsightLines(lines []string, insights []Insight) []string {
	for _, in := range insights {
		lines = append(lines, in.Message)
		if in.Tip != "" {
			lines = append(lines, in.Tip)
		}
	}
	return lines
}

// focusAreaBar is the score below which a category becomes a focus area.
const focusAreaBar = 60

// maxFocusAreas caps the ranked list. With three scored categories the cap
// cannot currently be hit, but it is enforced for when more are added.
const maxFocusAreas = 3

// FocusAreas returns improvement suggestions for low-scoring categories, in
// priority order (career, health, marriage), at most maxFocusAreas entries.
func (a *Analyzer) FocusAreas() []string {
	if len(a.batch) == 0 {
		return nil
	}

	var areas []string
	if a.AnalyzeCareer().Score < focusAreaBar {
		areas = append(areas, "Career: Improve coding consistency and focus")
	}
	if a.AnalyzeHealth().Score < focusAreaBar {
		areas = append(areas, "Health: Better sleep and workout routine")
	}
	if a.AnalyzeMarriage().Score < focusAreaBar {
		areas = append(areas, "Marriage: More quality time together")
	}

	if len(areas) > maxFocusAreas {
		areas = areas[:maxFocusAreas]
	}
	return areas
}
