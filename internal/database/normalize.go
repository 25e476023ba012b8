package database

import (
	"strings"
	"time"

	"alpha-x/internal/insight"
)

// Field is a canonical entry field name, as stored in the entries table.
type Field string

const (
	FieldTimestamp   Field = "timestamp"
	FieldCoding      Field = "coding"
	FieldFocus       Field = "focus"
	FieldCareerFocus Field = "career_focus"
	FieldProtein     Field = "protein"
	FieldWorkout     Field = "workout"
	FieldSleep       Field = "sleep"
	FieldSunshine    Field = "sunshine"
	FieldMarriage    Field = "marriage"
	FieldPerformance Field = "performance"
	FieldHappiness   Field = "happiness"
	FieldDayOverview Field = "day_overview"
)

// ColumnMapping translates Google Form export headers to canonical fields.
// Headers with no mapping are ignored on import.
var ColumnMapping = map[string]Field{
	"Timestamp":                                  FieldTimestamp,
	"Met Protein intake ?":                       FieldProtein,
	"Did you code more than 1 hour ?":            FieldCoding,
	"Marriage goals ?":                           FieldMarriage,
	"Workout ?":                                  FieldWorkout,
	"You did better overall ?":                   FieldPerformance,
	"15 mins sunshine ?":                         FieldSunshine,
	"Are you happy today with your performance ?": FieldHappiness,
	"Sleep":                FieldSleep,
	"Day Overview ?":       FieldDayOverview,
	"How was your focus ?": FieldFocus,
	"Focused on Career ?":  FieldCareerFocus,
}

// answerLabels maps the exact form answer phrases to engine labels, per
// field. The engine only ever sees labels; any wording drift in the form
// surfaces here as LabelUnknown instead of silently matching nothing.
var answerLabels = map[Field]map[string]insight.Label{
	FieldCoding: {
		"Yes": insight.Yes,
		"No":  insight.No,
	},
	FieldFocus: {
		"Good, razor sharp":                   insight.FocusSharp,
		"I was multi-tasking, not good focus": insight.FocusMultitask,
	},
	FieldCareerFocus: {
		"Good, achieved my today's goal": insight.CareerGoalMet,
		"Lazy, didn't wanted to work":    insight.CareerLazy,
	},
	FieldProtein: {
		">= 100g": insight.ProteinMet,
		"< 100g":  insight.ProteinMissed,
	},
	FieldWorkout: {
		"Yes": insight.Yes,
		"No":  insight.No,
	},
	FieldSunshine: {
		"Yes": insight.Yes,
		"No":  insight.No,
	},
	FieldMarriage: {
		"Good":     insight.MarriageGood,
		"Okayish":  insight.MarriageOkayish,
		"Not good": insight.MarriageNotGood,
	},
	FieldPerformance: {
		"Yes, better than yesterday": insight.PerfBetter,
		"Same as yesterday":          insight.PerfSame,
		"Worst than yesterday":       insight.PerfWorse,
	},
	FieldHappiness: {
		"Yes, I am happy":                   insight.HappyYes,
		"Slightly Neutral, could do better": insight.HappyNeutral,
		"No, I performed bad":               insight.HappyBad,
	},
	FieldDayOverview: {
		"Did hard work - enjoyed":    insight.DayHardEnjoyed,
		"Did hard work - burned out": insight.DayHardBurnedOut,
		"Procrastinated":             insight.DayProcrastinate,
	},
}

// NormalizeAnswer translates one raw form answer into an engine label.
// Empty answers stay empty (field not tracked that day); unrecognized
// phrases become LabelUnknown.
func NormalizeAnswer(field Field, raw string) insight.Label {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if label, ok := answerLabels[field][raw]; ok {
		return label
	}
	return insight.LabelUnknown
}

// timestampLayouts covers the Google Form export format plus plain dates.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a raw form timestamp. A zero time is returned for
// values matching no known layout.
func ParseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// NormalizeRecord builds a DailyRecord from raw canonical-field answers.
// Sleep is kept as free text; the engine extracts the hour count itself.
func NormalizeRecord(raw map[Field]string) insight.DailyRecord {
	return insight.DailyRecord{
		Timestamp:   ParseTimestamp(raw[FieldTimestamp]),
		Coding:      NormalizeAnswer(FieldCoding, raw[FieldCoding]),
		Focus:       NormalizeAnswer(FieldFocus, raw[FieldFocus]),
		CareerFocus: NormalizeAnswer(FieldCareerFocus, raw[FieldCareerFocus]),
		Protein:     NormalizeAnswer(FieldProtein, raw[FieldProtein]),
		Workout:     NormalizeAnswer(FieldWorkout, raw[FieldWorkout]),
		Sleep:       strings.TrimSpace(raw[FieldSleep]),
		Sunshine:    NormalizeAnswer(FieldSunshine, raw[FieldSunshine]),
		Marriage:    NormalizeAnswer(FieldMarriage, raw[FieldMarriage]),
		Performance: NormalizeAnswer(FieldPerformance, raw[FieldPerformance]),
		Happiness:   NormalizeAnswer(FieldHappiness, raw[FieldHappiness]),
		DayOverview: NormalizeAnswer(FieldDayOverview, raw[FieldDayOverview]),
	}
}
