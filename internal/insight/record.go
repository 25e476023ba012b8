package insight

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Label is a normalized questionnaire answer. Raw form phrases are translated
// to labels at the data-source boundary; the engine matches labels only, so
// wording drift in the form never reaches the scoring rules.
type Label string

const (
	// LabelUnknown marks an answer that was present but matched no known
	// phrase. It counts toward "field is tracked" and nothing else.
	LabelUnknown Label = "unknown"

	Yes Label = "yes"
	No  Label = "no"

	FocusSharp     Label = "razor_sharp"
	FocusMultitask Label = "multi_tasking"

	CareerGoalMet Label = "goal_achieved"
	CareerLazy    Label = "lazy"

	ProteinMet    Label = "protein_met"
	ProteinMissed Label = "protein_missed"

	MarriageGood    Label = "good"
	MarriageOkayish Label = "okayish"
	MarriageNotGood Label = "not_good"

	PerfBetter Label = "better"
	PerfSame   Label = "same"
	PerfWorse  Label = "worse"

	HappyYes     Label = "happy"
	HappyNeutral Label = "neutral"
	HappyBad     Label = "bad"

	DayHardEnjoyed   Label = "hard_work_enjoyed"
	DayHardBurnedOut Label = "hard_work_burned_out"
	DayProcrastinate Label = "procrastinated"
)

// DailyRecord is one row of the tracking log. An empty label (or empty sleep
// string) means the field was not tracked that day.
type DailyRecord struct {
	Timestamp   time.Time
	Coding      Label
	Focus       Label
	CareerFocus Label
	Protein     Label
	Workout     Label
	Sleep       string // free text, e.g. "7 hrs"
	Sunshine    Label
	Marriage    Label
	Performance Label
	Happiness   Label
	DayOverview Label
}

// Batch is the ordered sequence of records for one reporting period.
type Batch []DailyRecord

// Field accessors used by the generic batch helpers.
func codingOf(r DailyRecord) Label      { return r.Coding }
func focusOf(r DailyRecord) Label       { return r.Focus }
func careerFocusOf(r DailyRecord) Label { return r.CareerFocus }
func proteinOf(r DailyRecord) Label     { return r.Protein }
func workoutOf(r DailyRecord) Label     { return r.Workout }
func sunshineOf(r DailyRecord) Label    { return r.Sunshine }
func marriageOf(r DailyRecord) Label    { return r.Marriage }
func performanceOf(r DailyRecord) Label { return r.Performance }
func happinessOf(r DailyRecord) Label   { return r.Happiness }
func dayOverviewOf(r DailyRecord) Label { return r.DayOverview }

// count returns how many records answered want for the given field.
func (b Batch) count(get func(DailyRecord) Label, want Label) int {
	n := 0
	for _, r := range b {
		if get(r) == want {
			n++
		}
	}
	return n
}

// tracked reports whether the field appears with any value in the batch.
func (b Batch) tracked(get func(DailyRecord) Label) bool {
	for _, r := range b {
		if get(r) != "" {
			return true
		}
	}
	return false
}

func (b Batch) sleepTracked() bool {
	for _, r := range b {
		if r.Sleep != "" {
			return true
		}
	}
	return false
}

var digitsRe = regexp.MustCompile(`\d+`)

// sleepHours extracts the first integer substring from each sleep answer.
// Rows without a parseable number contribute no sample.
func (b Batch) sleepHours() []int {
	var hours []int
	for _, r := range b {
		m := digitsRe.FindString(r.Sleep)
		if m == "" {
			continue
		}
		h, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		hours = append(hours, h)
	}
	return hours
}

// DateRange returns the min/max timestamps of the batch. ok is false when no
// record carries a timestamp, which degrades only the report header.
func (b Batch) DateRange() (start, end time.Time, ok bool) {
	for _, r := range b {
		if r.Timestamp.IsZero() {
			continue
		}
		if !ok || r.Timestamp.Before(start) {
			start = r.Timestamp
		}
		if !ok || r.Timestamp.After(end) {
			end = r.Timestamp
		}
		ok = true
	}
	return start, end, ok
}

// sortedByTimestamp returns a copy ordered by timestamp, oldest first.
func (b Batch) sortedByTimestamp() Batch {
	sorted := make(Batch, len(b))
	copy(sorted, b)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}
