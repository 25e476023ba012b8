package insight

import "time"

// batchOf builds an n-day batch starting Mon Jan 5 2026, one record per day.
func batchOf(n int, fill func(i int, r *DailyRecord)) Batch {
	base := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	b := make(Batch, n)
	for i := range b {
		b[i].Timestamp = base.AddDate(0, 0, i)
		if fill != nil {
			fill(i, &b[i])
		}
	}
	return b
}

// yesNo returns Yes for the first yes days of the week, No after.
func yesNo(i, yes int) Label {
	if i < yes {
		return Yes
	}
	return No
}
