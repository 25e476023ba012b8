package database

import (
	"database/sql"
	"time"

	"alpha-x/internal/insight"
)

const dateLayout = "2006-01-02"

type Repository struct {
	Db *Database
}

func NewRepository(db *Database) *Repository {
	return &Repository{Db: db}
}

const entryColumns = `date, coding, focus, career_focus, protein, workout,
	sleep, sunshine, marriage, performance, happiness, day_overview`

// SaveEntry inserts or replaces the record for its calendar date.
func (r *Repository) SaveEntry(rec insight.DailyRecord) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			coding=excluded.coding,
			focus=excluded.focus,
			career_focus=excluded.career_focus,
			protein=excluded.protein,
			workout=excluded.workout,
			sleep=excluded.sleep,
			sunshine=excluded.sunshine,
			marriage=excluded.marriage,
			performance=excluded.performance,
			happiness=excluded.happiness,
			day_overview=excluded.day_overview
	`,
		rec.Timestamp.Format(dateLayout),
		string(rec.Coding), string(rec.Focus), string(rec.CareerFocus),
		string(rec.Protein), string(rec.Workout), rec.Sleep,
		string(rec.Sunshine), string(rec.Marriage), string(rec.Performance),
		string(rec.Happiness), string(rec.DayOverview),
	)
	return err
}

// MergeEntry upserts the record for its calendar date, updating only the
// fields the record carries. Empty fields keep whatever the row already has,
// so a partial check-in never blanks earlier answers for the same day.
func (r *Repository) MergeEntry(rec insight.DailyRecord) error {
	_, err := r.Db.db.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			coding=CASE WHEN excluded.coding <> '' THEN excluded.coding ELSE coding END,
			focus=CASE WHEN excluded.focus <> '' THEN excluded.focus ELSE focus END,
			career_focus=CASE WHEN excluded.career_focus <> '' THEN excluded.career_focus ELSE career_focus END,
			protein=CASE WHEN excluded.protein <> '' THEN excluded.protein ELSE protein END,
			workout=CASE WHEN excluded.workout <> '' THEN excluded.workout ELSE workout END,
			sleep=CASE WHEN excluded.sleep <> '' THEN excluded.sleep ELSE sleep END,
			sunshine=CASE WHEN excluded.sunshine <> '' THEN excluded.sunshine ELSE sunshine END,
			marriage=CASE WHEN excluded.marriage <> '' THEN excluded.marriage ELSE marriage END,
			performance=CASE WHEN excluded.performance <> '' THEN excluded.performance ELSE performance END,
			happiness=CASE WHEN excluded.happiness <> '' THEN excluded.happiness ELSE happiness END,
			day_overview=CASE WHEN excluded.day_overview <> '' THEN excluded.day_overview ELSE day_overview END
	`,
		rec.Timestamp.Format(dateLayout),
		string(rec.Coding), string(rec.Focus), string(rec.CareerFocus),
		string(rec.Protein), string(rec.Workout), rec.Sleep,
		string(rec.Sunshine), string(rec.Marriage), string(rec.Performance),
		string(rec.Happiness), string(rec.DayOverview),
	)
	return err
}

// GetEntriesBetween returns the records with start <= date <= end, oldest first.
func (r *Repository) GetEntriesBetween(start, end time.Time) (insight.Batch, error) {
	rows, err := r.Db.db.Query(`
		SELECT `+entryColumns+`
		FROM entries
		WHERE date >= ? AND date <= ?
		ORDER BY date
	`, start.Format(dateLayout), end.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// GetLastEntries returns the most recent n records, oldest first.
func (r *Repository) GetLastEntries(n int) (insight.Batch, error) {
	rows, err := r.Db.db.Query(`
		SELECT * FROM (
			SELECT `+entryColumns+`
			FROM entries
			ORDER BY date DESC
			LIMIT ?
		)
		ORDER BY date
	`, n)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func (r *Repository) CountEntries() (int, error) {
	var count int
	err := r.Db.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count)
	return count, err
}

func scanEntries(rows *sql.Rows) (insight.Batch, error) {
	defer rows.Close()

	var batch insight.Batch
	for rows.Next() {
		var date string
		var coding, focus, careerFocus, protein, workout, sleep string
		var sunshine, marriage, performance, happiness, dayOverview string

		err := rows.Scan(
			&date,
			&coding, &focus, &careerFocus,
			&protein, &workout, &sleep,
			&sunshine, &marriage, &performance,
			&happiness, &dayOverview,
		)
		if err != nil {
			return nil, err
		}

		rec := insight.DailyRecord{
			Coding:      insight.Label(coding),
			Focus:       insight.Label(focus),
			CareerFocus: insight.Label(careerFocus),
			Protein:     insight.Label(protein),
			Workout:     insight.Label(workout),
			Sleep:       sleep,
			Sunshine:    insight.Label(sunshine),
			Marriage:    insight.Label(marriage),
			Performance: insight.Label(performance),
			Happiness:   insight.Label(happiness),
			DayOverview: insight.Label(dayOverview),
		}
		if ts, err := time.Parse(dateLayout, date); err == nil {
			rec.Timestamp = ts
		}
		batch = append(batch, rec)
	}

	return batch, rows.Err()
}
