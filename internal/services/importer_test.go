package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alpha-x/internal/insight"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "responses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportCSV(t *testing.T) {
	sm := testManager(t)

	path := writeCSV(t, `Timestamp,Did you code more than 1 hour ?,Met Protein intake ?,Sleep,Marriage goals ?,Ignored Column
1/5/2026 19:30:00,Yes,>= 100g,7 hrs,Good,whatever
1/6/2026 20:00:00,No,< 100g,6 hrs,Okayish,whatever
not a timestamp,Yes,>= 100g,8 hrs,Good,whatever
`)

	imported, err := sm.Importer.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	count, err := sm.repository.CountEntries()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	batch, err := sm.repository.GetEntriesBetween(start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, batch, 2)

	assert.Equal(t, insight.Yes, batch[0].Coding)
	assert.Equal(t, insight.ProteinMet, batch[0].Protein)
	assert.Equal(t, "7 hrs", batch[0].Sleep)
	assert.Equal(t, insight.MarriageGood, batch[0].Marriage)
	assert.Equal(t, insight.No, batch[1].Coding)
	assert.Equal(t, insight.MarriageOkayish, batch[1].Marriage)
}

func TestImportCSV_ReimportUpserts(t *testing.T) {
	sm := testManager(t)

	path := writeCSV(t, `Timestamp,Did you code more than 1 hour ?
1/5/2026 19:30:00,No
`)
	_, err := sm.Importer.ImportCSV(path)
	require.NoError(t, err)

	path = writeCSV(t, `Timestamp,Did you code more than 1 hour ?
1/5/2026 21:00:00,Yes
`)
	imported, err := sm.Importer.ImportCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	count, err := sm.repository.CountEntries()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	batch, err := sm.repository.GetLastEntries(1)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, insight.Yes, batch[0].Coding)
}

func TestImportCSV_NoKnownColumns(t *testing.T) {
	sm := testManager(t)

	path := writeCSV(t, `Foo,Bar
1,2
`)
	_, err := sm.Importer.ImportCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no known columns")
}

func TestImportCSV_MissingFile(t *testing.T) {
	sm := testManager(t)

	_, err := sm.Importer.ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
