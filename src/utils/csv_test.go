package utils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lmsconnector/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestParseCSVRecords(t *testing.T) {
	records, err := utils.ParseCSVRecords(strings.NewReader("student_id,score,module_id\nS1,85,M010\nS2,,\n"))
	require.NoError(t, err)

	assert.Equal(t, []map[string]string{
		{"student_id": "S1", "score": "85", "module_id": "M010"},
		{"student_id": "S2", "score": "", "module_id": ""},
	}, records)
}

func TestParseCSVRecordsStripsBOM(t *testing.T) {
	records, err := utils.ParseCSVRecords(strings.NewReader("\ufeffstudent_id,email\nS1,s1@edupath.test\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "S1", records[0]["student_id"])
}

func TestParseCSVRecordsEmptyInput(t *testing.T) {
	records, err := utils.ParseCSVRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	records, err = utils.ParseCSVRecords(strings.NewReader("student_id,score\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseCSVRecordsShortRows(t *testing.T) {
	records, err := utils.ParseCSVRecords(strings.NewReader("student_id,first_name,module_id,score\nS001,Amina,M001,78\nS002,Lucas\n"))
	require.NoError(t, err)

	assert.Equal(t, []map[string]string{
		{"student_id": "S001", "first_name": "Amina", "module_id": "M001", "score": "78"},
		{"student_id": "S002", "first_name": "Lucas"},
	}, records)
}

func TestParseCSVRecordsDropsExtraFields(t *testing.T) {
	records, err := utils.ParseCSVRecords(strings.NewReader("student_id,score\nS1,85,extra\n"))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"student_id": "S1", "score": "85"}}, records)
}

func TestParseCSVRecordsKeepsValuesVerbatim(t *testing.T) {
	records, err := utils.ParseCSVRecords(strings.NewReader("student_id,comment\nS1,  leading spaces kept \n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "  leading spaces kept ", records[0]["comment"])
}

func TestParseCSVRecordsUnterminatedQuote(t *testing.T) {
	_, err := utils.ParseCSVRecords(strings.NewReader("student_id,comment\nS1,\"open\n"))
	assert.Error(t, err)
}

func TestCSVReaderReadRecords(t *testing.T) {
	primary := t.TempDir()
	fallback := t.TempDir()
	reader := utils.NewCSVReader(primary, fallback)

	t.Run("reads from the primary directory", func(t *testing.T) {
		writeFile(t, primary, "modules.csv", "module_id,title\nM001,Intro\n")
		writeFile(t, fallback, "modules.csv", "module_id,title\nM999,Stale\n")

		records, err := reader.ReadRecords("modules.csv")
		require.NoError(t, err)
		assert.Equal(t, []map[string]string{{"module_id": "M001", "title": "Intro"}}, records)
	})

	t.Run("falls back when the primary file is absent", func(t *testing.T) {
		writeFile(t, fallback, "resources.csv", "resource_id\nR1\nR2\n")

		records, err := reader.ReadRecords("resources.csv")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("fails when neither directory has the file", func(t *testing.T) {
		_, err := reader.ReadRecords("students.csv")
		assert.ErrorIs(t, err, utils.ErrFileNotFound)
	})

	t.Run("reports malformed content", func(t *testing.T) {
		writeFile(t, primary, "broken.csv", "a,b\n\"unterminated,1\n")

		_, err := reader.ReadRecords("broken.csv")
		require.Error(t, err)
		assert.NotErrorIs(t, err, utils.ErrFileNotFound)
	})
}
