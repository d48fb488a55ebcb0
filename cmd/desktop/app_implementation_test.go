package main

import (
	"context"
	"path/filepath"
	"testing"

	"flashcards/internal/app"
	"flashcards/internal/app/catalog"
	"flashcards/internal/app/session"
	"flashcards/internal/logger"
	"flashcards/internal/random"
	"flashcards/internal/report"
	"flashcards/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestQuizApp(t *testing.T, withJournal bool) (*quizApp, *storage.ProfileFile) {
	t.Helper()

	dir := t.TempDir()

	profileFile := storage.NewProfileFile(filepath.Join(dir, "profile.json"))

	profile, err := profileFile.Load()
	require.NoError(t, err)

	lessons, err := catalog.New(catalog.DefaultBank(), profile.CompletedLessons)
	require.NoError(t, err)

	randSource, err := random.NewSource()
	require.NoError(t, err)

	s := session.New(lessons, profileFile, profile, random.NewShuffler(randSource))

	var journal *storage.Journal

	if withJournal {
		journal, err = storage.OpenJournal(context.Background(), filepath.Join(dir, "journal"))
		require.NoError(t, err)

		t.Cleanup(func() { journal.Close() })
	}

	return newQuizApp(s, journal, filepath.Join(dir, "report.xlsx"), logger.Nop()), profileFile
}

func finishLesson(t *testing.T, qa *quizApp, name string) []session.Feedback {
	t.Helper()

	require.NoError(t, qa.StartLesson(name))

	var res []session.Feedback

	for {
		q, ok := qa.Current()

		if !ok {
			return res
		}

		qa.QuestionShown()

		fb, err := qa.SubmitAnswer(q.Answer())
		require.NoError(t, err)

		res = append(res, fb)
	}
}

func TestQuizAppCompletesLesson(t *testing.T) {
	qa, profileFile := newTestQuizApp(t, true)

	assert.False(t, qa.IsUnlocked(catalog.LessonBasics1))

	feedbacks := finishLesson(t, qa, catalog.LessonRussianAlphabet)

	require.Len(t, feedbacks, 6)
	assert.True(t, feedbacks[5].LessonCompleted)

	assert.True(t, qa.IsUnlocked(catalog.LessonBasics1))
	assert.Equal(t, 60, qa.Stats().XP)

	saved, err := profileFile.Load()
	require.NoError(t, err)

	assert.Equal(t, 60, saved.XP)
	assert.True(t, saved.CompletedLessons[catalog.LessonRussianAlphabet])

	answers, err := qa.journal.Answers(context.Background())
	require.NoError(t, err)

	require.Len(t, answers, 6)
	assert.Equal(t, app.PhaseTyping, answers[5].Phase)

	stats, err := qa.journal.LessonStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(
		t,
		storage.LessonStatistics{Answered: 6, Correct: 6, Completions: 1},
		stats[catalog.LessonRussianAlphabet],
	)
}

func TestQuizAppSubmitWithoutLesson(t *testing.T) {
	qa, _ := newTestQuizApp(t, true)

	_, err := qa.SubmitAnswer("А")
	assert.ErrorIs(t, err, app.ErrNoActiveLesson)

	_, err = qa.journal.LessonStatistics(context.Background())
	assert.ErrorIs(t, err, storage.ErrWasNotSaved)
}

func TestQuizAppExportReport(t *testing.T) {
	qa, _ := newTestQuizApp(t, true)

	finishLesson(t, qa, catalog.LessonRussianAlphabet)

	path, err := qa.ExportReport(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows(report.SHEET_ANSWERS)
	require.NoError(t, err)

	assert.Len(t, rows, 7)

	xp, err := f.GetCellValue(report.SHEET_SUMMARY, "B1")
	require.NoError(t, err)

	assert.Equal(t, "60", xp)
}

func TestQuizAppExportWithoutJournal(t *testing.T) {
	qa, _ := newTestQuizApp(t, false)

	feedbacks := finishLesson(t, qa, catalog.LessonRussianAlphabet)
	require.Len(t, feedbacks, 6)

	path, err := qa.ExportReport(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows(report.SHEET_ANSWERS)
	require.NoError(t, err)

	assert.Len(t, rows, 1)
}
