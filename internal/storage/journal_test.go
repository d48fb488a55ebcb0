package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"flashcards/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var journalTestBegin = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestJournalExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal")

	j, err := OpenJournal(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	assert.FileExists(t, path+FILE_EXTENTION)
	assert.NotEmpty(t, j.RunID())
}

func TestJournalAnswers(t *testing.T) {
	ctx := context.Background()

	j, err := openJournal(ctx, filepath.Join(t.TempDir(), "journal.sqlite"), journalTestBegin)
	require.NoError(t, err)

	defer j.Close()

	records := []AnswerRecord{
		{
			Time:     journalTestBegin.Add(time.Second),
			Lesson:   "Russian Alphabet",
			Phase:    app.PhaseMultipleChoice,
			Prompt:   "What is the Russian letter for 'A'?",
			Given:    "А",
			Expected: "А",
			Correct:  true,
			Elapsed:  1500 * time.Millisecond,
		},
		{
			Time:     journalTestBegin.Add(2 * time.Second),
			Lesson:   "Russian Alphabet",
			Phase:    app.PhaseTyping,
			Prompt:   "Type the letter 'Д'",
			Given:    "Б",
			Expected: "Д",
		},
	}

	for _, r := range records {
		require.NoError(t, j.RecordAnswer(ctx, r))
	}

	got, err := j.Answers(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestJournalStatistics(t *testing.T) {
	ctx := context.Background()

	j, err := openJournal(ctx, filepath.Join(t.TempDir(), "journal.sqlite"), journalTestBegin)
	require.NoError(t, err)

	defer j.Close()

	_, err = j.LessonStatistics(ctx)
	assert.ErrorIs(t, err, ErrWasNotSaved)

	for i, correct := range []bool{true, false, true} {
		require.NoError(t, j.RecordAnswer(ctx, AnswerRecord{
			Time:    journalTestBegin.Add(time.Duration(i) * time.Second),
			Lesson:  "Russian Alphabet",
			Correct: correct,
		}))
	}

	require.NoError(t, j.RecordAnswer(ctx, AnswerRecord{Time: journalTestBegin, Lesson: "Basics 1"}))
	require.NoError(t, j.RecordCompletion(ctx, CompletionRecord{Time: journalTestBegin, Lesson: "Russian Alphabet", XP: 60}))
	require.NoError(t, j.RecordCompletion(ctx, CompletionRecord{Time: journalTestBegin, Lesson: "Basics 2", XP: 130}))

	stats, err := j.LessonStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(
		t,
		map[string]LessonStatistics{
			"Russian Alphabet": {Answered: 3, Correct: 2, Completions: 1},
			"Basics 1":         {Answered: 1, Correct: 0, Completions: 0},
			"Basics 2":         {Answered: 0, Correct: 0, Completions: 1},
		},
		stats,
	)
}

func TestJournalEraseOutdatedData(t *testing.T) {
	var (
		ctx  = context.Background()
		path = filepath.Join(t.TempDir(), "journal.sqlite")
	)

	old, err := openJournal(ctx, path, journalTestBegin)
	require.NoError(t, err)

	require.NoError(t, old.RecordAnswer(ctx, AnswerRecord{Time: journalTestBegin, Lesson: "Russian Alphabet", Prompt: "old"}))
	require.NoError(t, old.RecordCompletion(ctx, CompletionRecord{Time: journalTestBegin, Lesson: "Russian Alphabet"}))
	require.NoError(t, old.Close())

	current, err := openJournal(ctx, path, journalTestBegin.Add(48*time.Hour))
	require.NoError(t, err)

	defer current.Close()

	require.NoError(t, current.RecordAnswer(ctx, AnswerRecord{Time: journalTestBegin.Add(48 * time.Hour), Lesson: "Basics 1", Prompt: "new"}))

	// Both runs are inside the period: nothing is removed.
	require.NoError(t, current.EraseOutdatedData(ctx, 1, journalTestBegin.Add(-time.Hour)))

	answers, err := current.Answers(ctx)
	require.NoError(t, err)
	assert.Len(t, answers, 2)

	// Both runs fit into the count limit: nothing is removed.
	require.NoError(t, current.EraseOutdatedData(ctx, 2, journalTestBegin.Add(24*time.Hour)))

	answers, err = current.Answers(ctx)
	require.NoError(t, err)
	assert.Len(t, answers, 2)

	require.NoError(t, current.EraseOutdatedData(ctx, 1, journalTestBegin.Add(24*time.Hour)))

	answers, err = current.Answers(ctx)
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, "new", answers[0].Prompt)

	stats, err := current.LessonStatistics(ctx)
	require.NoError(t, err)
	assert.NotContains(t, stats, "Russian Alphabet")

	var completions int

	require.NoError(t, current.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM LESSON_COMPLETIONS`).Scan(&completions))
	assert.Zero(t, completions)
}

func TestJournalForeignKeys(t *testing.T) {
	ctx := context.Background()

	j, err := openJournal(ctx, filepath.Join(t.TempDir(), "journal"), journalTestBegin)
	require.NoError(t, err)

	defer j.Close()

	var enabled int

	require.NoError(t, j.db.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)

	_, err = j.db.ExecContext(
		ctx,
		`INSERT INTO LESSON_COMPLETIONS (RUN, DATE_UTC, LESSON, XP) VALUES (?, ?, ?, ?)`,
		"unknown run",
		journalTestBegin.Format(SQLITE_TIME_FORMAT),
		"Basics 1",
		10,
	)
	assert.Error(t, err)
}
