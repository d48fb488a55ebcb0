package storage

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"flashcards/internal/app"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var ErrWasNotSaved = errors.New("wasn't saved")

type AnswerRecord struct {
	Time     time.Time
	Lesson   string
	Phase    app.Phase
	Prompt   string
	Given    string
	Expected string
	Correct  bool
	Elapsed  time.Duration
}

type CompletionRecord struct {
	Time   time.Time
	Lesson string
	XP     int
}

type LessonStatistics struct {
	Answered    uint32
	Correct     uint32
	Completions uint32
}

// History of answers and completed lessons. Each launch of the application
// is a separate run; old runs are removed by EraseOutdatedData().
type Journal struct {
	db    *sql.DB
	runID string
}

// Opens or creates an sqlite database by given file path.
// If filePath argument doesn't include extention, it will be added.
func OpenJournal(ctx context.Context, filePath string) (*Journal, error) {
	return openJournal(ctx, filePath, time.Now())
}

func openJournal(ctx context.Context, filePath string, runBegin time.Time) (*Journal, error) {
	if !strings.HasSuffix(filePath, FILE_EXTENTION) {
		filePath += FILE_EXTENTION
	}

	db, err := sql.Open("sqlite3", filePath+FOREIGN_KEYS_DSN_OPTION)

	if err != nil {
		return nil, err
	}

	initRequestText := `
		CREATE TABLE IF NOT EXISTS RUNS
		(
			ID TEXT PRIMARY KEY,
			DATE_UTC TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS ANSWERS
		(
			RUN TEXT NOT NULL,
			DATE_UTC TEXT NOT NULL,
			LESSON TEXT NOT NULL,
			PHASE INTEGER NOT NULL,
			PROMPT TEXT NOT NULL,
			GIVEN TEXT NOT NULL,
			EXPECTED TEXT NOT NULL,
			CORRECT INTEGER NOT NULL,
			ELAPSED_MS INTEGER NOT NULL,
			FOREIGN KEY (RUN) REFERENCES RUNS(ID) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS LESSON_COMPLETIONS
		(
			RUN TEXT NOT NULL,
			DATE_UTC TEXT NOT NULL,
			LESSON TEXT NOT NULL,
			XP INTEGER NOT NULL,
			FOREIGN KEY (RUN) REFERENCES RUNS(ID) ON DELETE CASCADE
		);
	`

	_, err = db.ExecContext(ctx, initRequestText)

	if err != nil {
		db.Close()

		return nil, err
	}

	res := &Journal{
		db:    db,
		runID: uuid.NewString(),
	}

	_, err = db.ExecContext(
		ctx,
		`INSERT INTO RUNS (ID, DATE_UTC) VALUES (?, ?)`,
		res.runID,
		runBegin.UTC().Format(SQLITE_TIME_FORMAT),
	)

	if err != nil {
		db.Close()

		return nil, err
	}

	return res, nil
}

func (j *Journal) RunID() string {
	return j.runID
}

func (j *Journal) RecordAnswer(ctx context.Context, r AnswerRecord) error {
	requestText := `
		INSERT INTO ANSWERS
		(
			RUN,
			DATE_UTC,
			LESSON,
			PHASE,
			PROMPT,
			GIVEN,
			EXPECTED,
			CORRECT,
			ELAPSED_MS
		)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := j.db.ExecContext(
		ctx,
		requestText,
		j.runID,
		r.Time.UTC().Format(SQLITE_TIME_FORMAT),
		r.Lesson,
		r.Phase,
		r.Prompt,
		r.Given,
		r.Expected,
		r.Correct,
		r.Elapsed.Milliseconds(),
	)

	return err
}

func (j *Journal) RecordCompletion(ctx context.Context, r CompletionRecord) error {
	requestText := `
		INSERT INTO LESSON_COMPLETIONS (RUN, DATE_UTC, LESSON, XP) VALUES
		(?, ?, ?, ?)
	`

	_, err := j.db.ExecContext(ctx, requestText, j.runID, r.Time.UTC().Format(SQLITE_TIME_FORMAT), r.Lesson, r.XP)

	return err
}

// Returns all the answers of all the stored runs ordered by time.
func (j *Journal) Answers(ctx context.Context) ([]AnswerRecord, error) {
	requestText := `
		SELECT DATE_UTC, LESSON, PHASE, PROMPT, GIVEN, EXPECTED, CORRECT, ELAPSED_MS
		FROM ANSWERS
		ORDER BY DATE_UTC, ROWID
	`

	query, err := j.db.QueryContext(ctx, requestText)

	if err != nil {
		return nil, err
	}

	defer query.Close()

	var (
		res       = []AnswerRecord{}
		record    AnswerRecord
		date      string
		elapsedMS int64
	)

	for query.Next() {
		err = query.Scan(
			&date,
			&record.Lesson,
			&record.Phase,
			&record.Prompt,
			&record.Given,
			&record.Expected,
			&record.Correct,
			&elapsedMS,
		)

		if err != nil {
			return nil, err
		}

		record.Time, err = time.Parse(SQLITE_TIME_FORMAT, date)

		if err != nil {
			return nil, err
		}

		record.Elapsed = time.Duration(elapsedMS) * time.Millisecond

		res = append(res, record)
	}

	if query.Err() != nil {
		return nil, query.Err()
	}

	return res, nil
}

// Returns answers and completions counters by lesson name.
// Returns ErrWasNotSaved if there is nothing in the journal.
func (j *Journal) LessonStatistics(ctx context.Context) (map[string]LessonStatistics, error) {
	requestText := `
		WITH
			ANSWERED AS (
				SELECT LESSON, COUNT(*) AS ANSWERED, SUM(CORRECT) AS CORRECT, 0 AS COMPLETIONS
				FROM ANSWERS
				GROUP BY LESSON
			),

			COMPLETED AS (
				SELECT LESSON, 0 AS ANSWERED, 0 AS CORRECT, COUNT(*) AS COMPLETIONS
				FROM LESSON_COMPLETIONS
				GROUP BY LESSON
			)

		SELECT LESSON, SUM(ANSWERED), SUM(CORRECT), SUM(COMPLETIONS)
		FROM (SELECT * FROM ANSWERED UNION ALL SELECT * FROM COMPLETED)
		GROUP BY LESSON
	`

	query, err := j.db.QueryContext(ctx, requestText)

	if err != nil {
		return nil, err
	}

	defer query.Close()

	var (
		res    = map[string]LessonStatistics{}
		stats  LessonStatistics
		lesson string
	)

	for query.Next() {
		err = query.Scan(&lesson, &stats.Answered, &stats.Correct, &stats.Completions)

		if err != nil {
			return nil, err
		}

		res[lesson] = stats
	}

	if query.Err() != nil {
		return nil, query.Err()
	}

	if len(res) <= 0 {
		return nil, ErrWasNotSaved
	}

	return res, nil
}

// Removes all the data associated with runs which were started earlier than runsHistoryPeriodBeginning.
// Removes run if only it's number (by the order of decreasing start date) is bigger than maxRunsCount.
// Uses FIFO discipline.
func (j *Journal) EraseOutdatedData(ctx context.Context, maxRunsCount uint32, runsHistoryPeriodBeginning time.Time) error {
	tx, err := j.db.BeginTx(ctx, nil)

	if err != nil {
		return err
	}

	periodInSQLiteFormat := runsHistoryPeriodBeginning.UTC().Format(SQLITE_TIME_FORMAT)

	toDelete := `
		WITH
			NUMBERED AS (
				SELECT ID, DATE_UTC, ROW_NUMBER() OVER (ORDER BY DATE_UTC DESC) AS RN
				FROM RUNS
			),

			TO_DELETE AS (
				SELECT ID
				FROM NUMBERED
				WHERE RN > ? AND DATE_UTC < ?
			)
	`

	// Answers and completions of the run are removed by ON DELETE CASCADE.
	_, err = tx.ExecContext(ctx, toDelete+`DELETE FROM RUNS WHERE ID IN TO_DELETE`, maxRunsCount, periodInSQLiteFormat)

	if err != nil {
		return errors.Join(err, tx.Rollback())
	}

	return tx.Commit()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
