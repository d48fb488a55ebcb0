package report

import (
	"fmt"

	"flashcards/internal/app"
	"flashcards/internal/storage"

	"github.com/xuri/excelize/v2"
)

const (
	SHEET_SUMMARY = "Summary"
	SHEET_ANSWERS = "Answers"

	TIME_FORMAT = "2006-01-02 15:04:05"
)

type LessonState struct {
	Name      string
	Completed bool
}

// Everything that goes to the workbook.
type Data struct {
	Profile    app.Profile
	Lessons    []LessonState
	Statistics map[string]storage.LessonStatistics
	Answers    []storage.AnswerRecord
}

// Writes an xlsx workbook with two sheets: the summary of the profile
// with per-lesson counters, and the list of all the journal answers.
func Export(path string, data Data) error {
	f := excelize.NewFile()

	defer f.Close()

	err := f.SetSheetName(f.GetSheetName(0), SHEET_SUMMARY)

	if err != nil {
		return err
	}

	err = writeSummary(f, data)

	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	_, err = f.NewSheet(SHEET_ANSWERS)

	if err != nil {
		return err
	}

	err = writeAnswers(f, data.Answers)

	if err != nil {
		return fmt.Errorf("answers: %w", err)
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)

	if err != nil {
		return err
	}

	return f.SetSheetRow(sheet, cell, &values)
}

func writeSummary(f *excelize.File, data Data) error {
	rows := [][]interface{}{
		{"XP", data.Profile.XP},
		{"Streak", data.Profile.Streak},
		{"Correct Answer Streak", data.Profile.CorrectAnswerStreak},
		{"Lesson", "Completed", "Answered", "Correct", "Completions"},
	}

	for _, lesson := range data.Lessons {
		stats := data.Statistics[lesson.Name]

		rows = append(
			rows,
			[]interface{}{lesson.Name, lesson.Completed, stats.Answered, stats.Correct, stats.Completions},
		)
	}

	for i, values := range rows {
		err := setRow(f, SHEET_SUMMARY, i+1, values...)

		if err != nil {
			return err
		}
	}

	return nil
}

func writeAnswers(f *excelize.File, answers []storage.AnswerRecord) error {
	err := setRow(f, SHEET_ANSWERS, 1, "Time", "Lesson", "Phase", "Question", "Given", "Expected", "Correct", "Seconds")

	if err != nil {
		return err
	}

	for i, answer := range answers {
		err = setRow(
			f,
			SHEET_ANSWERS,
			i+2,
			answer.Time.Format(TIME_FORMAT),
			answer.Lesson,
			answer.Phase.String(),
			answer.Prompt,
			answer.Given,
			answer.Expected,
			answer.Correct,
			answer.Elapsed.Seconds(),
		)

		if err != nil {
			return err
		}
	}

	return nil
}
