package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"flashcards/internal/app"
	"flashcards/internal/app/catalog"
	"flashcards/internal/app/session"
	"flashcards/internal/logger"
	"flashcards/internal/report"
	"flashcards/internal/storage"
	"flashcards/internal/ui"
)

// Binds the quiz session to the UI and copies every answer to the journal.
// The journal is optional: nil disables answers history and the report
// then contains the profile only.
type quizApp struct {
	// Export runs out of the UI goroutine and reads the session too.
	mu sync.Mutex

	session    *session.Session
	journal    *storage.Journal
	reportPath string
	log        *logger.Logger
}

var _ ui.Application = (*quizApp)(nil)

func newQuizApp(s *session.Session, journal *storage.Journal, reportPath string, lg *logger.Logger) *quizApp {
	return &quizApp{
		session:    s,
		journal:    journal,
		reportPath: reportPath,
		log:        lg,
	}
}

func (qa *quizApp) Lessons() []catalog.Lesson {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	return qa.session.Catalog().Lessons()
}

func (qa *quizApp) IsUnlocked(name string) bool {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	return qa.session.Catalog().IsUnlocked(name)
}

func (qa *quizApp) Stats() session.Stats {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	return qa.session.Stats()
}

func (qa *quizApp) StartLesson(name string) error {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	err := qa.session.StartLesson(name)

	if err == nil {
		qa.log.Debug("lesson started", "lesson", name)
	}

	return err
}

func (qa *quizApp) LessonName() string {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	return qa.session.LessonName()
}

func (qa *quizApp) Position() (int, int) {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	return qa.session.Position()
}

func (qa *quizApp) Current() (app.Question, bool) {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	return qa.session.Current()
}

func (qa *quizApp) Options() []string {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	return qa.session.Options()
}

func (qa *quizApp) QuestionShown() {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	qa.session.QuestionShown()
}

func (qa *quizApp) SubmitAnswer(given string) (session.Feedback, error) {
	qa.mu.Lock()

	fb, err := qa.session.SubmitAnswer(given)

	var xp int

	if fb.LessonCompleted {
		xp = qa.session.Stats().XP
	}

	qa.mu.Unlock()

	if errors.Is(err, app.ErrNoActiveLesson) {
		return fb, err
	}

	if err != nil {
		qa.log.Error("failed to save progress", "lesson", fb.Lesson, "error", err)
	}

	qa.journalFeedback(fb, xp)

	return fb, err
}

func (qa *quizApp) journalFeedback(fb session.Feedback, xp int) {
	if qa.journal == nil {
		return
	}

	now := time.Now()

	err := qa.journal.RecordAnswer(
		context.Background(),
		storage.AnswerRecord{
			Time:     now,
			Lesson:   fb.Lesson,
			Phase:    fb.Phase,
			Prompt:   fb.Question.Prompt(),
			Given:    fb.Given,
			Expected: fb.Expected,
			Correct:  fb.Correct,
			Elapsed:  fb.Elapsed,
		},
	)

	if err != nil {
		qa.log.Warn("failed to record answer", "lesson", fb.Lesson, "error", err)
	}

	if !fb.LessonCompleted {
		return
	}

	err = qa.journal.RecordCompletion(
		context.Background(),
		storage.CompletionRecord{
			Time:   now,
			Lesson: fb.Lesson,
			XP:     xp,
		},
	)

	if err != nil {
		qa.log.Warn("failed to record lesson completion", "lesson", fb.Lesson, "error", err)
	}

	qa.log.Info("lesson completed", "lesson", fb.Lesson, "xp", xp)
}

func (qa *quizApp) Abandon() {
	qa.mu.Lock()
	defer qa.mu.Unlock()

	qa.log.Debug("lesson abandoned", "lesson", qa.session.LessonName())

	qa.session.Abandon()
}

func (qa *quizApp) reportData(ctx context.Context) (report.Data, error) {
	qa.mu.Lock()

	data := report.Data{
		Profile: qa.session.Profile(),
	}

	for _, lesson := range qa.session.Catalog().Lessons() {
		data.Lessons = append(data.Lessons, report.LessonState{Name: lesson.Name, Completed: lesson.Completed})
	}

	qa.mu.Unlock()

	if qa.journal == nil {
		return data, nil
	}

	stats, err := qa.journal.LessonStatistics(ctx)

	if err != nil && !errors.Is(err, storage.ErrWasNotSaved) {
		return data, err
	}

	data.Statistics = stats

	data.Answers, err = qa.journal.Answers(ctx)

	if err != nil {
		return data, err
	}

	return data, nil
}

func (qa *quizApp) ExportReport(ctx context.Context) (string, error) {
	data, err := qa.reportData(ctx)

	if err != nil {
		qa.log.Error("failed to read journal", "error", err)

		return "", err
	}

	err = report.Export(qa.reportPath, data)

	if err != nil {
		qa.log.Error("failed to export report", "path", qa.reportPath, "error", err)

		return "", err
	}

	qa.log.Info("report exported", "path", qa.reportPath, "answers", len(data.Answers))

	return qa.reportPath, nil
}
