package ui

import (
	"context"

	"flashcards/internal/app"
	"flashcards/internal/app/catalog"
	"flashcards/internal/app/session"
)

type Application interface {
	Lessons() []catalog.Lesson
	IsUnlocked(name string) bool
	Stats() session.Stats

	StartLesson(name string) error
	LessonName() string
	Position() (index, count int)
	Current() (app.Question, bool)
	Options() []string

	// Starts the answer timer; called when the question is on screen.
	QuestionShown()

	SubmitAnswer(given string) (session.Feedback, error)
	Abandon()

	// Writes the progress report and returns its path.
	ExportReport(ctx context.Context) (string, error)
}
