package ui

import (
	"fmt"

	"flashcards/internal/app"
	"flashcards/internal/app/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type lessonMenu struct {
	menu

	toMainMenu *widget.Button
	progress   *widget.Label
	prompt     *widget.Label

	answer       *widget.Entry
	submitAnswer *widget.Button

	options      []*widget.Button
	keyboardKeys []*widget.Button

	// Set between an answer and closing of its feedback dialog,
	// so double taps don't submit the next question.
	waitingForFeedback bool
}

func (m *lessonMenu) answerGiven(given string) {
	if m.waitingForFeedback {
		return
	}

	m.waitingForFeedback = true

	fb, err := m.app.SubmitAnswer(given)

	if err != nil && !fb.LessonCompleted {
		m.waitingForFeedback = false

		m.showError(err)

		return
	}

	dlg := feedbackDialog(fb, m.mainWindow)

	dlg.SetOnClosed(func() {
		m.waitingForFeedback = false

		if !fb.LessonCompleted {
			m.showQuestion()

			return
		}

		m.lessonCompleted(fb, err)
	})

	dlg.Show()
}

func (m *lessonMenu) lessonCompleted(fb session.Feedback, saveErr error) {
	mainMenu := m.openMainMenu()

	if saveErr != nil {
		mainMenu.showError(saveErr)

		return
	}

	dialog.ShowInformation(
		lang.L("Skill Complete"),
		lang.L("Congratulations! You completed the {{.Lesson}} lesson.", map[string]any{"Lesson": fb.Lesson}),
		m.mainWindow,
	)
}

func feedbackDialog(fb session.Feedback, window fyne.Window) dialog.Dialog {
	if !fb.Correct {
		return dialogOfTextErr(
			lang.L("Incorrect"),
			lang.L("The correct answer was: {{.Answer}}", map[string]any{"Answer": fb.Expected}),
			window,
		)
	}

	return dialog.NewInformation(
		lang.L("Correct!"),
		fmt.Sprintf(
			"%s\n%s",
			lang.L("Great job! +{{.XP}} XP", map[string]any{"XP": session.XPPerCorrectAnswer}),
			lang.L("Time Taken: {{.Seconds}} seconds", map[string]any{"Seconds": int(fb.Elapsed.Seconds())}),
		),
		window,
	)
}

func (m *lessonMenu) showQuestion() {
	q, ok := m.app.Current()

	if !ok {
		m.openMainMenu()

		return
	}

	index, count := m.app.Position()

	m.progress.SetText(fmt.Sprintf("%s  %d/%d", m.app.LessonName(), index+1, count))
	m.prompt.SetText(q.Prompt())

	m.options = nil
	m.keyboardKeys = nil

	var (
		content fyne.CanvasObject
		focus   fyne.Focusable
	)

	switch q.Kind() {
	case app.QuestionKindMultipleChoice:
		options := m.app.Options()

		optionsCO := make([]fyne.CanvasObject, len(options))

		for i, option := range options {
			optionCopy := option

			btn := widget.NewButton(
				optionCopy,
				func() {
					m.answerGiven(optionCopy)
				},
			)

			m.options = append(m.options, btn)

			optionsCO[i] = btn
		}

		content = container.NewCenter(container.NewVBox(optionsCO...))
	case app.QuestionKindTranslation:
		m.answer.SetText("")

		content = container.NewBorder(
			nil,
			nil,
			nil,
			m.submitAnswer,
			m.answer,
		)

		focus = m.answer
	case app.QuestionKindTyping:
		m.answer.SetText("")

		var keyboard *fyne.Container

		keyboard, m.keyboardKeys = newRussianKeyboard(m.answer)

		content = container.NewVBox(
			container.NewBorder(
				nil,
				nil,
				nil,
				m.submitAnswer,
				m.answer,
			),
			container.NewCenter(keyboard),
		)

		focus = m.answer
	}

	m.mainWindow.SetContent(
		container.NewBorder(
			container.NewHBox(
				m.toMainMenu,
				layout.NewSpacer(),
				m.progress,
			),
			nil,
			nil,
			nil,
			container.NewVBox(
				layout.NewSpacer(),
				container.NewCenter(m.prompt),
				layout.NewSpacer(),
				content,
				layout.NewSpacer(),
			),
		),
	)

	if focus != nil {
		m.mainWindow.Canvas().Focus(focus)
	}

	m.app.QuestionShown()
}

// Opens UI form of the lesson started by the application. The lesson
// is expected to be already started (Application.StartLesson()).
func openLesson(parent menu) *lessonMenu {
	m := &lessonMenu{
		menu:         parent,
		toMainMenu:   widget.NewButton(lang.L("To main menu"), nil),
		progress:     widget.NewLabel(""),
		prompt:       widget.NewLabel(""),
		answer:       widget.NewEntry(),
		submitAnswer: widget.NewButton(lang.L("Submit"), nil),
	}

	m.toMainMenu.Importance = widget.HighImportance
	m.submitAnswer.Importance = widget.HighImportance

	m.prompt.Alignment = fyne.TextAlignCenter

	m.answer.OnSubmitted = func(s string) {
		m.answerGiven(s)
	}

	m.submitAnswer.OnTapped = func() {
		m.answerGiven(m.answer.Text)
	}

	m.toMainMenu.OnTapped = func() {
		m.app.Abandon()

		m.openMainMenu()
	}

	m.showQuestion()

	return m
}
