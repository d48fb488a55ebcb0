package ui

import (
	"context"
	"errors"
	"sync"

	"flashcards/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

type mainMenu struct {
	menu

	lessonButtons []*widget.Button
	exportButton  *widget.Button
	exitButton    *widget.Button
	statsLabel    *widget.Label

	exportIndication *slowOperation
}

func statsText(a Application) string {
	stats := a.Stats()

	return lang.L(
		"XP: {{.XP}} | Streak: {{.Streak}} days | Correct Answer Streak: {{.CorrectAnswerStreak}}",
		map[string]any{
			"XP":                  stats.XP,
			"Streak":              stats.Streak,
			"CorrectAnswerStreak": stats.CorrectAnswerStreak,
		},
	)
}

func (m *mainMenu) lessonChosen(name string) {
	err := m.app.StartLesson(name)

	if errors.Is(err, app.ErrAlreadyCompleted) {
		dialog.ShowInformation(
			lang.L("Lesson Complete"),
			lang.L("You've already completed the {{.Lesson}} lesson.", map[string]any{"Lesson": name}),
			m.mainWindow,
		)

		return
	}

	if err != nil {
		m.showError(err)

		return
	}

	openLesson(m.menu)
}

func (m *mainMenu) exportButtonPressed() {
	var (
		path string
		err  error
	)

	m.exportButton.Disable()

	m.exportIndication.Begin()

	m.Async(
		func(ctx context.Context) {
			defer m.exportIndication.End(ctx)

			path, err = m.app.ExportReport(ctx)
		},
		func() {
			m.exportButton.Enable()

			if err != nil {
				m.showError(err)

				return
			}

			dialog.ShowInformation(
				lang.L("Export"),
				lang.L("Progress report saved to {{.Path}}", map[string]any{"Path": path}),
				m.mainWindow,
			)
		},
	)
}

// Opens the lessons list (skill tree). Lessons which are not unlocked yet
// are shown as disabled buttons.
func openMainMenu(ctx context.Context, wg *sync.WaitGroup, mainWindow fyne.Window, a Application, quit func()) *mainMenu {
	m := &mainMenu{
		menu: menu{
			ctx:        ctx,
			app:        a,
			mainWindow: mainWindow,
			wg:         wg,
			quit:       quit,
		},
		exportButton: widget.NewButton(lang.L("Export statistics"), nil),
		exitButton:   widget.NewButton(lang.L("Exit"), quit),
		statsLabel:   widget.NewLabel(statsText(a)),
	}

	m.statsLabel.Alignment = fyne.TextAlignCenter

	m.exportButton.OnTapped = m.exportButtonPressed

	m.exportIndication = newSlowOperation(
		TIME_BEFORE_SHOWING_WAITING_SCREEN,
		MIN_TIME_OF_WAITING_SCREEN_DISPLAYING,
		func() {
			fyne.Do(func() {
				m.exportButton.SetText(lang.L("Exporting..."))
			})
		},
		func() {
			fyne.Do(func() {
				m.exportButton.SetText(lang.L("Export statistics"))
			})
		},
	)

	lessons := a.Lessons()

	buttons := make([]fyne.CanvasObject, 0, len(lessons))

	for _, lesson := range lessons {
		name := lesson.Name

		btn := widget.NewButton(
			name,
			func() {
				m.lessonChosen(name)
			},
		)

		if lesson.Completed {
			btn.Importance = widget.SuccessImportance
		}

		if !a.IsUnlocked(name) {
			btn.Disable()
		}

		m.lessonButtons = append(m.lessonButtons, btn)

		buttons = append(buttons, btn)
	}

	title := widget.NewLabelWithStyle(lang.L(WINDOW_TITLE), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	skillTree := widget.NewLabelWithStyle(lang.L("Skill Tree"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	mainWindow.SetContent(
		container.NewVBox(
			title,
			skillTree,
			container.NewCenter(container.NewVBox(buttons...)),
			layout.NewSpacer(),
			container.NewCenter(container.NewHBox(m.exportButton, m.exitButton)),
			m.statsLabel,
		),
	)

	return m
}
