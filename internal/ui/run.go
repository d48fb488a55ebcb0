package ui

import (
	"context"
	"embed"
	"sync"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/lang"
)

//go:embed translation
var translations embed.FS

type WindowSize struct {
	Width, Height float32
}

// Shows the main window and blocks until it is closed.
// A non-nil startupErr (e.g. unreadable saved progress) is shown
// over the main menu once.
func Run(a Application, size WindowSize, startupErr error) error {
	fyneApp := fyneapp.NewWithID("flashcards.duolingo-lite-plus")

	err := lang.AddTranslationsFS(translations, "translation")

	if err != nil {
		return err
	}

	wg := &sync.WaitGroup{}

	defer wg.Wait()

	ctx, cancel := context.WithCancel(context.Background())

	defer cancel()

	mainWindow := fyneApp.NewWindow(lang.L(WINDOW_TITLE))

	mainWindow.Resize(fyne.NewSize(size.Width, size.Height))

	openStartMenu(ctx, wg, mainWindow, a, fyneApp.Quit, startupErr)

	mainWindow.ShowAndRun()

	return nil
}

func openStartMenu(ctx context.Context, wg *sync.WaitGroup, mainWindow fyne.Window, a Application, quit func(), startupErr error) *mainMenu {
	m := openMainMenu(ctx, wg, mainWindow, a, quit)

	if startupErr != nil {
		m.showError(startupErr)
	}

	return m
}
