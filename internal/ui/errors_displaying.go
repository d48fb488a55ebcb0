package ui

import (
	"errors"

	"flashcards/internal/app"
	"flashcards/internal/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Returns a dialog styled similary to standard fyne one, constructed with dialog.NewError(...).
func dialogOfTextErr(title, errText string, window fyne.Window) dialog.Dialog {
	lb := widget.NewLabel(errText)

	lb.Alignment = fyne.TextAlignCenter

	dlg := dialog.NewCustom(title, lang.L("OK"), lb, window)

	dlg.SetIcon(theme.ErrorIcon())

	return dlg
}

func identifyTranslateErr(err error) string {
	if errors.Is(err, app.ErrLockedLesson) {
		return lang.L("Complete the previous lesson first")
	}

	if errors.Is(err, app.ErrUnknownLesson) {
		return lang.L("Lesson not found")
	}

	if errors.Is(err, app.ErrNoActiveLesson) {
		return lang.L("No lesson in progress")
	}

	if errors.Is(err, storage.ErrMalformedProfile) {
		return lang.L("Saved progress could not be read and was reset")
	}

	return ""
}

func showErr(err error, window fyne.Window) {
	var (
		translatedErrText = identifyTranslateErr(err)
		dlg               dialog.Dialog
	)

	if translatedErrText == "" {
		dlg = dialog.NewError(err, window)
	} else {
		dlg = dialogOfTextErr(lang.L("Error"), translatedErrText, window)
	}

	dlg.Show()
}
