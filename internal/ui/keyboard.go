package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Grid of buttons with Cyrillic letters; a tap appends the letter to entry.
func newRussianKeyboard(entry *widget.Entry) (*fyne.Container, []*widget.Button) {
	var (
		objects = make([]fyne.CanvasObject, len(russianKeys))
		buttons = make([]*widget.Button, len(russianKeys))
	)

	for i, key := range russianKeys {
		keyCopy := key

		buttons[i] = widget.NewButton(
			keyCopy,
			func() {
				entry.Append(keyCopy)
			},
		)

		objects[i] = buttons[i]
	}

	return container.NewGridWithColumns(KEYBOARD_COLUMNS, objects...), buttons
}
