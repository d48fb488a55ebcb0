package ui

import "time"

const (
	WINDOW_TITLE = "Duolingo Lite Plus"

	//Protection of "blinking" elements while they are disabled for too short period.
	MIN_TIME_OF_WAITING_SCREEN_DISPLAYING = time.Millisecond * 2000

	//The time period to wait before showing that the export is still running.
	TIME_BEFORE_SHOWING_WAITING_SCREEN = time.Millisecond * 1000
)

// Layout of the on-screen keyboard, row by row.
var russianKeys = []string{
	"Й", "Ц", "У", "К", "Е", "Н", "Г", "Ш", "Щ", "З", "Х", "Ъ",
	"Ф", "Ы", "В", "А", "П", "Р", "О", "Л", "Д", "Ж", "Э",
	"Я", "Ч", "С", "М", "И", "Т", "Ь", "Б", "Ю",
}

const KEYBOARD_COLUMNS = 10
