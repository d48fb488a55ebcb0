package catalog

import "flashcards/internal/app"

const (
	LessonRussianAlphabet = "Russian Alphabet"
	LessonBasics1         = "Basics 1"
	LessonBasics2         = "Basics 2"
)

// Returns the built-in lessons in unlock order. Every call builds a new slice,
// so callers can't modify the bank of other catalogs.
func DefaultBank() []Lesson {
	return []Lesson{
		{
			Name: LessonRussianAlphabet,
			Questions: []app.Question{
				app.NewMultipleChoice("What is the Russian letter for 'A'?", "А", "А", "Б", "В", "Г"),
				app.NewMultipleChoice("What is the Russian letter for 'B'?", "Б", "А", "Б", "В", "Г"),
				app.NewMultipleChoice("What is the Russian letter for 'V'?", "В", "А", "Б", "В", "Г"),
				app.NewMultipleChoice("What is the Russian letter for 'G'?", "Г", "А", "Б", "В", "Г"),
				app.NewTyping("Type the letter 'Д'", "Д"),
			},
		},
		{
			Name: LessonBasics1,
			Questions: []app.Question{
				app.NewMultipleChoice("What is 'cat' in Russian?", "Кошка", "Кошка", "Собака", "Машина", "Стол"),
				app.NewTranslation("Translate to Russian: 'dog'", "Собака"),
				app.NewMultipleChoice("What is 'house' in Russian?", "Дом", "Дом", "Книга", "Стол", "Ручка"),
				app.NewTyping("Type 'book' in Russian", "Книга"),
				app.NewMultipleChoice("What is 'friend' in Russian?", "Друг", "Друг", "Враг", "Собака", "Кошка"),
			},
		},
		{
			Name: LessonBasics2,
			Questions: []app.Question{
				app.NewMultipleChoice("What is 'water' in Russian?", "Вода", "Вода", "Хлеб", "Молоко", "Чай"),
				app.NewTranslation("Translate to Russian: 'apple'", "Яблоко"),
				app.NewTyping("Type 'school' in Russian", "Школа"),
				app.NewMultipleChoice("What is 'table' in Russian?", "Стол", "Стол", "Стул", "Окно", "Дверь"),
				app.NewTyping("Type 'teacher' in Russian", "Учитель"),
			},
		},
	}
}
