package catalog

import (
	"fmt"

	"flashcards/internal/app"
)

type Lesson struct {
	Name      string
	Questions []app.Question
	Completed bool
}

// Returns the number of questions of the given kind.
func (l Lesson) Count(kind app.QuestionKind) int {
	res := 0

	for _, q := range l.Questions {
		if q.Kind() == kind {
			res++
		}
	}

	return res
}

// Ordered set of lessons forming a linear unlock chain:
// a lesson is available only when the previous one is completed.
//
// Completion flags are taken from the profile once, in New(); after that
// they can only be switched on by MarkCompleted().
type Catalog struct {
	lessons []Lesson
	indexes map[string]int
}

func New(bank []Lesson, completedLessons map[string]bool) (*Catalog, error) {
	res := &Catalog{
		lessons: make([]Lesson, len(bank)),
		indexes: make(map[string]int, len(bank)),
	}

	for i, lesson := range bank {
		if _, duplicate := res.indexes[lesson.Name]; duplicate {
			return nil, fmt.Errorf("lesson %q declared twice", lesson.Name)
		}

		if len(lesson.Questions) == 0 {
			return nil, fmt.Errorf("lesson %q has no questions", lesson.Name)
		}

		lesson.Questions = append([]app.Question(nil), lesson.Questions...)
		lesson.Completed = completedLessons[lesson.Name]

		res.lessons[i] = lesson
		res.indexes[lesson.Name] = i
	}

	return res, nil
}

// Returns lessons in declaration order. The result is a copy.
func (c *Catalog) Lessons() []Lesson {
	res := make([]Lesson, len(c.lessons))

	copy(res, c.lessons)

	return res
}

func (c *Catalog) Lesson(name string) (Lesson, error) {
	i, found := c.indexes[name]

	if !found {
		return Lesson{}, fmt.Errorf("%w: %q", app.ErrUnknownLesson, name)
	}

	return c.lessons[i], nil
}

func (c *Catalog) IsUnlocked(name string) bool {
	i, found := c.indexes[name]

	if !found {
		return false
	}

	if i == 0 {
		return true
	}

	return c.lessons[i-1].Completed
}

func (c *Catalog) IsCompleted(name string) bool {
	i, found := c.indexes[name]

	return found && c.lessons[i].Completed
}

func (c *Catalog) MarkCompleted(name string) error {
	i, found := c.indexes[name]

	if !found {
		return fmt.Errorf("%w: %q", app.ErrUnknownLesson, name)
	}

	c.lessons[i].Completed = true

	return nil
}
