package catalog

import (
	"testing"

	"flashcards/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockChain(t *testing.T) {
	tests := []struct {
		name      string
		completed map[string]bool
		unlocked  []string
		locked    []string
	}{
		{
			name:     "fresh profile",
			unlocked: []string{LessonRussianAlphabet},
			locked:   []string{LessonBasics1, LessonBasics2},
		},
		{
			name:      "alphabet done",
			completed: map[string]bool{LessonRussianAlphabet: true},
			unlocked:  []string{LessonRussianAlphabet, LessonBasics1},
			locked:    []string{LessonBasics2},
		},
		{
			name:      "only second lesson marked",
			completed: map[string]bool{LessonBasics1: true},
			unlocked:  []string{LessonRussianAlphabet, LessonBasics2},
			locked:    []string{LessonBasics1},
		},
		{
			name:      "false entries are ignored",
			completed: map[string]bool{LessonRussianAlphabet: false},
			unlocked:  []string{LessonRussianAlphabet},
			locked:    []string{LessonBasics1, LessonBasics2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(DefaultBank(), tt.completed)
			require.NoError(t, err)

			for _, name := range tt.unlocked {
				assert.True(t, c.IsUnlocked(name), name)
			}

			for _, name := range tt.locked {
				assert.False(t, c.IsUnlocked(name), name)
			}
		})
	}
}

func TestUnlockFollowsPredecessor(t *testing.T) {
	c, err := New(DefaultBank(), nil)
	require.NoError(t, err)

	lessons := c.Lessons()

	for i := range lessons {
		require.NoError(t, c.MarkCompleted(lessons[i].Name))

		for j := 1; j < len(lessons); j++ {
			assert.Equal(t, j <= i+1, c.IsUnlocked(lessons[j].Name), "after %d completed, lesson %d", i+1, j)
		}
	}
}

func TestUnknownLesson(t *testing.T) {
	c, err := New(DefaultBank(), nil)
	require.NoError(t, err)

	assert.False(t, c.IsUnlocked("Basics 3"))
	assert.False(t, c.IsCompleted("Basics 3"))

	_, err = c.Lesson("Basics 3")
	assert.ErrorIs(t, err, app.ErrUnknownLesson)

	assert.ErrorIs(t, c.MarkCompleted("Basics 3"), app.ErrUnknownLesson)
}

func TestDuplicateNames(t *testing.T) {
	bank := DefaultBank()
	bank[1].Name = bank[0].Name

	_, err := New(bank, nil)
	assert.Error(t, err)
}

func TestEmptyLesson(t *testing.T) {
	bank := DefaultBank()
	bank[2].Questions = nil

	_, err := New(bank, nil)
	assert.Error(t, err)
}

func TestLessonsReturnsCopy(t *testing.T) {
	c, err := New(DefaultBank(), nil)
	require.NoError(t, err)

	lessons := c.Lessons()
	lessons[0].Completed = true
	lessons[0].Name = "changed"

	assert.False(t, c.IsCompleted(LessonRussianAlphabet))
	assert.False(t, c.IsUnlocked(LessonBasics1))
}

func TestDefaultBank(t *testing.T) {
	bank := DefaultBank()

	require.Len(t, bank, 3)
	assert.Equal(t, []string{LessonRussianAlphabet, LessonBasics1, LessonBasics2}, []string{bank[0].Name, bank[1].Name, bank[2].Name})

	assert.Equal(t, 1, bank[0].Count(app.QuestionKindTyping))
	assert.Equal(t, 1, bank[1].Count(app.QuestionKindTyping))
	assert.Equal(t, 2, bank[2].Count(app.QuestionKindTyping))

	for _, lesson := range bank {
		for _, q := range lesson.Questions {
			if q.Kind() != app.QuestionKindMultipleChoice {
				assert.Empty(t, q.Options())

				continue
			}

			options := q.Options()

			assert.GreaterOrEqual(t, len(options), 3, q.Prompt())
			assert.LessOrEqual(t, len(options), 4, q.Prompt())
			assert.Contains(t, options, q.Answer(), q.Prompt())
		}
	}
}
