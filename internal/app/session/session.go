package session

import (
	"fmt"
	"strings"
	"time"

	"flashcards/internal/app"
	"flashcards/internal/app/catalog"
)

// Reward for one correct answer.
const XPPerCorrectAnswer = 10

type State int

const (
	StateIdle State = iota
	StateMultipleChoicePhase
	StateTypingPhase
)

func (s State) String() string {
	switch s {
	case StateMultipleChoicePhase:
		return "multiple_choice_phase"
	case StateTypingPhase:
		return "typing_phase"
	}

	return "idle"
}

type Shuffler interface {
	Strings([]string) []string
}

type Stats struct {
	XP                  int
	Streak              int
	CorrectAnswerStreak int
}

// Result of one submitted answer.
type Feedback struct {
	Lesson   string
	Phase    app.Phase
	Question app.Question
	Given    string
	Correct  bool

	// Expected answer, to be shown when the answer is wrong.
	Expected string

	// Time since QuestionShown(). Zero for wrong answers and for
	// questions which were never marked as shown.
	Elapsed time.Duration

	// The answer finished the typing phase; the lesson is marked
	// as completed and the session is idle again.
	LessonCompleted bool
}

// Controller of a lesson run. A lesson is passed twice: first all the
// questions are asked (each by its own kind), then only typing questions
// again. After the second pass the lesson is marked as completed and
// the profile is saved.
//
// Not goroutine-safe: all calls are expected from the UI event loop.
type Session struct {
	catalog  *catalog.Catalog
	store    app.ProfileStore
	shuffler Shuffler
	now      func() time.Time

	profile app.Profile
	stats   Stats

	lesson  *catalog.Lesson
	index   int
	phase   app.Phase
	shownAt time.Time
}

// XP and day streak are taken from the profile. Correct answers streak
// is counted from zero for every run of the application.
func New(c *catalog.Catalog, store app.ProfileStore, profile app.Profile, shuffler Shuffler) *Session {
	profile = profile.Clone()

	return &Session{
		catalog:  c,
		store:    store,
		shuffler: shuffler,
		now:      time.Now,
		profile:  profile,
		stats: Stats{
			XP:     profile.XP,
			Streak: profile.Streak,
		},
	}
}

func (s *Session) State() State {
	if s.lesson == nil {
		return StateIdle
	}

	if s.phase == app.PhaseTyping {
		return StateTypingPhase
	}

	return StateMultipleChoicePhase
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Returns a copy of the profile as it was saved last time.
func (s *Session) Profile() app.Profile {
	return s.profile.Clone()
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Name of the active lesson or "" when idle.
func (s *Session) LessonName() string {
	if s.lesson == nil {
		return ""
	}

	return s.lesson.Name
}

// Zero-based index of the current question and the number of questions in the lesson.
func (s *Session) Position() (index, count int) {
	if s.lesson == nil {
		return 0, 0
	}

	return s.index, len(s.lesson.Questions)
}

func (s *Session) StartLesson(name string) error {
	lesson, err := s.catalog.Lesson(name)

	if err != nil {
		return err
	}

	if !s.catalog.IsUnlocked(name) {
		return fmt.Errorf("%w: %q", app.ErrLockedLesson, name)
	}

	if lesson.Completed {
		return fmt.Errorf("%w: %q", app.ErrAlreadyCompleted, name)
	}

	s.lesson = &lesson
	s.index = 0
	s.phase = app.PhaseMultipleChoice
	s.shownAt = time.Time{}

	return nil
}

// Starts the answer timer of the current question. Called by the presenter
// once the question is actually on screen.
func (s *Session) QuestionShown() {
	if s.lesson == nil {
		return
	}

	s.shownAt = s.now()
}

// Leaves the lesson without saving anything. XP earned so far stays in the session.
func (s *Session) Abandon() {
	s.reset()
}

// Returns the question to present; false when there is no active lesson.
func (s *Session) Current() (app.Question, bool) {
	if s.lesson == nil {
		return app.Question{}, false
	}

	return s.lesson.Questions[s.index], true
}

// Options of the current multiple choice question in a new random order.
func (s *Session) Options() []string {
	q, ok := s.Current()

	if !ok || q.Kind() != app.QuestionKindMultipleChoice {
		return nil
	}

	return s.shuffler.Strings(q.Options())
}

// Checks the answer for the current question and moves to the next one.
// The comparison is exact after trimming surrounding whitespace.
//
// When the answer completes the lesson, the profile is saved; a saving error
// is returned together with valid feedback.
func (s *Session) SubmitAnswer(given string) (Feedback, error) {
	q, ok := s.Current()

	if !ok {
		return Feedback{}, app.ErrNoActiveLesson
	}

	res := Feedback{
		Lesson:   s.lesson.Name,
		Phase:    s.phase,
		Question: q,
		Given:    given,
		Correct:  strings.TrimSpace(given) == strings.TrimSpace(q.Answer()),
		Expected: q.Answer(),
	}

	if res.Correct {
		s.stats.XP += XPPerCorrectAnswer
		s.stats.CorrectAnswerStreak++

		if !s.shownAt.IsZero() {
			res.Elapsed = s.now().Sub(s.shownAt)
		}
	} else {
		s.stats.CorrectAnswerStreak = 0
	}

	if s.advance() {
		return res, nil
	}

	res.LessonCompleted = true

	return res, s.complete()
}

// Moves to the next question to present. Returns false when
// there are no more questions (lesson is finished).
func (s *Session) advance() bool {
	s.index++

	if s.phase == app.PhaseMultipleChoice && s.index >= len(s.lesson.Questions) {
		s.phase = app.PhaseTyping
		s.index = 0
	}

	if s.phase == app.PhaseTyping {
		for s.index < len(s.lesson.Questions) && s.lesson.Questions[s.index].Kind() != app.QuestionKindTyping {
			s.index++
		}

		if s.index >= len(s.lesson.Questions) {
			return false
		}
	}

	s.shownAt = time.Time{}

	return true
}

func (s *Session) complete() error {
	name := s.lesson.Name

	s.reset()

	err := s.catalog.MarkCompleted(name)

	if err != nil {
		return err
	}

	if s.profile.CompletedLessons == nil {
		s.profile.CompletedLessons = map[string]bool{}
	}

	s.profile.CompletedLessons[name] = true
	s.profile.XP = s.stats.XP
	s.profile.Streak = s.stats.Streak
	s.profile.CorrectAnswerStreak = s.stats.CorrectAnswerStreak

	err = s.store.Save(s.profile.Clone())

	if err != nil {
		return fmt.Errorf("save progress of %q: %w", name, err)
	}

	return nil
}

func (s *Session) reset() {
	s.lesson = nil
	s.index = 0
	s.phase = app.PhaseMultipleChoice
	s.shownAt = time.Time{}
}
