package app

type QuestionKind int

const (
	QuestionKindMultipleChoice QuestionKind = iota
	QuestionKindTranslation
	QuestionKindTyping
)

func (k QuestionKind) String() string {
	switch k {
	case QuestionKindMultipleChoice:
		return "multiple_choice"
	case QuestionKindTranslation:
		return "translation"
	case QuestionKindTyping:
		return "typing"
	}

	return "unknown"
}

// Question is immutable after construction: Options() returns a copy.
type Question struct {
	kind    QuestionKind
	prompt  string
	answer  string
	options []string
}

func NewMultipleChoice(prompt, answer string, options ...string) Question {
	q := Question{
		kind:   QuestionKindMultipleChoice,
		prompt: prompt,
		answer: answer,
	}

	q.options = make([]string, len(options))

	copy(q.options, options)

	return q
}

func NewTranslation(prompt, answer string) Question {
	return Question{
		kind:   QuestionKindTranslation,
		prompt: prompt,
		answer: answer,
	}
}

func NewTyping(prompt, answer string) Question {
	return Question{
		kind:   QuestionKindTyping,
		prompt: prompt,
		answer: answer,
	}
}

func (q Question) Kind() QuestionKind {
	return q.kind
}

func (q Question) Prompt() string {
	return q.prompt
}

func (q Question) Answer() string {
	return q.answer
}

func (q Question) Options() []string {
	res := make([]string, len(q.options))

	copy(res, q.options)

	return res
}

type Phase int

const (
	PhaseMultipleChoice Phase = iota
	PhaseTyping
)

func (p Phase) String() string {
	if p == PhaseTyping {
		return "typing"
	}

	return "multiple_choice"
}

// Profile is the persisted progress record.
type Profile struct {
	XP                  int             `json:"xp"`
	Streak              int             `json:"streak"`
	CompletedLessons    map[string]bool `json:"completed_lessons"`
	CorrectAnswerStreak int             `json:"correct_answer_streak"`
}

func NewProfile() Profile {
	return Profile{
		CompletedLessons: map[string]bool{},
	}
}

// Returns a deep copy (the map is not shared).
func (p Profile) Clone() Profile {
	res := p

	res.CompletedLessons = make(map[string]bool, len(p.CompletedLessons))

	for name, done := range p.CompletedLessons {
		res.CompletedLessons[name] = done
	}

	return res
}
