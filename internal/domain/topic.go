package domain

import "errors"

// QuestionType distinguishes the two exam paper formats a topic question
// can target.
type QuestionType string

const (
	// QuestionTypePrelims is a multiple-choice question with a single
	// correct answer drawn from its options.
	QuestionTypePrelims QuestionType = "Prelims"

	// QuestionTypeMains is an essay-style question carrying guidance text
	// instead of options or a correct answer.
	QuestionTypeMains QuestionType = "Mains"
)

// Common validation errors for Topic
var (
	ErrEmptyTopicID       = errors.New("topic ID cannot be empty")
	ErrEmptyTopicTitle    = errors.New("topic title cannot be empty")
	ErrEmptyTopicContent  = errors.New("topic content cannot be empty")
	ErrNonPositiveReward  = errors.New("topic xp reward must be positive")
	ErrPrelimsNeedsAnswer = errors.New("prelims question requires options and a correct answer")
	ErrMainsHasAnswer     = errors.New("mains question cannot carry a correct answer")
)

// Question is one practice question attached to a topic. Prelims
// questions carry options and a correct answer; Mains questions carry
// guidance only.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Guidance      string       `json:"guidance,omitempty"`
}

// Validate checks the question's shape against its type.
func (q *Question) Validate() error {
	switch q.Type {
	case QuestionTypePrelims:
		if len(q.Options) == 0 || q.CorrectAnswer == "" {
			return ErrPrelimsNeedsAnswer
		}
	case QuestionTypeMains:
		if q.CorrectAnswer != "" {
			return ErrMainsHasAnswer
		}
	default:
		return ErrInvalidQuestionType
	}
	return nil
}

// Topic is one bite-sized unit of study material. Topics belong to
// exactly one subject and carry a fixed XP reward awarded once on first
// completion.
type Topic struct {
	ID       string  `json:"id"`
	Subject  Subject `json:"subject"`
	Module   string  `json:"module,omitempty"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	XPReward int     `json:"xp_reward"`

	Questions []Question `json:"questions"`
}

// Validate checks if the Topic has valid data, including every attached
// question.
func (t *Topic) Validate() error {
	if t.ID == "" {
		return ErrEmptyTopicID
	}
	if !t.Subject.Valid() {
		return ErrUnknownSubject
	}
	if t.Title == "" {
		return ErrEmptyTopicTitle
	}
	if t.Content == "" {
		return ErrEmptyTopicContent
	}
	if t.XPReward <= 0 {
		return ErrNonPositiveReward
	}
	for i := range t.Questions {
		if err := t.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
