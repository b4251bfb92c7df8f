package model

import (
	"fmt"
	"strconv"
)

// QuestionKind tags the variant of a Question.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindSelectMultiple QuestionKind = "select_multiple"
	KindFillIn         QuestionKind = "fill_in"
)

// Known reports whether the kind is one of the declared variants.
func (k QuestionKind) Known() bool {
	switch k {
	case KindMultipleChoice, KindSelectMultiple, KindFillIn:
		return true
	default:
		return false
	}
}

// Answer is a single option offered by a question.
type Answer struct {
	Text    string `json:"text" yaml:"text" validate:"required"`
	Correct bool   `json:"correct,omitempty" yaml:"correct,omitempty"`
	// Explanation is shown next to incorrect answers when solutions are
	// disclosed. Empty means no explanation.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Question is one quiz item. Kind selects the variant; an empty Kind is
// treated as multiple-choice.
type Question struct {
	Kind    QuestionKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	Text    string       `json:"text" yaml:"text"`
	Answers []Answer     `json:"answers,omitempty" yaml:"answers,omitempty" validate:"dive"`
	UID     string       `json:"uid,omitempty" yaml:"uid,omitempty"`
	Image   string       `json:"image,omitempty" yaml:"image,omitempty"`
	// Raw questions emit their text and answer texts without HTML escaping.
	Raw bool `json:"raw,omitempty" yaml:"raw,omitempty"`
	// Randomize overrides the quiz-level default when non-nil.
	Randomize *bool   `json:"randomize,omitempty" yaml:"randomize,omitempty"`
	Points    float64 `json:"points,omitempty" yaml:"points,omitempty" validate:"gte=0"`
}

// EffectiveKind returns Kind, defaulting to KindMultipleChoice.
func (q Question) EffectiveKind() QuestionKind {
	if q.Kind == "" {
		return KindMultipleChoice
	}
	return q.Kind
}

// PointValue returns the question's points, defaulting to 1.
func (q Question) PointValue() float64 {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}

// CorrectAnswers counts answers flagged as correct.
func (q Question) CorrectAnswers() int {
	count := 0
	for _, answer := range q.Answers {
		if answer.Correct {
			count++
		}
	}
	return count
}

// Quiz is the root of the model.
type Quiz struct {
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions,omitempty" yaml:"questions,omitempty" validate:"-"`
	// PointsThreshold is set externally (usually by grading tools). Renderers
	// only disclose solutions when it is present.
	PointsThreshold *float64 `json:"points_threshold,omitempty" yaml:"points_threshold,omitempty" validate:"omitempty,gte=0"`
	// SuppressRandom disables answer shuffling for every question, overriding
	// both Randomize and per-question flags.
	SuppressRandom bool `json:"suppress_random,omitempty" yaml:"suppress_random,omitempty"`
	// Randomize is the default inherited by questions whose Randomize is nil.
	Randomize           bool `json:"randomize,omitempty" yaml:"randomize,omitempty"`
	FirstQuestionNumber int  `json:"first_question_number,omitempty" yaml:"first_question_number,omitempty" validate:"gte=0"`
}

// StartNumber is the display number of the first question (1 when unset).
func (q Quiz) StartNumber() int {
	if q.FirstQuestionNumber <= 0 {
		return 1
	}
	return q.FirstQuestionNumber
}

// NumQuestions returns the number of questions.
func (q Quiz) NumQuestions() int {
	return len(q.Questions)
}

// TotalPoints sums the point value of every question.
func (q Quiz) TotalPoints() float64 {
	total := 0.0
	for _, question := range q.Questions {
		total += question.PointValue()
	}
	return total
}

// PointString renders TotalPoints for humans, e.g. "1 point" or "12.5 points".
func (q Quiz) PointString() string {
	return FormatPoints(q.TotalPoints())
}

// FormatPoints renders a point total with its unit.
func FormatPoints(total float64) string {
	formatted := strconv.FormatFloat(total, 'f', -1, 64)
	if total == 1 {
		return formatted + " point"
	}
	return fmt.Sprintf("%s points", formatted)
}

// HasPointsThreshold reports whether a points threshold was configured.
func (q Quiz) HasPointsThreshold() bool {
	return q.PointsThreshold != nil
}

// Clone returns a deep copy so callers can decorate a quiz without touching
// the original.
func (q Quiz) Clone() Quiz {
	out := q
	if q.PointsThreshold != nil {
		threshold := *q.PointsThreshold
		out.PointsThreshold = &threshold
	}
	if q.Questions != nil {
		out.Questions = make([]Question, len(q.Questions))
		for i, question := range q.Questions {
			out.Questions[i] = question.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	if q.Answers != nil {
		out.Answers = append([]Answer(nil), q.Answers...)
	}
	if q.Randomize != nil {
		value := *q.Randomize
		out.Randomize = &value
	}
	return out
}

// Bool returns a pointer to v, handy for the tri-state Randomize flag.
func Bool(v bool) *bool {
	return &v
}

// Float returns a pointer to v, handy for PointsThreshold.
func Float(v float64) *float64 {
	return &v
}
