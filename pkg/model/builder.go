package model

// QuestionOption customises a question built by one of the constructors.
type QuestionOption func(*Question)

// WithUID sets the question identifier.
func WithUID(uid string) QuestionOption {
	return func(q *Question) {
		q.UID = uid
	}
}

// WithImage attaches an image URL.
func WithImage(url string) QuestionOption {
	return func(q *Question) {
		q.Image = url
	}
}

// WithRaw marks the question content as trusted markup.
func WithRaw(raw bool) QuestionOption {
	return func(q *Question) {
		q.Raw = raw
	}
}

// WithRandomize sets the per-question randomize flag.
func WithRandomize(randomize bool) QuestionOption {
	return func(q *Question) {
		q.Randomize = Bool(randomize)
	}
}

// WithPoints sets the point value.
func WithPoints(points float64) QuestionOption {
	return func(q *Question) {
		q.Points = points
	}
}

// WithAnswers appends answers in order.
func WithAnswers(answers ...Answer) QuestionOption {
	return func(q *Question) {
		q.Answers = append(q.Answers, answers...)
	}
}

// NewMultipleChoice builds a single-answer question.
func NewMultipleChoice(text string, options ...QuestionOption) Question {
	return newQuestion(KindMultipleChoice, text, options)
}

// NewSelectMultiple builds a question where any number of answers may be
// correct.
func NewSelectMultiple(text string, options ...QuestionOption) Question {
	return newQuestion(KindSelectMultiple, text, options)
}

// NewTrueFalse builds a two-answer multiple-choice question. The explanation
// is attached to whichever answer is wrong.
func NewTrueFalse(text string, truth bool, explanation string, options ...QuestionOption) Question {
	q := newQuestion(KindMultipleChoice, text, options)
	q.Answers = append(q.Answers,
		Answer{Text: "True", Correct: truth},
		Answer{Text: "False", Correct: !truth},
	)
	for i := range q.Answers {
		if !q.Answers[i].Correct {
			q.Answers[i].Explanation = explanation
		}
	}
	return q
}

// NewAnswer is shorthand for an Answer literal with an optional explanation.
func NewAnswer(text string, correct bool, explanation ...string) Answer {
	answer := Answer{Text: text, Correct: correct}
	if len(explanation) > 0 {
		answer.Explanation = explanation[0]
	}
	return answer
}

// AddAnswer appends an answer. Answers added without an explicit flag are
// incorrect.
func (q *Question) AddAnswer(text string, correct ...bool) {
	answer := Answer{Text: text}
	if len(correct) > 0 {
		answer.Correct = correct[0]
	}
	q.Answers = append(q.Answers, answer)
}

func newQuestion(kind QuestionKind, text string, options []QuestionOption) Question {
	q := Question{Kind: kind, Text: text}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&q)
	}
	return q
}
