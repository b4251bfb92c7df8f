package html5

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-quizgen/pkg/model"
	"github.com/goliatone/go-quizgen/pkg/render"
)

const (
	classQuestion          = "question"
	classMultipleChoice    = "multiple-choice"
	classSelectMultiple    = "select-multiple"
	classQuestionWithImage = "question-with-image"
	classQuestionImage     = "question-image"
	classQuestionText      = "text"
	classAnswers           = "answers"
)

// renderQuestion dispatches on the question kind.
func (qr *QuizRenderer) renderQuestion(question model.Question, number int) (string, error) {
	switch kind := question.EffectiveKind(); kind {
	case model.KindMultipleChoice:
		return qr.renderChoiceQuestion(question, number, classMultipleChoice), nil
	case model.KindSelectMultiple:
		return qr.renderChoiceQuestion(question, number, classSelectMultiple), nil
	default:
		return "", &render.UnsupportedQuestionError{Kind: kind, Number: number}
	}
}

// renderChoiceQuestion renders the list-of-answers shape shared by
// multiple-choice and select-multiple questions.
func (qr *QuizRenderer) renderChoiceQuestion(question model.Question, number int, variantClass string) string {
	answers := qr.renderer.order.order(question.Answers, shouldRandomize(qr.quiz, question))

	var b strings.Builder
	b.Grow(256 + len(question.Text) + 64*len(answers))

	b.WriteString(`<li class="` + classQuestion + " " + variantClass)
	if question.Image != "" {
		b.WriteString(" " + classQuestionWithImage)
	}
	b.WriteString(`" id="question-`)
	b.WriteString(strconv.Itoa(number))
	b.WriteByte('"')
	if question.UID != "" {
		b.WriteString(` data-uid="`)
		b.WriteString(attr(question.UID))
		b.WriteByte('"')
	}
	b.WriteString(">\n")

	if question.Image != "" {
		b.WriteString(`  <img class="` + classQuestionImage + `" src="`)
		b.WriteString(attr(question.Image))
		b.WriteString("\">\n")
	}

	b.WriteString(`  <p class="` + classQuestionText + `">`)
	b.WriteString(content(question.Text, question.Raw))
	b.WriteString("</p>\n")

	b.WriteString(`  <ol class="` + classAnswers + "\">\n")
	for _, answer := range answers {
		writeAnswer(&b, answer, question.Raw, qr.disclose)
	}
	b.WriteString("  </ol>\n")
	b.WriteString("</li>\n")
	return b.String()
}
