package html5

import (
	"strings"

	"github.com/goliatone/go-quizgen/pkg/model"
)

const (
	classCorrect     = "correct"
	classIncorrect   = "incorrect"
	classExplanation = "explanation"
)

// writeAnswer renders one answer as a list item. With disclosure off the item
// carries no class at all, so nothing in the markup depends on correctness.
func writeAnswer(b *strings.Builder, answer model.Answer, raw, disclose bool) {
	b.WriteString("    <li")
	if disclose {
		b.WriteString(` class="`)
		if answer.Correct {
			b.WriteString(classCorrect)
		} else {
			b.WriteString(classIncorrect)
		}
		b.WriteByte('"')
	}
	b.WriteString("><p>")
	b.WriteString(content(answer.Text, raw))
	b.WriteString("</p>")

	if disclose && !answer.Correct && answer.Explanation != "" {
		b.WriteString(`<p class="` + classExplanation + `">`)
		b.WriteString(content(answer.Explanation, raw))
		b.WriteString("</p>")
	}
	b.WriteString("</li>\n")
}
