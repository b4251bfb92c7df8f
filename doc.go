// Package quizgen renders quizzes (multiple-choice and select-multiple
// questions with optional solutions) to standalone HTML5 documents.
//
// The quickest route is GenerateHTML, which runs the default orchestrator
// with the html5 renderer:
//
//	quiz, err := quizgen.LoadQuiz("midterm.yaml")
//	if err != nil {
//		return err
//	}
//	html, err := quizgen.GenerateHTML(ctx, quiz, "", quizgen.RenderOptions{Solutions: true})
//
// Lower level building blocks live under pkg/: the model, the YAML/JSON
// loader, the renderer registry and the html5 renderer itself.
package quizgen
