// Package html5 renders quizzes into HTML5 documents.
//
// A Renderer is configured once (templates, randomness, logging) and is safe
// for concurrent use. ForQuiz binds it to one quiz and one set of
// render.RenderOptions, resolving any custom template up front so missing
// files fail before output is produced. The returned QuizRenderer renders the
// whole document (RenderQuiz) or single questions (RenderMultipleChoice,
// RenderQuestion); every call returns a fresh Result and leaves the quiz
// untouched.
//
// Question and answer text is HTML-escaped unless the question is marked Raw.
// Correct answers and explanations are only disclosed when the options ask for
// solutions and the quiz has a points threshold.
package html5
