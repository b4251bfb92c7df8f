// Package quizfile loads quizzes from YAML or JSON documents on disk or in an
// fs.FS. The format is picked from the file extension (.yaml, .yml, .json);
// Decode accepts an explicit Format for other sources. Unknown keys are
// rejected so typos in quiz files surface early.
//
// CheckSchema and CheckFile validate raw documents against the embedded JSON
// Schema (see Schema) before any decoding into model types.
package quizfile
