// Package model defines the quiz data model consumed by renderers: a Quiz holds
// an ordered list of Questions, and each Question holds an ordered list of
// Answers. Questions are a closed tagged variant keyed by Kind; renderers
// dispatch on the tag and report kinds they do not support instead of guessing.
// Renderers treat every value in this package as read-only. Helpers that need
// to change a quiz (Clone, WithStableUIDs, decorators run by the orchestrator)
// operate on copies.
package model
