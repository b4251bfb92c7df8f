// Package orchestrator wires the load → transform → decorate → validate →
// render pipeline for quizzes behind a single Generate call, with defaults
// for every stage so callers can start from orchestrator.New().
package orchestrator
